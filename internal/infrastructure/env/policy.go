package env

import (
	"strings"

	"lintaccel/internal/domain"
	"lintaccel/internal/ports/output"
)

// IgnoreMissingVar tolerates catalogs lacking watched msgids when set to a
// true-ish value.
const IgnoreMissingVar = "LINTACCEL_IGNORE_MISSING"

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

var _ output.MissingPolicy = (*MissingPolicy)(nil)

// MissingPolicy reads IgnoreMissingVar on every call. It owns the flag that
// keeps the ambiguity warning to a single occurrence, so one MissingPolicy
// should live for the whole run.
type MissingPolicy struct {
	lookup   LookupFunc
	reporter output.Reporter
	warned   bool
}

func NewMissingPolicy(lookup LookupFunc, reporter output.Reporter) *MissingPolicy {
	return &MissingPolicy{lookup: lookup, reporter: reporter}
}

// IgnoreMissing reports whether missing msgids are tolerated. Unrecognized
// values count as not tolerated.
func (p *MissingPolicy) IgnoreMissing() bool {
	value, ok := p.lookup(IgnoreMissingVar)
	if !ok {
		return false
	}
	switch strings.ToLower(value) {
	case "0", "n":
		return false
	case "1", "y", "":
		return true
	}
	if !p.warned {
		p.warned = true
		p.reporter.Problem(&domain.ToggleError{Var: IgnoreMissingVar, Value: value})
	}
	return false
}
