package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors.
var (
	ErrDuplicateID      = errors.New("duplicate msgid")
	ErrMalformedID      = errors.New("malformed msgid")
	ErrMalformedText    = errors.New("malformed msgstr")
	ErrRedefinition     = errors.New("msgid redefined")
	ErrMissingEntries   = errors.New("missing translations")
	ErrUnderscoreCount  = errors.New("translation should have exactly one underscore")
	ErrNoAccelerator    = errors.New("translation has no accelerator after its underscore")
	ErrConflict         = errors.New("conflicting accelerators")
	ErrAmbiguousToggle  = errors.New("ambiguous toggle value")
	ErrCatalogNotFound  = errors.New("catalog does not exist")
	ErrCatalogReadable  = errors.New("catalog unreadable")
	ErrManifestReadable = errors.New("manifest unreadable")
)

// ParseError is a structural problem found by the catalog reader. It always
// aborts the analysis of the file it was found in.
type ParseError struct {
	Path string
	Line int
	ID   string
	Old  string
	New  string
	Err  error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrRedefinition) {
		return fmt.Sprintf("%s:%d: %v %s (old: %q, new: %q)", e.Path, e.Line, e.Err, e.ID, e.Old, e.New)
	}
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingEntryError lists watched msgids absent from a catalog.
type MissingEntryError struct {
	IDs []string
}

func (e *MissingEntryError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingEntries, strings.Join(e.IDs, ", "))
}

func (e *MissingEntryError) Unwrap() error { return ErrMissingEntries }

// ExtractionError means no accelerator could be derived from a translation.
type ExtractionError struct {
	ID   string
	Text string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("msgstr %q for msgid %s: %v", e.Text, e.ID, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ConflictError reports two co-occurring entries bound to the same key.
type ConflictError struct {
	FirstID    string
	FirstText  string
	SecondID   string
	SecondText string
	Key        string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %q (%s) and %q (%s) both use %q",
		ErrConflict, e.FirstText, e.FirstID, e.SecondText, e.SecondID, e.Key)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// ToggleError is the warning emitted for an unrecognized policy value.
type ToggleError struct {
	Var   string
	Value string
}

func (e *ToggleError) Error() string {
	return fmt.Sprintf("%v: %s=%q", ErrAmbiguousToggle, e.Var, e.Value)
}

func (e *ToggleError) Unwrap() error { return ErrAmbiguousToggle }

// ResourceError wraps a missing or unreadable file.
type ResourceError struct {
	Path string
	Kind error
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

func (e *ResourceError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Code maps a domain error to the message key used to render it. It returns
// an empty string for errors that do not belong to the domain.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicateID):
		return "parse.duplicate_id"
	case errors.Is(err, ErrMalformedID):
		return "parse.malformed_id"
	case errors.Is(err, ErrMalformedText):
		return "parse.malformed_text"
	case errors.Is(err, ErrRedefinition):
		return "parse.redefinition"
	case errors.Is(err, ErrMissingEntries):
		return "catalog.missing"
	case errors.Is(err, ErrUnderscoreCount):
		return "accel.underscore_count"
	case errors.Is(err, ErrNoAccelerator):
		return "accel.no_key"
	case errors.Is(err, ErrConflict):
		return "accel.conflict"
	case errors.Is(err, ErrAmbiguousToggle):
		return "toggle.ambiguous"
	case errors.Is(err, ErrCatalogNotFound):
		return "catalog.not_found"
	case errors.Is(err, ErrCatalogReadable):
		return "catalog.unreadable"
	case errors.Is(err, ErrManifestReadable):
		return "manifest.unreadable"
	}
	return ""
}
