package domain

// Severity is the outcome of checking one catalog. Values are ordered, a
// higher value is worse.
type Severity int

const (
	SeverityOK Severity = iota
	SeveritySoft
	SeverityHard
)

// Worse returns the more severe of s and other.
func (s Severity) Worse(other Severity) Severity {
	if other > s {
		return other
	}
	return s
}

// ExitCode is the process exit status for a run whose worst catalog is s.
func (s Severity) ExitCode() int {
	return int(s)
}

func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeveritySoft:
		return "soft"
	case SeverityHard:
		return "hard"
	default:
		return "unknown"
	}
}
