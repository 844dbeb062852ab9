package entities

import "lintaccel/internal/domain"

// Summary counts checked catalogs by outcome.
type Summary struct {
	OK   int
	Soft int
	Hard int
}

// Record counts one catalog with the given outcome.
func (s *Summary) Record(sev domain.Severity) {
	switch sev {
	case domain.SeverityOK:
		s.OK++
	case domain.SeveritySoft:
		s.Soft++
	default:
		s.Hard++
	}
}

func (s Summary) Total() int {
	return s.OK + s.Soft + s.Hard
}
