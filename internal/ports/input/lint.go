package input

import "lintaccel/internal/domain"

// CatalogChecker validates one catalog file.
type CatalogChecker interface {
	CheckFile(path string) domain.Severity
}

// LintUseCase checks every catalog listed in the manifest.
type LintUseCase interface {
	Run() domain.Severity
}
