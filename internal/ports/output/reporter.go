package output

import "lintaccel/internal/domain/entities"

// Reporter renders diagnostics for the person running the linter.
type Reporter interface {
	// Problem reports a domain error at the point it was found.
	Problem(err error)
	// Trailer names the catalog the preceding problems belong to.
	Trailer(path string)
	Summary(sum entities.Summary)
}
