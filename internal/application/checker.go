package application

import (
	"sort"

	"lintaccel/internal/domain"
	"lintaccel/internal/domain/entities"
	"lintaccel/internal/ports/input"
	"lintaccel/internal/ports/output"
)

var _ input.CatalogChecker = (*Checker)(nil)

// Checker validates the accelerators of one catalog at a time.
type Checker struct {
	reader   output.CatalogReader
	policy   output.MissingPolicy
	reporter output.Reporter
	pairs    []entities.ConflictPair
	watched  entities.IDSet
}

func NewChecker(
	reader output.CatalogReader,
	policy output.MissingPolicy,
	reporter output.Reporter,
	pairs []entities.ConflictPair,
) *Checker {
	return &Checker{
		reader:   reader,
		policy:   policy,
		reporter: reporter,
		pairs:    pairs,
		watched:  entities.Watched(pairs),
	}
}

// CheckFile reads the catalog at path and evaluates it. Parse failures are
// reported and yield a hard failure without further analysis.
func (c *Checker) CheckFile(path string) domain.Severity {
	entries, err := c.reader.Read(path)
	if err != nil {
		c.reporter.Problem(err)
		return domain.SeverityHard
	}
	return c.Evaluate(path, entries)
}

// Evaluate runs the completeness, extraction and conflict steps on entries.
func (c *Checker) Evaluate(path string, entries map[string]string) domain.Severity {
	if missing := c.watched.Missing(entries); len(missing) > 0 {
		c.reporter.Problem(&domain.MissingEntryError{IDs: missing})
		if !c.policy.IgnoreMissing() {
			return domain.SeverityHard
		}
		c.reporter.Trailer(path)
	}

	sev := domain.SeverityOK

	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	keys := make(map[string]string, len(entries))
	for _, id := range ids {
		text := entries[id]
		key, err := ExtractAccelerator(text)
		if err != nil {
			c.reporter.Problem(&domain.ExtractionError{ID: id, Text: text, Err: err})
			key = placeholderKey(id)
			sev = sev.Worse(domain.SeveritySoft)
		}
		keys[id] = key
	}

	for _, p := range c.pairs {
		first, ok := keys[p.First]
		if !ok {
			continue
		}
		second, ok := keys[p.Second]
		if !ok || first != second {
			continue
		}
		c.reporter.Problem(&domain.ConflictError{
			FirstID:    p.First,
			FirstText:  entries[p.First],
			SecondID:   p.Second,
			SecondText: entries[p.Second],
			Key:        second,
		})
		sev = sev.Worse(domain.SeveritySoft)
	}

	return sev
}
