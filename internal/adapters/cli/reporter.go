package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"lintaccel/internal/domain"
	"lintaccel/internal/domain/entities"
	"lintaccel/internal/ports/output"
)

var _ output.Reporter = (*Reporter)(nil)

// Reporter writes one localized line per diagnostic to w.
type Reporter struct {
	w          io.Writer
	translator output.T
	locale     string
}

func NewReporter(w io.Writer, translator output.T, locale string) *Reporter {
	return &Reporter{w: w, translator: translator, locale: locale}
}

func (r *Reporter) Problem(err error) {
	key := domain.Code(err)
	if key == "" {
		key = "error.unknown"
	}
	r.println(r.translator.T(r.locale, key, templateData(err)))
}

func (r *Reporter) Trailer(path string) {
	r.println(r.translator.T(r.locale, "catalog.trailer", map[string]any{"Path": path}))
}

func (r *Reporter) Summary(sum entities.Summary) {
	r.println(r.translator.T(r.locale, "run.summary", map[string]any{
		"Total": sum.Total(),
		"OK":    sum.OK,
		"Soft":  sum.Soft,
		"Hard":  sum.Hard,
	}))
}

func (r *Reporter) println(line string) {
	_, _ = fmt.Fprintln(r.w, line)
}

// templateData exposes the fields of a domain error to message templates.
func templateData(err error) map[string]any {
	var (
		parseErr    *domain.ParseError
		missingErr  *domain.MissingEntryError
		extractErr  *domain.ExtractionError
		conflictErr *domain.ConflictError
		toggleErr   *domain.ToggleError
		resourceErr *domain.ResourceError
	)
	switch {
	case errors.As(err, &parseErr):
		return map[string]any{
			"Path": parseErr.Path,
			"Line": parseErr.Line,
			"ID":   parseErr.ID,
			"Old":  parseErr.Old,
			"New":  parseErr.New,
		}
	case errors.As(err, &missingErr):
		return map[string]any{"IDs": strings.Join(missingErr.IDs, ", ")}
	case errors.As(err, &extractErr):
		return map[string]any{"ID": extractErr.ID, "Text": extractErr.Text}
	case errors.As(err, &conflictErr):
		return map[string]any{
			"FirstID":    conflictErr.FirstID,
			"FirstText":  conflictErr.FirstText,
			"SecondID":   conflictErr.SecondID,
			"SecondText": conflictErr.SecondText,
			"Key":        conflictErr.Key,
		}
	case errors.As(err, &toggleErr):
		return map[string]any{"Var": toggleErr.Var, "Value": toggleErr.Value}
	case errors.As(err, &resourceErr):
		data := map[string]any{"Path": resourceErr.Path, "Error": ""}
		if resourceErr.Err != nil {
			data["Error"] = resourceErr.Err.Error()
		}
		return data
	}
	if err == nil {
		return nil
	}
	return map[string]any{"Error": err.Error()}
}
