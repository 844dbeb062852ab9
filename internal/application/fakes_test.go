package application

import (
	"lintaccel/internal/domain/entities"
)

type recordingReporter struct {
	problems  []error
	trailers  []string
	summaries []entities.Summary
}

func (r *recordingReporter) Problem(err error)            { r.problems = append(r.problems, err) }
func (r *recordingReporter) Trailer(path string)          { r.trailers = append(r.trailers, path) }
func (r *recordingReporter) Summary(sum entities.Summary) { r.summaries = append(r.summaries, sum) }

type stubPolicy struct {
	ignore bool
	calls  int
}

func (p *stubPolicy) IgnoreMissing() bool {
	p.calls++
	return p.ignore
}

type stubReader struct {
	entries map[string]string
	err     error
	paths   []string
}

func (r *stubReader) Read(path string) (map[string]string, error) {
	r.paths = append(r.paths, path)
	return r.entries, r.err
}
