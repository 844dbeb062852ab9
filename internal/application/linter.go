package application

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"lintaccel/internal/domain"
	"lintaccel/internal/domain/entities"
	"lintaccel/internal/ports/input"
	"lintaccel/internal/ports/output"
)

var _ input.LintUseCase = (*Linter)(nil)

// Linter walks the language manifest and checks the catalog of every listed
// language.
type Linter struct {
	fs       afero.Fs
	checker  input.CatalogChecker
	reporter output.Reporter
	logger   *zap.Logger
	dir      string
	manifest string
}

func NewLinter(
	fs afero.Fs,
	checker input.CatalogChecker,
	reporter output.Reporter,
	logger *zap.Logger,
	dir, manifest string,
) *Linter {
	return &Linter{
		fs:       fs,
		checker:  checker,
		reporter: reporter,
		logger:   logger,
		dir:      dir,
		manifest: manifest,
	}
}

// Run checks every catalog and returns the worst outcome. A failing catalog
// never stops the run.
func (l *Linter) Run() domain.Severity {
	manifestPath := filepath.Join(l.dir, l.manifest)
	langs, err := l.readManifest(manifestPath)
	if err != nil {
		l.reporter.Problem(&domain.ResourceError{Path: manifestPath, Kind: domain.ErrManifestReadable, Err: err})
		return domain.SeverityHard
	}
	l.logger.Debug("manifest loaded", zap.String("path", manifestPath), zap.Int("languages", len(langs)))

	worst := domain.SeverityOK
	var sum entities.Summary
	for _, lang := range langs {
		sev := l.checkLanguage(lang)
		sum.Record(sev)
		worst = worst.Worse(sev)
	}
	l.reporter.Summary(sum)
	return worst
}

func (l *Linter) checkLanguage(lang string) domain.Severity {
	if _, err := language.Parse(lang); err != nil {
		l.logger.Warn("language code is not a valid BCP 47 tag", zap.String("lang", lang), zap.Error(err))
	}

	path := filepath.Join(l.dir, lang+".po")
	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		l.reporter.Problem(&domain.ResourceError{Path: path, Kind: domain.ErrCatalogReadable, Err: err})
		return domain.SeverityHard
	}
	if !exists {
		l.reporter.Problem(&domain.ResourceError{Path: path, Kind: domain.ErrCatalogNotFound})
		return domain.SeverityHard
	}

	l.logger.Debug("checking catalog", zap.String("lang", lang), zap.String("path", path))
	sev := l.checker.CheckFile(path)
	if sev > domain.SeverityOK {
		l.reporter.Trailer(path)
	}
	l.logger.Debug("catalog checked", zap.String("lang", lang), zap.Stringer("severity", sev))
	return sev
}

// readManifest returns the trimmed language codes of the manifest, skipping
// blank lines and # comments.
func (l *Linter) readManifest(path string) ([]string, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, err
	}
	var langs []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lang := strings.TrimSpace(scanner.Text())
		if lang == "" || strings.HasPrefix(lang, "#") {
			continue
		}
		langs = append(langs, lang)
	}
	return langs, scanner.Err()
}
