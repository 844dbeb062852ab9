package application_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lintaccel/internal/adapters/cli"
	"lintaccel/internal/application"
	"lintaccel/internal/domain"
	"lintaccel/internal/domain/entities"
	"lintaccel/internal/infrastructure/env"
	"lintaccel/internal/infrastructure/i18n"
	"lintaccel/internal/infrastructure/po"
)

const header = `# German translation.
msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"
`

func poFile(pairs ...string) string {
	var b strings.Builder
	b.WriteString(header)
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString("\n#: src/dialog.c:12\n")
		b.WriteString(`msgid "` + pairs[i] + "\"\n")
		b.WriteString(`msgstr "` + pairs[i+1] + "\"\n")
	}
	return b.String()
}

var (
	okCatalog = poFile(
		"_OK", "_OK",
		"_Cancel", "_Abbrechen",
		"_Accept", "A_nnehmen",
		"_Yes", "_Ja",
		"_No", "_Nein",
		"_Help", "_Hilfe",
	)
	softCatalog = poFile(
		"_OK", "O_K",
		"_Cancel", "Cancel",
		"_Accept", "_Accept",
		"_Yes", "_Yes",
		"_No", "_yo",
	)
	missingAcceptCatalog = poFile(
		"_OK", "_OK",
		"_Cancel", "_Cancel",
		"_Yes", "_Yes",
		"_No", "_No",
	)
)

type harness struct {
	fs  afero.Fs
	out *bytes.Buffer
	env map[string]string
}

func newHarness(t *testing.T, files map[string]string) *harness {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("po", 0o755))
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, "po/"+name, []byte(content), 0o644))
	}
	return &harness{fs: fs, out: &bytes.Buffer{}, env: map[string]string{}}
}

func (h *harness) lookup(key string) (string, bool) {
	v, ok := h.env[key]
	return v, ok
}

func (h *harness) run() domain.Severity {
	logger := zap.NewNop()
	translator := i18n.NewTranslator("en", logger)
	reporter := cli.NewReporter(h.out, translator, "en")
	policy := env.NewMissingPolicy(h.lookup, reporter)
	reader := po.NewReader(h.fs, entities.Watched(entities.ConflictPairs))
	checker := application.NewChecker(reader, policy, reporter, entities.ConflictPairs)
	linter := application.NewLinter(h.fs, checker, reporter, logger, "po", "LINGUAS")
	return linter.Run()
}

func TestLinter_AllCatalogsOK(t *testing.T) {
	h := newHarness(t, map[string]string{
		"LINGUAS": "de\nfr\n",
		"de.po":   okCatalog,
		"fr.po":   okCatalog,
	})

	sev := h.run()

	assert.Equal(t, domain.SeverityOK, sev)
	assert.Equal(t, "Checked 2 PO-files: 2 ok, 0 with problems, 0 failed\n", h.out.String())
}

func TestLinter_WorstSeverityWinsAndEveryCatalogIsChecked(t *testing.T) {
	h := newHarness(t, map[string]string{
		"LINGUAS": "de\nes\nfr\n",
		"de.po":   okCatalog,
		"es.po":   softCatalog,
		"fr.po":   missingAcceptCatalog,
	})

	sev := h.run()

	assert.Equal(t, domain.SeverityHard, sev)
	assert.Equal(t, 2, sev.ExitCode())
	assert.Equal(t, strings.Join([]string{
		`msgstr "Cancel" should have exactly one underscore`,
		`    for msgid _Cancel`,
		`Conflicting accels: "_Yes" (_Yes) and "_yo" (_No) both use the key "y", and will appear in the same dialog.`,
		`        in PO-file po/es.po`,
		`Missing translations for _Accept`,
		`        in PO-file po/fr.po`,
		`Checked 3 PO-files: 1 ok, 1 with problems, 1 failed`,
		``,
	}, "\n"), h.out.String())
}

func TestLinter_MissingEntriesTolerated(t *testing.T) {
	h := newHarness(t, map[string]string{
		"LINGUAS": "fr\n",
		"fr.po":   missingAcceptCatalog,
	})
	h.env[env.IgnoreMissingVar] = "y"

	sev := h.run()

	assert.Equal(t, domain.SeverityOK, sev)
	assert.Equal(t, strings.Join([]string{
		`Missing translations for _Accept`,
		`        in PO-file po/fr.po`,
		`Checked 1 PO-files: 1 ok, 0 with problems, 0 failed`,
		``,
	}, "\n"), h.out.String())
}

func TestLinter_AmbiguousToggleWarnsOnce(t *testing.T) {
	h := newHarness(t, map[string]string{
		"LINGUAS": "de\nes\nfr\n",
		"de.po":   missingAcceptCatalog,
		"es.po":   missingAcceptCatalog,
		"fr.po":   missingAcceptCatalog,
	})
	h.env[env.IgnoreMissingVar] = "maybe"

	sev := h.run()

	assert.Equal(t, domain.SeverityHard, sev)
	out := h.out.String()
	assert.Equal(t, 1, strings.Count(out, "[WARNING: ambiguous environment variable LINTACCEL_IGNORE_MISSING"))
	assert.Equal(t, 3, strings.Count(out, "Missing translations for _Accept"))
	assert.Contains(t, out, "Checked 3 PO-files: 0 ok, 0 with problems, 3 failed")
}

func TestLinter_AbsentCatalogIsHardAndRunContinues(t *testing.T) {
	h := newHarness(t, map[string]string{
		"LINGUAS": "  pt_BR  \n\n# disabled: it\nde\n",
		"de.po":   okCatalog,
	})

	sev := h.run()

	assert.Equal(t, domain.SeverityHard, sev)
	assert.Equal(t, strings.Join([]string{
		`PO-file po/pt_BR.po does not exist`,
		`Checked 2 PO-files: 1 ok, 0 with problems, 1 failed`,
		``,
	}, "\n"), h.out.String())
}

func TestLinter_ParseErrorIsReportedWithLine(t *testing.T) {
	h := newHarness(t, map[string]string{
		"LINGUAS": "de\n",
		"de.po":   "msgid \"_OK\"\nmsgid \"_OK\"\nmsgstr \"_OK\"\n",
	})

	sev := h.run()

	assert.Equal(t, domain.SeverityHard, sev)
	assert.Equal(t, strings.Join([]string{
		`Duplicate msgid around line 2`,
		`        in PO-file po/de.po`,
		`Checked 1 PO-files: 0 ok, 0 with problems, 1 failed`,
		``,
	}, "\n"), h.out.String())
}

func TestLinter_UnreadableManifest(t *testing.T) {
	h := newHarness(t, map[string]string{})

	sev := h.run()

	assert.Equal(t, domain.SeverityHard, sev)
	assert.True(t, strings.HasPrefix(h.out.String(), "Could not read language list po/LINGUAS: "))
	assert.NotContains(t, h.out.String(), "Checked")
}
