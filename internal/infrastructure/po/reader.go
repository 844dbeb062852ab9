// Package po reads the small subset of the gettext PO format needed to pair
// single-line msgid entries with their single-line msgstr.
package po

import (
	"bufio"
	"strings"
	"unicode"

	"github.com/spf13/afero"

	"lintaccel/internal/domain"
	"lintaccel/internal/domain/entities"
	"lintaccel/internal/ports/output"
)

const (
	idMarker   = "msgid"
	textMarker = "msgstr"

	maxLineSize = 1024 * 1024
)

var _ output.CatalogReader = (*Reader)(nil)

type state int

const (
	stateIdle state = iota
	stateAwaitingText
)

// Reader parses catalogs from fs, keeping only watched msgids.
type Reader struct {
	fs      afero.Fs
	watched entities.IDSet
}

func NewReader(fs afero.Fs, watched entities.IDSet) *Reader {
	return &Reader{fs: fs, watched: watched}
}

// Read returns msgid -> msgstr for the watched msgids defined in path.
// Lines other than msgid/msgstr are skipped, and a msgid that is not
// directly followed by its msgstr is abandoned.
func (r *Reader) Read(path string) (map[string]string, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, &domain.ResourceError{Path: path, Kind: domain.ErrCatalogReadable, Err: err}
	}
	defer f.Close()

	var (
		st      = stateIdle
		pending string
		entries = make(map[string]string)
		lineNo  int
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)

		switch {
		case strings.HasPrefix(line, idMarker):
			if st == stateAwaitingText {
				return nil, &domain.ParseError{Path: path, Line: lineNo, Err: domain.ErrDuplicateID}
			}
			id, ok := quoted(line, idMarker)
			if !ok {
				return nil, &domain.ParseError{Path: path, Line: lineNo, Err: domain.ErrMalformedID}
			}
			st, pending = stateAwaitingText, id

		case strings.HasPrefix(line, textMarker):
			if st == stateAwaitingText && r.watched.Contains(pending) {
				text, ok := quoted(line, textMarker)
				if !ok {
					return nil, &domain.ParseError{Path: path, Line: lineNo, ID: pending, Err: domain.ErrMalformedText}
				}
				if old, dup := entries[pending]; dup {
					return nil, &domain.ParseError{
						Path: path,
						Line: lineNo,
						ID:   pending,
						Old:  old,
						New:  text,
						Err:  domain.ErrRedefinition,
					}
				}
				entries[pending] = text
			}
			st, pending = stateIdle, ""

		default:
			st, pending = stateIdle, ""
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &domain.ResourceError{Path: path, Kind: domain.ErrCatalogReadable, Err: err}
	}
	return entries, nil
}

// quoted extracts content from a line shaped exactly `marker "content"`.
func quoted(line, marker string) (string, bool) {
	prefix := marker + ` "`
	if !strings.HasPrefix(line, prefix) || len(line) <= len(prefix) || !strings.HasSuffix(line, `"`) {
		return "", false
	}
	return line[len(prefix) : len(line)-1], true
}
