package application

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"lintaccel/internal/domain"
)

// ExtractAccelerator returns the lower-cased key that follows the single
// underscore in text.
func ExtractAccelerator(text string) (string, error) {
	parts := strings.Split(text, "_")
	if len(parts) != 2 {
		return "", domain.ErrUnderscoreCount
	}
	if parts[1] == "" {
		return "", domain.ErrNoAccelerator
	}
	r, _ := utf8.DecodeRuneInString(parts[1])
	return string(unicode.ToLower(r)), nil
}

// placeholderKey never equals a one-character key and differs per msgid.
func placeholderKey(id string) string {
	return "_" + id
}
