package output

// T renders user-facing diagnostics.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data holds the template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}
