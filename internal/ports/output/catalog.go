package output

// CatalogReader parses a catalog file into msgid -> msgstr, keeping only the
// msgids it was built to watch.
type CatalogReader interface {
	Read(path string) (map[string]string, error)
}

// MissingPolicy decides whether watched msgids may be absent from a catalog.
type MissingPolicy interface {
	IgnoreMissing() bool
}
