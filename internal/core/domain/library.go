package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// Library describes one layout file to be read: its absolute path and the
// detected format. The path doubles as the cache key of the load
// coordinator, so it is always absolutized on construction.
type Library struct {
	Path   string
	Format Format
}

// NewLibrary builds a Library for the given path, absolutizing it and
// detecting the format from the extension (with optional overrides from
// the settings file).
func NewLibrary(path string, overrides map[string]string) (Library, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Library{}, zerr.With(zerr.Wrap(err, "failed to resolve library path"), "path", path)
	}
	return Library{
		Path:   abs,
		Format: FormatForPath(abs, overrides),
	}, nil
}
