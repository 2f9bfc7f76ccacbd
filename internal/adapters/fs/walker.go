// Package fs provides file system adapters for discovering and hashing
// layout files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"
)

// Walker discovers layout files under a directory tree.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkLayoutFiles yields all files under root whose extension is in exts
// (lowercase, with leading dot), skipping version-control and hidden
// directories. Paths start with root, as filepath.WalkDir yields them.
func (w *Walker) WalkLayoutFiles(root string, exts []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && shouldSkipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			ext := strings.ToLower(filepath.Ext(path))
			if !slices.Contains(exts, ext) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// shouldSkipDir reports whether a directory is skipped during the walk.
// Version-control metadata and hidden directories never hold libraries.
func shouldSkipDir(name string) bool {
	if name == ".git" || name == ".jj" {
		return true
	}
	return strings.HasPrefix(name, ".")
}
