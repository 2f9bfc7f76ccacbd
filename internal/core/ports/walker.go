package ports

import "iter"

// Walker defines the interface for discovering layout files on disk.
//
//go:generate mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type Walker interface {
	// WalkLayoutFiles yields the files under root whose extension is in
	// exts (lowercase, with leading dot).
	WalkLayoutFiles(root string, exts []string) iter.Seq[string]
}
