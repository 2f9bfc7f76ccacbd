package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes content fingerprints for library files and decoded
// hierarchies using XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile computes the XXHash of a file's content.
func (h *Hasher) HashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// HashHierarchy computes a deterministic fingerprint of a hierarchy:
// every cell in sorted order followed by its ordered child list, with
// NUL separators between names and sections. Two decodes of the same
// file always produce the same fingerprint.
func (h *Hasher) HashHierarchy(model *domain.Hierarchy) string {
	hasher := xxhash.New()

	for name := range model.Cells() {
		_, _ = hasher.WriteString(name.String())
		_, _ = hasher.Write([]byte{0}) // Separator
		for _, child := range model.Children(name) {
			_, _ = hasher.WriteString(child.String())
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0}) // Section separator
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
