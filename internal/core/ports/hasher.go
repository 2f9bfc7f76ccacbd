package ports

import "github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"

// Hasher defines the interface for computing content fingerprints.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashFile computes the fingerprint of a file's raw bytes.
	HashFile(path string) (string, error)

	// HashHierarchy computes a deterministic fingerprint of a hierarchy's
	// content, independent of discovery order.
	HashHierarchy(h *domain.Hierarchy) string
}
