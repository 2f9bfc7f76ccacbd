package ports

import "github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"

// HierarchyReader defines the interface for decoding a layout file into a
// cell hierarchy.
//
//go:generate mockgen -source=reader.go -destination=mocks/mock_reader.go -package=mocks
type HierarchyReader interface {
	// ReadHierarchy parses the file at path and returns the finalized
	// hierarchy. A failed parse returns a nil hierarchy; partially decoded
	// content is never exposed.
	ReadHierarchy(path string) (*domain.Hierarchy, error)
}
