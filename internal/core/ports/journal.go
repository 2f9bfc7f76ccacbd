package ports

import "github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"

// DecodeJournal defines the interface for persisting decode results across
// runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks
type DecodeJournal interface {
	// Get retrieves the journal entry for a given absolute file path.
	// Returns nil, nil if not found.
	Get(path string) (*domain.DecodeInfo, error)

	// Put stores the decode info.
	Put(info domain.DecodeInfo) error
}
