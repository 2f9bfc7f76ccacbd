// Package journal persists decode results across runs in a flat JSON file.
package journal

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/zerr"

	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
)

// Store implements ports.DecodeJournal using a flat JSON file keyed by
// absolute library path.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.DecodeInfo
}

// NewStore creates a new DecodeJournal backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.DecodeInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path comes from the settings file
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read decode journal")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal decode journal")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal decode journal")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for decode journal")
	}

	//nolint:gosec // Path comes from the settings file
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write decode journal")
	}

	return nil
}

// Get retrieves the journal entry for a given absolute library path.
// A miss returns nil, nil.
func (s *Store) Get(path string) (*domain.DecodeInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[path]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the decode info under its library path.
func (s *Store) Put(info domain.DecodeInfo) error {
	s.mu.Lock()
	s.cache[info.Path] = info
	s.mu.Unlock()

	return s.save()
}
