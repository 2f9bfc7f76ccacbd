// Package app implements the application layer for lmhier.
package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/gds" //nolint:depguard // The create stub has no port; gds is the only writer
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/ports"
	"github.com/IHP-GmbH/LibMan-sub000/internal/engine/loader"
)

// App ties the load coordinator, the decode journal and the supporting
// adapters together for the CLI.
type App struct {
	coordinator *loader.Coordinator
	journal     ports.DecodeJournal
	hasher      ports.Hasher
	walker      ports.Walker
	logger      ports.Logger
	settings    *domain.Settings
}

// New creates a new App instance.
func New(
	coordinator *loader.Coordinator,
	journal ports.DecodeJournal,
	hasher ports.Hasher,
	walker ports.Walker,
	logger ports.Logger,
	settings *domain.Settings,
) *App {
	return &App{
		coordinator: coordinator,
		journal:     journal,
		hasher:      hasher,
		walker:      walker,
		logger:      logger,
		settings:    settings,
	}
}

// Hierarchy loads the library at path and returns its cell hierarchy,
// waiting for the decode to finish. Successful decodes are journaled;
// journal failures are logged, never fatal.
func (a *App) Hierarchy(ctx context.Context, path string) (*domain.Hierarchy, error) {
	entry, err := a.load(ctx, path)
	if err != nil {
		return nil, err
	}
	a.journalEntry(entry)
	return entry.Model(), nil
}

// LoadAll decodes every given path, walking directories for layout
// files. parallel values below one fall back to the configured
// parallelism. Failed decodes are reported on their entries, not as an
// error here.
func (a *App) LoadAll(ctx context.Context, paths []string, parallel int) ([]*loader.Entry, error) {
	files, err := a.expand(paths)
	if err != nil {
		return nil, err
	}
	if parallel < 1 {
		parallel = a.settings.Parallelism
	}

	entries, err := a.coordinator.LoadAll(ctx, files, parallel)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		a.journalEntry(entry)
	}
	return entries, nil
}

// Stats loads path and returns the resulting decode info together with
// the journal entry of the previous run, nil when the library was never
// decoded before.
func (a *App) Stats(ctx context.Context, path string) (current, previous *domain.DecodeInfo, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to resolve library path"), "path", path)
	}

	// Read the journal before the load refreshes it.
	previous, err = a.journal.Get(abs)
	if err != nil {
		return nil, nil, err
	}

	entry, err := a.load(ctx, abs)
	if err != nil {
		return nil, nil, err
	}
	return a.journalEntry(entry), previous, nil
}

// CreateLibrary writes a minimal empty GDSII library containing one cell.
// It refuses to overwrite an existing file.
func (a *App) CreateLibrary(path, libName, cellName string) error {
	if _, err := os.Stat(path); err == nil {
		return zerr.With(zerr.New("file already exists"), "path", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to stat target"), "path", path)
	}
	return gds.WriteEmptyLibrary(path, libName, cellName)
}

// load runs one decode to completion and converts a failed entry into
// an error carrying the entry's messages.
func (a *App) load(ctx context.Context, path string) (*loader.Entry, error) {
	entry, err := a.coordinator.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	if entry.Failed() {
		return nil, zerr.With(domain.ErrDecodeFailed,
			"path", entry.Path(),
			"errors", strings.Join(entry.Errors(), "; "))
	}
	return entry, nil
}

// journalEntry enriches a successful entry's decode info with content
// fingerprints and persists it. Returns the enriched info, or nil for
// entries without one.
func (a *App) journalEntry(entry *loader.Entry) *domain.DecodeInfo {
	base := entry.Info()
	if base == nil || entry.Model() == nil {
		return nil
	}

	info := *base
	fileHash, err := a.hasher.HashFile(entry.Path())
	if err != nil {
		a.logger.Error(err)
	} else {
		info.FileHash = fileHash
	}
	info.ModelHash = a.hasher.HashHierarchy(entry.Model())

	if err := a.journal.Put(info); err != nil {
		a.logger.Error(err)
	}
	return &info
}

// expand resolves the given paths into layout files, walking directories
// with the configured extensions.
func (a *App) expand(paths []string) ([]string, error) {
	exts := domain.LayoutExtensions(a.settings.FormatOverrides)

	var files []string
	for _, path := range paths {
		stat, err := os.Stat(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
		}
		if !stat.IsDir() {
			files = append(files, path)
			continue
		}
		for file := range a.walker.WalkLayoutFiles(path, exts) {
			files = append(files, file)
		}
	}
	if len(files) == 0 {
		return nil, domain.ErrNoLibrariesFound
	}
	return files, nil
}
