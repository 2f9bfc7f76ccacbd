// Package loader coordinates background decoding of layout libraries.
package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

// Coordinator caches decoded libraries by absolute path and guarantees
// at most one decode is ever in flight per path. Decodes run to
// completion on background goroutines; nothing cancels or evicts them.
type Coordinator struct {
	readers   map[domain.Format]ports.HierarchyReader
	overrides map[string]string
	log       ports.Logger
	telemetry ports.Telemetry

	mu      sync.RWMutex
	entries map[string]*Entry
}

// New creates a coordinator decoding through the given per-format
// readers. overrides maps additional file extensions to format names,
// as configured in the settings file.
func New(
	readers map[domain.Format]ports.HierarchyReader,
	overrides map[string]string,
	log ports.Logger,
	telemetry ports.Telemetry,
) *Coordinator {
	return &Coordinator{
		readers:   readers,
		overrides: overrides,
		log:       log,
		telemetry: telemetry,
		entries:   make(map[string]*Entry),
	}
}

// EnsureLoaded returns the cache entry for path, creating an idle one
// the first time the path is seen. It never starts a load; callers pair
// it with LoadAsync or use Load.
func (c *Coordinator) EnsureLoaded(path string) (*Entry, error) {
	lib, err := domain.NewLibrary(path, c.overrides)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[lib.Path]; ok {
		return e, nil
	}
	e := newEntry(lib)
	c.entries[lib.Path] = e
	return e, nil
}

// LoadAsync starts a background decode for entry unless one already ran
// or is in flight, in which case it does nothing. onComplete, when not
// nil, is invoked from the decoding goroutine after the entry reached
// its final state; senders that need thread affinity must hop
// themselves.
func (c *Coordinator) LoadAsync(entry *Entry, onComplete func(*Entry)) {
	if !entry.tryBeginLoad() {
		return
	}
	go c.runLoad(entry, onComplete)
}

// Load decodes path and waits for the result. The decode itself is
// never cancelled; ctx only bounds the wait. A decode failure does not
// return an error here, it is recorded on the entry.
func (c *Coordinator) Load(ctx context.Context, path string) (*Entry, error) {
	entry, err := c.EnsureLoaded(path)
	if err != nil {
		return nil, err
	}
	c.LoadAsync(entry, nil)

	select {
	case <-entry.Done():
		return entry, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// LoadAll decodes every path with at most parallel decodes in flight.
// Entries are returned in input order. parallel values below one mean
// one decode per CPU.
func (c *Coordinator) LoadAll(ctx context.Context, paths []string, parallel int) ([]*Entry, error) {
	if parallel < 1 {
		parallel = runtime.NumCPU()
	}

	entries := make([]*Entry, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, path := range paths {
		g.Go(func() error {
			entry, err := c.Load(ctx, path)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Entries returns a snapshot of all cache entries sorted by path.
func (c *Coordinator) Entries() []*Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := make([]*Entry, 0, len(c.entries))
	for _, e := range c.entries {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b *Entry) int {
		return strings.Compare(a.lib.Path, b.lib.Path)
	})
	return entries
}

// runLoad performs one decode to completion and settles the entry.
func (c *Coordinator) runLoad(entry *Entry, onComplete func(*Entry)) {
	defer func() {
		if onComplete != nil {
			onComplete(entry)
		}
	}()

	_, vtx := c.telemetry.Record(context.Background(), "decode "+filepath.Base(entry.Path()))

	started := time.Now()
	model, info, err := c.decode(entry.Library(), started)
	if err != nil {
		vtx.Complete(err)
		c.log.Error(err)
		entry.finish(nil, nil, flattenError(err))
		return
	}

	// Write the summary before completing the vertex; renderers may
	// finalize a vertex on completion and drop later output.
	fmt.Fprintf(vtx.Stdout(), "%d cells, %d tops, %d placements in %s\n",
		info.CellCount, info.TopCellCount, info.EdgeCount, info.Duration.Round(time.Millisecond))
	vtx.Complete(nil)
	entry.finish(model, info, nil)
}

func (c *Coordinator) decode(lib domain.Library, started time.Time) (*domain.Hierarchy, *domain.DecodeInfo, error) {
	reader, ok := c.readers[lib.Format]
	if !ok {
		return nil, nil, zerr.With(domain.ErrUnknownFormat, "path", lib.Path)
	}

	model, err := reader.ReadHierarchy(lib.Path)
	if err != nil {
		return nil, nil, err
	}

	info := &domain.DecodeInfo{
		Path:         lib.Path,
		Format:       lib.Format,
		CellCount:    model.Len(),
		TopCellCount: len(model.TopCells()),
		EdgeCount:    model.EdgeCount(),
		Duration:     time.Since(started),
		Timestamp:    started,
	}
	return model, info, nil
}

// flattenError renders an error chain as one message per layer,
// outermost first, without repeating the suffix each wrapper appends.
func flattenError(err error) []string {
	var msgs []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		msg := e.Error()
		if inner := errors.Unwrap(e); inner != nil {
			msg = strings.TrimSuffix(msg, ": "+inner.Error())
		}
		if msg != "" && (len(msgs) == 0 || msgs[len(msgs)-1] != msg) {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
