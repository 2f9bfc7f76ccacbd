package loader

import (
	"slices"
	"sync"

	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
)

// Entry is one cache slot of the coordinator, keyed by absolute path.
// An entry moves from idle to loading to loaded exactly once; a failed
// decode also ends in loaded, carrying error messages instead of a
// model, so nothing ever retries implicitly.
type Entry struct {
	lib  domain.Library
	done chan struct{}

	mu      sync.RWMutex
	loading bool
	loaded  bool
	model   *domain.Hierarchy
	info    *domain.DecodeInfo
	errs    []string
}

func newEntry(lib domain.Library) *Entry {
	return &Entry{
		lib:  lib,
		done: make(chan struct{}),
	}
}

// Library returns the descriptor of the file this entry decodes.
func (e *Entry) Library() domain.Library {
	return e.lib
}

// Path returns the absolute path of the library file.
func (e *Entry) Path() string {
	return e.lib.Path
}

// Loading reports whether a decode is currently in flight.
func (e *Entry) Loading() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loading
}

// Loaded reports whether the decode completed, successfully or not.
func (e *Entry) Loaded() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loaded
}

// Failed reports whether the decode completed with errors.
func (e *Entry) Failed() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loaded && len(e.errs) > 0
}

// Model returns the decoded hierarchy. It is nil while the entry is not
// loaded and stays nil when the load failed.
func (e *Entry) Model() *domain.Hierarchy {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.model
}

// Info returns the decode statistics of a successful load, or nil.
func (e *Entry) Info() *domain.DecodeInfo {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.info
}

// Errors returns the messages of a failed load, outermost first.
func (e *Entry) Errors() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.errs)
}

// Done returns a channel that is closed once the load attempt for this
// entry has completed.
func (e *Entry) Done() <-chan struct{} {
	return e.done
}

// tryBeginLoad attempts the idle to loading transition. It reports
// false when another caller already started or finished a load.
func (e *Entry) tryBeginLoad() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.loading || e.loaded {
		return false
	}
	e.loading = true
	e.errs = nil
	return true
}

// finish records the outcome, latches the loaded state and wakes every
// waiter. Only the goroutine that won tryBeginLoad may call it, once.
func (e *Entry) finish(model *domain.Hierarchy, info *domain.DecodeInfo, errs []string) {
	e.mu.Lock()
	e.model = model
	e.info = info
	e.errs = errs
	e.loading = false
	e.loaded = true
	e.mu.Unlock()

	close(e.done)
}
