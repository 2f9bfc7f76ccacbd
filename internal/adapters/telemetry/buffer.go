package telemetry

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

// Buffer is a channel-backed progrock writer whose read side satisfies
// the TUI's TapeSource. The decode recorder writes status updates into
// it from background goroutines; the Bubble Tea model drains it until
// Close reports EOF.
type Buffer struct {
	updates chan *progrock.StatusUpdate

	mu     sync.Mutex
	closed bool
}

// NewBuffer creates a Buffer holding up to size pending updates.
func NewBuffer(size int) *Buffer {
	return &Buffer{
		updates: make(chan *progrock.StatusUpdate, size),
	}
}

// WriteStatus implements progrock.Writer. Updates written after Close
// are dropped.
func (b *Buffer) WriteStatus(update *progrock.StatusUpdate) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	select {
	case b.updates <- update:
	default:
		// The reader lags behind; progress updates are advisory, so
		// dropping beats blocking a decode goroutine.
	}
	return nil
}

// Read implements tui.TapeSource. It blocks until the next update and
// returns io.EOF once the buffer is closed and drained.
func (b *Buffer) Read() (*progrock.StatusUpdate, error) {
	update, ok := <-b.updates
	if !ok {
		return nil, io.EOF
	}
	return update, nil
}

// Close ends the stream; pending updates remain readable.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	close(b.updates)
	return nil
}
