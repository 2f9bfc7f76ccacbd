// Package telemetry provides the no-op telemetry implementation and the
// tape buffer connecting decode telemetry to the progress TUI.
package telemetry

import (
	"context"
	"io"

	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record creates a new no-op vertex.
func (t *NoOp) Record(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error {
	return nil
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout discards all output.
func (v *NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr discards all output.
func (v *NoOpVertex) Stderr() io.Writer { return io.Discard }

// Log does nothing.
func (v *NoOpVertex) Log(_ domain.LogLevel, _ string) {}

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}
