package ports

import (
	"context"
	"io"

	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry is the entry point for recording units of work (vertices),
// one per decode operation.
type Telemetry interface {
	// Record starts recording a new vertex and attaches it to the context.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the vertex's output stream.
	Stdout() io.Writer
	// Stderr returns a writer for the vertex's error stream.
	Stderr() io.Writer
	// Log records a log message associated with this vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, with err nil on success.
	Complete(err error)
	// Cached marks the vertex as served from cache.
	Cached()
}

// VertexConfig holds configuration for a starting vertex.
type VertexConfig struct {
	// Inputs are content digests feeding the vertex, shown by renderers
	// that track data flow.
	Inputs []string
}

// VertexOption is a functional option for configuring a vertex.
type VertexOption func(*VertexConfig)

// WithInputs attaches input digests to the vertex.
func WithInputs(inputs ...string) VertexOption {
	return func(cfg *VertexConfig) {
		cfg.Inputs = append(cfg.Inputs, inputs...)
	}
}

type vertexCtxKey struct{}

// ContextWithVertex returns a context carrying the given vertex.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexCtxKey{}, v)
}

// VertexFromContext returns the vertex attached to ctx, or nil.
func VertexFromContext(ctx context.Context) Vertex {
	v, _ := ctx.Value(vertexCtxKey{}).(Vertex)
	return v
}
