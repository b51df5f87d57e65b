package ports

import (
	"context"
	"io"
)

// Telemetry records per-module build progress.
type Telemetry interface {
	// Record starts a new vertex for a unit of work and attaches it to the
	// returned context.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one unit of work being recorded.
type Vertex interface {
	// Stdout returns a writer capturing the standard output stream.
	Stdout() io.Writer
	// Stderr returns a writer capturing the error output stream.
	Stderr() io.Writer
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
	// Cached marks the vertex as skipped work.
	Cached()
}

type vertexKey struct{}

// ContextWithVertex returns a context carrying the vertex.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex attached to ctx, or nil.
func VertexFromContext(ctx context.Context) Vertex {
	if v, ok := ctx.Value(vertexKey{}).(Vertex); ok {
		return v
	}
	return nil
}
