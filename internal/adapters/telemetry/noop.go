// Package telemetry provides a no-op implementation of the telemetry ports,
// used in tests and when progress rendering is disabled.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/mason/internal/core/ports"
)

// NoopRecorder is a no-op implementation of ports.Telemetry.
type NoopRecorder struct{}

// NewNoopRecorder creates a new NoopRecorder.
func NewNoopRecorder() *NoopRecorder {
	return &NoopRecorder{}
}

// Record returns a vertex that discards everything.
func (r *NoopRecorder) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &NoopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (r *NoopRecorder) Close() error {
	return nil
}

// NoopVertex is a no-op implementation of ports.Vertex.
type NoopVertex struct{}

// Stdout discards output.
func (v *NoopVertex) Stdout() io.Writer {
	return io.Discard
}

// Stderr discards output.
func (v *NoopVertex) Stderr() io.Writer {
	return io.Discard
}

// Complete does nothing.
func (v *NoopVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoopVertex) Cached() {}
