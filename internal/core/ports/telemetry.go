package ports

import (
	"context"
	"io"
)

// Telemetry receives live progress events from the execution engine.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Start prepares the sink before the first vertex is recorded.
	Start(ctx context.Context) error
	// Record registers a new unit of work under the given display name.
	Record(name string) Vertex
	// Close flushes and tears the sink down. No Record calls may follow.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Stderr returns the writer receiving the unit's diagnostic stream.
	Stderr() io.Writer
	// Complete marks the unit finished. A nil error means success.
	Complete(err error)
}
