package telemetry

import (
	"context"
	"io"

	"github.com/featvet/featvet/internal/core/ports"
)

// Noop discards every event. Used when no progress output is wanted.
type Noop struct{}

// NewNoop returns a telemetry sink that records nothing.
func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) Start(_ context.Context) error { return nil }

func (*Noop) Record(_ string) ports.Vertex { return noopVertex{} }

func (*Noop) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Stderr() io.Writer { return io.Discard }

func (noopVertex) Complete(_ error) {}
