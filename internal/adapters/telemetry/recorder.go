// Package telemetry records check lifecycle events through progrock so
// they can be rendered live or replayed by any attached consumer.
package telemetry

import (
	"context"

	"github.com/featvet/featvet/internal/core/ports"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

// Recorder publishes per-combination vertices to a progrock writer.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// NewRecorder wraps the given progrock writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start implements ports.Telemetry. The recorder needs no warm-up.
func (r *Recorder) Start(_ context.Context) error {
	return nil
}

// Record implements ports.Telemetry.
func (r *Recorder) Record(name string) ports.Vertex {
	d := digest.FromString(name)
	return &vertex{vertex: r.rec.Vertex(d, name)}
}

// Close flushes and closes the underlying writer.
func (r *Recorder) Close() error {
	if closer, ok := r.w.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
