package telemetry

import (
	"io"

	"github.com/vito/progrock"
)

// vertex adapts a progrock vertex recorder to ports.Vertex.
type vertex struct {
	vertex *progrock.VertexRecorder
}

// Stderr returns the writer for diagnostic output of the check.
func (v *vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Complete marks the vertex done, recording err as its failure cause.
func (v *vertex) Complete(err error) {
	v.vertex.Done(err)
}
