package telemetry_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/featvet/featvet/internal/adapters/telemetry"
	"github.com/featvet/featvet/internal/ui/output"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinear_RendersCompletionLines(t *testing.T) {
	var buf bytes.Buffer
	out := output.NewWithProfile(&buf, func() termenv.Profile { return termenv.Ascii })

	linear := telemetry.NewLinear(out, 2)
	recorder := telemetry.NewRecorder(linear)

	pass := recorder.Record("serde")
	pass.Complete(nil)

	fail := recorder.Record("zlib rayon")
	fail.Complete(errors.New("exit status 101"))

	require.NoError(t, recorder.Close())

	rendered := buf.String()
	assert.Contains(t, rendered, "[serde] ✓ passed in")
	assert.Contains(t, rendered, "(1/2)")
	assert.Contains(t, rendered, "[zlib rayon] ✗ failed after")
	assert.Contains(t, rendered, "(2/2)")
}

func TestLinear_IgnoresRepeatedCompletions(t *testing.T) {
	var buf bytes.Buffer
	out := output.NewWithProfile(&buf, func() termenv.Profile { return termenv.Ascii })

	linear := telemetry.NewLinear(out, 1)
	recorder := telemetry.NewRecorder(linear)

	vertex := recorder.Record("serde")
	vertex.Complete(nil)
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("[serde]")))
}
