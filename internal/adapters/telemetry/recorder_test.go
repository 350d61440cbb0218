package telemetry_test

import (
	"errors"
	"io"
	"testing"

	"github.com/featvet/featvet/internal/adapters/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecorder(t *testing.T) {
	recorder := telemetry.NewRecorder(telemetry.NewFeed())
	assert.NotNil(t, recorder)
}

func TestRecorder_Lifecycle(t *testing.T) {
	feed := telemetry.NewFeed()
	recorder := telemetry.NewRecorder(feed)

	vertex := recorder.Record("serde zlib")
	_, err := io.WriteString(vertex.Stderr(), "error[E0432]: unresolved import\n")
	require.NoError(t, err)
	vertex.Complete(errors.New("exit status 101"))

	require.NoError(t, recorder.Close())

	var sawStarted, sawCompleted bool
	for {
		update, err := feed.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)

		for _, v := range update.Vertexes {
			if v.Name != "serde zlib" {
				continue
			}
			if v.Started != nil {
				sawStarted = true
			}
			if v.Completed != nil {
				sawCompleted = true
				require.NotNil(t, v.Error)
				assert.Equal(t, "exit status 101", *v.Error)
			}
		}
	}

	assert.True(t, sawStarted, "expected a started vertex update")
	assert.True(t, sawCompleted, "expected a completed vertex update")
}
