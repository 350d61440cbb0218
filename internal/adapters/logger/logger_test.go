package logger_test

import (
	"testing"

	"github.com/featvet/featvet/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logger.NewWithCore(core)

	l.Info("starting run")
	l.Warn("feature unknown")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "starting run", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "feature unknown", entries[1].Message)
}

func TestLogger_ErrorAttachesMetadata(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logger.NewWithCore(core)

	err := zerr.With(zerr.New("manifest unreadable"), "path", "Cargo.toml")
	l.Error(err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "Cargo.toml", entries[0].ContextMap()["path"])
}

func TestNew_BuildsStderrLogger(t *testing.T) {
	l, err := logger.New()
	require.NoError(t, err)
	require.NotNil(t, l)
}
