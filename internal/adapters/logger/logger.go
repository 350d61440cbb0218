// Package logger implements the logging adapter on zap.
package logger

import (
	"github.com/featvet/featvet/internal/core/ports"
	"go.trai.ch/zerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger implements ports.Logger using a zap console logger on stderr.
type Logger struct {
	zl *zap.Logger
}

// New creates a new Logger. Output goes to stderr so the progress
// display owns stdout.
func New() (*Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.DisableCaller = true
	config.DisableStacktrace = true

	zl, err := config.Build()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to initialize logger")
	}
	return &Logger{zl: zl}, nil
}

// NewWithCore creates a Logger on an explicit zap core. Tests use it to
// capture output.
func NewWithCore(core zapcore.Core) *Logger {
	return &Logger{zl: zap.New(core)}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.zl.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.zl.Warn(msg)
}

// Error logs an error. zerr metadata is attached as structured fields.
func (l *Logger) Error(err error) {
	if zErr, ok := err.(*zerr.Error); ok {
		fields := make([]zap.Field, 0, len(zErr.Metadata()))
		for key, value := range zErr.Metadata() {
			fields = append(fields, zap.Any(key, value))
		}
		l.zl.Error(err.Error(), fields...)
		return
	}
	l.zl.Error(err.Error())
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

var _ ports.Logger = (*Logger)(nil)
