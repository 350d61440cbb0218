// Package tui adapts the Bubble Tea progress view to the telemetry
// port.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/featvet/featvet/internal/adapters/telemetry"
	view "github.com/featvet/featvet/internal/tui"
)

// Renderer drives the interactive progress view. It records through an
// in-process feed consumed by the Bubble Tea model.
type Renderer struct {
	*telemetry.Recorder
	program *tea.Program
	errCh   chan error
	started bool
}

// NewRenderer creates a renderer for a run of total checks.
func NewRenderer(total int, opts ...tea.ProgramOption) *Renderer {
	feed := telemetry.NewFeed()
	model := view.NewModel(feed, total)

	return &Renderer{
		Recorder: telemetry.NewRecorder(feed),
		program:  tea.NewProgram(model, opts...),
		errCh:    make(chan error, 1),
	}
}

// Start launches the view in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	r.started = true
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Close ends the recording and waits for the view to drain the feed
// and exit.
func (r *Renderer) Close() error {
	err := r.Recorder.Close()
	if !r.started {
		return err
	}
	if waitErr := <-r.errCh; waitErr != nil && err == nil {
		err = waitErr
	}
	return err
}
