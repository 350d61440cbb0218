// Package tui provides the interactive terminal view of a vetting run.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

// UpdateSource is an interface for reading progrock updates. The
// telemetry feed implements it; tests can substitute their own source.
type UpdateSource interface {
	Read() (*progrock.StatusUpdate, error)
}

// WaitForUpdate returns a Bubble Tea command that reads the next update
// from the source. It returns MsgFeedUpdate on success and MsgFeedEnded
// once the source is exhausted.
func WaitForUpdate(src UpdateSource) tea.Cmd {
	return func() tea.Msg {
		update, err := src.Read()
		if err != nil {
			// io.EOF and read failures both end the stream.
			return MsgFeedEnded{}
		}
		return MsgFeedUpdate{Update: update}
	}
}
