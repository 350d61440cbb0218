package tui

import "github.com/vito/progrock"

// MsgFeedUpdate wraps the raw update from the telemetry feed.
type MsgFeedUpdate struct {
	Update *progrock.StatusUpdate
}

// MsgFeedEnded is sent when the feed has been closed and drained.
type MsgFeedEnded struct{}
