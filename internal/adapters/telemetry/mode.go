package telemetry

import (
	"os"

	"golang.org/x/term"
)

// Mode selects how progress is rendered while checks run.
type Mode int

const (
	// ModeTUI renders an interactive full-screen progress view.
	ModeTUI Mode = iota
	// ModeLinear prints one line per completed check.
	ModeLinear
	// ModeSilent records nothing.
	ModeSilent
)

// Detect picks the mode from the environment: interactive when stdout
// is a terminal, plain lines under CI or redirected output.
func Detect() Mode {
	if isCI() {
		return ModeLinear
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeTUI
	}
	return ModeLinear
}

// Resolve applies a user supplied mode name on top of the detected
// mode. Unknown or empty names defer to auto.
func Resolve(auto Mode, name string) Mode {
	switch name {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	case "silent":
		return ModeSilent
	default:
		return auto
	}
}

func isCI() bool {
	switch os.Getenv("CI") {
	case "true", "1":
		return true
	}
	return false
}
