// Package style provides shared UI styling primitives for consistent
// visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Green  = lipgloss.Color("42")
	Red    = lipgloss.Color("160")
	Yellow = lipgloss.Color("yellow")
	Slate  = lipgloss.Color("240")
)

// Icons.
const (
	Check = "✓"
	Cross = "✗"
	Dot   = "●"
)
