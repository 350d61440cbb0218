package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/featvet/featvet/internal/ui/style"
	"github.com/vito/progrock"
)

const (
	statusRunning = "running"
	statusPassed  = "passed"
	statusFailed  = "failed"
)

// CheckState represents one combination check shown in the view.
type CheckState struct {
	ID     string
	Name   string
	Status string // statusRunning, statusPassed, statusFailed
}

type styles struct {
	passed lipgloss.Style
	failed lipgloss.Style
	count  lipgloss.Style
}

// Model is the Bubble Tea model tracking every check fed through the
// telemetry feed.
type Model struct {
	feed   UpdateSource
	total  int
	checks []CheckState
	index  map[string]int
	passed int
	failed int

	width   int
	height  int
	spinner spinner.Model
	styles  styles
}

// NewModel creates a model expecting total checks from the given feed.
func NewModel(feed UpdateSource, total int) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(style.Yellow)

	return &Model{
		feed:    feed,
		total:   total,
		index:   make(map[string]int),
		spinner: s,
		styles: styles{
			passed: lipgloss.NewStyle().Foreground(style.Green),
			failed: lipgloss.NewStyle().Foreground(style.Red),
			count:  lipgloss.NewStyle().Foreground(style.Slate),
		},
	}
}

// Init starts the spinner and the first read from the feed.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForUpdate(m.feed),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case MsgFeedUpdate:
		return m.handleFeedUpdate(msg)
	case MsgFeedEnded:
		return m, tea.Quit
	}
	return m, nil
}

// handleKeyMsg handles keyboard input messages.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
		return m, tea.Quit
	}
	return m, nil
}

// handleWindowSizeMsg handles window resize messages.
func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

// handleSpinnerTick handles spinner animation tick messages.
func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleFeedUpdate applies one update and re-arms the next read.
func (m *Model) handleFeedUpdate(msg MsgFeedUpdate) (tea.Model, tea.Cmd) {
	for _, v := range msg.Update.Vertexes {
		m.updateOrAddCheck(v)
	}
	return m, WaitForUpdate(m.feed)
}

// updateOrAddCheck updates an existing check or adds a new one.
func (m *Model) updateOrAddCheck(v *progrock.Vertex) {
	i, ok := m.index[v.Id]
	if !ok {
		i = len(m.checks)
		m.index[v.Id] = i
		m.checks = append(m.checks, CheckState{
			ID:     v.Id,
			Name:   v.Name,
			Status: statusRunning,
		})
	}

	// Count each check once, on its first completed update.
	if v.Completed == nil || m.checks[i].Status != statusRunning {
		return
	}
	if v.Error != nil {
		m.checks[i].Status = statusFailed
		m.failed++
	} else {
		m.checks[i].Status = statusPassed
		m.passed++
	}
}

// View renders the header line followed by the most recent checks that
// fit the terminal height.
func (m *Model) View() string {
	var s strings.Builder

	done := m.passed + m.failed
	s.WriteString(fmt.Sprintf("%s Vetting feature combinations %s",
		m.spinner.View(),
		m.styles.count.Render(fmt.Sprintf("%d/%d", done, m.total)),
	))
	if m.failed > 0 {
		s.WriteString(m.styles.failed.Render(fmt.Sprintf(" (%d failed)", m.failed)))
	}
	s.WriteString("\n\n")

	// Reserve the header and its trailing blank line.
	rows := m.height - 3
	if rows <= 0 {
		rows = len(m.checks)
	}
	start := 0
	if len(m.checks) > rows {
		start = len(m.checks) - rows
	}

	for i := start; i < len(m.checks); i++ {
		c := m.checks[i]
		var icon string
		switch c.Status {
		case statusRunning:
			icon = m.spinner.View()
		case statusPassed:
			icon = m.styles.passed.Render(style.Check)
		case statusFailed:
			icon = m.styles.failed.Render(style.Cross)
		}
		fmt.Fprintf(&s, "%s %s\n", icon, c.Name)
	}

	return s.String()
}
