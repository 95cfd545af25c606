// Package tui provides the interactive terminal dashboard for
// crosslinkctl's monitor command. It is built on the bubbletea/lipgloss
// stack, the same as strandctl's dashboard, but the data source is a
// local crosslink.Engine rather than a remote REST API: a driver
// goroutine pushes Stat snapshots and Event lines down a channel instead
// of the model issuing its own HTTP fetches.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Shared styles
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	headerCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			PaddingRight(1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingRight(1)

	altRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("236")).
			PaddingRight(1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true).
			PaddingLeft(1)
)

// ---------------------------------------------------------------------------
// Data carried from the driver loop
// ---------------------------------------------------------------------------

// Stat is a snapshot of the engine's running counters, pushed by the
// driver goroutine on every poll cycle.
type Stat struct {
	ObjectsOK     uint64
	CrcErrors     uint64
	IDMismatches  uint64
	SizeMismatches uint64
	GenericBytes  uint64
}

// Event is one line for the recent-activity log: a decoded object, or an
// ingest or read error.
type Event struct {
	At      time.Time
	Message string
}

// ---------------------------------------------------------------------------
// Tea messages
// ---------------------------------------------------------------------------

// statMsg carries a fresh Stat snapshot from the driver channel.
type statMsg Stat

// eventMsg carries one new Event from the driver channel.
type eventMsg Event

// closedMsg indicates the driver channel closed (engine loop exited).
type closedMsg struct{}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

const maxEventLog = 20

// Model is the top-level bubbletea model for the monitor dashboard.
type Model struct {
	stats    chan Stat
	events   chan Event
	done     chan struct{}

	current Stat
	log     []Event
	width   int
	height  int
	closed  bool
}

// New returns a Model that reads Stat and Event updates from the given
// channels, pushed by a driver goroutine running alongside the engine.
func New(stats chan Stat, events chan Event, done chan struct{}) Model {
	return Model{stats: stats, events: events, done: done}
}

// Init starts the three listener commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForStat(m.stats), waitForEvent(m.events), waitForClose(m.done))
}

func waitForStat(ch chan Stat) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return closedMsg{}
		}
		return statMsg(s)
	}
}

func waitForEvent(ch chan Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return closedMsg{}
		}
		return eventMsg(e)
	}
}

func waitForClose(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return closedMsg{}
	}
}

// Update processes messages and returns an updated model plus any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case statMsg:
		m.current = Stat(msg)
		return m, waitForStat(m.stats)

	case eventMsg:
		m.log = append(m.log, Event(msg))
		if len(m.log) > maxEventLog {
			m.log = m.log[len(m.log)-maxEventLog:]
		}
		return m, waitForEvent(m.events)

	case closedMsg:
		m.closed = true
		return m, nil
	}

	return m, nil
}

// View renders the entire dashboard to a string.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading…"
	}

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("  crosslink monitor  "))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", m.width))
	sb.WriteString("\n")

	sb.WriteString(m.renderStats())
	sb.WriteString("\n")
	sb.WriteString(m.renderLog())

	sb.WriteString(strings.Repeat("─", m.width))
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())

	return sb.String()
}

func (m Model) renderStats() string {
	cols := []struct {
		label string
		value uint64
	}{
		{"objects ok", m.current.ObjectsOK},
		{"crc errors", m.current.CrcErrors},
		{"id mismatches", m.current.IDMismatches},
		{"size mismatches", m.current.SizeMismatches},
		{"generic bytes", m.current.GenericBytes},
	}

	var parts []string
	for _, c := range cols {
		parts = append(parts, fmt.Sprintf("%s %s",
			headerCellStyle.Render(c.label+":"),
			rowStyle.Render(fmt.Sprintf("%d", c.value))))
	}
	return strings.Join(parts, "   ") + "\n"
}

func (m Model) renderLog() string {
	if len(m.log) == 0 {
		return dimStyle.Render("(no activity yet)") + "\n"
	}
	var sb strings.Builder
	for i, e := range m.log {
		style := rowStyle
		if i%2 == 1 {
			style = altRowStyle
		}
		sb.WriteString(style.Render(fmt.Sprintf("%s  %s", e.At.Format("15:04:05"), e.Message)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderStatus() string {
	if m.closed {
		return errorStyle.Render("link closed — press q to quit")
	}
	return statusBarStyle.Render("q: quit")
}
