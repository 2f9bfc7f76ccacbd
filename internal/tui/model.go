package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusFailed    = "failed"
)

// DecodeState represents the current state of one library decode in the TUI.
type DecodeState struct {
	ID      string
	Name    string
	Status  string // statusRunning, statusCompleted, statusFailed
	LastLog string
}

type styles struct {
	running   lipgloss.Style
	completed lipgloss.Style
	failed    lipgloss.Style
	log       lipgloss.Style
}

// Model is the Bubble Tea model for the decode progress view, tracking
// one line per library being decoded.
type Model struct {
	tape        TapeSource
	decodes     []DecodeState
	width       int
	height      int
	interrupted bool
	spinner     spinner.Model
	styles      styles
}

// NewModel creates a new TUI model reading from the given tape source.
func NewModel(tape TapeSource) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	return &Model{
		tape:    tape,
		spinner: s,
		styles: styles{
			running:   lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")),
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
			failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // Red
			log:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Gray
		},
	}
}

// Init initializes the model and starts reading from the tape.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.tape),
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
	case MsgTapeUpdate:
		return m.handleTapeUpdate(msg)
	case MsgTapeEnded:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.interrupted = true
		return m, tea.Quit
	}
	return m, nil
}

// Interrupted reports whether the user quit the view before the tape
// ended. Callers must not treat the batch results as settled then.
func (m *Model) Interrupted() bool {
	return m.interrupted
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m *Model) handleTapeUpdate(msg MsgTapeUpdate) (tea.Model, tea.Cmd) {
	for _, v := range msg.Update.Vertexes {
		m.updateOrAddDecode(v)
	}
	for _, l := range msg.Update.Logs {
		m.recordLog(l)
	}
	return m, WaitForTape(m.tape)
}

// updateOrAddDecode updates an existing decode line or adds a new one.
func (m *Model) updateOrAddDecode(v *progrock.Vertex) {
	for i, existing := range m.decodes {
		if existing.ID == v.Id {
			m.updateDecodeStatus(i, v)
			return
		}
	}
	m.decodes = append(m.decodes, DecodeState{
		ID:     v.Id,
		Name:   v.Name,
		Status: statusRunning,
	})
}

func (m *Model) updateDecodeStatus(index int, v *progrock.Vertex) {
	if v.Completed == nil {
		return
	}
	if v.Error != nil {
		m.decodes[index].Status = statusFailed
		return
	}
	m.decodes[index].Status = statusCompleted
}

// recordLog keeps the last non-empty output line per decode, shown under
// its progress line.
func (m *Model) recordLog(l *progrock.VertexLog) {
	text := strings.TrimSpace(string(l.Data))
	if text == "" {
		return
	}
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	}
	for idx := range m.decodes {
		if m.decodes[idx].ID == l.Vertex {
			m.decodes[idx].LastLog = text
			return
		}
	}
}

// View renders the current decode states as a string.
func (m *Model) View() string {
	var s strings.Builder

	// Show only the last screenful when there are more decodes than rows.
	start := 0
	if m.height > 0 && len(m.decodes) > m.height {
		start = len(m.decodes) - m.height
	}

	for i := start; i < len(m.decodes); i++ {
		d := m.decodes[i]
		var icon string
		var style lipgloss.Style
		switch d.Status {
		case statusRunning:
			icon = m.spinner.View()
			style = m.styles.running
		case statusCompleted:
			icon = "✓"
			style = m.styles.completed
		case statusFailed:
			icon = "✗"
			style = m.styles.failed
		default:
			icon = "•"
			style = m.styles.log
		}

		fmt.Fprintf(&s, "%s %s\n", style.Render(icon), d.Name)
		if d.LastLog != "" && d.Status != statusRunning {
			fmt.Fprintf(&s, "  %s\n", m.styles.log.Render(d.LastLog))
		}
	}

	return s.String()
}
