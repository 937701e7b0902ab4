package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile2048/internal/profile"
)

// NameModel prompts for a new display name.
type NameModel struct {
	input     textinput.Model
	current   string
	width     int
	done      bool
	cancelled bool
	quitting  bool
}

// NewNameModel creates a prompt showing the current name as placeholder.
func NewNameModel(current string, width int) NameModel {
	ti := textinput.New()
	ti.Placeholder = current
	ti.CharLimit = profile.MaxNameLength
	ti.Width = profile.MaxNameLength + 1
	ti.Prompt = "> "
	ti.Focus()

	return NameModel{
		input:   ti,
		current: current,
		width:   width,
	}
}

// Init starts the cursor blink.
func (m NameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m NameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEsc:
			m.cancelled = true
			return m, nil
		case tea.KeyEnter:
			m.done = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m NameModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Change Name"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Enter: save  |  Esc: cancel"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Value returns the entered name, or the current one when left blank.
func (m NameModel) Value() string {
	if strings.TrimSpace(m.input.Value()) == "" {
		return m.current
	}
	return m.input.Value()
}

// Done reports whether the name was submitted.
func (m NameModel) Done() bool {
	return m.done
}

// Cancelled reports whether the prompt was dismissed.
func (m NameModel) Cancelled() bool {
	return m.cancelled
}

// IsQuitting returns true if user requested to quit.
func (m NameModel) IsQuitting() bool {
	return m.quitting
}
