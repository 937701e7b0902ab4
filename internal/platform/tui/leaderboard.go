package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile2048/internal/leaderboard"
	"github.com/vovakirdan/tile2048/internal/storage"
)

// Leaderboard layout constants
const (
	historyLimit = 50 // Max history rows to load
	dateFormat   = "Jan 02 15:04"
)

// HistoryStore lists finished games of a player.
type HistoryStore interface {
	TopScores(player string, limit int) ([]storage.ScoreEntry, error)
}

// leaderboardTab selects the table shown.
type leaderboardTab int

const (
	tabTop leaderboardTab = iota
	tabHistory
)

// LeaderboardKeyMap defines the key bindings for the leaderboard.
type LeaderboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LeaderboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LeaderboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab},
		{k.Back, k.Quit},
	}
}

// DefaultLeaderboardKeyMap returns default key bindings.
func DefaultLeaderboardKeyMap() LeaderboardKeyMap {
	return LeaderboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "top 10 / your games"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LeaderboardModel shows the shared top-10 and, when a history store is
// available, the player's own finished games.
type LeaderboardModel struct {
	entries   []leaderboard.Entry
	history   HistoryStore
	player    string
	games     []storage.ScoreEntry
	highlight string // entry ID to highlight
	tab       leaderboardTab
	table     table.Model
	help      help.Model
	keys      LeaderboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewLeaderboardModel creates a leaderboard view. history may be nil.
func NewLeaderboardModel(entries []leaderboard.Entry, history HistoryStore, player string, width, height int) LeaderboardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := LeaderboardModel{
		entries: entries,
		history: history,
		player:  player,
		keys:    DefaultLeaderboardKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// Highlight marks the row of the entry with the given ID.
func (m *LeaderboardModel) Highlight(id string) {
	m.highlight = id
	m.updateTableRows()
}

// createTable creates a new table with columns for the current tab.
func (m *LeaderboardModel) createTable() table.Model {
	var columns []table.Column
	if m.tab == tabTop {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: 20},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 14},
		}
	} else {
		columns = []table.Column{
			{Title: "#", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 14},
		}
	}

	// Narrow terminals shrink the name column.
	if m.width > 0 && m.width < 60 && m.tab == tabTop {
		columns[1].Width = max(m.width-40, 6)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadHistory loads the player's finished games.
func (m *LeaderboardModel) loadHistory() {
	m.games = nil
	if m.history == nil {
		return
	}
	games, err := m.history.TopScores(m.player, historyLimit)
	if err == nil {
		m.games = games
	}
}

// updateTableRows fills the table for the current tab.
func (m *LeaderboardModel) updateTableRows() {
	var rows []table.Row
	cursor := 0

	switch m.tab {
	case tabTop:
		rows = make([]table.Row, len(m.entries))
		for i, e := range m.entries {
			rank := fmt.Sprintf("#%d", i+1)
			if e.ID == m.highlight {
				rank = "*" + rank
				cursor = i
			}
			rows[i] = table.Row{rank, e.Name, strconv.Itoa(e.Score), e.Timestamp.Local().Format(dateFormat)}
		}
	case tabHistory:
		rows = make([]table.Row, len(m.games))
		for i, g := range m.games {
			rows[i] = table.Row{strconv.Itoa(i + 1), strconv.Itoa(g.Score), g.CreatedAt.Local().Format(dateFormat)}
		}
	}

	m.table.SetRows(rows)
	m.table.SetCursor(cursor)
}

// Init initializes the leaderboard model.
func (m LeaderboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the leaderboard.
func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			if m.history == nil {
				return m, nil
			}
			if m.tab == tabTop {
				m.tab = tabHistory
				m.loadHistory()
			} else {
				m.tab = tabTop
			}
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m LeaderboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "LEADERBOARD - Top 10"
	if m.tab == tabHistory {
		title = fmt.Sprintf("LEADERBOARD - %s's games", m.player)
	}
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m LeaderboardModel) renderTableContent() string {
	empty := (m.tab == tabTop && len(m.entries) == 0) || (m.tab == tabHistory && len(m.games) == 0)
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LeaderboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LeaderboardModel) IsQuitting() bool {
	return m.quitting
}
