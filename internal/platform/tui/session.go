package tui

import (
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
	"github.com/vovakirdan/tile2048/internal/profile"
)

// SessionOptions configures a player session.
type SessionOptions struct {
	Game          t2048.Options
	Profile       *profile.Profile // required
	History       HistoryStore     // optional finished-game history
	Logger        *log.Logger
	ScreenshotDir string
}

// screen identifies the active view of a session.
type screen int

const (
	screenMenu screen = iota
	screenGame
	screenLeaderboard
	screenName
)

// SessionModel manages the full session flow: menu, game, leaderboard and
// name prompt. It is the top-level model for both local and SSH play.
type SessionModel struct {
	opts        SessionOptions
	config      core.RuntimeConfig
	logger      *log.Logger
	active      screen
	menu        MenuModel
	gameModel   *GameModel
	board       *LeaderboardModel
	namePrompt  *NameModel
	lastEntryID string
	games       int64
	quitting    bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(cfg core.RuntimeConfig, opts SessionOptions) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := SessionModel{
		opts:   opts,
		config: cfg,
		logger: logger,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.opts.Profile.Name(), m.opts.Profile.BestScore(), m.config.ScreenW, m.config.ScreenH)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.active {
	case screenGame:
		return m.updateGame(msg)
	case screenLeaderboard:
		return m.updateLeaderboard(msg)
	case screenName:
		return m.updateName(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case ChoiceNewGame:
		return m.startGame()
	case ChoiceLeaderboard:
		return m.openLeaderboard()
	case ChoiceChangeName:
		prompt := NewNameModel(m.opts.Profile.Name(), m.config.ScreenW)
		m.namePrompt = &prompt
		m.active = screenName
		return m, prompt.Init()
	}

	return m, cmd
}

// startGame creates a fresh game bound to the player's profile.
func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	cfg := m.config
	cfg.Seed = m.nextSeed()

	game := t2048.New(m.opts.Game, m.opts.Profile)
	gameModel := NewGameModel(game, cfg, m.logger, m.opts.ScreenshotDir)
	m.gameModel = &gameModel
	m.active = screenGame
	m.logger.Debug("game started", "player", m.opts.Profile.Name())

	return m, m.gameModel.Init()
}

// nextSeed returns the seed for the next game of the session. A seeded
// session derives one seed per game from the configured one so the whole
// session replays the same way; an unseeded session uses the clock.
func (m *SessionModel) nextSeed() int64 {
	if m.config.Seed == 0 {
		return time.Now().UnixNano()
	}
	seed := m.config.Seed + m.games
	m.games++
	return seed
}

// openLeaderboard reloads stored values, since other sessions may have
// committed games, and shows the leaderboard.
func (m SessionModel) openLeaderboard() (tea.Model, tea.Cmd) {
	m.opts.Profile.Load()

	board := NewLeaderboardModel(
		m.opts.Profile.Leaderboard(),
		m.opts.History,
		m.opts.Profile.HistoryPlayer(),
		m.config.ScreenW, m.config.ScreenH,
	)
	if m.lastEntryID != "" {
		board.Highlight(m.lastEntryID)
	}
	m.board = &board
	m.active = screenLeaderboard
	return m, board.Init()
}

// backToMenu returns to a fresh menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.active = screenMenu
	m.gameModel = nil
	m.board = nil
	m.namePrompt = nil
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if game, ok := m.gameModel.game.(*t2048.Game); ok && game.Engine() != nil {
		if entry, ok := game.Engine().LastEntry(); ok && entry.ID != m.lastEntryID {
			m.lastEntryID = entry.ID
			snap := game.Snapshot()
			m.logger.Debug("game over",
				"score", snap.Score,
				"max_tile", snap.MaxTile,
				"moves", snap.Moves,
				"won", snap.Won,
				"grid", snap.Grid.String())
		}
	}

	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateLeaderboard handles updates when the leaderboard is shown.
func (m SessionModel) updateLeaderboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.board.Update(msg)
	if board, ok := newModel.(LeaderboardModel); ok {
		m.board = &board
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateName handles updates when the name prompt is shown.
func (m SessionModel) updateName(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.namePrompt.Update(msg)
	if prompt, ok := newModel.(NameModel); ok {
		m.namePrompt = &prompt
	}

	switch {
	case m.namePrompt.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.namePrompt.Cancelled():
		return m.backToMenu()
	case m.namePrompt.Done():
		if err := m.opts.Profile.SetName(m.namePrompt.Value()); err != nil && !errors.Is(err, profile.ErrEmptyName) {
			m.logger.Warn("cannot change name", "error", err)
		}
		return m.backToMenu()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case screenGame:
		return m.gameModel.View()
	case screenLeaderboard:
		return m.board.View()
	case screenName:
		return m.namePrompt.View()
	default:
		return m.menu.View()
	}
}

// Run starts a local Bubble Tea program for one session.
func Run(cfg core.RuntimeConfig, opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
