package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
	"github.com/vovakirdan/tile2048/internal/profile"
	"github.com/vovakirdan/tile2048/internal/storage"
)

func newTestSession(t *testing.T) (SessionModel, *profile.Profile) {
	t.Helper()

	p := profile.New(storage.NewMemory(), profile.Options{})
	p.Load()

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewSessionModel(cfg, SessionOptions{Game: t2048.DefaultOptions(), Profile: p}), p
}

func send(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T, want SessionModel", next)
		}
		m = sm
	}
	return m
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestSessionStartsAtMenu(t *testing.T) {
	m, _ := newTestSession(t)

	view := m.View()
	for _, want := range []string{"New Game", "Leaderboard", "Change Name", "Quit", "Player"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestSessionNewGame(t *testing.T) {
	m, _ := newTestSession(t)

	m = send(t, m, keyEnter)
	if m.active != screenGame || m.gameModel == nil {
		t.Fatal("enter on New Game should start a game")
	}

	m = send(t, m, TickMsg{}, runeKey("a"), TickMsg{})
	if !strings.Contains(m.View(), "SCORE") {
		t.Error("game view should show the score")
	}

	// Back is ignored while playing.
	m = send(t, m, keyEsc, TickMsg{})
	if m.active != screenGame {
		t.Error("back should be ignored mid-game")
	}

	// Pause, then back to the menu.
	m = send(t, m, runeKey("p"), TickMsg{}, keyEsc)
	if m.active != screenMenu {
		t.Error("back from a paused game should return to the menu")
	}
}

func TestSessionChangeName(t *testing.T) {
	m, p := newTestSession(t)

	m = send(t, m, keyDown, keyDown, keyEnter)
	if m.active != screenName {
		t.Fatal("Change Name should open the prompt")
	}

	m = send(t, m, runeKey("A"), runeKey("d"), runeKey("a"), keyEnter)
	if m.active != screenMenu {
		t.Error("submitting the name should return to the menu")
	}
	if p.Name() != "Ada" {
		t.Errorf("name = %q, want Ada", p.Name())
	}
	if !strings.Contains(m.View(), "Ada") {
		t.Error("menu should show the new name")
	}
}

func TestSessionNameCancel(t *testing.T) {
	m, p := newTestSession(t)

	m = send(t, m, keyDown, keyDown, keyEnter, runeKey("Z"), keyEsc)
	if m.active != screenMenu {
		t.Error("esc should return to the menu")
	}
	if p.Name() != "Player" {
		t.Errorf("name = %q, cancel must keep the old name", p.Name())
	}
}

func TestSessionLeaderboard(t *testing.T) {
	m, p := newTestSession(t)
	p.Commit(512, "Ada")

	m = send(t, m, keyDown, keyEnter)
	if m.active != screenLeaderboard {
		t.Fatal("Leaderboard should open the leaderboard")
	}
	view := m.View()
	if !strings.Contains(view, "Ada") || !strings.Contains(view, "512") {
		t.Errorf("leaderboard view missing entry:\n%s", view)
	}

	m = send(t, m, keyEsc)
	if m.active != screenMenu {
		t.Error("esc should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m, _ := newTestSession(t)

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func openingGrid(t *testing.T, m SessionModel) string {
	t.Helper()
	game, ok := m.gameModel.game.(*t2048.Game)
	if !ok || game.Engine() == nil {
		t.Fatal("session has no running 2048 game")
	}
	return game.Engine().Grid().String()
}

func TestSessionSeedReplaysGames(t *testing.T) {
	newSeeded := func() SessionModel {
		p := profile.New(storage.NewMemory(), profile.Options{})
		p.Load()
		cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
		return NewSessionModel(cfg, SessionOptions{Game: t2048.DefaultOptions(), Profile: p})
	}

	a := send(t, newSeeded(), keyEnter)
	b := send(t, newSeeded(), keyEnter)
	if got, want := openingGrid(t, b), openingGrid(t, a); got != want {
		t.Fatalf("same seed opened different grids:\n%s\n%s", want, got)
	}

	// Leave through pause and start the session's second game.
	again := []tea.Msg{runeKey("p"), TickMsg{}, keyEsc, keyEnter}
	a = send(t, a, again...)
	b = send(t, b, again...)
	if a.active != screenGame || b.active != screenGame {
		t.Fatal("enter on New Game should start a second game")
	}
	if got, want := openingGrid(t, b), openingGrid(t, a); got != want {
		t.Errorf("second games differ:\n%s\n%s", want, got)
	}
}

func TestSessionNextSeed(t *testing.T) {
	m := SessionModel{config: core.RuntimeConfig{Seed: 42}}
	for i, want := range []int64{42, 43, 44} {
		if got := m.nextSeed(); got != want {
			t.Errorf("game %d seed = %d, want %d", i, got, want)
		}
	}
}
