package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tile2048/internal/core"
)

// Minimum screen size: board (4*7+3 wide, 4*2+1 tall) plus HUD and footer.
const (
	minScreenW = 31
	minScreenH = 14
)

// Game adapts the Engine to the tick-driven platform.
type Game struct {
	opts     Options
	recorder Recorder

	engine *Engine
	tick   uint64

	// Screen dimensions
	screenW int
	screenH int

	paused     bool
	tooSmall   bool
	winOverlay bool // shown once the win tile is reached, until confirmed
}

var _ core.Game = (*Game)(nil)

// New creates a 2048 game. The engine is created on Reset.
func New(opts Options, rec Recorder) *Game {
	return &Game{
		opts:     opts,
		recorder: rec,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	g.engine = NewEngine(rng, g.opts, g.recorder)
	g.tick = 0
	g.paused = false
	g.winOverlay = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size, keeping the game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step advances the game by one tick. At most one move is applied per tick;
// when several directions arrive together, up wins over down over left over
// right.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Restart is honored at any time.
	if in.Has(core.ActionRestart) {
		g.engine.Reset()
		g.paused = false
		g.winOverlay = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.engine.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.winOverlay {
		if in.Has(core.ActionConfirm) {
			g.winOverlay = false
		}
		return core.StepResult{State: g.State()}
	}

	dir, ok := direction(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	res := g.engine.Move(dir)
	if res.Won {
		g.winOverlay = true
	}

	return core.StepResult{
		State:  g.State(),
		Moved:  res.Changed,
		Points: res.Points,
	}
}

// direction picks the move requested by the frame, if any.
func direction(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Best:     g.engine.BestScore(),
		GameOver: g.engine.GameOver(),
		Won:      g.engine.Won(),
		Paused:   g.paused || g.tooSmall || g.winOverlay,
	}
}

// Engine exposes the underlying board engine.
func (g *Game) Engine() *Engine {
	return g.engine
}
