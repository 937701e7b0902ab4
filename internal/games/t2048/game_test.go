package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tile2048/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newTestGame(rec Recorder) *Game {
	g := New(DefaultOptions(), rec)
	g.Reset(testConfig(42))
	return g
}

func TestDeterministicReset(t *testing.T) {
	g1 := New(DefaultOptions(), nil)
	g1.Reset(testConfig(12345))

	g2 := New(DefaultOptions(), nil)
	g2.Reset(testConfig(12345))

	if g1.Engine().Grid() != g2.Engine().Grid() {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v",
			g1.Engine().Grid(), g2.Engine().Grid())
	}
}

func TestStepAppliesMove(t *testing.T) {
	g := newTestGame(nil)
	g.engine.grid = gridFromRows([Size][Size]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(frame(core.ActionLeft))
	if !res.Moved || res.Points != 4 || res.State.Score != 4 {
		t.Errorf("Step result = %+v, want a 4-point move", res)
	}
}

func TestStepDirectionPriority(t *testing.T) {
	g := newTestGame(nil)
	g.engine.grid = gridFromRows([Size][Size]int{
		{0, 0, 0, 0},
		{0, 8, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(frame(core.ActionLeft, core.ActionUp))

	grid := g.Engine().Grid()
	if grid.At(1, 0) != 8 {
		t.Errorf("up should win over left, grid = %v", grid)
	}
	if g.Engine().Moves() != 1 {
		t.Errorf("moves = %d, want exactly one move per tick", g.Engine().Moves())
	}
}

func TestRestartAnyTime(t *testing.T) {
	g := newTestGame(nil)
	g.engine.grid = gridFromRows([Size][Size]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	g.Step(frame(core.ActionLeft))
	if g.Engine().Score() == 0 {
		t.Fatal("setup: expected a scoring move")
	}

	g.Step(frame(core.ActionRestart))
	if g.Engine().Score() != 0 || g.Engine().Moves() != 0 {
		t.Error("restart did not start a new game")
	}
	if g.State().Best != 4 {
		t.Errorf("best = %d, want 4 kept across restart", g.State().Best)
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := newTestGame(nil)
	before := g.Engine().Grid()

	g.Step(frame(core.ActionPause))
	if !g.State().Paused || g.Snapshot().State != StatePaused {
		t.Fatal("pause not applied")
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		g.Step(frame(a))
	}
	if g.Engine().Grid() != before {
		t.Error("moves applied while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestWinOverlayBlocksUntilConfirm(t *testing.T) {
	g := newTestGame(nil)
	g.engine.grid = gridFromRows([Size][Size]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(frame(core.ActionLeft))
	if snap := g.Snapshot(); snap.State != StateWin || !snap.Won {
		t.Fatalf("snapshot = %+v, want win overlay", snap)
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "YOU WIN!") || !strings.Contains(out, "2048 reached") {
		t.Errorf("win overlay missing:\n%s", out)
	}

	before := g.Engine().Grid()
	g.Step(frame(core.ActionRight))
	if g.Engine().Grid() != before {
		t.Error("move applied behind the win overlay")
	}

	g.Step(frame(core.ActionConfirm))
	if g.Snapshot().State != StatePlaying {
		t.Errorf("state after confirm = %s, want playing", g.Snapshot().State)
	}

	if res := g.Step(frame(core.ActionRight)); !res.Moved {
		t.Error("play should continue after confirming the win")
	}
	if !g.State().Won {
		t.Error("won flag should stay set")
	}
}

func TestTooSmallIgnoresInput(t *testing.T) {
	g := newTestGame(nil)
	g.Resize(20, 10)
	before := g.Engine().Grid()

	g.Step(frame(core.ActionLeft))
	g.Step(frame(core.ActionRestart))

	if g.Engine().Grid() != before {
		t.Error("input applied on a too-small screen")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("state = %s, want %s", g.Snapshot().State, StatePausedSmall)
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small hint not rendered")
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Error("resize back should resume play")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(nil)
	g.engine.grid = gridFromRows([Size][Size]int{
		{2048, 0, 0, 0},
		{0, 128, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"2048", "SCORE 0", "BEST 0", "128", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderGameOverShowsRank(t *testing.T) {
	rec := &fakeRecorder{}
	g := newTestGame(rec)
	g.engine.grid = almostOver

	res := g.Step(frame(core.ActionLeft))
	if !res.State.GameOver {
		t.Fatal("setup: expected game over")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("state = %s, want %s", g.Snapshot().State, StateGameOver)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"GAME OVER", "Leaderboard #1"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(nil)
	g.Step(core.NewInputFrame())

	snap := g.Snapshot()
	if snap.Tick != 1 {
		t.Errorf("Snapshot Tick = %d, want 1", snap.Tick)
	}
	if snap.State != StatePlaying {
		t.Errorf("Snapshot State = %s, want playing", snap.State)
	}
	if snap.MaxTile != 2 && snap.MaxTile != 4 {
		t.Errorf("Snapshot MaxTile = %d, want 2 or 4", snap.MaxTile)
	}
}
