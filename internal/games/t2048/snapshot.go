package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWin         GameStateType = "win"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Score   int
	Best    int
	Moves   int
	Grid    Grid
	MaxTile int // Highest tile on board
	Won     bool
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.engine.Status() == StatusGameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.winOverlay:
		state = StateWin
	}

	return Snapshot{
		Tick:    g.tick,
		Score:   g.engine.Score(),
		Best:    g.engine.BestScore(),
		Moves:   g.engine.Moves(),
		Grid:    g.engine.Grid(),
		MaxTile: g.engine.Grid().MaxTile(),
		Won:     g.engine.Won(),
		State:   state,
	}
}
