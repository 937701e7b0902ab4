package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tile2048/internal/leaderboard"
)

// Status is the derived state of a game.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusWon      Status = "won"       // win tile reached, play may continue
	StatusGameOver Status = "game_over" // no legal move remains
)

// Recorder persists best score and finished games.
type Recorder interface {
	BestScore() int
	SetBestScore(score int)
	RecordGame(score int) leaderboard.Entry
}

// Options configures board rules. The zero Options means DefaultOptions.
// Once any field is set, a zero WinTile or InitialTiles still takes the
// classic value, but a zero Spawn4Probability is kept and only 2s spawn.
type Options struct {
	Spawn4Probability float64 // Chance a new tile is a 4 instead of a 2
	InitialTiles      int     // Tiles spawned on reset
	WinTile           int     // Tile value that wins
}

// DefaultOptions returns the classic rules.
func DefaultOptions() Options {
	return Options{
		Spawn4Probability: 0.1,
		InitialTiles:      2,
		WinTile:           WinTile,
	}
}

// MoveResult reports the outcome of one move to the caller.
type MoveResult struct {
	Grid     Grid
	Points   int  // Points earned by this move
	Changed  bool // False means the move was a no-op
	Won      bool // This move reached the win tile for the first time
	GameOver bool // No legal move remains after this move
	Spawned  int  // Index of the spawned tile, -1 if none

	// Entry is the leaderboard entry recorded when this move ended the game.
	Entry *leaderboard.Entry
}

// Engine owns one game: the grid, the score and the win/game-over flags.
// It is not safe for concurrent use; each session owns its own Engine.
type Engine struct {
	rng      *rand.Rand
	opts     Options
	recorder Recorder

	grid      Grid
	score     int
	best      int // used when there is no recorder
	moves     int
	won       bool
	gameOver  bool
	lastEntry *leaderboard.Entry
}

// NewEngine creates an engine and starts the first game.
// rec may be nil, in which case the best score lives only in memory.
func NewEngine(rng *rand.Rand, opts Options, rec Recorder) *Engine {
	if opts == (Options{}) {
		opts = DefaultOptions()
	}
	if opts.WinTile == 0 {
		opts.WinTile = WinTile
	}
	if opts.InitialTiles == 0 {
		opts.InitialTiles = 2
	}

	e := &Engine{
		rng:      rng,
		opts:     opts,
		recorder: rec,
	}
	e.Reset()
	return e
}

// Reset clears the board, spawns the initial tiles and zeroes the score.
func (e *Engine) Reset() {
	e.grid = Grid{}
	e.score = 0
	e.moves = 0
	e.won = false
	e.gameOver = false
	e.lastEntry = nil

	for range e.opts.InitialTiles {
		e.SpawnTile()
	}
}

// SpawnTile puts a 2 or a 4 into a random empty cell.
// Returns the cell index, or false if the grid is full.
func (e *Engine) SpawnTile() (int, bool) {
	empty := e.grid.EmptyCells()
	if len(empty) == 0 {
		return -1, false
	}

	cell := empty[e.rng.Intn(len(empty))]

	value := 2
	if e.rng.Float64() < e.opts.Spawn4Probability {
		value = 4
	}

	e.grid[cell] = value
	return cell, true
}

// Move applies a move. A move that changes nothing, or any move after the
// game is over, leaves the engine untouched.
func (e *Engine) Move(dir Direction) MoveResult {
	result := MoveResult{Grid: e.grid, Spawned: -1, GameOver: e.gameOver}
	if e.gameOver {
		return result
	}

	t := Slide(e.grid, dir, e.opts.WinTile)
	if !t.Changed {
		return result
	}

	e.grid = t.Grid
	e.moves++
	if cell, ok := e.SpawnTile(); ok {
		result.Spawned = cell
	}

	e.score += t.Points
	if e.score > e.BestScore() {
		e.setBest(e.score)
	}

	if t.Reached && !e.won {
		e.won = true
		result.Won = true
	}

	if IsGameOver(e.grid) {
		e.gameOver = true
		if e.recorder != nil {
			entry := e.recorder.RecordGame(e.score)
			e.lastEntry = &entry
			result.Entry = &entry
		}
	}

	result.Grid = e.grid
	result.Points = t.Points
	result.Changed = true
	result.GameOver = e.gameOver
	return result
}

func (e *Engine) setBest(score int) {
	if e.recorder != nil {
		e.recorder.SetBestScore(score)
		return
	}
	e.best = score
}

// Grid returns a copy of the board.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// BestScore returns the best score across games.
func (e *Engine) BestScore() int {
	if e.recorder != nil {
		return e.recorder.BestScore()
	}
	return e.best
}

// Moves returns the number of board-changing moves this game.
func (e *Engine) Moves() int {
	return e.moves
}

// Won reports whether the win tile was reached this game.
func (e *Engine) Won() bool {
	return e.won
}

// GameOver reports whether no legal move remains.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Status derives the game status from the flags.
func (e *Engine) Status() Status {
	switch {
	case e.gameOver:
		return StatusGameOver
	case e.won:
		return StatusWon
	default:
		return StatusPlaying
	}
}

// LastEntry returns the leaderboard entry recorded when this game ended.
func (e *Engine) LastEntry() (leaderboard.Entry, bool) {
	if e.lastEntry == nil {
		return leaderboard.Entry{}, false
	}
	return *e.lastEntry, true
}

// WinTile returns the tile value that wins the game.
func (e *Engine) WinTile() int {
	return e.opts.WinTile
}
