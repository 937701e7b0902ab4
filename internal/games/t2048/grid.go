// Package t2048 implements the 2048 sliding-tile puzzle: the board engine
// and a tick-driven game adapter for the terminal platform.
package t2048

import (
	"fmt"
	"strings"
)

// Size is the board side length.
const Size = 4

// Cells is the number of cells on the board.
const Cells = Size * Size

// WinTile is the default tile value that wins the game.
const WinTile = 2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all move directions.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Grid is the board, stored row-major. Zero marks an empty cell.
type Grid [Cells]int

// At returns the value at row y, column x.
func (g Grid) At(x, y int) int {
	return g[y*Size+x]
}

// EmptyCells returns the indices of all empty cells in board order.
func (g Grid) EmptyCells() []int {
	var cells []int
	for i, v := range g {
		if v == 0 {
			cells = append(cells, i)
		}
	}
	return cells
}

// MaxTile returns the highest tile value on the board.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, v := range g {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// String renders the grid as rows separated by " / ".
func (g Grid) String() string {
	var sb strings.Builder
	for y := range Size {
		if y > 0 {
			sb.WriteString(" / ")
		}
		for x := range Size {
			if x > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%d", g.At(x, y))
		}
	}
	return sb.String()
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for _, v := range g {
		if v == 0 {
			return true
		}
	}
	return false
}

// HasPossibleMerge returns true if any two adjacent tiles are equal.
func HasPossibleMerge(g Grid) bool {
	for y := range Size {
		for x := range Size {
			val := g.At(x, y)
			// Check right neighbor
			if x < Size-1 && g.At(x+1, y) == val {
				return true
			}
			// Check bottom neighbor
			if y < Size-1 && g.At(x, y+1) == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(g Grid) bool {
	return HasEmptyCell(g) || HasPossibleMerge(g)
}

// IsGameOver returns true if no moves are possible.
func IsGameOver(g Grid) bool {
	return !CanMove(g)
}
