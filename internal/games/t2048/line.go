package t2048

// Line is one row or column, ordered so tiles slide toward index 0.
type Line [Size]int

// CompactLine slides tiles toward the start of the line and merges equal
// neighbors. A tile produced by a merge does not merge again in the same
// move. It returns the new line, the points earned, and whether any merge
// produced winTile.
func CompactLine(line Line, winTile int) (result Line, points int, reached bool) {
	tiles := make([]int, 0, Size)
	for _, v := range line {
		if v != 0 {
			tiles = append(tiles, v)
		}
	}

	for i := 0; i < len(tiles)-1; i++ {
		if tiles[i] != tiles[i+1] {
			continue
		}
		tiles[i] *= 2
		tiles[i+1] = 0
		points += tiles[i]
		if tiles[i] == winTile {
			reached = true
		}
	}

	n := 0
	for _, v := range tiles {
		if v != 0 {
			result[n] = v
			n++
		}
	}
	return result, points, reached
}

// lineIndices returns the grid indices of line i for a move in dir, in
// board order.
func lineIndices(dir Direction, i int) [Size]int {
	var idx [Size]int
	for j := range Size {
		if dir == DirLeft || dir == DirRight {
			idx[j] = i*Size + j
		} else {
			idx[j] = j*Size + i
		}
	}
	return idx
}

// reverses reports whether lines are read back to front for dir.
func reverses(dir Direction) bool {
	return dir == DirRight || dir == DirDown
}

// reverseLine reverses a line.
func reverseLine(line Line) Line {
	var result Line
	for i := range Size {
		result[i] = line[Size-1-i]
	}
	return result
}

// Transition is the outcome of sliding a grid, before any tile spawns.
type Transition struct {
	Grid    Grid
	Points  int
	Changed bool
	Reached bool // a merge produced the win tile
}

// Slide performs a move in the given direction without spawning a tile.
// Right and down lines are reversed, compacted toward the start, and
// reversed back.
func Slide(g Grid, dir Direction, winTile int) Transition {
	out := Transition{Grid: g}

	for i := range Size {
		idx := lineIndices(dir, i)

		var line Line
		for j, cell := range idx {
			line[j] = g[cell]
		}
		if reverses(dir) {
			line = reverseLine(line)
		}

		processed, points, reached := CompactLine(line, winTile)
		out.Points += points
		out.Reached = out.Reached || reached

		if reverses(dir) {
			processed = reverseLine(processed)
		}
		for j, cell := range idx {
			if out.Grid[cell] != processed[j] {
				out.Changed = true
			}
			out.Grid[cell] = processed[j]
		}
	}

	return out
}
