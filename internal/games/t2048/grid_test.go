package t2048

import (
	"math/rand"
	"testing"
)

// gridFromRows builds a grid from rows, top to bottom.
func gridFromRows(rows [Size][Size]int) Grid {
	var g Grid
	for y := range Size {
		for x := range Size {
			g[y*Size+x] = rows[y][x]
		}
	}
	return g
}

func tileSum(g Grid) int {
	total := 0
	for _, v := range g {
		total += v
	}
	return total
}

var slideBoard = gridFromRows([Size][Size]int{
	{2, 2, 0, 0},
	{4, 0, 4, 0},
	{2, 2, 2, 2},
	{0, 0, 0, 2},
})

func TestSlide(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		input    Grid
		expected [Size][Size]int
		points   int
	}{
		{
			name:  "left",
			dir:   DirLeft,
			input: slideBoard,
			expected: [Size][Size]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			points: 4 + 8 + 8,
		},
		{
			name:  "right",
			dir:   DirRight,
			input: slideBoard,
			expected: [Size][Size]int{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			points: 4 + 8 + 8,
		},
		{
			name: "up",
			dir:  DirUp,
			input: gridFromRows([Size][Size]int{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			}),
			expected: [Size][Size]int{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			points: 4 + 8 + 8,
		},
		{
			name: "down",
			dir:  DirDown,
			input: gridFromRows([Size][Size]int{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			}),
			expected: [Size][Size]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
			points: 4 + 8 + 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slide(tt.input, tt.dir, WinTile)
			want := gridFromRows(tt.expected)
			if got.Grid != want {
				t.Errorf("Slide %s: got\n%v\nwant\n%v", tt.dir, got.Grid, want)
			}
			if !got.Changed {
				t.Errorf("Slide %s should indicate board changed", tt.dir)
			}
			if got.Points != tt.points {
				t.Errorf("Slide %s points = %d, want %d", tt.dir, got.Points, tt.points)
			}
		})
	}
}

func TestSlideNoChange(t *testing.T) {
	g := gridFromRows([Size][Size]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	got := Slide(g, DirLeft, WinTile)
	if got.Changed {
		t.Error("Slide left should not change already left-aligned tiles")
	}
	if got.Grid != g || got.Points != 0 {
		t.Errorf("no-op slide altered state: %v points=%d", got.Grid, got.Points)
	}
}

func randomGrid(rng *rand.Rand) Grid {
	var g Grid
	for i := range g {
		if rng.Intn(3) == 0 {
			continue
		}
		g[i] = 1 << (1 + rng.Intn(6))
	}
	return g
}

func TestSlideProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for range 500 {
		g := randomGrid(rng)
		for _, dir := range Directions {
			tr := Slide(g, dir, WinTile)

			if tileSum(tr.Grid) != tileSum(g) {
				t.Fatalf("Slide %s on %v changed tile sum: %d -> %d", dir, g, tileSum(g), tileSum(tr.Grid))
			}
			if tr.Changed != (tr.Grid != g) {
				t.Fatalf("Slide %s on %v: Changed=%v but grids differ=%v", dir, g, tr.Changed, tr.Grid != g)
			}
			if !tr.Changed && tr.Points != 0 {
				t.Fatalf("Slide %s on %v: no change but %d points", dir, g, tr.Points)
			}
			if !tr.Changed {
				if again := Slide(tr.Grid, dir, WinTile); again.Changed {
					t.Fatalf("Slide %s on %v: no-op slide changed on reapply", dir, g)
				}
			}
			if tr.Points%2 != 0 {
				t.Fatalf("Slide %s on %v: odd points %d", dir, g, tr.Points)
			}
		}
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name string
		rows [Size][Size]int
		want bool
	}{
		{
			name: "full without merges",
			rows: [Size][Size]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: false,
		},
		{
			name: "full with horizontal merge",
			rows: [Size][Size]int{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "full with vertical merge",
			rows: [Size][Size]int{
				{2, 4, 8, 16},
				{32, 64, 128, 16},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "empty cell",
			rows: [Size][Size]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFromRows(tt.rows)
			if got := CanMove(g); got != tt.want {
				t.Errorf("CanMove = %v, want %v", got, tt.want)
			}
			if IsGameOver(g) == tt.want {
				t.Errorf("IsGameOver = %v, want %v", IsGameOver(g), !tt.want)
			}
		})
	}
}

func TestMaxTile(t *testing.T) {
	g := gridFromRows([Size][Size]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	})

	if got := g.MaxTile(); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
}

func TestEmptyCells(t *testing.T) {
	g := gridFromRows([Size][Size]int{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	})

	cells := g.EmptyCells()
	if len(cells) != 8 {
		t.Fatalf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != 1 || cells[7] != 14 {
		t.Errorf("EmptyCells = %v, want board order starting at 1 ending at 14", cells)
	}
}

func TestGridString(t *testing.T) {
	g := gridFromRows([Size][Size]int{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 8},
	})

	want := "2,0,0,0 / 0,4,0,0 / 0,0,0,0 / 0,0,0,8"
	if got := g.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
