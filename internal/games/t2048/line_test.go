package t2048

import "testing"

func TestCompactLine(t *testing.T) {
	tests := []struct {
		name     string
		input    Line
		expected Line
		points   int
		reached  bool
	}{
		{
			name:     "simple merge",
			input:    Line{2, 2, 0, 0},
			expected: Line{4, 0, 0, 0},
			points:   4,
		},
		{
			name:     "merge with trailing tile",
			input:    Line{2, 2, 2, 0},
			expected: Line{4, 2, 0, 0},
			points:   4,
		},
		{
			name:     "double merge",
			input:    Line{2, 2, 2, 2},
			expected: Line{4, 4, 0, 0},
			points:   8,
		},
		{
			name:     "gap before merge",
			input:    Line{2, 0, 2, 4},
			expected: Line{4, 4, 0, 0},
			points:   4,
		},
		{
			name:     "merged tile does not merge again",
			input:    Line{2, 2, 4, 8},
			expected: Line{4, 4, 8, 0},
			points:   4,
		},
		{
			name:     "no merge possible",
			input:    Line{2, 4, 8, 16},
			expected: Line{2, 4, 8, 16},
		},
		{
			name:     "slide with gap",
			input:    Line{0, 0, 2, 2},
			expected: Line{4, 0, 0, 0},
			points:   4,
		},
		{
			name:     "slide with multiple gaps",
			input:    Line{2, 0, 0, 2},
			expected: Line{4, 0, 0, 0},
			points:   4,
		},
		{
			name:     "no change needed",
			input:    Line{4, 2, 0, 0},
			expected: Line{4, 2, 0, 0},
		},
		{
			name:     "empty line",
			input:    Line{0, 0, 0, 0},
			expected: Line{0, 0, 0, 0},
		},
		{
			name:     "single tile",
			input:    Line{0, 4, 0, 0},
			expected: Line{4, 0, 0, 0},
		},
		{
			name:     "win tile",
			input:    Line{1024, 1024, 0, 0},
			expected: Line{2048, 0, 0, 0},
			points:   2048,
			reached:  true,
		},
		{
			name:     "existing win tile is not a new win",
			input:    Line{2048, 0, 2, 2},
			expected: Line{2048, 4, 0, 0},
			points:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, points, reached := CompactLine(tt.input, WinTile)
			if result != tt.expected {
				t.Errorf("CompactLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if points != tt.points {
				t.Errorf("CompactLine(%v) points = %d, want %d", tt.input, points, tt.points)
			}
			if reached != tt.reached {
				t.Errorf("CompactLine(%v) reached = %v, want %v", tt.input, reached, tt.reached)
			}
		})
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	// [4, 4, 4, 4] becomes [8, 8, 0, 0], not [16, 0, 0, 0]
	result, points, _ := CompactLine(Line{4, 4, 4, 4}, WinTile)

	expected := Line{8, 8, 0, 0}
	if result != expected {
		t.Errorf("CompactLine = %v, want %v", result, expected)
	}
	if points != 16 {
		t.Errorf("points = %d, want 16", points)
	}
}

func TestCompactLineCustomWinTile(t *testing.T) {
	_, _, reached := CompactLine(Line{64, 64, 0, 0}, 128)
	if !reached {
		t.Error("merging into the configured win tile should report reached")
	}
}

func TestCompactLineIdentity(t *testing.T) {
	lines := []Line{
		{2, 4, 8, 16},
		{4, 2, 4, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{2048, 1024, 2, 4},
	}

	for _, line := range lines {
		got, points, _ := CompactLine(line, WinTile)
		if got != line || points != 0 {
			t.Errorf("CompactLine(%v) = %v (%d points), want identity", line, got, points)
		}
	}
}

func TestReverseLine(t *testing.T) {
	got := reverseLine(Line{1, 2, 3, 4})
	if got != (Line{4, 3, 2, 1}) {
		t.Errorf("reverseLine = %v", got)
	}
}
