package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile2048/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorFrame:       lipgloss.NewStyle().Foreground(lipgloss.Color("#bbada0")),
	core.ColorTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("#edc22e")).Bold(true),

	// Classic tile palette.
	core.ColorTile2:     tileStyle("#eee4da"),
	core.ColorTile4:     tileStyle("#ede0c8"),
	core.ColorTile8:     tileStyle("#f2b179"),
	core.ColorTile16:    tileStyle("#f59563"),
	core.ColorTile32:    tileStyle("#f67c5f"),
	core.ColorTile64:    tileStyle("#f65e3b"),
	core.ColorTile128:   tileStyle("#edcf72"),
	core.ColorTile256:   tileStyle("#edcc61"),
	core.ColorTile512:   tileStyle("#edc850"),
	core.ColorTile1024:  tileStyle("#edc53f"),
	core.ColorTile2048:  tileStyle("#edc22e"),
	core.ColorTileSuper: lipgloss.NewStyle().Foreground(lipgloss.Color("#f9f6f2")).Background(lipgloss.Color("#3c3a32")).Bold(true),
}

func tileStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
