package core

// Color represents a foreground color for a screen cell.
// The platform layer decides how each color is displayed.
type Color uint8

// Predefined colors for text and frame elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorFrame // board grid lines
	ColorTitle // heading text
)

// Tile colors, one per tile value from 2 up to 2048.
// Values above 2048 share ColorTileSuper.
const (
	ColorTile2 Color = iota + 32
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper
)

// TileColor returns the palette color for a tile value.
// Empty cells (zero) get ColorDefault.
func TileColor(value int) Color {
	if value < 2 {
		return ColorDefault
	}
	c := ColorTile2
	for v := 2; v < value; v <<= 1 {
		c++
		if c == ColorTileSuper {
			return c
		}
	}
	return c
}
