package core

// Color is an xterm-256 palette index used for a cell's foreground or
// background. ColorDefault leaves the terminal's own color in place.
type Color int16

// ColorDefault means "no explicit color".
const ColorDefault Color = -1

// ColorBrightRed highlights alerts such as the game-over line.
const ColorBrightRed Color = 9

// Valid reports whether c is ColorDefault or a palette index in 0..255.
func (c Color) Valid() bool {
	return c == ColorDefault || (c >= 0 && c <= 255)
}
