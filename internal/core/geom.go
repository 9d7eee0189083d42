// Package core provides the terminal-independent building blocks shared by
// the game and the presentation layer: a colored cell buffer, rectangles,
// input actions and runtime configuration. It does not import Bubble Tea.
package core

// Rect represents an axis-aligned area on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterIn returns a w×h rectangle centered inside an area of the given
// size. Offsets never go negative so a too-small area pins to the origin.
func CenterIn(areaW, areaH, w, h int) Rect {
	return Rect{
		X: Clamp((areaW-w)/2, 0, areaW),
		Y: Clamp((areaH-h)/2, 0, areaH),
		W: w,
		H: h,
	}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
