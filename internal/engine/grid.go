// Package engine implements the 2048 board: the slide-merge row primitive,
// the four directional moves built on board rotation, random tile spawning
// and end-of-game detection. It has no I/O and no dependency on the terminal.
package engine

import (
	"fmt"
	"strings"
)

// Size is the board dimension.
const Size = 4

// MaxExponent is the highest exponent a cell can hold (2^17 = 131072).
// Two tiles at MaxExponent do not merge, so moves keep every cell within it.
const MaxExponent = 17

// Grid holds tile exponents indexed as grid[x][y]: x is the column, y the
// row, with row 0 at the top. A zero cell is empty; any other value e is a
// tile worth 2^e.
type Grid [Size][Size]uint8

// Rotate turns the grid 90 degrees clockwise in place.
func (g *Grid) Rotate() {
	const n = Size
	for i := 0; i < n/2; i++ {
		for j := i; j < n-i-1; j++ {
			tmp := g[i][j]
			g[i][j] = g[j][n-i-1]
			g[j][n-i-1] = g[n-i-1][n-j-1]
			g[n-i-1][n-j-1] = g[n-j-1][i]
			g[n-j-1][i] = tmp
		}
	}
}

func (g *Grid) rotateN(n int) {
	for range n % 4 {
		g.Rotate()
	}
}

// MoveUp slides every column toward row 0.
func (g *Grid) MoveUp() (changed bool, gained uint32) {
	for x := range Size {
		c, s := SlideArray(&g[x])
		changed = changed || c
		gained += s
	}
	return changed, gained
}

// Move applies a move in the given direction. The grid is rotated so that
// dir points up, slid with MoveUp, and rotated back.
// It panics on an invalid direction; Game.Move validates first.
func (g *Grid) Move(dir Direction) (changed bool, gained uint32) {
	if !dir.Valid() {
		panic(fmt.Sprintf("engine: invalid direction %d", dir))
	}

	turns := dir.rotations()
	g.rotateN(turns)
	changed, gained = g.MoveUp()
	g.rotateN(4 - turns)

	return changed, gained
}

// CountEmpty returns the number of empty cells.
func (g *Grid) CountEmpty() int {
	count := 0
	for x := range Size {
		for y := range Size {
			if g[x][y] == 0 {
				count++
			}
		}
	}
	return count
}

// FindPairDown reports whether any column holds two vertically adjacent
// tiles that can merge.
func (g *Grid) FindPairDown() bool {
	for x := range Size {
		for y := 0; y < Size-1; y++ {
			if g[x][y] != 0 && mergeable(g[x][y], g[x][y+1]) {
				return true
			}
		}
	}
	return false
}

// Ended reports whether no move is left: the grid is full and no two
// orthogonally adjacent tiles are equal. The grid is rotated once to check
// rows and rotated back before returning.
func (g *Grid) Ended() bool {
	if g.CountEmpty() > 0 {
		return false
	}
	if g.FindPairDown() {
		return false
	}

	ended := true
	g.Rotate()
	if g.FindPairDown() {
		ended = false
	}
	g.rotateN(3)

	return ended
}

// MaxExponent returns the highest exponent on the grid.
func (g *Grid) MaxExponent() uint8 {
	var best uint8
	for x := range Size {
		for y := range Size {
			best = max(best, g[x][y])
		}
	}
	return best
}

// Validate checks that every cell is within [0, MaxExponent].
func (g *Grid) Validate() error {
	for x := range Size {
		for y := range Size {
			if g[x][y] > MaxExponent {
				return fmt.Errorf("%w: cell (%d,%d) holds exponent %d", ErrInvalidGrid, x, y, g[x][y])
			}
		}
	}
	return nil
}

// Rows returns the grid in row-major order, which reads naturally in
// test fixtures and logs.
func (g *Grid) Rows() [Size][Size]uint8 {
	var rows [Size][Size]uint8
	for x := range Size {
		for y := range Size {
			rows[y][x] = g[x][y]
		}
	}
	return rows
}

// GridFromRows builds a Grid from row-major exponents.
func GridFromRows(rows [Size][Size]uint8) Grid {
	var g Grid
	for y := range Size {
		for x := range Size {
			g[x][y] = rows[y][x]
		}
	}
	return g
}

// String renders the grid row by row as exponents.
func (g Grid) String() string {
	var sb strings.Builder
	rows := g.Rows()
	for y, row := range rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, e := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%2d", e)
		}
	}
	return sb.String()
}

// TileValue returns the displayed value of an exponent (0 for empty).
func TileValue(e uint8) uint32 {
	if e == 0 {
		return 0
	}
	return uint32(1) << e
}
