package tui

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
)

const (
	tileW = 7 // Width of a tile in characters
	tileH = 3 // Height of a tile in lines

	boardW = engine.Size * tileW
	boardH = engine.Size * tileH

	// header, blank, board, blank, footer, status
	layoutW = boardW
	layoutH = 1 + 1 + boardH + 1 + 1 + 1
)

// boardView is everything needed to draw one frame of the board.
type boardView struct {
	snap   engine.Snapshot
	scheme config.Scheme
	status string
	alert  bool // status is drawn in red
}

// drawFrame draws the board view centered on dst.
func drawFrame(dst *core.Screen, v boardView) {
	dst.Clear()

	if dst.Width() < layoutW || dst.Height() < layoutH {
		drawTooSmall(dst)
		return
	}

	area := core.CenterIn(dst.Width(), dst.Height(), layoutW, layoutH)

	// Header: title left, score right
	dst.DrawText(area.X, area.Y, fmt.Sprintf("2048 %*d pts", layoutW-len("2048  pts"), v.snap.Score))

	drawTiles(dst, area.X, area.Y+2, v.snap.Grid, v.scheme)

	footerY := area.Y + 2 + boardH + 1
	drawCentered(dst, area, footerY, "←,↑,→,↓ or q")

	if v.status != "" {
		x := area.X + (layoutW-utf8.RuneCountInString(v.status))/2
		if v.alert {
			dst.DrawStyledText(x, footerY+1, v.status, core.ColorBrightRed, core.ColorDefault)
		} else {
			dst.DrawText(x, footerY+1, v.status)
		}
	}
}

// drawTiles draws the grid as 7x3 colored blocks with the value centered.
func drawTiles(dst *core.Screen, originX, originY int, grid engine.Grid, scheme config.Scheme) {
	for y := range engine.Size {
		for x := range engine.Size {
			e := grid[x][y]
			colors := scheme.Colors(e)
			rect := core.NewRect(originX+x*tileW, originY+y*tileH, tileW, tileH)

			dst.FillRect(rect, core.Cell{Rune: ' ', FG: colors.Foreground, BG: colors.Background})

			label := "·"
			if e != 0 {
				label = strconv.FormatUint(uint64(engine.TileValue(e)), 10)
			}
			pad := tileW - utf8.RuneCountInString(label)
			dst.DrawText(rect.X+pad-pad/2, rect.Y+1, label)
		}
	}
}

func drawCentered(dst *core.Screen, area core.Rect, y int, text string) {
	x := area.X + (area.W-utf8.RuneCountInString(text))/2
	dst.DrawText(x, y, text)
}

// drawTooSmall shows a "window too small" message.
func drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", layoutW, layoutH+1))
}
