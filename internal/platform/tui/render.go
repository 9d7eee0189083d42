package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term2048/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache maps color pairs to lipgloss styles. Screens only use a few
// dozen pairs, so styles are built once per pair.
type styleCache map[colorPair]lipgloss.Style

func (c styleCache) get(p colorPair) lipgloss.Style {
	if st, ok := c[p]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if p.fg != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(strconv.Itoa(int(p.fg))))
	}
	if p.bg != core.ColorDefault {
		st = st.Background(lipgloss.Color(strconv.Itoa(int(p.bg))))
	}
	c[p] = st
	return st
}

var styles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
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
			start := s.GetCell(x, y)
			pair := colorPair{fg: start.FG, bg: start.BG}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != pair.fg || cell.BG != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if pair.fg == core.ColorDefault && pair.bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(pair).Render(run.String()))
		}
	}
	return sb.String()
}
