package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/engine"
)

// swatchExponents are the tiles previewed next to each scheme name.
var swatchExponents = []uint8{1, 2, 3, 5, 7, 9, 11}

// SchemeMenuModel lets users pick a color scheme before playing.
type SchemeMenuModel struct {
	schemes  []config.Scheme
	cursor   int
	width    int
	height   int
	choosing bool
	quitting bool
}

// NewSchemeMenuModel creates a scheme picker with the cursor on current.
func NewSchemeMenuModel(schemes []config.Scheme, current string, width, height int) SchemeMenuModel {
	m := SchemeMenuModel{
		schemes:  schemes,
		width:    width,
		height:   height,
		choosing: true,
	}
	for i, s := range schemes {
		if s.Name == current {
			m.cursor = i
			break
		}
	}
	return m
}

// Init initializes the model.
func (m SchemeMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SchemeMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SchemeMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.schemes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.schemes) == 0 {
			return m, nil
		}
		m.choosing = false
		return m, tea.Quit
	}
	return m, nil
}

// View renders the scheme list with a tile preview per scheme.
func (m SchemeMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("2 0 4 8", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select color scheme:", m.width))
	b.WriteString("\n\n")

	for i, s := range m.schemes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		label := fmt.Sprintf("%s%-12s ", cursor, s.Name)
		pad := max((m.width-lipgloss.Width(label)-swatchWidth())/2, 0)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(label)
		b.WriteString(swatch(s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))
	return b.String()
}

func swatchWidth() int {
	return len(swatchExponents) * 6
}

func swatch(s config.Scheme) string {
	var b strings.Builder
	for _, e := range swatchExponents {
		c := s.Colors(e)
		b.WriteString(styles.get(colorPair{fg: c.Foreground, bg: c.Background}).Render(fmt.Sprintf("%5d", engine.TileValue(e))))
		b.WriteString(" ")
	}
	return b.String()
}

// Selected returns the chosen scheme, or false if still choosing.
func (m SchemeMenuModel) Selected() (config.Scheme, bool) {
	if m.choosing || m.quitting || len(m.schemes) == 0 {
		return config.Scheme{}, false
	}
	return m.schemes[m.cursor], true
}

// RunSchemeSelector runs the scheme picker. It returns false when the user
// left without choosing or ctx was cancelled.
func RunSchemeSelector(ctx context.Context, cfg *config.Config, width, height int, opts ...tea.ProgramOption) (config.Scheme, bool, error) {
	model := NewSchemeMenuModel(cfg.Schemes, cfg.Scheme, width, height)

	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts...)
	p := tea.NewProgram(model, opts...)

	finalModel, err := p.Run()
	if ctx.Err() != nil {
		return config.Scheme{}, false, nil
	}
	if err != nil {
		return config.Scheme{}, false, err
	}

	m, ok := finalModel.(SchemeMenuModel)
	if !ok {
		return config.Scheme{}, false, nil
	}
	s, chosen := m.Selected()
	return s, chosen, nil
}

func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
