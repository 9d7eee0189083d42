package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/engine"
)

// ErrNoKeyboard is returned when standard input is not an interactive terminal.
var ErrNoKeyboard = errors.New("cannot read keyboard input")

// Result summarizes a finished session.
type Result struct {
	Score    uint32
	MaxTile  uint32
	Moves    int
	GameOver bool
}

// RequireTerminal fails with ErrNoKeyboard unless f is a terminal.
func RequireTerminal(f *os.File) error {
	if !term.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("%w: %s is not a terminal", ErrNoKeyboard, f.Name())
	}
	return nil
}

// TerminalSize returns the size of the terminal behind f, or the fallback
// when it cannot be determined.
func TerminalSize(f *os.File, fallbackW, fallbackH int) (int, int) {
	if w, h, err := term.GetSize(int(f.Fd())); err == nil {
		return w, h
	}
	return fallbackW, fallbackH
}

// Run plays one session until the user quits or ctx is cancelled.
// The terminal is restored before Run returns.
func Run(ctx context.Context, game *engine.Game, opts Options) (Result, error) {
	model := NewModel(game, opts)
	model.logger.Info("session start", "scheme", opts.Scheme.Name, "spawn_delay", opts.SpawnDelay)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if m, ok := finalModel.(Model); ok {
		model = m
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			model.logger.Info("terminated", "reason", ctx.Err())
			return model.Result(), nil
		}
		return model.Result(), err
	}

	return model.Result(), nil
}
