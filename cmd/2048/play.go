package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/logging"
	"github.com/vovakirdan/term2048/internal/platform/tui"
)

// errUsage marks errors caused by bad arguments rather than the environment.
var errUsage = errors.New("invalid arguments")

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scheme, err := resolveScheme(cfg, flagScheme, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, schemeHint(cfg))
		os.Exit(1)
	}

	ctx, stop := signalContext()
	defer stop()

	if err := play(ctx, cfg, scheme); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// signalContext is cancelled on SIGINT or SIGTERM so a running program can
// restore the terminal before exiting.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// play runs one interactive session with the given scheme and prints the
// final score.
func play(ctx context.Context, cfg config.Config, scheme config.Scheme) error {
	if err := tui.RequireTerminal(os.Stdin); err != nil {
		return err
	}

	rc, err := runtimeConfig(cfg, flagSeed, flagDelay)
	if err != nil {
		return err
	}
	rc.ScreenW, rc.ScreenH = tui.TerminalSize(os.Stdout, rc.ScreenW, rc.ScreenH)

	logger, closeLog, err := sessionLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("game start", "seed", rc.Seed, "scheme", scheme.Name)
	game := engine.NewSeeded(rc.Seed)

	res, err := tui.Run(ctx, game, tui.Options{
		Scheme:     scheme,
		SpawnDelay: rc.SpawnDelay,
		ScreenW:    rc.ScreenW,
		ScreenH:    rc.ScreenH,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	printResult(res)
	return nil
}

// resolveScheme picks the scheme from the --scheme flag, the positional
// argument or the config default, in that order.
func resolveScheme(cfg config.Config, flag string, args []string) (config.Scheme, error) {
	name := cfg.Scheme
	switch {
	case flag != "" && len(args) > 0 && args[0] != flag:
		return config.Scheme{}, fmt.Errorf("%w: scheme given twice (%q and %q)", errUsage, flag, args[0])
	case flag != "":
		name = flag
	case len(args) > 0:
		name = args[0]
	}
	return cfg.Lookup(name)
}

func schemeHint(cfg config.Config) string {
	return "Available schemes: " + strings.Join(cfg.SchemeNames(), ", ")
}

// runtimeConfig builds the session settings from config and flags.
func runtimeConfig(cfg config.Config, seed int64, delay string) (core.RuntimeConfig, error) {
	rc := core.DefaultConfig()
	rc.SpawnDelay = cfg.SpawnDelay

	if delay != "" {
		d, err := time.ParseDuration(delay)
		if err != nil {
			return rc, fmt.Errorf("%w: --delay: %w", errUsage, err)
		}
		if d < 0 {
			return rc, fmt.Errorf("%w: --delay must not be negative", errUsage)
		}
		rc.SpawnDelay = d
	}

	rc.Seed = seed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	return rc, nil
}

// sessionLogger returns a file logger when path is set. Without a file the
// session logs nowhere, since the game owns the terminal.
func sessionLogger(path, level string) (*log.Logger, func() error, error) {
	if path == "" {
		if _, err := log.ParseLevel(level); err != nil {
			return nil, nil, fmt.Errorf("%w: --log-level %q", errUsage, level)
		}
		return logging.Discard(), func() error { return nil }, nil
	}
	return logging.OpenFile(path, level)
}

func printResult(res tui.Result) {
	fmt.Printf("Score: %d  Best tile: %d  Moves: %d\n", res.Score, res.MaxTile, res.Moves)
	if res.GameOver {
		fmt.Println("Game over.")
	}
}
