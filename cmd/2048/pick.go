package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/platform/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a color scheme, then play",
	Long:  `Shows the configured color schemes with a preview of their tiles and starts a game with the chosen one.`,
	Args:  cobra.NoArgs,
	Run:   runPick,
}

func runPick(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := tui.RequireTerminal(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signalContext()
	defer stop()

	def := core.DefaultConfig()
	width, height := tui.TerminalSize(os.Stdout, def.ScreenW, def.ScreenH)

	scheme, ok, err := tui.RunSchemeSelector(ctx, &cfg, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// User quit the menu
	if !ok {
		return
	}

	if err := play(ctx, cfg, scheme); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
