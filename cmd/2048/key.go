package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/platform/tui"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Show how key presses are decoded",
	Long: `Prints the name and character codes of each key you press and the game
action it maps to. Useful when a terminal sends unusual sequences for the
arrow keys. Press q or Ctrl+C to leave.`,
	Args: cobra.NoArgs,
	Run:  runKey,
}

func runKey(cmd *cobra.Command, args []string) {
	if err := tui.RequireTerminal(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := sessionLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signalContext()
	defer stop()

	if err := tui.RunKeyProbe(ctx, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
