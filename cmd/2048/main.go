// 2048 is the sliding-tile puzzle played in the terminal.
//
// Usage:
//
//	2048 [scheme]            - Play (optionally with a color scheme)
//	2048 pick                - Pick a color scheme interactively, then play
//	2048 schemes             - List configured color schemes
//	2048 test                - Run the built-in move self-test
//	2048 key                 - Show how key presses are decoded
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.2048/config.yaml)
//	--seed <value>      - RNG seed for reproducible games
//	--delay <duration>  - Pause between a move and the new tile
//	--log-file <path>   - Write session logs to a file
//	--log-level <name>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagScheme   string
	flagSeed     int64
	flagDelay    string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "2048 [scheme]",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `2048 is played on a 4x4 board. Each move slides every tile as far as
it goes; two equal tiles that collide merge into one worth their sum.
After every move that changes the board a new 2 (or sometimes 4) appears.
The game ends when no move is left.

Controls:
  Arrows, WASD, HJKL  - Slide
  R                   - Restart
  Ctrl+L              - Redraw
  Q                   - Quit (asks first)
  Ctrl+C              - Quit immediately

Examples:
  2048
  2048 blackwhite
  2048 --scheme bluered --seed 42
  2048 --delay 0s --log-file /tmp/2048.log
  2048 test`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	Run:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDelay, "delay", "", "Spawn delay, e.g. 150ms (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write session logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagScheme, "scheme", "", "Color scheme (see '2048 schemes')")

	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(schemesCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(keyCmd)
}
