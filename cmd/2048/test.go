package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/logging"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the built-in move self-test",
	Long: `Slides a fixed set of rows and compares each result with the expected
one. Exits with status 1 on the first mismatch.`,
	Args: cobra.NoArgs,
	Run:  runTest,
}

func runTest(cmd *cobra.Command, args []string) {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := selfTest(os.Stdout, logger, engine.Fixtures); err != nil {
		os.Exit(1)
	}
}

// selfTest runs the fixtures and reports to w. A failure is described on w
// and returned.
func selfTest(w io.Writer, logger *log.Logger, fixtures []engine.Fixture) error {
	n, err := engine.SelfTest(fixtures)
	if err == nil {
		fmt.Fprintf(w, "All %d tests executed successfully\n", n)
		return nil
	}

	var fe *engine.FixtureError
	if errors.As(err, &fe) {
		fmt.Fprintln(w, fe.Error())
	}
	logger.Error("self-test failed", "passed", n, "error", err)
	return err
}
