package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
)

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List color schemes",
	Long:  `Shows the color schemes from the built-in defaults and the loaded config file.`,
	Args:  cobra.NoArgs,
	Run:   runSchemes,
}

func runSchemes(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(formatSchemes(cfg))
	fmt.Println()
	fmt.Println("Run '2048 <scheme>' to play with a scheme.")
}

func formatSchemes(cfg config.Config) string {
	var b strings.Builder
	b.WriteString("Color schemes:\n\n")

	// Calculate column width
	maxNameLen := len("Name")
	for _, s := range cfg.Schemes {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Fprintf(&b, "  %-*s  %s\n", maxNameLen, "Name", "Tiles")
	fmt.Fprintf(&b, "  %-*s  %s\n", maxNameLen, "----", "-----")

	for _, s := range cfg.Schemes {
		marker := ""
		if s.Name == cfg.Scheme {
			marker = " (default)"
		}
		fmt.Fprintf(&b, "  %-*s  %d%s\n", maxNameLen, s.Name, len(s.Tiles), marker)
	}
	return b.String()
}
