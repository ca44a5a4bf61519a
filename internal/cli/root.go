// Package cli implements the AnalyzeMe command-line interface using Cobra.
// Each subcommand maps to a progression-engine capability (serve, status,
// achievements, backup, etc.).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "analyzeme",
	Short: "AnalyzeMe — personal document analysis with progression",
	Long: `AnalyzeMe analyzes your personal documents with an LLM backend and
rewards usage with experience points, levels, achievements, and streaks.

This binary serves the progression API and inspects local progression state.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
