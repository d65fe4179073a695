// Package cli provides the Cobra command structure for bsllint.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bsltools/bsllint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root bsllint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "bsllint",
		Short: "A fast static analyzer for 1C:Enterprise (BSL) modules",
		Long: `bsllint is a fast static analyzer for 1C:Enterprise (BSL) source modules.

It parses .bsl and .os files into syntax trees and runs a configurable set
of rules over them: magic numbers, forbidden module names, modal window
usage, identifier spelling, and more. Results can be printed for humans or
emitted as JSON or SARIF for CI integration.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
