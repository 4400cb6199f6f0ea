// Package cli provides the Cobra command structure for goxmllint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/goxmllint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root goxmllint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "goxmllint",
		Short: "A self-fixing indentation linter for XML",
		Long: `goxmllint checks that every element of an XML document is indented one
level deeper than its parent, and that closing tags on their own line line up
with their opening tags.

Indentation is read from .goxmllint.yml, .editorconfig files, or flags.
Violations can be fixed in place; fixes are refused for documents whose
tags do not balance.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newLintCommand(info))
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Registered before lookup so that "--help --color never" parses --help
	// as a bool flag instead of consuming the next argument.
	rootCmd.InitDefaultHelpFlag()
	for _, sub := range rootCmd.Commands() {
		sub.InitDefaultHelpFlag()
	}

	NewHelpFormatter(&color).ApplyToCommand(rootCmd)

	return rootCmd
}
