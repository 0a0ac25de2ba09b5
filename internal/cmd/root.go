// Package cmd wires the fse command-line interface: an interactive audit
// session and a non-interactive scorer for pre-filled assessment files.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for fse.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fse",
		Short: "Food service establishment compliance assessment",
		Long: `fse records a structured on-site food-safety audit, computes a
weighted compliance score across six checklist sections, classifies the
facility into a compliance tier, and finalizes the record with the inspector
and facility owner signatures.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "path to config file (default .fse/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "log verbosity: trace, debug, info, warn, error")

	cmd.AddCommand(NewAssessCommand())
	cmd.AddCommand(NewScoreCommand())

	return cmd
}
