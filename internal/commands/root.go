// Package commands wires the CLI: each subcommand loads the project
// files, runs one computation pass over the ledger, and writes its
// results once.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmnp-dev/lmnp/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string

	rootCmd := &cobra.Command{
		Use:     "lmnp",
		Short:   "Comptabilité LMNP au réel : journal, amortissements, liasse et FEC",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "project directory")

	rootCmd.AddCommand(newInitCommand(&dir))
	rootCmd.AddCommand(newAddCommand(&dir))
	rootCmd.AddCommand(newAmortizeCommand(&dir))
	rootCmd.AddCommand(newCloseCommand(&dir))
	rootCmd.AddCommand(newReportCommand(&dir))
	rootCmd.AddCommand(newExportCommand(&dir))
	rootCmd.AddCommand(newStatusCommand(&dir))

	return rootCmd
}
