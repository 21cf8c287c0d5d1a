package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmnp-dev/lmnp/internal/config"
	"github.com/lmnp-dev/lmnp/internal/stock"
)

func newInitCommand(dir *string) *cobra.Command {
	var name string
	var siren string
	var year int

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialiser un nouveau dossier comptable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(*dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			if year == 0 {
				year = time.Now().Year()
			}
			return runInit(root, name, siren, year)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&siren, "siren", "000000000", "SIREN of the filing entity")
	cmd.Flags().IntVar(&year, "year", 0, "fiscal year (default: current year)")

	return cmd
}

func runInit(root, name, siren string, year int) error {
	if err := os.MkdirAll(filepath.Join(root, "data"), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfgPath := filepath.Join(root, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("project already initialized (%s exists)", config.FileName)
	}

	cfg := config.Default(name, siren, year)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Empty register and zero carry-forward stocks: a first year starts
	// from nothing.
	if err := os.WriteFile(cfg.AssetsPath(root), []byte("[]\n"), 0o644); err != nil {
		return fmt.Errorf("writing asset register: %w", err)
	}
	if err := stock.Save(cfg.StockPath(root), stock.Stock{}); err != nil {
		return fmt.Errorf("writing stock file: %w", err)
	}

	fmt.Printf("Dossier LMNP initialisé dans %s (exercice %d)\n", root, year)
	return nil
}
