package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lmnp-dev/lmnp/internal/accounts"
	"github.com/lmnp-dev/lmnp/internal/assets"
	"github.com/lmnp-dev/lmnp/internal/fec"
	"github.com/lmnp-dev/lmnp/internal/fiscal"
	"github.com/lmnp-dev/lmnp/internal/journal"
	"github.com/lmnp-dev/lmnp/internal/model"
)

func newExportCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Générer le Fichier des Écritures Comptables (FEC)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*dir)
			if err != nil {
				return err
			}
			return runExport(p)
		},
	}
	return cmd
}

func runExport(p *project) error {
	year := p.year()
	chart := accounts.NewService()

	jnl, err := journal.Load(p.journalPath(), year)
	if err != nil {
		return err
	}
	register, err := assets.Load(p.assetsPath())
	if err != nil {
		return err
	}

	entries := jnl.Entries()
	if len(register) > 0 {
		// The opening entry is synthesized here and exported directly:
		// it never passes through Journal.Add, so the generator's own
		// balance re-check is what stands between it and the file.
		opening := fiscal.NewOpeningBalance(register, year).Entry(chart)
		opening.ID = jnl.NextID()
		entries = append([]*model.Entry{opening}, entries...)
	}

	// Generate fully in memory so a failed export leaves no file.
	var buf bytes.Buffer
	if err := fec.Generate(&buf, entries, chart); err != nil {
		return err
	}

	outPath := filepath.Join(p.root, fec.Filename(p.cfg.Business.Siren, year))
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing FEC: %w", err)
	}

	fmt.Printf("FEC généré : %s (%d écritures)\n", outPath, len(entries))
	return nil
}
