package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmnp-dev/lmnp/internal/assets"
	"github.com/lmnp-dev/lmnp/internal/fiscal"
	"github.com/lmnp-dev/lmnp/internal/journal"
	"github.com/lmnp-dev/lmnp/internal/stock"
)

func newReportCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Générer la liasse fiscale et mettre à jour les stocks reportables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*dir)
			if err != nil {
				return err
			}
			return runReport(p)
		},
	}
	return cmd
}

func runReport(p *project) error {
	year := p.year()

	jnl, err := journal.Load(p.journalPath(), year)
	if err != nil {
		return err
	}
	register, err := assets.Load(p.assetsPath())
	if err != nil {
		return err
	}
	opening, err := stock.Load(p.stockPath())
	if err != nil {
		return err
	}

	analyzer, err := fiscal.NewAnalyzer(jnl.Entries(), register, opening, year)
	if err != nil {
		return err
	}
	if w := analyzer.Warning(); w != "" {
		fmt.Println("Attention :", w)
	}

	fmt.Println(analyzer.Report().String())

	analysis := analyzer.Analyze()
	if err := stock.Save(p.stockPath(), analysis.Closing); err != nil {
		return err
	}
	fmt.Printf("Stocks reportables mis à jour pour l'exercice %d.\n", year+1)
	return nil
}
