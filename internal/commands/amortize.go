package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmnp-dev/lmnp/internal/amortization"
	"github.com/lmnp-dev/lmnp/internal/assets"
	"github.com/lmnp-dev/lmnp/internal/fiscal"
	"github.com/lmnp-dev/lmnp/internal/journal"
	"github.com/lmnp-dev/lmnp/internal/model"
	"github.com/lmnp-dev/lmnp/internal/money"
)

// DepreciationExpense is the debit account of the annual dotation entry.
const DepreciationExpense = "681100"

func newAmortizeCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amortize",
		Short: "Calculer et comptabiliser les dotations aux amortissements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*dir)
			if err != nil {
				return err
			}
			return runAmortize(p)
		},
	}
	return cmd
}

func runAmortize(p *project) error {
	year := p.year()

	register, err := assets.Load(p.assetsPath())
	if err != nil {
		return err
	}
	jnl, err := journal.Load(p.journalPath(), year)
	if err != nil {
		return err
	}

	e := &model.Entry{
		Date:    time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		Journal: "OD",
		Label:   fmt.Sprintf("Dotations Amortissements %d", year),
		Ref:     fmt.Sprintf("DOTA%d", year),
	}

	total := money.Zero()
	var credits []model.LedgerLine
	for _, a := range register {
		for _, c := range a.Components {
			if c.Years == 0 {
				continue
			}
			amt := amortization.Dotation(c.Value, c.Years, a.InServiceDate, year)
			if amt.IsZero() {
				continue
			}
			total = total.Add(amt)
			_, amortAcc := fiscal.Classify(c.Name)
			credits = append(credits, model.LedgerLine{
				Account: amortAcc,
				Credit:  amt,
				Label:   fmt.Sprintf("Amort. %s - %s", a.Name, c.Name),
			})
		}
	}

	if total.IsZero() {
		fmt.Printf("Aucune dotation pour %d (rien à amortir).\n", year)
		return nil
	}

	e.AddDebit(DepreciationExpense, total, "")
	e.Lines = append(e.Lines, credits...)

	if err := jnl.Add(e); err != nil {
		return err
	}
	if err := jnl.Save(); err != nil {
		return err
	}

	fmt.Printf("Écriture %d générée : dotations %d pour %s €\n", e.ID, year, total.Display())
	return nil
}
