package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmnp-dev/lmnp/internal/journal"
	"github.com/lmnp-dev/lmnp/internal/model"
	"github.com/lmnp-dev/lmnp/internal/money"
)

func newStatusCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Afficher l'état du journal de l'exercice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*dir)
			if err != nil {
				return err
			}
			return runStatus(p)
		},
	}
	return cmd
}

func runStatus(p *project) error {
	jnl, err := journal.Load(p.journalPath(), p.year())
	if err != nil {
		return err
	}

	entries := jnl.Entries()
	fmt.Printf("Exercice %d — %s\n", p.year(), p.cfg.Business.Name)
	fmt.Printf("Écritures : %d\n", len(entries))

	byJournal := make(map[string]int)
	treasury := money.Zero()
	var last *model.Entry
	for _, e := range entries {
		byJournal[e.Journal]++
		for _, l := range e.Lines {
			if l.Account == BankAccount {
				treasury = treasury.Add(l.Debit).Sub(l.Credit)
			}
		}
		if last == nil || e.Date.After(last.Date) {
			last = e
		}
	}

	for code, n := range byJournal {
		fmt.Printf("  %s : %d\n", code, n)
	}
	fmt.Printf("Solde banque (%s) : %s €\n", BankAccount, treasury.Display())
	if last != nil {
		fmt.Printf("Dernière écriture : %s (%s)\n", last.Date.Format(model.DateFormat), last.Label)
	}
	return nil
}
