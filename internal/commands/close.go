package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmnp-dev/lmnp/internal/fiscal"
	"github.com/lmnp-dev/lmnp/internal/journal"
	"github.com/lmnp-dev/lmnp/internal/model"
	"github.com/lmnp-dev/lmnp/internal/money"
)

// BankAccount is the treasury account being zeroed by the closing
// transfer.
const BankAccount = "512000"

func newCloseCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close",
		Short: "Solder la trésorerie vers le compte de l'exploitant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*dir)
			if err != nil {
				return err
			}
			return runClose(p)
		},
	}
	return cmd
}

func runClose(p *project) error {
	year := p.year()
	jnl, err := journal.Load(p.journalPath(), year)
	if err != nil {
		return err
	}

	balance := money.Zero()
	for _, e := range jnl.Entries() {
		for _, l := range e.Lines {
			if l.Account == BankAccount {
				balance = balance.Add(l.Debit).Sub(l.Credit)
			}
		}
	}

	fmt.Printf("Solde du compte %s : %s €\n", BankAccount, balance.Display())
	if balance.IsZero() {
		fmt.Println("Le compte est déjà soldé, aucune écriture nécessaire.")
		return nil
	}

	e := &model.Entry{
		Date:    time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		Journal: "OD",
		Label:   "Virement solde trésorerie vers compte privé (Clôture)",
		Ref:     fmt.Sprintf("CLOTURE%d", year),
	}

	abs := balance.Abs()
	if balance.GreaterThan(money.Zero()) {
		// Surplus goes to the owner's account.
		e.AddDebit(fiscal.CapitalAccount, abs, "")
		e.AddCredit(BankAccount, abs, "")
	} else {
		// Owner covers the shortfall.
		e.AddDebit(BankAccount, abs, "")
		e.AddCredit(fiscal.CapitalAccount, abs, "")
	}

	if err := jnl.Add(e); err != nil {
		return err
	}
	if err := jnl.Save(); err != nil {
		return err
	}

	fmt.Printf("Écriture %d générée : le compte %s est soldé.\n", e.ID, BankAccount)
	return nil
}
