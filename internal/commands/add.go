package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmnp-dev/lmnp/internal/journal"
	"github.com/lmnp-dev/lmnp/internal/model"
	"github.com/lmnp-dev/lmnp/internal/money"
)

func newAddCommand(dir *string) *cobra.Command {
	var (
		dateStr   string
		jnlCode   string
		label     string
		ref       string
		debitAcc  string
		creditAcc string
		amountStr string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Ajouter une écriture simple (un débit, un crédit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*dir)
			if err != nil {
				return err
			}

			date, err := time.Parse(model.DateFormat, dateStr)
			if err != nil {
				return fmt.Errorf("parsing date %q: %w", dateStr, err)
			}
			amount, err := money.Parse(amountStr)
			if err != nil {
				return err
			}

			jnl, err := journal.Load(p.journalPath(), p.year())
			if err != nil {
				return err
			}

			e := &model.Entry{Date: date, Journal: jnlCode, Label: label, Ref: ref}
			e.AddDebit(debitAcc, amount, "")
			e.AddCredit(creditAcc, amount, "")

			if err := jnl.Add(e); err != nil {
				return err
			}
			if err := jnl.Save(); err != nil {
				return err
			}

			fmt.Printf("Écriture %d ajoutée (%s, %s €)\n", e.ID, label, amount.Display())
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "entry date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&jnlCode, "journal", "OD", "journal code (BQ, AC, VT, OD)")
	cmd.Flags().StringVar(&label, "label", "", "entry label (required)")
	_ = cmd.MarkFlagRequired("label")
	cmd.Flags().StringVar(&ref, "ref", "", "piece reference")
	cmd.Flags().StringVar(&debitAcc, "debit", "", "debited account code (required)")
	_ = cmd.MarkFlagRequired("debit")
	cmd.Flags().StringVar(&creditAcc, "credit", "", "credited account code (required)")
	_ = cmd.MarkFlagRequired("credit")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
