// Package fiscal implements the year closing: balance aggregation over
// the ledger, opening-balance reconstruction from the asset register,
// year-specific tax rules and the carry-forward computation, and the
// printable report document.
package fiscal

import (
	"strings"

	"github.com/lmnp-dev/lmnp/internal/accounts"
	"github.com/lmnp-dev/lmnp/internal/model"
	"github.com/lmnp-dev/lmnp/internal/money"
)

// Balances holds the signed per-account balance of one fiscal year:
// debits positive, credits negative.
type Balances struct {
	byAccount map[string]money.Amount
}

// NewBalances aggregates entries dated within the fiscal year. Entries
// on the opening journal are a point-in-time snapshot, not a period
// flow, so they are excluded.
func NewBalances(entries []*model.Entry, year int) *Balances {
	b := &Balances{byAccount: make(map[string]money.Amount)}
	for _, e := range entries {
		if e.Date.Year() != year || e.Journal == accounts.OpeningJournal {
			continue
		}
		for _, l := range e.Lines {
			b.byAccount[l.Account] = b.byAccount[l.Account].Add(l.Debit).Sub(l.Credit)
		}
	}
	return b
}

// Account returns the signed balance of one account.
func (b *Balances) Account(code string) money.Amount {
	return b.byAccount[code]
}

// SumPrefix sums balances over accounts whose code starts with prefix.
// This is the primitive every derived figure is built from.
func (b *Balances) SumPrefix(prefix string) money.Amount {
	total := money.Zero()
	for code, bal := range b.byAccount {
		if strings.HasPrefix(code, prefix) {
			total = total.Add(bal)
		}
	}
	return total
}

// SplitPrefix sums the prefix's debit-side and credit-side account
// balances separately: accounts in debit yield receivables, accounts in
// credit yield payables. The credit side is returned as a positive
// amount.
func (b *Balances) SplitPrefix(prefix string) (debit, credit money.Amount) {
	for code, bal := range b.byAccount {
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		if bal.IsNegative() {
			credit = credit.Add(bal.Neg())
		} else {
			debit = debit.Add(bal)
		}
	}
	return debit, credit
}
