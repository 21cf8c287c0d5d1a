package model

import (
	"time"

	"github.com/lmnp-dev/lmnp/internal/money"
)

// RefNone is the sentinel reference meaning "no piece reference".
const RefNone = "N/A"

// DateFormat is the on-disk date layout for journal entries.
const DateFormat = "2006-01-02"

// LedgerLine is one movement of an entry: a debit or a credit on an
// account. By convention exactly one of Debit/Credit is non-zero; the
// AddDebit/AddCredit helpers maintain this.
type LedgerLine struct {
	Account string
	Debit   money.Amount
	Credit  money.Amount
	Label   string // optional line-specific label
}

// Entry is one balanced transaction composed of one or more lines.
type Entry struct {
	ID      int
	Date    time.Time
	Journal string // journal code: BQ, AC, VT, OD, AN
	Label   string
	Ref     string // piece reference; "" or RefNone means none
	Lines   []LedgerLine

	// Transient import metadata, never persisted.
	SourceFile string
	ParserType string
	Err        error
	Warnings   []string
}

// AddLine appends a line as-is.
func (e *Entry) AddLine(account string, debit, credit money.Amount, label string) {
	e.Lines = append(e.Lines, LedgerLine{Account: account, Debit: debit, Credit: credit, Label: label})
}

// AddDebit appends a debit movement.
func (e *Entry) AddDebit(account string, amount money.Amount, label string) {
	e.AddLine(account, amount, money.Zero(), label)
}

// AddCredit appends a credit movement.
func (e *Entry) AddCredit(account string, amount money.Amount, label string) {
	e.AddLine(account, money.Zero(), amount, label)
}

// Balance returns the entry's total debit minus total credit. A valid
// entry balances to zero.
func (e *Entry) Balance() money.Amount {
	total := money.Zero()
	for _, l := range e.Lines {
		total = total.Add(l.Debit).Sub(l.Credit)
	}
	return total
}

// Balanced reports whether debits equal credits to the cent.
func (e *Entry) Balanced() bool {
	return e.Balance().IsZero()
}

// Valid reports whether the entry can be committed: no import error, at
// least one line, and balanced.
func (e *Entry) Valid() bool {
	return e.Err == nil && len(e.Lines) > 0 && e.Balanced()
}

// HasRef reports whether the entry carries a real piece reference.
func (e *Entry) HasRef() bool {
	return e.Ref != "" && e.Ref != RefNone
}
