package fiscal

import (
	"errors"
	"fmt"

	"github.com/lmnp-dev/lmnp/internal/money"
)

// ErrNoRules is returned when no year rules are registered at all.
var ErrNoRules = errors.New("fiscal: no year rules registered")

// Rules maps ledger balances onto the figures of one fiscal year's tax
// form. Each method reads the period balances it was built over.
type Rules interface {
	Treasury() money.Amount
	Receivables() money.Amount
	Capital() money.Amount
	Loans() money.Amount
	SupplierDebts() money.Amount
	Revenue() money.Amount
	OperatingExpenses() money.Amount
	FinancialExpenses() money.Amount
	Depreciation() money.Amount
	GrossAssets() money.Amount
	AccumulatedDepreciation() money.Amount
}

// Factory builds the rules of one supported year over a set of
// balances.
type Factory func(b *Balances) Rules

// registry holds the closed set of supported years.
var registry = map[int]Factory{
	2025: func(b *Balances) Rules { return &year2025{b: b} },
}

// Resolve returns the rules factory for a fiscal year. When the exact
// year is not registered it degrades to the latest registered year's
// rules applied to the requested year's data, returning a non-empty
// warning. This is the only recoverable rules-mismatch path; an empty
// registry is a configuration failure.
func Resolve(year int) (Factory, string, error) {
	if f, ok := registry[year]; ok {
		return f, "", nil
	}

	latest := 0
	for y := range registry {
		if y > latest {
			latest = y
		}
	}
	if latest == 0 {
		return nil, "", ErrNoRules
	}
	warning := fmt.Sprintf("no fiscal rules for %d, falling back to %d rules", year, latest)
	return registry[latest], warning, nil
}
