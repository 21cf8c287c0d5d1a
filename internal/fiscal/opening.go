package fiscal

import (
	"sort"
	"strings"
	"time"

	"github.com/lmnp-dev/lmnp/internal/accounts"
	"github.com/lmnp-dev/lmnp/internal/amortization"
	"github.com/lmnp-dev/lmnp/internal/model"
	"github.com/lmnp-dev/lmnp/internal/money"
)

// CapitalAccount receives the opening-balance plug (compte de
// l'exploitant) and the treasury closing transfer.
const CapitalAccount = "108000"

// Classify maps a component name onto its asset account and, for
// depreciable categories, its accumulated-depreciation account.
// Matching is a case-insensitive substring scan over a fixed keyword
// table; unmatched names fall back to the general-fittings accounts.
func Classify(name string) (assetAccount, amortAccount string) {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "terrain"):
		return "211000", "" // land never depreciates
	case strings.Contains(n, "meuble") || strings.Contains(n, "mobilier"):
		return "218400", "281840"
	case strings.Contains(n, "gros oeuvre") || strings.Contains(n, "façade") || strings.Contains(n, "mur"):
		return "213000", "281300"
	case strings.Contains(n, "installation") || strings.Contains(n, "cuisine"):
		return "218100", "281200"
	default:
		return "212000", "281200"
	}
}

// OpeningBalance reconstructs the balance-sheet state at January 1 of
// the target year. The ledger only records current-year flows, so
// prior years' capital and accumulated depreciation are re-derived
// from the asset register instead of being read from storage.
type OpeningBalance struct {
	register []model.Asset
	year     int
}

// NewOpeningBalance creates the calculator for one target year.
func NewOpeningBalance(register []model.Asset, year int) *OpeningBalance {
	return &OpeningBalance{register: register, year: year}
}

// GrossValue sums every component value across the register.
func (o *OpeningBalance) GrossValue() money.Amount {
	total := money.Zero()
	for _, a := range o.register {
		total = total.Add(a.GrossValue())
	}
	return total
}

// CumulativeDepreciation sums each component's yearly charges from its
// in-service year through the year before the target year.
func (o *OpeningBalance) CumulativeDepreciation() money.Amount {
	total := money.Zero()
	for _, a := range o.register {
		for _, c := range a.Components {
			total = total.Add(o.componentDepreciation(a.InServiceDate, c))
		}
	}
	return total
}

// Capital is the opening equity plug: gross assets minus accumulated
// depreciation, assuming no other opening liabilities are modeled.
func (o *OpeningBalance) Capital() money.Amount {
	return o.GrossValue().Sub(o.CumulativeDepreciation())
}

// Lines produces the opening entry's ledger lines: one debit per asset
// category, one credit per accumulated-depreciation category, and the
// capital credit. The three groups sum to zero by construction.
func (o *OpeningBalance) Lines(chart *accounts.Service) []model.LedgerLine {
	assetBalances := make(map[string]money.Amount)
	amortBalances := make(map[string]money.Amount)

	for _, a := range o.register {
		for _, c := range a.Components {
			assetAcc, amortAcc := Classify(c.Name)
			assetBalances[assetAcc] = assetBalances[assetAcc].Add(c.Value)
			if c.Years > 0 && amortAcc != "" {
				amt := o.componentDepreciation(a.InServiceDate, c)
				if !amt.IsZero() {
					amortBalances[amortAcc] = amortBalances[amortAcc].Add(amt)
				}
			}
		}
	}

	var lines []model.LedgerLine
	for _, acc := range sortedKeys(assetBalances) {
		val := assetBalances[acc]
		if val.IsZero() {
			continue
		}
		lines = append(lines, model.LedgerLine{
			Account: acc,
			Debit:   val,
			Label:   "Reprise " + chart.Label(acc),
		})
	}
	for _, acc := range sortedKeys(amortBalances) {
		val := amortBalances[acc]
		if val.IsZero() {
			continue
		}
		lines = append(lines, model.LedgerLine{
			Account: acc,
			Credit:  val,
			Label:   "Reprise " + chart.Label(acc),
		})
	}
	lines = append(lines, model.LedgerLine{
		Account: CapitalAccount,
		Credit:  o.Capital(),
		Label:   "Capital Initial (A-Nouveaux)",
	})
	return lines
}

// Entry synthesizes the opening entry, dated January 1 on the opening
// journal. It is fed straight to the export, bypassing Journal.Add.
func (o *OpeningBalance) Entry(chart *accounts.Service) *model.Entry {
	e := &model.Entry{
		Date:    time.Date(o.year, time.January, 1, 0, 0, 0, 0, time.UTC),
		Journal: accounts.OpeningJournal,
		Label:   "Bilan d'ouverture",
		Ref:     model.RefNone,
		Lines:   o.Lines(chart),
	}
	return e
}

func (o *OpeningBalance) componentDepreciation(inService time.Time, c model.Component) money.Amount {
	total := money.Zero()
	for y := inService.Year(); y < o.year; y++ {
		total = total.Add(amortization.Dotation(c.Value, c.Years, inService, y))
	}
	return total
}

func sortedKeys(m map[string]money.Amount) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
