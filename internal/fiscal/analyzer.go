package fiscal

import (
	"github.com/lmnp-dev/lmnp/internal/model"
	"github.com/lmnp-dev/lmnp/internal/money"
	"github.com/lmnp-dev/lmnp/internal/stock"
)

// Analysis holds every figure of the carry-forward tax computation for
// one fiscal year, cent-exact throughout.
type Analysis struct {
	ResultBeforeDepreciation money.Amount
	DeductionCeiling         money.Amount
	TotalDepreciation        money.Amount
	DeductibleDepreciation   money.Amount

	DepreciationCreated money.Amount // excess depreciation deferred
	DepreciationUsed    money.Amount
	DeficitCreated      money.Amount
	DeficitUsed         money.Amount

	Opening stock.Stock
	Closing stock.Stock

	TaxableResult money.Amount
}

// Analyzer runs one fiscal year's closing: balance aggregation,
// year-rules figures and the carry-forward computation.
type Analyzer struct {
	year     int
	register []model.Asset
	opening  stock.Stock
	balances *Balances
	rules    Rules
	warning  string

	analysis *Analysis
}

// NewAnalyzer builds an analyzer over the year's entries, the asset
// register and the opening carry-forward stocks. When the year has no
// registered rules, Warning() reports the fallback that was applied.
func NewAnalyzer(entries []*model.Entry, register []model.Asset, opening stock.Stock, year int) (*Analyzer, error) {
	factory, warning, err := Resolve(year)
	if err != nil {
		return nil, err
	}
	balances := NewBalances(entries, year)
	return &Analyzer{
		year:     year,
		register: register,
		opening:  opening,
		balances: balances,
		rules:    factory(balances),
		warning:  warning,
	}, nil
}

// Year returns the fiscal year under analysis.
func (a *Analyzer) Year() int {
	return a.year
}

// Warning returns the non-fatal rules-fallback notice, "" when the
// exact year's rules applied.
func (a *Analyzer) Warning() string {
	return a.warning
}

// Rules exposes the resolved year rules.
func (a *Analyzer) Rules() Rules {
	return a.rules
}

// Balances exposes the aggregated period balances.
func (a *Analyzer) Balances() *Balances {
	return a.balances
}

// BookResult is the accounting result: revenue minus all charges
// including depreciation.
func (a *Analyzer) BookResult() money.Amount {
	r := a.rules
	return r.Revenue().Sub(r.OperatingExpenses().Add(r.FinancialExpenses()).Add(r.Depreciation()))
}

// Analyze runs the carry-forward computation once and memoizes it.
//
// Depreciation can never create or deepen a loss: the deductible part
// is capped by the pre-depreciation result, and the excess feeds the
// depreciation reserve. A positive intermediate result then consumes
// the depreciation reserve strictly before the deficit reserve; the
// order is a regime rule and changes the final figure.
func (a *Analyzer) Analyze() Analysis {
	if a.analysis != nil {
		return *a.analysis
	}

	r := a.rules
	result := Analysis{Opening: a.opening}

	result.ResultBeforeDepreciation = r.Revenue().Sub(r.OperatingExpenses().Add(r.FinancialExpenses()))
	result.DeductionCeiling = money.Max(result.ResultBeforeDepreciation, money.Zero())
	result.TotalDepreciation = r.Depreciation()
	result.DeductibleDepreciation = money.Min(result.DeductionCeiling, result.TotalDepreciation)
	result.DepreciationCreated = result.TotalDepreciation.Sub(result.DeductibleDepreciation)

	intermediate := result.ResultBeforeDepreciation.Sub(result.DeductibleDepreciation)

	if intermediate.GreaterThan(money.Zero()) && a.opening.Depreciation.GreaterThan(money.Zero()) {
		result.DepreciationUsed = money.Min(intermediate, a.opening.Depreciation)
		intermediate = intermediate.Sub(result.DepreciationUsed)
	}
	if intermediate.GreaterThan(money.Zero()) && a.opening.Deficit.GreaterThan(money.Zero()) {
		result.DeficitUsed = money.Min(intermediate, a.opening.Deficit)
		intermediate = intermediate.Sub(result.DeficitUsed)
	}

	// A pre-depreciation loss becomes a deferred deficit, independent
	// of the reserve movements above.
	if result.ResultBeforeDepreciation.IsNegative() {
		result.DeficitCreated = result.ResultBeforeDepreciation.Abs()
	}

	result.Closing = stock.Stock{
		Depreciation: a.opening.Depreciation.Add(result.DepreciationCreated).Sub(result.DepreciationUsed),
		Deficit:      a.opening.Deficit.Add(result.DeficitCreated).Sub(result.DeficitUsed),
	}
	result.TaxableResult = intermediate

	a.analysis = &result
	return result
}
