package fiscal

import "github.com/lmnp-dev/lmnp/internal/money"

// year2025 maps account-prefix sums onto the 2025 form figures. Balance
// conventions: asset and expense accounts carry debit (positive)
// balances, liability and revenue accounts carry credit (negative)
// balances, hence the sign flips below.
type year2025 struct {
	b *Balances
}

func (y *year2025) Treasury() money.Amount {
	return y.b.SumPrefix("5")
}

func (y *year2025) Receivables() money.Amount {
	return y.b.SumPrefix("4")
}

func (y *year2025) Capital() money.Amount {
	return y.b.SumPrefix("10").Add(y.b.SumPrefix("11")).Neg()
}

func (y *year2025) Loans() money.Amount {
	return y.b.SumPrefix("16").Neg()
}

func (y *year2025) SupplierDebts() money.Amount {
	return y.b.SumPrefix("40").Neg()
}

func (y *year2025) Revenue() money.Amount {
	return y.b.SumPrefix("70").Add(y.b.SumPrefix("75")).Add(y.b.SumPrefix("79")).Neg()
}

func (y *year2025) OperatingExpenses() money.Amount {
	total := money.Zero()
	for _, p := range []string{"60", "61", "62", "63", "64", "65"} {
		total = total.Add(y.b.SumPrefix(p))
	}
	return total
}

func (y *year2025) FinancialExpenses() money.Amount {
	return y.b.SumPrefix("66")
}

func (y *year2025) Depreciation() money.Amount {
	return y.b.SumPrefix("68")
}

func (y *year2025) GrossAssets() money.Amount {
	return y.b.SumPrefix("20").Add(y.b.SumPrefix("21"))
}

func (y *year2025) AccumulatedDepreciation() money.Amount {
	return y.b.SumPrefix("28").Neg()
}
