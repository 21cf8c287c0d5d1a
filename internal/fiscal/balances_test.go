package fiscal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lmnp-dev/lmnp/internal/model"
	"github.com/lmnp-dev/lmnp/internal/money"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func simpleEntry(d time.Time, journal, debitAcc, creditAcc, amount string) *model.Entry {
	e := &model.Entry{Date: d, Journal: journal, Label: "test"}
	e.AddDebit(debitAcc, money.MustParse(amount), "")
	e.AddCredit(creditAcc, money.MustParse(amount), "")
	return e
}

func TestBalancesFilterByYear(t *testing.T) {
	entries := []*model.Entry{
		simpleEntry(date(2025, 1, 1), "AC", "606000", "512000", "100.00"),
		simpleEntry(date(2024, 12, 31), "AC", "606000", "512000", "200.00"),
	}
	b := NewBalances(entries, 2025)
	assert.Equal(t, "100.00", b.SumPrefix("60").String())
	assert.Equal(t, "-100.00", b.Account("512000").String())
}

func TestBalancesExcludeOpeningJournal(t *testing.T) {
	entries := []*model.Entry{
		simpleEntry(date(2025, 1, 1), "AN", "213000", "108000", "50000.00"),
		simpleEntry(date(2025, 2, 1), "BQ", "512000", "706000", "650.00"),
	}
	b := NewBalances(entries, 2025)
	assert.True(t, b.SumPrefix("21").IsZero(), "opening snapshot is not a period flow")
	assert.Equal(t, "-650.00", b.SumPrefix("70").String())
}

func TestSumPrefixAggregatesAccounts(t *testing.T) {
	entries := []*model.Entry{
		simpleEntry(date(2025, 1, 5), "AC", "606100", "512000", "80.00"),
		simpleEntry(date(2025, 1, 6), "AC", "606300", "512000", "20.00"),
		simpleEntry(date(2025, 1, 7), "AC", "615000", "512000", "30.00"),
	}
	b := NewBalances(entries, 2025)
	assert.Equal(t, "100.00", b.SumPrefix("606").String())
	assert.Equal(t, "130.00", b.SumPrefix("6").String())
	assert.Equal(t, "-130.00", b.SumPrefix("5").String())
	assert.True(t, b.SumPrefix("7").IsZero())
}

func TestSplitPrefix(t *testing.T) {
	entries := []*model.Entry{
		// A tenant owes 650, a supplier is owed 120.
		simpleEntry(date(2025, 3, 1), "VT", "411000", "706000", "650.00"),
		simpleEntry(date(2025, 3, 2), "AC", "615000", "401000", "120.00"),
	}
	b := NewBalances(entries, 2025)
	receivables, payables := b.SplitPrefix("4")
	assert.Equal(t, "650.00", receivables.String())
	assert.Equal(t, "120.00", payables.String())
}
