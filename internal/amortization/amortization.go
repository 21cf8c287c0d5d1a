// Package amortization computes straight-line depreciation charges
// prorated to the calendar days a component is in service during a
// fiscal year.
package amortization

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lmnp-dev/lmnp/internal/money"
)

// Dotation returns the depreciation charge for one component and one
// fiscal year. The component depreciates linearly over years years from
// inService; within the first and last calendar years the annual charge
// is prorated by active days over real days in the year, so leap years
// come out right by construction. A full year returns the exact annual
// charge without re-rounding. Non-depreciable components (years <= 0)
// and years outside the active window return zero.
//
// The function is pure: callers sum per-year results to obtain
// cumulative figures.
func Dotation(value money.Amount, years int, inService time.Time, fiscalYear int) money.Amount {
	if years <= 0 {
		return money.Zero()
	}

	rate := decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(years)))
	annual := value.MulDecimal(rate)

	start := day(inService)
	end := start.AddDate(years, 0, 0) // same month/day, years later
	yearStart := time.Date(fiscalYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(fiscalYear, time.December, 31, 0, 0, 0, 0, time.UTC)

	if !end.After(yearStart) || start.After(yearEnd) {
		return money.Zero()
	}

	activeStart := start
	if yearStart.After(activeStart) {
		activeStart = yearStart
	}
	activeEnd := end
	if yearEnd.Before(activeEnd) {
		activeEnd = yearEnd
	}

	activeDays := daysBetween(activeStart, activeEnd) + 1
	daysInYear := daysBetween(yearStart, yearEnd) + 1 // 365 or 366

	if activeDays == daysInYear {
		return annual
	}
	prorata := decimal.NewFromInt(int64(activeDays)).Div(decimal.NewFromInt(int64(daysInYear)))
	return annual.MulDecimal(prorata)
}

// day truncates a timestamp to midnight UTC so day arithmetic is exact.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
