package model

import (
	"time"

	"github.com/lmnp-dev/lmnp/internal/money"
)

// Component is one depreciable slice of an asset (structural work,
// fittings, furniture...). A zero Years marks a non-depreciable
// component such as land.
type Component struct {
	Name  string
	Value money.Amount
	Years int // useful life in years; 0 = non-depreciable
}

// Asset is a fixed asset from the register, split into components each
// depreciated on its own schedule.
type Asset struct {
	Name          string
	PurchaseDate  time.Time
	InServiceDate time.Time
	PurchaseValue money.Amount
	Components    []Component
}

// GrossValue sums the asset's component values.
func (a Asset) GrossValue() money.Amount {
	total := money.Zero()
	for _, c := range a.Components {
		total = total.Add(c.Value)
	}
	return total
}
