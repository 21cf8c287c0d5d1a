// Package stock persists the carry-forward reserves between fiscal
// years: deferred excess depreciation (ARD) and deferred deficits.
// Successive year closings form a single-writer chain through this
// file: each analysis reads the opening stocks and writes the closing
// ones for the next year to pick up.
package stock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lmnp-dev/lmnp/internal/money"
)

// Stock holds the two carry-forward reserves. Both are non-negative;
// each only moves by "created" and "used" amounts during a year
// closing.
type Stock struct {
	Depreciation money.Amount `yaml:"depreciation_reserve"`
	Deficit      money.Amount `yaml:"deficit_reserve"`
}

// Load reads the stock file. A missing file yields zero stocks, which
// is the correct state for a first fiscal year.
func Load(path string) (Stock, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Stock{}, nil
	}
	if err != nil {
		return Stock{}, fmt.Errorf("reading stock file %s: %w", path, err)
	}

	var s Stock
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Stock{}, fmt.Errorf("parsing stock file %s: %w", path, err)
	}
	return s, nil
}

// Save overwrites the stock file, creating the directory when needed.
func Save(path string, s Stock) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding stock: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating stock dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing stock file %s: %w", path, err)
	}
	return nil
}
