// Package assets persists the fixed-asset register: the year-independent
// list of assets and their depreciable components.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lmnp-dev/lmnp/internal/model"
	"github.com/lmnp-dev/lmnp/internal/money"
)

type assetDoc struct {
	Name          string         `yaml:"name"`
	PurchaseDate  string         `yaml:"purchase_date"`
	InServiceDate string         `yaml:"in_service_date"`
	PurchaseValue money.Amount   `yaml:"purchase_value"`
	Components    []componentDoc `yaml:"components"`
}

type componentDoc struct {
	Name  string       `yaml:"name"`
	Value money.Amount `yaml:"value"`
	Years int          `yaml:"years"`
}

// Load reads the asset register. A missing file yields an empty register.
func Load(path string) ([]model.Asset, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading asset register %s: %w", path, err)
	}

	var docs []assetDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parsing asset register %s: %w", path, err)
	}

	out := make([]model.Asset, 0, len(docs))
	for i, d := range docs {
		a, err := unmarshalAsset(d)
		if err != nil {
			return nil, fmt.Errorf("asset %d: %w", i+1, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// Save writes the whole register, creating the directory when needed.
func Save(path string, register []model.Asset) error {
	docs := make([]assetDoc, 0, len(register))
	for _, a := range register {
		docs = append(docs, marshalAsset(a))
	}

	data, err := yaml.Marshal(docs)
	if err != nil {
		return fmt.Errorf("encoding asset register: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating asset register dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing asset register %s: %w", path, err)
	}
	return nil
}

func marshalAsset(a model.Asset) assetDoc {
	doc := assetDoc{
		Name:          a.Name,
		PurchaseDate:  a.PurchaseDate.Format(model.DateFormat),
		InServiceDate: a.InServiceDate.Format(model.DateFormat),
		PurchaseValue: a.PurchaseValue,
	}
	for _, c := range a.Components {
		doc.Components = append(doc.Components, componentDoc{Name: c.Name, Value: c.Value, Years: c.Years})
	}
	return doc
}

func unmarshalAsset(d assetDoc) (model.Asset, error) {
	purchase, err := time.Parse(model.DateFormat, d.PurchaseDate)
	if err != nil {
		return model.Asset{}, fmt.Errorf("parsing purchase_date %q: %w", d.PurchaseDate, err)
	}
	inService, err := time.Parse(model.DateFormat, d.InServiceDate)
	if err != nil {
		return model.Asset{}, fmt.Errorf("parsing in_service_date %q: %w", d.InServiceDate, err)
	}
	a := model.Asset{
		Name:          d.Name,
		PurchaseDate:  purchase,
		InServiceDate: inService,
		PurchaseValue: d.PurchaseValue,
	}
	for _, c := range d.Components {
		a.Components = append(a.Components, model.Component{Name: c.Name, Value: c.Value, Years: c.Years})
	}
	return a, nil
}
