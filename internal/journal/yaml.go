package journal

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lmnp-dev/lmnp/internal/model"
	"github.com/lmnp-dev/lmnp/internal/money"
)

// entryDoc is the on-disk shape of one entry. Field order here fixes
// the key order in the saved file.
type entryDoc struct {
	ID      int       `yaml:"id"`
	Date    string    `yaml:"date"`
	Label   string    `yaml:"label"`
	Journal string    `yaml:"journal"`
	Ref     string    `yaml:"reference"`
	Lines   []lineDoc `yaml:"lines"`
}

// lineDoc keeps the persisted format sparse: zero amounts are omitted.
type lineDoc struct {
	Account string `yaml:"account"`
	Debit   string `yaml:"debit,omitempty"`
	Credit  string `yaml:"credit,omitempty"`
	Label   string `yaml:"label,omitempty"`
}

// MarshalEntries encodes entries in file order as one YAML document.
func MarshalEntries(entries []*model.Entry) ([]byte, error) {
	docs := make([]entryDoc, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, marshalEntry(e))
	}
	return yaml.Marshal(docs)
}

// UnmarshalEntries decodes a ledger file into entries, preserving order.
func UnmarshalEntries(data []byte) ([]*model.Entry, error) {
	var docs []entryDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parsing ledger: %w", err)
	}
	entries := make([]*model.Entry, 0, len(docs))
	for i, d := range docs {
		e, err := unmarshalEntry(d)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func marshalEntry(e *model.Entry) entryDoc {
	doc := entryDoc{
		ID:      e.ID,
		Date:    e.Date.Format(model.DateFormat),
		Label:   e.Label,
		Journal: e.Journal,
		Ref:     e.Ref,
	}
	for _, l := range e.Lines {
		ld := lineDoc{Account: l.Account, Label: l.Label}
		if !l.Debit.IsZero() {
			ld.Debit = l.Debit.String()
		}
		if !l.Credit.IsZero() {
			ld.Credit = l.Credit.String()
		}
		doc.Lines = append(doc.Lines, ld)
	}
	return doc
}

func unmarshalEntry(d entryDoc) (*model.Entry, error) {
	date, err := time.Parse(model.DateFormat, d.Date)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", d.Date, err)
	}
	e := &model.Entry{
		ID:      d.ID,
		Date:    date,
		Label:   d.Label,
		Journal: d.Journal,
		Ref:     d.Ref,
	}
	for i, ld := range d.Lines {
		debit, err := money.Parse(ld.Debit)
		if err != nil {
			return nil, fmt.Errorf("line %d debit: %w", i+1, err)
		}
		credit, err := money.Parse(ld.Credit)
		if err != nil {
			return nil, fmt.Errorf("line %d credit: %w", i+1, err)
		}
		e.AddLine(ld.Account, debit, credit, ld.Label)
	}
	return e, nil
}
