// Package journal manages the ledger file: an ordered list of balanced
// entries for one fiscal year, loaded whole, mutated in memory and
// written back whole. Concurrent access to the same file is not
// supported.
package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/lmnp-dev/lmnp/internal/model"
)

// Journal holds the entries of one ledger file, ordered by id.
type Journal struct {
	path    string
	year    int // declared fiscal year; 0 = unconstrained
	entries []*model.Entry
}

// New creates an empty Journal bound to a file path. A non-zero year
// constrains every added entry's date to that year.
func New(path string, year int) *Journal {
	return &Journal{path: path, year: year}
}

// Load reads a ledger file into a Journal. A missing file yields an
// empty journal. Duplicate non-sentinel references across loaded
// entries fail the load outright: the file is corrupt and continuing
// would double-count pieces.
func Load(path string, year int) (*Journal, error) {
	j := New(path, year)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return j, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}

	entries, err := UnmarshalEntries(data)
	if err != nil {
		return nil, fmt.Errorf("loading ledger %s: %w", path, err)
	}
	j.entries = entries

	if dup := findDuplicateRef(entries); dup != "" {
		return nil, ValidationError{Description: fmt.Sprintf("duplicate reference %q in ledger %s", dup, path)}
	}
	return j, nil
}

// Entries returns the journal's entries in current order.
func (j *Journal) Entries() []*model.Entry {
	return j.entries
}

// Year returns the declared fiscal year, 0 if none.
func (j *Journal) Year() int {
	return j.year
}

// Add validates an entry and appends it, assigning the next id when the
// entry has none. On any failure the entry list is left untouched.
func (j *Journal) Add(e *model.Entry) error {
	if e.ID == 0 {
		e.ID = j.NextID()
	}

	if j.year != 0 && e.Date.Year() != j.year {
		return ValidationError{
			EntryID:     e.ID,
			Description: fmt.Sprintf("date %s outside journal year %d", e.Date.Format(model.DateFormat), j.year),
		}
	}

	if !e.Balanced() {
		return ValidationError{
			EntryID:     e.ID,
			Description: fmt.Sprintf("unbalanced entry %q (balance %s)", e.Label, e.Balance().String()),
		}
	}

	if e.HasRef() {
		for _, existing := range j.entries {
			if existing.Ref == e.Ref {
				return ValidationError{
					EntryID:     e.ID,
					Description: fmt.Sprintf("reference %q already exists", e.Ref),
				}
			}
		}
	}

	j.entries = append(j.entries, e)
	return nil
}

// NextID returns max(existing ids)+1, or 1 for an empty journal. Ids
// freed by deletion are never reused within the same load.
func (j *Journal) NextID() int {
	maxID := 0
	for _, e := range j.entries {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

// Find returns the entry with the given id, or nil.
func (j *Journal) Find(id int) *model.Entry {
	for _, e := range j.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Delete removes the entry with the given id. It reports whether an
// entry was removed.
func (j *Journal) Delete(id int) bool {
	for i, e := range j.entries {
		if e.ID == id {
			j.entries = append(j.entries[:i], j.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Save sorts entries by id and overwrites the ledger file as one
// document, creating the destination directory when needed.
func (j *Journal) Save() error {
	sorted := make([]*model.Entry, len(j.entries))
	copy(sorted, j.entries)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].ID < sorted[b].ID })

	data, err := MarshalEntries(sorted)
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}
	if err := os.WriteFile(j.path, data, 0o644); err != nil {
		return fmt.Errorf("writing ledger %s: %w", j.path, err)
	}
	return nil
}

func findDuplicateRef(entries []*model.Entry) string {
	seen := make(map[string]bool)
	for _, e := range entries {
		if !e.HasRef() {
			continue
		}
		if seen[e.Ref] {
			return e.Ref
		}
		seen[e.Ref] = true
	}
	return ""
}
