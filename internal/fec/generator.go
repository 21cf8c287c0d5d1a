// Package fec generates the Fichier des Écritures Comptables: the
// tab-separated ledger export mandated by the French tax
// administration.
package fec

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/lmnp-dev/lmnp/internal/accounts"
	"github.com/lmnp-dev/lmnp/internal/model"
	"github.com/lmnp-dev/lmnp/internal/money"
)

// Header is the mandated 18-column FEC header.
var Header = []string{
	"JournalCode", "JournalLib", "EcritureNum", "EcritureDate",
	"CompteNum", "CompteLib", "CompAuxNum", "CompAuxLib",
	"PieceRef", "PieceDate", "EcritureLib", "Debit", "Credit",
	"EcritureLet", "DateLet", "ValidDate", "Montantdevise", "Idevise",
}

// ExportError is a fatal inconsistency found while generating: an
// unbalanced entry or an unusable date. The whole export is aborted.
type ExportError struct {
	EntryID     int
	Description string
}

func (e ExportError) Error() string {
	return fmt.Sprintf("fec: entry %d: %s", e.EntryID, e.Description)
}

// Generate writes the FEC for a chronologically ordered year of
// entries, one row per ledger line. Every entry is re-checked for
// debit/credit equality on the way out: synthesized entries (the
// opening entry in particular) never went through the journal's own
// validation, and an unbalanced export would be rejected by the
// administration wholesale.
func Generate(w io.Writer, entries []*model.Entry, chart *accounts.Service) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing FEC header: %w", err)
	}

	sorted := make([]*model.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Date.Before(sorted[b].Date) })

	for _, e := range sorted {
		if err := writeEntry(cw, e, chart); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeEntry(cw *csv.Writer, e *model.Entry, chart *accounts.Service) error {
	dateStr, err := FormatDate(e.Date)
	if err != nil {
		return ExportError{EntryID: e.ID, Description: err.Error()}
	}

	totalDebit := money.Zero()
	totalCredit := money.Zero()

	for _, l := range e.Lines {
		totalDebit = totalDebit.Add(l.Debit)
		totalCredit = totalCredit.Add(l.Credit)

		row := []string{
			e.Journal,
			chart.JournalLabel(e.Journal),
			fmt.Sprintf("%d", e.ID),
			dateStr,
			l.Account,
			chart.Label(l.Account),
			"", "", // no auxiliary accounts in this regime
			e.Ref,
			dateStr,
			e.Label,
			l.Debit.String(),
			l.Credit.String(),
			"", "", // no lettrage
			dateStr,
			"", "", // single-currency ledger
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing FEC row for entry %d: %w", e.ID, err)
		}
	}

	if !totalDebit.Equal(totalCredit) {
		return ExportError{
			EntryID: e.ID,
			Description: fmt.Sprintf("unbalanced: debit %s != credit %s",
				totalDebit.String(), totalCredit.String()),
		}
	}
	return nil
}

// FormatDate renders a date in the mandated YYYYMMDD form. Every date
// in the file goes through here; a zero date is unusable and fatal.
func FormatDate(t time.Time) (string, error) {
	if t.IsZero() {
		return "", fmt.Errorf("missing date")
	}
	return t.Format("20060102"), nil
}

// Filename returns the mandated export file name for a SIREN and year:
// the ledger closes December 31.
func Filename(siren string, year int) string {
	return fmt.Sprintf("%sFEC%d1231.txt", siren, year)
}
