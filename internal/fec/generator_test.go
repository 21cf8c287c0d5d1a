package fec

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmnp-dev/lmnp/internal/accounts"
	"github.com/lmnp-dev/lmnp/internal/model"
	"github.com/lmnp-dev/lmnp/internal/money"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func testEntry(id int, d time.Time, amount string) *model.Entry {
	e := &model.Entry{ID: id, Date: d, Journal: "BQ", Label: "Loyer", Ref: "N/A"}
	e.AddDebit("512000", money.MustParse(amount), "")
	e.AddCredit("706000", money.MustParse(amount), "")
	return e
}

func TestGenerateHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	entries := []*model.Entry{testEntry(1, date(2025, 3, 1), "650.00")}

	require.NoError(t, Generate(&buf, entries, accounts.NewService()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3, "header plus one row per ledger line")

	assert.Equal(t, strings.Join(Header, "\t"), lines[0])

	debitRow := strings.Split(lines[1], "\t")
	require.Len(t, debitRow, 18)
	assert.Equal(t, "BQ", debitRow[0])
	assert.Equal(t, "Banque (Mouvements financiers)", debitRow[1])
	assert.Equal(t, "1", debitRow[2])
	assert.Equal(t, "20250301", debitRow[3])
	assert.Equal(t, "512000", debitRow[4])
	assert.Equal(t, "Banque", debitRow[5])
	assert.Equal(t, "650.00", debitRow[11])
	assert.Equal(t, "0.00", debitRow[12])

	creditRow := strings.Split(lines[2], "\t")
	assert.Equal(t, "706000", creditRow[4])
	assert.Equal(t, "0.00", creditRow[11])
	assert.Equal(t, "650.00", creditRow[12])
}

func TestGenerateSortsChronologically(t *testing.T) {
	var buf bytes.Buffer
	entries := []*model.Entry{
		testEntry(2, date(2025, 6, 1), "100.00"),
		testEntry(1, date(2025, 1, 15), "200.00"),
	}
	require.NoError(t, Generate(&buf, entries, accounts.NewService()))

	out := buf.String()
	assert.Less(t, strings.Index(out, "20250115"), strings.Index(out, "20250601"))
}

func TestGenerateRejectsUnbalancedEntry(t *testing.T) {
	// Hand-assembled entry that never went through Journal.Add.
	e := &model.Entry{ID: 7, Date: date(2025, 2, 1), Journal: "OD", Label: "forgé"}
	e.AddDebit("606100", money.MustParse("100.00"), "")
	e.AddCredit("512000", money.MustParse("90.00"), "")

	var buf bytes.Buffer
	err := Generate(&buf, []*model.Entry{e}, accounts.NewService())
	var xerr ExportError
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, 7, xerr.EntryID)
	assert.Contains(t, xerr.Description, "unbalanced")
}

func TestGenerateRejectsZeroDate(t *testing.T) {
	e := testEntry(1, time.Time{}, "10.00")
	var buf bytes.Buffer
	err := Generate(&buf, []*model.Entry{e}, accounts.NewService())
	var xerr ExportError
	require.ErrorAs(t, err, &xerr)
	assert.Contains(t, xerr.Description, "date")
}

func TestFormatDate(t *testing.T) {
	s, err := FormatDate(date(2025, 12, 31))
	require.NoError(t, err)
	assert.Equal(t, "20251231", s)

	_, err = FormatDate(time.Time{})
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "123456789FEC20251231.txt", Filename("123456789", 2025))
}
