package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmnp-dev/lmnp/internal/assets"
	"github.com/lmnp-dev/lmnp/internal/config"
	"github.com/lmnp-dev/lmnp/internal/fec"
	"github.com/lmnp-dev/lmnp/internal/journal"
	"github.com/lmnp-dev/lmnp/internal/model"
	"github.com/lmnp-dev/lmnp/internal/money"
	"github.com/lmnp-dev/lmnp/internal/stock"
)

func initProject(t *testing.T) *project {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "SCI Test", "123456789", 2025))
	p, err := loadProject(dir)
	require.NoError(t, err)
	return p
}

func writeRegister(t *testing.T, p *project) {
	t.Helper()
	register := []model.Asset{{
		Name:          "Appartement",
		PurchaseDate:  time.Date(2019, 11, 15, 0, 0, 0, 0, time.UTC),
		InServiceDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		PurchaseValue: money.FromInt(85000),
		Components: []model.Component{
			{Name: "Terrain", Value: money.FromInt(20000), Years: 0},
			{Name: "Gros Oeuvre", Value: money.FromInt(60000), Years: 50},
			{Name: "Mobilier", Value: money.FromInt(5000), Years: 10},
		},
	}}
	require.NoError(t, assets.Save(p.assetsPath(), register))
}

func TestRunInitScaffoldsProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "SCI Test", "123456789", 2025))

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "SCI Test", cfg.Business.Name)
	assert.Equal(t, 2025, cfg.Fiscal.Year)

	s, err := stock.Load(cfg.StockPath(dir))
	require.NoError(t, err)
	assert.True(t, s.Depreciation.IsZero())

	register, err := assets.Load(cfg.AssetsPath(dir))
	require.NoError(t, err)
	assert.Empty(t, register)

	// Re-initializing is refused.
	assert.Error(t, runInit(dir, "SCI Test", "123456789", 2025))
}

func TestRunAmortizeBooksDotationEntry(t *testing.T) {
	p := initProject(t)
	writeRegister(t, p)

	require.NoError(t, runAmortize(p))

	jnl, err := journal.Load(p.journalPath(), 2025)
	require.NoError(t, err)
	require.Len(t, jnl.Entries(), 1)

	e := jnl.Entries()[0]
	assert.Equal(t, "OD", e.Journal)
	assert.Equal(t, "DOTA2025", e.Ref)
	assert.True(t, e.Balanced())
	// 60000/50 + 5000/10 = 1200 + 500.
	assert.Equal(t, "1700.00", e.Lines[0].Debit.String())
	assert.Equal(t, DepreciationExpense, e.Lines[0].Account)

	// Running twice would duplicate the DOTA reference.
	assert.Error(t, runAmortize(p))
}

func TestRunAmortizeEmptyRegister(t *testing.T) {
	p := initProject(t)
	require.NoError(t, runAmortize(p))

	jnl, err := journal.Load(p.journalPath(), 2025)
	require.NoError(t, err)
	assert.Empty(t, jnl.Entries(), "no dotation entry without assets")
}

func TestRunCloseTransfersTreasury(t *testing.T) {
	p := initProject(t)

	jnl, err := journal.Load(p.journalPath(), 2025)
	require.NoError(t, err)
	e := &model.Entry{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Journal: "BQ", Label: "Loyer"}
	e.AddDebit(BankAccount, money.MustParse("650.00"), "")
	e.AddCredit("706000", money.MustParse("650.00"), "")
	require.NoError(t, jnl.Add(e))
	require.NoError(t, jnl.Save())

	require.NoError(t, runClose(p))

	jnl, err = journal.Load(p.journalPath(), 2025)
	require.NoError(t, err)
	require.Len(t, jnl.Entries(), 2)
	closing := jnl.Find(2)
	require.NotNil(t, closing)
	assert.Equal(t, "CLOTURE2025", closing.Ref)

	// Bank ends at zero.
	balance := money.Zero()
	for _, e := range jnl.Entries() {
		for _, l := range e.Lines {
			if l.Account == BankAccount {
				balance = balance.Add(l.Debit).Sub(l.Credit)
			}
		}
	}
	assert.True(t, balance.IsZero())
}

func TestRunReportUpdatesStocks(t *testing.T) {
	p := initProject(t)
	writeRegister(t, p)

	jnl, err := journal.Load(p.journalPath(), 2025)
	require.NoError(t, err)
	rent := &model.Entry{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Journal: "VT", Label: "Loyer"}
	rent.AddDebit(BankAccount, money.MustParse("1000.00"), "")
	rent.AddCredit("706000", money.MustParse("1000.00"), "")
	require.NoError(t, jnl.Add(rent))
	require.NoError(t, jnl.Save())
	require.NoError(t, runAmortize(p))

	require.NoError(t, runReport(p))

	// Revenue 1000, depreciation 1700: 1000 deductible, 700 deferred.
	s, err := stock.Load(p.stockPath())
	require.NoError(t, err)
	assert.Equal(t, "700.00", s.Depreciation.String())
	assert.True(t, s.Deficit.IsZero())
}

func TestRunExportWritesFEC(t *testing.T) {
	p := initProject(t)
	writeRegister(t, p)
	require.NoError(t, runAmortize(p))

	require.NoError(t, runExport(p))

	outPath := filepath.Join(p.root, fec.Filename("123456789", 2025))
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "JournalCode\tJournalLib")
	// Opening entry made it in ahead of the dotation entry.
	assert.Contains(t, out, "20250101")
	assert.Contains(t, out, "20251231")
	assert.Contains(t, out, "Bilan d'ouverture")
}
