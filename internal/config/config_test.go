package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default("SCI Exemple", "123456789", 2025)

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "SCI Exemple", loaded.Business.Name)
	assert.Equal(t, "123456789", loaded.Business.Siren)
	assert.Equal(t, 2025, loaded.Fiscal.Year)
	assert.Equal(t, filepath.Join("data", "journal.yaml"), loaded.Files.Journal)
}

func TestPathResolution(t *testing.T) {
	cfg := Default("x", "y", 2025)
	assert.Equal(t, filepath.Join("/proj", "data", "journal.yaml"), cfg.JournalPath("/proj"))
	assert.Equal(t, filepath.Join("/proj", "data", "immobilisations.yaml"), cfg.AssetsPath("/proj"))
	assert.Equal(t, filepath.Join("/proj", "data", "stock.yaml"), cfg.StockPath("/proj"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
