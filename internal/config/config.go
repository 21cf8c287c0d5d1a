// Package config loads the lmnp.yaml project file: who the business
// is, which fiscal year is open, and where the data files live.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file at the project root.
const FileName = "lmnp.yaml"

// Config is the top-level lmnp.yaml contents.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Fiscal   FiscalConfig   `yaml:"fiscal"`
	Files    FilesConfig    `yaml:"files"`
}

// BusinessConfig identifies the filing entity.
type BusinessConfig struct {
	Name  string `yaml:"name"`
	Siren string `yaml:"siren"`
}

// FiscalConfig declares the open fiscal year.
type FiscalConfig struct {
	Year int `yaml:"year"`
}

// FilesConfig locates the data files, relative to the project root.
type FilesConfig struct {
	Journal string `yaml:"journal"`
	Assets  string `yaml:"assets"`
	Stock   string `yaml:"stock"`
}

// Load reads a lmnp.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName, siren string, year int) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName, Siren: siren},
		Fiscal:   FiscalConfig{Year: year},
		Files: FilesConfig{
			Journal: filepath.Join("data", "journal.yaml"),
			Assets:  filepath.Join("data", "immobilisations.yaml"),
			Stock:   filepath.Join("data", "stock.yaml"),
		},
	}
}

// JournalPath resolves the journal file against the project root.
func (c *Config) JournalPath(root string) string { return filepath.Join(root, c.Files.Journal) }

// AssetsPath resolves the asset register against the project root.
func (c *Config) AssetsPath(root string) string { return filepath.Join(root, c.Files.Assets) }

// StockPath resolves the carry-forward stock file against the project root.
func (c *Config) StockPath(root string) string { return filepath.Join(root, c.Files.Stock) }
