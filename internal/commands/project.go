package commands

import (
	"fmt"
	"path/filepath"

	"github.com/lmnp-dev/lmnp/internal/config"
)

// project bundles the loaded configuration with its resolved root.
type project struct {
	root string
	cfg  *config.Config
}

func loadProject(dir string) (*project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("not an lmnp project (run 'lmnp init' first): %w", err)
	}
	return &project{root: root, cfg: cfg}, nil
}

func (p *project) journalPath() string { return p.cfg.JournalPath(p.root) }
func (p *project) assetsPath() string  { return p.cfg.AssetsPath(p.root) }
func (p *project) stockPath() string   { return p.cfg.StockPath(p.root) }
func (p *project) year() int           { return p.cfg.Fiscal.Year }
