package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kirbygold/goldsuite/internal/config"
	"github.com/kirbygold/goldsuite/internal/db"
	"github.com/kirbygold/goldsuite/internal/fixtures"
	"github.com/kirbygold/goldsuite/internal/logging"
)

// loadConfig loads and validates the config named by --config. --verbose
// forces debug logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logging.New(cfg.Log.Level, cfg.Log.Format, nil)
}

// loadCatalog reads fixtures.file when set, otherwise the embedded set.
func loadCatalog(cfg *config.Config) (*fixtures.Catalog, error) {
	if cfg.Fixtures.File != "" {
		return fixtures.Load(cfg.Fixtures.File)
	}
	return fixtures.Default()
}

// openSource returns the fixture source selected by cfg and a function
// releasing it. A configured database must already be seeded.
func openSource(ctx context.Context, cfg *config.Config) (fixtures.Source, func() error, error) {
	if cfg.Fixtures.Database == "" {
		c, err := loadCatalog(cfg)
		if err != nil {
			return nil, nil, err
		}
		return fixtures.NewMemorySource(c), func() error { return nil }, nil
	}

	database, err := db.Open(cfg.Fixtures.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	src := fixtures.NewSQLSource(database)
	if _, err := src.Catalog(ctx); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("database %s is not seeded (run goldsuite seed): %w", cfg.Fixtures.Database, err)
	}
	return src, database.Close, nil
}
