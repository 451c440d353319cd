package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kirbygold/goldsuite/internal/db"
	"github.com/kirbygold/goldsuite/internal/fixtures"
	"github.com/kirbygold/goldsuite/internal/progress"
)

var (
	seedFile string
	seedDB   string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load fixture data into a SQLite database",
	Long: `Reads a YAML fixture file (or the embedded fixture set) and replaces the
contents of the SQLite database that "goldsuite serve" reads when
fixtures.database is configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if seedFile != "" {
			cfg.Fixtures.File = seedFile
		}
		path := seedDB
		if path == "" {
			path = cfg.Fixtures.Database
		}
		if path == "" {
			path = "goldsuite.db"
		}

		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		database, err := db.Open(path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		src := fixtures.NewSQLSource(database)
		if err := src.Seed(context.Background(), c, progress.NewReporter("Seeding fixtures")); err != nil {
			return fmt.Errorf("seeding %s: %w", path, err)
		}

		fmt.Printf("Seeded %d products into %s\n", len(c.Products), database.Path())
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "YAML fixture file (default: embedded fixtures or fixtures.file)")
	seedCmd.Flags().StringVar(&seedDB, "db", "", "SQLite database path (default: fixtures.database or goldsuite.db)")
	rootCmd.AddCommand(seedCmd)
}
