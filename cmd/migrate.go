package cmd

import (
	"log"

	"product-catalog/core/config"
	"product-catalog/core/database"
	"product-catalog/core/logger"
	"product-catalog/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd applies the catalog schema to the configured database.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the catalog schema to the database",
	Long: `Creates or updates the products, product_options, tags and product_tags tables.

The start command also migrates on boot; this command exists for running
migrations ahead of a deploy or against a fresh database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		if err := models.Migrate(db); err != nil {
			return err
		}

		logg.Info("Migration complete",
			zap.String("driver", cfg.Database.Driver),
			zap.String("database", cfg.Database.Name))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
