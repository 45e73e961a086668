package main

import (
	"github.com/ParthPatil-04/API-demo/internal/db"
	"github.com/ParthPatil-04/API-demo/internal/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the books table and exit",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	database, err := db.ConnectWithRetry(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Error("error closing database", "error", err)
		}
	}()

	if err := db.Migrate(database); err != nil {
		return err
	}

	logger.Info("schema migrated", "driver", cfg.DBDriver)
	return nil
}
