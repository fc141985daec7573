// Package migrate is the CLI command that creates or updates the relational
// schema.
package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greenflow-inc/greenflow/internal/infrastructure/config"
	"github.com/greenflow-inc/greenflow/internal/infrastructure/database"
	"github.com/greenflow-inc/greenflow/internal/infrastructure/repository"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Long:  `Run GORM auto-migration against the configured sqlite or mysql storage backend.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if cfg.Storage.Driver == "memory" {
		return fmt.Errorf("storage driver %q needs no migration; configure sqlite or mysql", cfg.Storage.Driver)
	}

	db, err := database.Open(&cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if err := db.AutoMigrate(
		&repository.AccountModel{},
		&repository.PlantedCropModel{},
		&repository.ConsultationModel{},
		&repository.ChatExchangeModel{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("schema migration completed", "driver", cfg.Storage.Driver)
	return nil
}
