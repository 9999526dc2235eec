// Package bootstrap wires configuration, logging and the database for the
// datagen and train binaries.
package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/prasetya/academic-datamart/internal/config"
	"github.com/prasetya/academic-datamart/internal/db"
	"github.com/prasetya/academic-datamart/internal/migrations"
	"github.com/prasetya/academic-datamart/internal/pkg/logger"
)

// LoadConfigAndSetupLogger loads .env if present, builds the configuration
// and configures the global logger from it.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
		File:   cfg.Logging.File,
	})

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection and applies the
// datamart migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	pool := database.Pool

	logger.Info().Msg("Running datamart migrations...")
	migrator := migrations.NewMigrator(pool)
	if err := migrator.Apply(ctx); err != nil {
		logger.Error().Err(err).Msg("Datamart migration error")
		pool.Close()
		return nil, err
	}

	logger.Info().Msg("Datamart schema ready.")
	return pool, nil
}
