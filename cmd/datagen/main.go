package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/prasetya/academic-datamart/internal/bootstrap"
	"github.com/prasetya/academic-datamart/internal/datamart"
	"github.com/prasetya/academic-datamart/internal/generator"
	"github.com/prasetya/academic-datamart/internal/pkg/logger"
)

func main() {
	cfg, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize configuration")
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := bootstrap.SetupDatabase(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up database")
		os.Exit(1)
	}
	defer pool.Close()

	store := datamart.NewStore(pool)
	runner := generator.NewRunner(store, rand.New(rand.NewSource(time.Now().UnixNano())))

	if err := runner.GenerateAll(ctx); err != nil {
		logger.Error().Err(err).Msg("Datamart generation failed")
		os.Exit(1)
	}

	if err := runner.WriteSummary(ctx, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("Failed to write summary")
		os.Exit(1)
	}
}
