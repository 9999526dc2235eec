package main

import (
	"context"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/prasetya/academic-datamart/internal/bootstrap"
	"github.com/prasetya/academic-datamart/internal/config"
	"github.com/prasetya/academic-datamart/internal/datamart"
	"github.com/prasetya/academic-datamart/internal/embedding"
	"github.com/prasetya/academic-datamart/internal/generator"
	"github.com/prasetya/academic-datamart/internal/pkg/logger"
	"github.com/prasetya/academic-datamart/internal/trainer"
	"github.com/prasetya/academic-datamart/internal/vector"
)

func main() {
	cfg, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize configuration")
		os.Exit(1)
	}

	if missing := config.MissingEnv("GEMINI_API_KEY", "POSTGRES_HOST", "QDRANT_URL"); len(missing) > 0 {
		logger.Error().
			Str("missing", strings.Join(missing, ", ")).
			Msg("Missing required environment variables")
		os.Exit(1)
	}

	ctx := context.Background()
	start := time.Now()

	pool, err := bootstrap.SetupDatabase(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up database")
		os.Exit(1)
	}
	defer pool.Close()

	store := datamart.NewStore(pool)
	genRunner := generator.NewRunner(store, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err := genRunner.GenerateAll(ctx); err != nil {
		logger.Error().Err(err).Msg("Datamart generation failed")
		os.Exit(1)
	}

	embedder, err := embedding.NewGemini(ctx, &cfg.Gemini)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create embedder")
		os.Exit(1)
	}

	vectorStore, err := vector.NewStore(&cfg.Qdrant, embedder.Dim())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to vector store")
		os.Exit(1)
	}

	trainRunner := trainer.NewRunner(vectorStore, embedder, pool)
	if err := trainRunner.TrainAll(ctx); err != nil {
		logger.Error().Err(err).Msg("Training failed")
		os.Exit(1)
	}

	if err := trainRunner.WriteSummary(ctx, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("Failed to write training summary")
		os.Exit(1)
	}
	if err := genRunner.WriteSummary(ctx, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("Failed to write data summary")
		os.Exit(1)
	}

	logger.Info().Dur("totalDuration", time.Since(start)).Msg("Training pipeline completed")
}
