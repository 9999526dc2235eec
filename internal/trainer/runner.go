package trainer

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prasetya/academic-datamart/internal/embedding"
	"github.com/prasetya/academic-datamart/internal/pkg/logger"
	"github.com/prasetya/academic-datamart/internal/vector"
)

// Runner trains all five collections against one vector store and one
// datamart connection.
type Runner struct {
	store    *vector.Store
	embedder embedding.Embedder
	sql      *SQLRunner

	indexers map[string]*KnowledgeIndexer
}

// NewRunner creates a training runner.
func NewRunner(store *vector.Store, embedder embedding.Embedder, db *pgxpool.Pool) *Runner {
	return &Runner{
		store:    store,
		embedder: embedder,
		sql:      NewSQLRunner(db),
		indexers: make(map[string]*KnowledgeIndexer),
	}
}

// TrainAll ensures every collection exists and trains them in order.
func (r *Runner) TrainAll(ctx context.Context) error {
	start := time.Now()
	logger.Info().Int("collections", len(Domains)).Msg("Starting collection training")

	for _, domain := range Domains {
		if err := r.store.EnsureCollection(ctx, domain.Collection); err != nil {
			return fmt.Errorf("preparing %s: %w", domain.Collection, err)
		}
		r.indexers[domain.Collection] = NewKnowledgeIndexer(r.store, r.embedder, domain.Collection)
	}

	for _, domain := range Domains {
		if err := domain.Train(ctx, r.indexers[domain.Collection], r.sql); err != nil {
			return fmt.Errorf("training %s: %w", domain.Collection, err)
		}
	}

	logger.Info().Dur("elapsed", time.Since(start)).Msg("All collections trained")
	return nil
}

// WriteSummary prints per-collection statistics. A collection whose stats
// cannot be read is reported with an error marker instead of aborting.
func (r *Runner) WriteSummary(ctx context.Context, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "COLLECTION\tPOINTS\tDIM\tDISTANCE")

	for _, domain := range Domains {
		stats, err := r.store.Stats(ctx, domain.Collection)
		if err != nil {
			logger.Warn().Err(err).Str("collection", domain.Collection).Msg("Could not read collection stats")
			fmt.Fprintf(tw, "%s\t-\t-\t- (error)\n", domain.Collection)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", domain.Collection, stats.Points, stats.Dim, stats.Distance)
	}

	return tw.Flush()
}
