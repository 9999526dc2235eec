// Package trainer indexes schema knowledge, documentation and question-SQL
// pairs into per-domain vector collections.
package trainer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prasetya/academic-datamart/internal/embedding"
	"github.com/prasetya/academic-datamart/internal/pkg/logger"
	"github.com/prasetya/academic-datamart/internal/vector"
)

// QuestionSQL is one natural-language question with its reference SQL.
type QuestionSQL struct {
	Question string
	SQL      string
}

// pointID derives a stable UUID from the indexed content, so indexing the
// same content twice lands on the same point.
func pointID(content string) uuid.UUID {
	return uuid.NewMD5(uuid.NameSpaceOID, []byte(content))
}

// KnowledgeIndexer writes one collection's knowledge into the vector store.
// An embedding failure skips the entry with a warning instead of aborting
// the run, so one flaky API call does not lose a whole collection.
type KnowledgeIndexer struct {
	store      *vector.Store
	embedder   embedding.Embedder
	collection string
}

// NewKnowledgeIndexer creates an indexer bound to one collection.
func NewKnowledgeIndexer(store *vector.Store, embedder embedding.Embedder, collection string) *KnowledgeIndexer {
	return &KnowledgeIndexer{store: store, embedder: embedder, collection: collection}
}

// IndexSchema stores a named schema or documentation fragment.
func (k *KnowledgeIndexer) IndexSchema(ctx context.Context, name, description string) error {
	content := fmt.Sprintf("Schema: %s\n%s", name, description)

	vec, err := k.embedder.Embed(ctx, content)
	if err != nil {
		logger.Warn().Err(err).Str("schema", name).Msg("Skipping schema entry, embedding failed")
		return nil
	}

	err = k.store.Upsert(ctx, k.collection, pointID(content), vec, map[string]any{
		"schema_name":        name,
		"schema_description": description,
		"type":               "schema",
		"content":            content,
	})
	if err != nil {
		return err
	}

	logger.Info().Str("collection", k.collection).Str("schema", name).Msg("Indexed schema entry")
	return nil
}

// IndexQuestionSQL stores one question-SQL pair.
func (k *KnowledgeIndexer) IndexQuestionSQL(ctx context.Context, pair QuestionSQL) error {
	content := fmt.Sprintf("Question: %s\nSQL: %s", pair.Question, pair.SQL)

	vec, err := k.embedder.Embed(ctx, content)
	if err != nil {
		logger.Warn().Err(err).Str("question", pair.Question).Msg("Skipping question, embedding failed")
		return nil
	}

	err = k.store.Upsert(ctx, k.collection, pointID(content), vec, map[string]any{
		"question": pair.Question,
		"sql":      pair.SQL,
		"type":     "question_sql",
		"content":  content,
	})
	if err != nil {
		return err
	}

	logger.Info().Str("collection", k.collection).Str("question", pair.Question).Msg("Indexed question-SQL pair")
	return nil
}

// Stats reads the collection statistics after indexing.
func (k *KnowledgeIndexer) Stats(ctx context.Context) (vector.CollectionStats, error) {
	return k.store.Stats(ctx, k.collection)
}

// Collection returns the collection this indexer writes to.
func (k *KnowledgeIndexer) Collection() string {
	return k.collection
}

// SQLRunner verifies reference SQL against the live datamart.
type SQLRunner struct {
	db *pgxpool.Pool
}

// NewSQLRunner creates a runner over the given pool.
func NewSQLRunner(db *pgxpool.Pool) *SQLRunner {
	return &SQLRunner{db: db}
}

// Test executes the reference SQL and reports whether it ran. Failures are
// logged, not returned, because a broken sample query should not stop
// training.
func (r *SQLRunner) Test(ctx context.Context, pair QuestionSQL) bool {
	rows, err := r.db.Query(ctx, pair.SQL)
	if err != nil {
		logger.Warn().Err(err).Str("question", pair.Question).Msg("Reference query failed")
		return false
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if err := rows.Err(); err != nil {
		logger.Warn().Err(err).Str("question", pair.Question).Msg("Reference query failed while reading rows")
		return false
	}

	logger.Info().Str("question", pair.Question).Int("rows", count).Msg("Reference query passed")
	return true
}
