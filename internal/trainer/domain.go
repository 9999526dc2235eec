package trainer

import (
	"context"

	"github.com/prasetya/academic-datamart/internal/pkg/logger"
)

// Indexer is the write surface domain training runs against.
type Indexer interface {
	IndexSchema(ctx context.Context, name, description string) error
	IndexQuestionSQL(ctx context.Context, pair QuestionSQL) error
}

// Domain bundles the training corpus for one collection: table DDL,
// documentation fragments and reference question-SQL pairs.
type Domain struct {
	Collection    string
	SchemaName    string
	DocName       string
	DDL           []string
	Documentation []string
	Questions     []QuestionSQL
}

// Domains lists every collection in training order.
var Domains = []*Domain{
	&Mahasiswa,
	&Dosen,
	&Akademik,
	&Keuangan,
	&Institusi,
}

// Train indexes the domain's corpus: DDL first, then documentation, then
// question-SQL pairs. Each reference query is run against the datamart so
// broken samples surface in the logs.
func (d *Domain) Train(ctx context.Context, indexer Indexer, runner *SQLRunner) error {
	logger.Info().Str("collection", d.Collection).Msg("Training collection")

	for _, ddl := range d.DDL {
		if err := indexer.IndexSchema(ctx, d.SchemaName, ddl); err != nil {
			return err
		}
	}

	for _, doc := range d.Documentation {
		if err := indexer.IndexSchema(ctx, d.DocName, doc); err != nil {
			return err
		}
	}

	for _, pair := range d.Questions {
		if err := indexer.IndexQuestionSQL(ctx, pair); err != nil {
			return err
		}
		runner.Test(ctx, pair)
	}

	logger.Info().Str("collection", d.Collection).Msg("Collection training completed")
	return nil
}
