package generator

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/prasetya/academic-datamart/internal/datamart"
	"github.com/prasetya/academic-datamart/internal/pkg/logger"
)

// Runner sequences the five domain generators in dependency order: parent
// tables inside each domain are filled before the tables that link to them,
// and institutional statistics run last so the live counts they aggregate
// already exist.
type Runner struct {
	store *datamart.Store

	student       *StudentGenerator
	lecturer      *LecturerGenerator
	academic      *AcademicGenerator
	financial     *FinancialGenerator
	institutional *InstitutionalGenerator
}

// NewRunner builds a runner with all five domain generators sharing one
// random source.
func NewRunner(store *datamart.Store, rng *rand.Rand) *Runner {
	return &Runner{
		store:         store,
		student:       NewStudentGenerator(store, rng),
		lecturer:      NewLecturerGenerator(store, rng),
		academic:      NewAcademicGenerator(store, rng),
		financial:     NewFinancialGenerator(store, rng),
		institutional: NewInstitutionalGenerator(store, rng),
	}
}

// GenerateAll populates every datamart table.
func (r *Runner) GenerateAll(ctx context.Context) error {
	start := time.Now()
	logger.Info().Msg("Starting datamart generation")

	steps := []struct {
		domain string
		run    func(context.Context) error
	}{
		{"student", r.student.GenerateAll},
		{"lecturer", r.lecturer.GenerateAll},
		{"academic", r.academic.GenerateAll},
		{"financial", r.financial.GenerateAll},
		{"institutional", r.institutional.GenerateAll},
	}

	for _, step := range steps {
		logger.Info().Str("domain", step.domain).Msg("Generating domain")
		if err := step.run(ctx); err != nil {
			return fmt.Errorf("generating %s domain: %w", step.domain, err)
		}
	}

	logger.Info().Dur("elapsed", time.Since(start)).Msg("Datamart generation completed")
	return nil
}

// collectionNames maps each table's position in datamart.Tables to its
// analytics collection, three tables per collection.
var collectionNames = []string{
	"MAHASISWA", "DOSEN", "AKADEMIK", "KEUANGAN", "INSTITUSI",
}

// WriteSummary prints per-table row counts grouped by collection. A table
// that cannot be counted is reported as zero with an error marker instead
// of aborting the summary.
func (r *Runner) WriteSummary(ctx context.Context, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "COLLECTION\tTABLE\tROWS")

	var total int64
	for i, table := range datamart.Tables {
		collection := collectionNames[i/3]

		count, err := r.store.Count(ctx, table)
		note := ""
		if err != nil {
			logger.Warn().Err(err).Str("table", table).Msg("Could not count table")
			count = 0
			note = " (error)"
		}
		total += count

		fmt.Fprintf(tw, "%s\t%s\t%d%s\n", collection, table, count, note)
	}

	fmt.Fprintf(tw, "\tTOTAL\t%d\n", total)
	return tw.Flush()
}
