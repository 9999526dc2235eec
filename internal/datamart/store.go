// Package datamart is the write/read surface of the generated schema: an
// append-only bulk loader, bounded parent-row sampling for cross-domain
// linkage, and the aggregate reads the summaries need.
package datamart

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaName is the namespace holding all generated tables.
const SchemaName = "datamart"

// Tables lists every datamart table in collection order: three per domain,
// student through institutional. The summary iterates this order.
var Tables = []string{
	"student_performance", "student_attendance", "student_finance",
	"lecturer_profile", "lecturer_teaching", "lecturer_activity",
	"course_performance", "grade_distribution", "academic_trends",
	"revenue_summary", "payment_analysis", "financial_kpi",
	"faculty_statistics", "university_performance", "accreditation_status",
}

// Store wraps the shared pool with the loader and read helpers.
type Store struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStore creates a Store on the shared pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Append bulk-appends rows into datamart.<table>. Append-only: no upsert, no
// dedup. Errors propagate to the caller and abort the enclosing domain step.
func (s *Store) Append(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	count, err := s.db.CopyFrom(ctx,
		pgx.Identifier{SchemaName, table},
		columns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("error appending to %s.%s: %w", SchemaName, table, err)
	}
	return count, nil
}

// query runs a squirrel select and hands the rows to scan.
func (s *Store) query(ctx context.Context, builder squirrel.SelectBuilder, scan func(rows pgx.Rows) error) error {
	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Count returns the row count of a datamart table.
func (s *Store) Count(ctx context.Context, table string) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM %s.%s", SchemaName, table)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting %s.%s: %w", SchemaName, table, err)
	}
	return count, nil
}

// CountWhere returns the row count of a datamart table under a filter.
func (s *Store) CountWhere(ctx context.Context, table string, where squirrel.Eq) (int64, error) {
	sql, args, err := s.sb.Select("COUNT(*)").
		From(SchemaName + "." + table).
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int64
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting %s.%s: %w", SchemaName, table, err)
	}
	return count, nil
}

// AvgWhere returns the average of a column under a filter. ok is false when
// the filter matches no rows.
func (s *Store) AvgWhere(ctx context.Context, table, column string, where squirrel.Eq) (avg float64, ok bool, err error) {
	sql, args, err := s.sb.Select(fmt.Sprintf("AVG(%s)", column)).
		From(SchemaName + "." + table).
		Where(where).
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("failed to build avg query: %w", err)
	}

	var value *float64
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&value); err != nil {
		return 0, false, fmt.Errorf("error averaging %s.%s.%s: %w", SchemaName, table, column, err)
	}
	if value == nil {
		return 0, false, nil
	}
	return *value, true, nil
}

// Update applies a set of column assignments to rows matching the filter.
// Only faculty_statistics is ever updated in place; everything else is
// strictly append-only.
func (s *Store) Update(ctx context.Context, table string, set map[string]any, where squirrel.Eq) error {
	builder := s.sb.Update(SchemaName + "." + table).Where(where)
	for column, value := range set {
		builder = builder.Set(column, value)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error updating %s.%s: %w", SchemaName, table, err)
	}
	return nil
}
