package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateRecordIndexes creates PostgreSQL-specific indexes that Ent cannot
// express. The JSONB GIN index lets operators query inside the stored record
// array (e.g. hunting a component across batches) without a sequential scan.
func CreateRecordIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_log_batches_records_gin
		ON log_batches USING gin(records jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create records GIN index: %w", err)
	}

	// Full-text search over analyzer output
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_analysis_jobs_result_gin
		ON analysis_jobs USING gin(to_tsvector('english', COALESCE(result, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create result GIN index: %w", err)
	}

	return nil
}
