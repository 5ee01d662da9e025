package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates PostgreSQL GIN indexes that the schema layer
// cannot express. Topic containment queries drive discovery filtering, and
// full-text search over summaries backs the investment report endpoint.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_repositories_topics_gin
		ON repositories USING gin(topics jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create topics GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_analyses_summary_gin
		ON analyses USING gin(to_tsvector('english', COALESCE(summary, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create summary GIN index: %w", err)
	}

	return nil
}
