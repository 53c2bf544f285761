package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express in schema definitions. Idempotent; also used by the
// test harness after ent auto-migration.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one executing plan per workflow.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS plans_one_executing_per_workflow
		ON plans (workflow_id)
		WHERE status = 'executing'`)
	if err != nil {
		return fmt.Errorf("failed to create executing-plan index: %w", err)
	}

	// At most one primary plan per (workflow, version chain is linear, so
	// per workflow among non-superseded siblings of the same version).
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS plans_one_primary_per_version
		ON plans (workflow_id, version)
		WHERE "primary" AND status <> 'superseded'`)
	if err != nil {
		return fmt.Errorf("failed to create primary-plan index: %w", err)
	}

	return nil
}
