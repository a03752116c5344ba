package migrations

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upAddDriftIndexes, downAddDriftIndexes)
}

// The drift listing filters on either participant column, and the success
// transition bulk-updates wishes by (isbn, user, launched). AutoMigrate only
// covers the single-column indexes, the composite one lives here.
func upAddDriftIndexes(tx *sql.Tx) error {
	stmts := []string{
		"CREATE INDEX IF NOT EXISTS idx_drifts_requester_status ON drifts (requester_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_drifts_gifter_status ON drifts (gifter_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_wishes_isbn_user_launched ON wishes (isbn, user_id, launched)",
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

func downAddDriftIndexes(tx *sql.Tx) error {
	stmts := []string{
		"DROP INDEX IF EXISTS idx_drifts_requester_status",
		"DROP INDEX IF EXISTS idx_drifts_gifter_status",
		"DROP INDEX IF EXISTS idx_wishes_isbn_user_launched",
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to drop index: %w", err)
		}
	}
	return nil
}
