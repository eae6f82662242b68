package store

import (
	"context"
	"database/sql"
	"time"
)

// migrations creates the fallback tables on first start. Records are kept
// as JSON payloads keyed by id: the store is a persisted array per
// resource, not a relational model of it.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS local_projects (
		id         VARCHAR(64) PRIMARY KEY,
		payload    MEDIUMTEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS local_members (
		id         VARCHAR(64) PRIMARY KEY,
		project_id VARCHAR(64) NOT NULL,
		payload    MEDIUMTEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_local_members_project (project_id)
	)`,
	`CREATE TABLE IF NOT EXISTS local_documents (
		id         VARCHAR(64) PRIMARY KEY,
		kind       VARCHAR(32) NOT NULL,
		payload    MEDIUMTEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_local_documents_kind (kind)
	)`,
}

// Migrate applies the schema. A nil handle is fine: the persistent tier is
// simply absent and every store on it degrades to empty.
func Migrate(db *sql.DB) error {
	if db == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
