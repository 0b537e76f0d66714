package database

import (
	"database/sql"
	"fmt"
)

// initDownloadsTable initializes the downloads table.
func initDownloadsTable(tx *sql.Tx) error {
	query := `
    CREATE TABLE IF NOT EXISTS downloads (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        workspace_id TEXT NOT NULL,
        url TEXT NOT NULL,
        kind TEXT NOT NULL CHECK(kind IN ('video', 'audio')),
        resolution TEXT,
        playlist INTEGER DEFAULT 0,
        status TEXT NOT NULL CHECK(status IN ('completed', 'failed')),
        filename TEXT,
        error_message TEXT,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    );
    CREATE INDEX IF NOT EXISTS idx_downloads_workspace ON downloads(workspace_id);
    CREATE INDEX IF NOT EXISTS idx_downloads_created_at ON downloads(created_at);
    `
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create downloads table: %w", err)
	}
	return nil
}
