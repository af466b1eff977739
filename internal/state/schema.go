package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS list_items (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			checked INTEGER NOT NULL DEFAULT 0,
			added_at INTEGER
		);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	return err
}
