package state

import (
	"context"
	"database/sql"
	"time"

	"github.com/llehouerou/broadlist/internal/db"
)

// Kind distinguishes the record types stored in the list.
type Kind string

const (
	KindContact Kind = "contact"
	KindTitle   Kind = "title"
)

// Entry is one persisted list row, in list order.
type Entry struct {
	ID      string
	Kind    Kind
	Name    string
	Checked bool
	AddedAt time.Time // zero for titles
}

func loadEntries(conn *sql.DB) ([]Entry, error) {
	rows, err := conn.Query(`
		SELECT id, kind, name, checked, added_at
		FROM list_items
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			addedAt sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.Kind, &e.Name, &e.Checked, &addedAt); err != nil {
			return nil, err
		}
		if ms := db.NullInt64Value(addedAt); ms != 0 {
			e.AddedAt = time.UnixMilli(ms)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func saveEntries(ctx context.Context, conn *sql.DB, entries []Entry) error {
	return db.WithTx(ctx, conn, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM list_items`); err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO list_items (id, position, kind, name, checked, added_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, e := range entries {
			var addedAt int64
			if !e.AddedAt.IsZero() {
				addedAt = e.AddedAt.UnixMilli()
			}
			if _, err := stmt.Exec(e.ID, i, string(e.Kind), e.Name, e.Checked, db.NullInt64(addedAt)); err != nil {
				return err
			}
		}
		return nil
	})
}
