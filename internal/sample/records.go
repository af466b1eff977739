// Package sample is a terminal demo of the list adapter: a contact list with
// title separators, checkboxes, delete markers, toasts and persistence.
package sample

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/broadlist/internal/state"
	"github.com/llehouerou/broadlist/item"
)

// View types of the demo records.
const (
	ViewContact item.ViewType = iota + 1
	ViewTitle
)

// Contact is a checkable row.
type Contact struct {
	item.Base
	ID      string
	Name    string
	Checked bool
	AddedAt time.Time
}

// NewContact creates an unchecked contact with a fresh ID.
func NewContact(name string, now time.Time) *Contact {
	return &Contact{ID: uuid.NewString(), Name: name, AddedAt: now}
}

// ViewType implements item.Record.
func (*Contact) ViewType() item.ViewType { return ViewContact }

// Title is a heading row.
type Title struct {
	item.Base
	ID   string
	Name string
}

// NewTitle creates a title with a fresh ID.
func NewTitle(name string) *Title {
	return &Title{ID: uuid.NewString(), Name: name}
}

// ViewType implements item.Record.
func (*Title) ViewType() item.ViewType { return ViewTitle }

// toEntries converts the list to its stored form.
func toEntries(records []item.Record) []state.Entry {
	entries := make([]state.Entry, 0, len(records))
	for _, r := range records {
		switch r := r.(type) {
		case *Contact:
			entries = append(entries, state.Entry{
				ID:      r.ID,
				Kind:    state.KindContact,
				Name:    r.Name,
				Checked: r.Checked,
				AddedAt: r.AddedAt,
			})
		case *Title:
			entries = append(entries, state.Entry{ID: r.ID, Kind: state.KindTitle, Name: r.Name})
		}
	}
	return entries
}

// fromEntries rebuilds records from storage. Entries of unknown kind are
// skipped; missing IDs are regenerated.
func fromEntries(entries []state.Entry, logger *slog.Logger) []item.Record {
	records := make([]item.Record, 0, len(entries))
	for _, e := range entries {
		id := e.ID
		if id == "" {
			id = uuid.NewString()
		}
		switch e.Kind {
		case state.KindContact:
			records = append(records, &Contact{ID: id, Name: e.Name, Checked: e.Checked, AddedAt: e.AddedAt})
		case state.KindTitle:
			records = append(records, &Title{ID: id, Name: e.Name})
		default:
			logger.Warn("skipping stored entry", "id", e.ID, "kind", string(e.Kind))
		}
	}
	return records
}
