package sample

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/broadlist/internal/logging"
	"github.com/llehouerou/broadlist/internal/state"
	"github.com/llehouerou/broadlist/item"
)

func TestViewTypesAreStable(t *testing.T) {
	assert.Equal(t, ViewContact, NewContact("a", time.Now()).ViewType())
	assert.Equal(t, ViewTitle, NewTitle("t").ViewType())
	assert.NotEqual(t, ViewContact, ViewTitle)
}

func TestNewRecordsGetDistinctIDs(t *testing.T) {
	a := NewContact("a", time.Now())
	b := NewContact("a", time.Now())
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, NewTitle("t").ID, NewTitle("t").ID)
}

func TestEntriesRoundTrip(t *testing.T) {
	added := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	records := []item.Record{
		&Title{ID: "t1", Name: "Friends"},
		&Contact{ID: "c1", Name: "Alice", Checked: true, AddedAt: added},
		&Contact{ID: "c2", Name: "Bob"},
	}

	entries := toEntries(records)
	require.Len(t, entries, 3)
	assert.Equal(t, state.Entry{ID: "t1", Kind: state.KindTitle, Name: "Friends"}, entries[0])
	assert.Equal(t, state.Entry{ID: "c1", Kind: state.KindContact, Name: "Alice", Checked: true, AddedAt: added}, entries[1])

	back := fromEntries(entries, logging.Discard())
	require.Len(t, back, 3)
	assert.Equal(t, &Title{ID: "t1", Name: "Friends"}, back[0])
	assert.Equal(t, &Contact{ID: "c1", Name: "Alice", Checked: true, AddedAt: added}, back[1])
	assert.Equal(t, &Contact{ID: "c2", Name: "Bob"}, back[2])
}

func TestFromEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []state.Entry
		want    int
	}{
		{"empty", nil, 0},
		{"unknown kind skipped", []state.Entry{{ID: "x", Kind: "note", Name: "?"}, {ID: "t", Kind: state.KindTitle}}, 1},
		{"missing id kept", []state.Entry{{Kind: state.KindContact, Name: "Alice"}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fromEntries(tt.entries, logging.Discard())
			assert.Len(t, got, tt.want)
		})
	}

	got := fromEntries([]state.Entry{{Kind: state.KindContact, Name: "Alice"}}, logging.Discard())
	c, ok := got[0].(*Contact)
	require.True(t, ok)
	assert.NotEmpty(t, c.ID)
}
