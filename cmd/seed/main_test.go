package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/broadlist/internal/state"
)

func TestDemo(t *testing.T) {
	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	entries := demo(2, 3, now)

	require.Len(t, entries, 8)
	assert.Equal(t, state.KindTitle, entries[0].Kind)
	assert.Equal(t, "Title 1", entries[0].Name)
	assert.Equal(t, "Item Name 1", entries[1].Name)
	assert.Equal(t, state.KindTitle, entries[4].Kind)
	assert.Equal(t, "Item Name 4", entries[5].Name)
	assert.True(t, entries[3].Checked)
	assert.Equal(t, now.Add(-time.Hour), entries[1].AddedAt)

	ids := map[string]bool{}
	for _, e := range entries {
		assert.NotEmpty(t, e.ID)
		ids[e.ID] = true
	}
	assert.Len(t, ids, len(entries))
}

func TestDemoEmpty(t *testing.T) {
	assert.Empty(t, demo(0, 5, time.Now()))
}
