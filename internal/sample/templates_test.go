package sample

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/broadlist/internal/ui/testutil"
	"github.com/llehouerou/broadlist/item"
)

var fixedNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func container(t *testing.T, vt item.ViewType, r item.Record) item.Container {
	t.Helper()
	reg := Templates(clock)
	c, err := reg.Instantiate(vt)
	require.NoError(t, err)
	assert.Equal(t, vt, c.ViewType())
	reg.Bind(c, r)
	return c
}

func TestContactRow(t *testing.T) {
	alice := &Contact{Name: "Alice", AddedAt: fixedNow.Add(-time.Hour)}
	c := container(t, ViewContact, alice)

	out := testutil.StripANSI(c.Render(40, false))
	assert.Equal(t, 40, lipgloss.Width(out))
	assert.True(t, strings.HasPrefix(out, " [ ] Alice"))
	assert.Contains(t, out, "1 hour ago")
	assert.True(t, strings.HasSuffix(out, "✕"))

	alice.Checked = true
	out = testutil.StripANSI(c.Render(40, true))
	assert.True(t, strings.HasPrefix(out, "▌[x] Alice"))
}

func TestContactRowWithoutDate(t *testing.T) {
	c := container(t, ViewContact, &Contact{Name: "Bob"})
	out := testutil.StripANSI(c.Render(30, false))
	assert.NotContains(t, out, "ago")
	assert.Contains(t, out, "Bob")
}

func TestContactRowCutsLongNames(t *testing.T) {
	c := container(t, ViewContact, &Contact{Name: strings.Repeat("x", 80)})
	out := testutil.StripANSI(c.Render(20, false))
	assert.Equal(t, 20, lipgloss.Width(out))
	assert.Contains(t, out, "…")
}

func TestTitleRow(t *testing.T) {
	c := container(t, ViewTitle, &Title{Name: "Friends"})
	lines := testutil.Lines(c.Render(12, false))
	require.Len(t, lines, 2)
	assert.Equal(t, " Friends", lines[0])
	assert.Equal(t, " "+strings.Repeat("─", 11), lines[1])

	lines = testutil.Lines(c.Render(12, true))
	assert.Equal(t, "▌Friends", lines[0])
}

func TestUnboundRowsRenderNothing(t *testing.T) {
	reg := Templates(nil)
	for _, vt := range reg.ViewTypes() {
		c, err := reg.Instantiate(vt)
		require.NoError(t, err)
		assert.Empty(t, c.Render(20, false))
	}
}

func TestWrongRecordLeavesRowEmpty(t *testing.T) {
	c := container(t, ViewTitle, &Contact{Name: "Alice"})
	assert.Empty(t, c.Render(20, false))
}
