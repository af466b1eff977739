package recycler

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/broadlist/adapter"
	"github.com/llehouerou/broadlist/decorator"
	"github.com/llehouerou/broadlist/internal/ui/action"
	"github.com/llehouerou/broadlist/internal/ui/testutil"
	"github.com/llehouerou/broadlist/item"
)

const (
	viewRow item.ViewType = iota + 1
	viewTall
)

type row struct {
	item.Base
	name string
	tall bool
}

func (r *row) ViewType() item.ViewType {
	if r.tall {
		return viewTall
	}
	return viewRow
}

// cell renders "> name" when focused, "  name" otherwise, and marks the
// last row of the list.
type cell struct {
	vt  item.ViewType
	rec *row
}

func (c *cell) ViewType() item.ViewType { return c.vt }
func (c *cell) Bind(r item.Record)      { c.rec = r.(*row) }

func (c *cell) Render(_ int, focused bool) string {
	prefix := "  "
	if focused {
		prefix = "> "
	}
	s := prefix + c.rec.name
	if c.rec.IsLast() {
		s += " (last)"
	}
	if c.rec.tall {
		s += "\n  ~"
	}
	return s
}

func registry() *adapter.Registry {
	return adapter.NewRegistry().
		Register(viewRow, func() item.Container { return &cell{vt: viewRow} }).
		Register(viewTall, func() item.Container { return &cell{vt: viewTall} })
}

func rows(names ...string) []*row {
	out := make([]*row, len(names))
	for i, n := range names {
		out[i] = &row{name: n}
	}
	return out
}

func numbered(n int) []*row {
	out := make([]*row, n)
	for i := range out {
		out[i] = &row{name: fmt.Sprintf("r%02d", i)}
	}
	return out
}

func newSurface(t *testing.T, a Host, width, height int, opts ...Option) *Model {
	t.Helper()
	m := New(a, opts...)
	m.SetSize(width, height)
	m.SetFocused(true)
	t.Cleanup(m.Detach)
	return m
}

func TestCount_FollowsEveryMutation(t *testing.T) {
	a := adapter.New(registry(), rows("a", "b", "c"))
	m := newSurface(t, a, 20, 4)
	m.View()

	steps := []struct {
		name string
		op   func()
	}{
		{"add", func() { a.Add(&row{name: "d"}) }},
		{"add at top", func() { a.AddAtTop(&row{name: "z"}) }},
		{"insert block", func() { a.InsertAllAt(2, rows("x", "y")) }},
		{"remove", func() { a.RemoveAt(1) }},
		{"move", func() { a.Move(0, 4) }},
		{"refresh", func() { r, _ := a.Item(0); a.Refresh(r) }},
		{"set items", func() { a.SetItems(numbered(12)) }},
		{"remove last", func() { a.RemoveAt(a.ItemCount() - 1) }},
		{"clear", func() { a.Clear() }},
		{"add to empty", func() { a.Add(&row{name: "n"}) }},
	}

	for _, step := range steps {
		step.op()
		assert.Equal(t, a.ItemCount(), m.Count(), "after %s", step.name)
		m.View()
		assert.Equal(t, a.ItemCount(), m.Count(), "after rendering %s", step.name)
	}
}

func TestView_BindsOnlyVisibleRows(t *testing.T) {
	a := adapter.New(registry(), numbered(50))
	m := newSurface(t, a, 20, 5)

	m.View()

	stats := m.Stats()
	assert.Equal(t, 5, stats.Created)
	assert.Equal(t, 5, stats.Bound)
	assert.Equal(t, 0, stats.Recycled)
}

func TestScrolling_ReusesContainers(t *testing.T) {
	a := adapter.New(registry(), numbered(50))
	m := newSurface(t, a, 20, 5)
	m.View()

	for range 30 {
		m.Update(testutil.Key("j"))
		m.View()
	}

	stats := m.Stats()
	assert.Equal(t, 30, m.Selected())
	assert.Equal(t, 5, stats.Created, "scrolling must reuse pooled containers")
	assert.Positive(t, stats.Recycled)
	assert.True(t, testutil.ContainsLine(m.View(), "> r30"))
}

func TestView_RendersSelectionAndPadding(t *testing.T) {
	a := adapter.New(registry(), rows("a", "b", "c"))
	m := newSurface(t, a, 20, 5)

	lines := testutil.Lines(m.View())

	assert.Equal(t, []string{"> a", "  b", "  c (last)", "", ""}, lines)
}

func TestView_AppliesSpacing(t *testing.T) {
	a := adapter.New(registry(), rows("a", "b"))
	m := newSurface(t, a, 20, 6, WithSpacing(decorator.Uniform(1)))

	lines := testutil.Lines(m.View())

	assert.Equal(t, []string{"", " > a", "", "   b (last)", "", ""}, lines)
}

func TestView_TallRowsTakeMoreLines(t *testing.T) {
	a := adapter.New(registry(), []*row{{name: "a", tall: true}, {name: "b"}})
	m := newSurface(t, a, 20, 4)

	lines := testutil.Lines(m.View())

	assert.Equal(t, []string{"> a", "  ~", "  b (last)", ""}, lines)
}

func TestView_CachesRenderedRows(t *testing.T) {
	items := rows("a", "b", "c")
	a := adapter.New(registry(), items)
	m := newSurface(t, a, 20, 5)

	m.View()
	first := m.Stats().Rendered
	assert.Equal(t, 3, first)

	m.View()
	assert.Equal(t, first, m.Stats().Rendered, "unchanged rows come from the cache")

	items[1].name = "B"
	a.Refresh(items[1])
	lines := testutil.Lines(m.View())
	assert.Equal(t, first+1, m.Stats().Rendered)
	assert.Equal(t, "  B", lines[1])

	m.Update(testutil.Key("down"))
	m.View()
	assert.Equal(t, first+3, m.Stats().Rendered, "old and new selection re-render")
}

func TestLastItemRefresh_UpdatesPreviousLastRow(t *testing.T) {
	a := adapter.New(registry(), rows("a", "b"), adapter.WithLastItemRefresh(true))
	m := newSurface(t, a, 20, 4)
	m.View()

	a.Add(&row{name: "c"})
	lines := testutil.Lines(m.View())

	assert.Equal(t, []string{"> a", "  b", "  c (last)", ""}, lines)
}

func TestLastItemRefresh_OffLeavesStaleRow(t *testing.T) {
	a := adapter.New(registry(), rows("a", "b"))
	m := newSurface(t, a, 20, 4)
	m.View()

	a.Add(&row{name: "c"})
	lines := testutil.Lines(m.View())

	assert.Equal(t, "  b (last)", lines[1], "without the option the cached row is kept")
}

func TestMove_UpdatesLastRowMarker(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"last moves up", 2, 0, []string{"  c", "> a", "  b (last)", ""}},
		{"first moves to end", 0, 2, []string{"  b", "  c", "> a (last)", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := adapter.New(registry(), rows("a", "b", "c"))
			m := newSurface(t, a, 20, 4)
			m.View()

			require.True(t, a.Move(tt.from, tt.to))

			assert.Equal(t, tt.want, testutil.Lines(m.View()))
		})
	}
}

func TestEnter_ClicksSelectedRecord(t *testing.T) {
	var clicked []string
	h := item.ClickFunc(func(src item.Source, r item.Record) {
		clicked = append(clicked, src.Widget+":"+r.(*row).name)
	})
	a := adapter.New(registry(), rows("a", "b", "c"), adapter.WithClickHandler(h))
	m := newSurface(t, a, 20, 5)
	m.View()

	m.Update(testutil.Key("j"))
	m.Update(testutil.Key("enter"))

	assert.Equal(t, []string{"row:b"}, clicked)
}

func TestMouse_ClicksRowUnderPointer(t *testing.T) {
	var clicked, long []string
	h := item.Handlers{
		Click:     func(_ item.Source, r item.Record) { clicked = append(clicked, r.(*row).name) },
		LongClick: func(_ item.Source, r item.Record) { long = append(long, r.(*row).name) },
	}
	a := adapter.New(registry(), rows("a", "b", "c"), adapter.WithClickHandler(h))
	m := newSurface(t, a, 20, 5)
	m.SetTop(1)
	m.View()

	m.Update(testutil.Press(tea.MouseButtonLeft, 3))
	m.Update(testutil.Press(tea.MouseButtonRight, 2))
	m.Update(testutil.Press(tea.MouseButtonLeft, 0))
	m.Update(testutil.Press(tea.MouseButtonLeft, 5))

	assert.Equal(t, []string{"c"}, clicked)
	assert.Equal(t, []string{"b"}, long)
	assert.Equal(t, 1, m.Selected())
}

func TestMouse_WheelMovesSelection(t *testing.T) {
	a := adapter.New(registry(), rows("a", "b", "c"))
	m := newSurface(t, a, 20, 5)

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp})

	assert.Equal(t, 1, m.Selected())
}

func TestUnfocused_IgnoresInput(t *testing.T) {
	a := adapter.New(registry(), rows("a", "b"))
	m := newSurface(t, a, 20, 5)
	m.SetFocused(false)

	m.Update(testutil.Key("j"))

	assert.Equal(t, 0, m.Selected())
}

func TestUpdate_ReportsSelectionChange(t *testing.T) {
	a := adapter.New(registry(), rows("a", "b"))
	m := newSurface(t, a, 20, 5)

	msg := testutil.Exec(m.Update(testutil.Key("j")))

	am, ok := msg.(action.Msg)
	require.True(t, ok)
	assert.Equal(t, "recycler", am.Source)
	assert.Equal(t, SelectionChanged{Index: 1}, am.Action)

	assert.Nil(t, m.Update(testutil.Key("x")))
}

func TestSelection_FollowsMutations(t *testing.T) {
	items := rows("a", "b", "c")
	a := adapter.New(registry(), items)
	m := newSurface(t, a, 20, 5)
	m.Select(1)

	a.AddAtTop(&row{name: "z"})
	assert.Equal(t, 2, m.Selected(), "insert above keeps the same record selected")

	a.Move(2, 0)
	assert.Equal(t, 0, m.Selected(), "moved record stays selected")

	a.Remove(items[1])
	assert.Equal(t, 0, m.Selected())

	a.Clear()
	assert.Equal(t, -1, m.Selected())
}

func TestClickSelected_AfterRemovalTargetsNextRecord(t *testing.T) {
	var clicked []string
	h := item.ClickFunc(func(src item.Source, r item.Record) {
		clicked = append(clicked, src.Widget+":"+r.(*row).name)
	})
	a := adapter.New(registry(), rows("a", "b", "c"), adapter.WithClickHandler(h))
	m := newSurface(t, a, 20, 5)
	m.View()
	m.Select(1)

	a.RemoveAt(1)
	assert.True(t, m.ClickSelected("checkbox"))

	assert.Equal(t, []string{"checkbox:c"}, clicked)
}

func TestFullRefresh_RecyclesEverything(t *testing.T) {
	a := adapter.New(registry(), rows("a", "b", "c"))
	m := newSurface(t, a, 20, 5)
	m.View()

	a.SetItems(rows("x", "y"))

	assert.Equal(t, 2, m.Count())
	assert.Equal(t, 3, m.Pooled(viewRow))

	lines := testutil.Lines(m.View())
	assert.Equal(t, "> x", lines[0])
	assert.Equal(t, 3, m.Stats().Created, "new rows reuse the pool")
}

func TestOutOfRangeNotification_Resyncs(t *testing.T) {
	a := adapter.New(registry(), rows("a", "b"))
	m := newSurface(t, a, 20, 5)
	m.View()

	m.ItemRemoved(7)

	assert.Equal(t, 2, m.Count())
	assert.Equal(t, 2, m.Pooled(viewRow))
}

func TestMissingTemplate_StopsSurface(t *testing.T) {
	reg := adapter.NewRegistry().
		Register(viewRow, func() item.Container { return &cell{vt: viewRow} })
	a := adapter.New(reg, []*row{{name: "a"}, {name: "b", tall: true}})
	m := newSurface(t, a, 20, 5)

	msg := testutil.Exec(m.Update(nil))

	am, ok := msg.(action.Msg)
	require.True(t, ok)
	failed, ok := am.Action.(Failed)
	require.True(t, ok)
	require.ErrorIs(t, failed.Err, adapter.ErrNoContainer)
	require.ErrorIs(t, m.Err(), adapter.ErrNoContainer)

	assert.Empty(t, m.View())
	assert.Nil(t, m.Update(testutil.Key("j")), "a stopped surface reports the failure once")
}

func TestDetach_StopsNotifications(t *testing.T) {
	a := adapter.New(registry(), rows("a"))
	m := newSurface(t, a, 20, 5)

	m.Detach()
	a.Add(&row{name: "b"})

	assert.Equal(t, 1, m.Count())
}
