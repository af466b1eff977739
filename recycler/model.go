// Package recycler provides a bubbletea list surface that displays an
// adapter's records through a small pool of reusable containers.
//
// Only the rows in the viewport are bound. Rows scrolled out of view give
// their container back to a per-view-type pool, and rows scrolled in take one
// from it before asking the adapter to create a new one. Rendered rows are
// cached until the adapter reports them changed.
package recycler

import (
	"log/slog"

	"github.com/llehouerou/broadlist/adapter"
	"github.com/llehouerou/broadlist/decorator"
	"github.com/llehouerou/broadlist/internal/cursor"
	"github.com/llehouerou/broadlist/internal/ui"
	"github.com/llehouerou/broadlist/item"
)

// RowWidget is the widget name reported for clicks on a whole row.
const RowWidget = "row"

// Host is the adapter side of the surface. *adapter.Adapter implements it.
type Host interface {
	ItemCount() int
	ViewTypeAt(pos int) item.ViewType
	CreateContainer(vt item.ViewType) (item.Container, error)
	BindContainer(c item.Container, pos int)
	Click(c item.Container, widget string) bool
	LongClick(c item.Container, widget string) bool
	Attach(s adapter.Surface) (detach func())
}

// Stats counts container work since creation.
type Stats struct {
	Created  int // containers instantiated by the host
	Bound    int // bind calls
	Recycled int // containers returned to the pool
	Rendered int // Render calls that missed the cache
}

type renderKey struct {
	width   int
	focused bool
}

// slot is the container currently showing one position.
type slot struct {
	container item.Container
	viewType  item.ViewType
	stale     bool

	cached  bool
	key     renderKey
	content string
}

// Model is the recycling surface. It must be used by pointer since the
// adapter keeps a reference to it.
type Model struct {
	ui.Base
	host    Host
	detach  func()
	spacing decorator.Spacing
	cursor  cursor.Cursor
	logger  *slog.Logger

	slots   []*slot // one per position, nil while not bound
	pool    map[item.ViewType][]item.Container
	heights map[item.ViewType]int // last rendered content height per view type

	lineRows []int // position shown on each line of the last View
	top      int   // screen line of the first row, for mouse hits

	stats Stats
	err   error
}

// New creates a surface attached to host. Call Detach when done.
func New(host Host, opts ...Option) *Model {
	o := options{
		margin: ui.ScrollMargin,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Model{
		host:    host,
		spacing: o.spacing,
		cursor:  cursor.New(o.margin),
		logger:  o.logger,
		slots:   make([]*slot, host.ItemCount()),
		pool:    make(map[item.ViewType][]item.Container),
		heights: make(map[item.ViewType]int),
	}
	if o.spacing.Orientation != decorator.Vertical {
		m.logger.Warn("orientation rendered as a vertical stack", "orientation", int(o.spacing.Orientation))
	}
	m.detach = host.Attach(m)
	return m
}

// Detach stops receiving notifications from the host.
func (m *Model) Detach() {
	if m.detach != nil {
		m.detach()
		m.detach = nil
	}
}

// Err returns the error that stopped the surface, if any. It wraps
// adapter.ErrNoContainer when the host could not create a container.
func (m *Model) Err() error {
	return m.err
}

// Count returns the number of positions the surface knows about. It always
// equals the host's ItemCount once notifications have been delivered.
func (m *Model) Count() int {
	return len(m.slots)
}

// Stats returns the container counters.
func (m *Model) Stats() Stats {
	return m.stats
}

// Pooled returns the number of idle containers of view type vt.
func (m *Model) Pooled(vt item.ViewType) int {
	return len(m.pool[vt])
}

// SetSpacing replaces the spacing decorator and drops the render cache.
func (m *Model) SetSpacing(s decorator.Spacing) {
	m.spacing = s
	m.invalidate()
}

// SetTop sets the screen line where the surface starts, so mouse events
// can be mapped to rows.
func (m *Model) SetTop(y int) {
	m.top = y
}

// Selected returns the selected position, or -1 when empty.
func (m *Model) Selected() int {
	if len(m.slots) == 0 {
		return -1
	}
	return m.cursor.Pos()
}

// Select moves the selection to pos, clamped to the list.
func (m *Model) Select(pos int) {
	m.cursor.Jump(pos, len(m.slots))
}

// SelectedContainer returns the container bound to the selected row.
func (m *Model) SelectedContainer() (item.Container, bool) {
	pos := m.Selected()
	if pos < 0 || m.ensureBound(pos) != nil {
		return nil, false
	}
	return m.slots[pos].container, true
}

// ClickSelected routes a click on widget of the selected row.
func (m *Model) ClickSelected(widget string) bool {
	c, ok := m.SelectedContainer()
	if !ok {
		return false
	}
	return m.host.Click(c, widget)
}

// LongClickSelected routes a long click on widget of the selected row.
func (m *Model) LongClickSelected(widget string) bool {
	c, ok := m.SelectedContainer()
	if !ok {
		return false
	}
	return m.host.LongClick(c, widget)
}

func (m *Model) invalidate() {
	for _, s := range m.slots {
		if s != nil {
			s.cached = false
		}
	}
}
