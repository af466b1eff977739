package recycler

import (
	"fmt"
	"slices"

	"github.com/llehouerou/broadlist/adapter"
	"github.com/llehouerou/broadlist/item"
)

var _ adapter.Surface = (*Model)(nil)

// RangeInserted implements adapter.Surface.
func (m *Model) RangeInserted(at, count int) {
	if count <= 0 {
		return
	}
	if at < 0 || at > len(m.slots) {
		m.resync(fmt.Sprintf("RangeInserted(%d,%d)", at, count))
		return
	}
	m.slots = slices.Insert(m.slots, at, make([]*slot, count)...)
	m.cursor.Inserted(at, count, len(m.slots))
}

// ItemRemoved implements adapter.Surface.
func (m *Model) ItemRemoved(at int) {
	if at < 0 || at >= len(m.slots) {
		m.resync(fmt.Sprintf("ItemRemoved(%d)", at))
		return
	}
	m.recycle(at)
	m.slots = slices.Delete(m.slots, at, at+1)
	m.cursor.Removed(at, len(m.slots))
}

// ItemChanged implements adapter.Surface.
func (m *Model) ItemChanged(at int) {
	if at < 0 || at >= len(m.slots) {
		m.resync(fmt.Sprintf("ItemChanged(%d)", at))
		return
	}
	if s := m.slots[at]; s != nil {
		s.stale = true
	}
}

// ItemMoved implements adapter.Surface.
func (m *Model) ItemMoved(from, to int) {
	if from < 0 || from >= len(m.slots) || to < 0 || to >= len(m.slots) {
		m.resync(fmt.Sprintf("ItemMoved(%d,%d)", from, to))
		return
	}
	s := m.slots[from]
	m.slots = slices.Delete(m.slots, from, from+1)
	m.slots = slices.Insert(m.slots, to, s)
	m.markStale(to)
	// The record that ends up last and the one that stopped being last
	// both render differently.
	if last := len(m.slots) - 1; from == last || to == last {
		m.markStale(last)
		m.markStale(last - 1)
	}
	m.cursor.Moved(from, to)
}

func (m *Model) markStale(pos int) {
	if pos < 0 || pos >= len(m.slots) {
		return
	}
	if s := m.slots[pos]; s != nil {
		s.stale = true
	}
}

// FullRefresh implements adapter.Surface.
func (m *Model) FullRefresh() {
	for i := range m.slots {
		m.recycle(i)
	}
	m.slots = make([]*slot, m.host.ItemCount())
	m.cursor.Clamp(len(m.slots))
}

// resync drops every binding after a notification that does not fit the
// known item count.
func (m *Model) resync(event string) {
	m.logger.Warn("notification out of range, resyncing",
		"event", event, "count", len(m.slots), "host_count", m.host.ItemCount())
	m.FullRefresh()
}

// recycle returns the container at pos to the pool.
func (m *Model) recycle(pos int) {
	s := m.slots[pos]
	if s == nil {
		return
	}
	m.pool[s.viewType] = append(m.pool[s.viewType], s.container)
	m.slots[pos] = nil
	m.stats.Recycled++
}

// obtain takes a pooled container of view type vt or asks the host for one.
func (m *Model) obtain(vt item.ViewType) (item.Container, error) {
	if idle := m.pool[vt]; len(idle) > 0 {
		c := idle[len(idle)-1]
		m.pool[vt] = idle[:len(idle)-1]
		return c, nil
	}
	c, err := m.host.CreateContainer(vt)
	if err != nil {
		return nil, err
	}
	m.stats.Created++
	return c, nil
}

// ensureBound binds pos if it has no container or its record changed.
func (m *Model) ensureBound(pos int) error {
	vt := m.host.ViewTypeAt(pos)
	s := m.slots[pos]
	if s != nil && s.viewType != vt {
		m.recycle(pos)
		s = nil
	}
	if s != nil && !s.stale {
		return nil
	}
	if s == nil {
		c, err := m.obtain(vt)
		if err != nil {
			m.err = err
			return err
		}
		s = &slot{container: c, viewType: vt}
		m.slots[pos] = s
	}
	m.host.BindContainer(s.container, pos)
	s.stale = false
	s.cached = false
	m.stats.Bound++
	return nil
}
