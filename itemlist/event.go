package itemlist

import "fmt"

// EventKind identifies a fine-grained list change.
type EventKind int

const (
	RangeInserted EventKind = iota // Count items inserted at Index
	ItemRemoved                    // item at Index removed
	ItemChanged                    // item at Index must be rebound
	ItemMoved                      // item moved from Index to To
	FullRefresh                    // assume everything changed
)

func (k EventKind) String() string {
	switch k {
	case RangeInserted:
		return "RangeInserted"
	case ItemRemoved:
		return "ItemRemoved"
	case ItemChanged:
		return "ItemChanged"
	case ItemMoved:
		return "ItemMoved"
	case FullRefresh:
		return "FullRefresh"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a positional change notification.
type Event struct {
	Kind  EventKind
	Index int
	Count int // RangeInserted only
	To    int // ItemMoved only
}

func (e Event) String() string {
	switch e.Kind {
	case RangeInserted:
		return fmt.Sprintf("%s(%d,%d)", e.Kind, e.Index, e.Count)
	case ItemMoved:
		return fmt.Sprintf("%s(%d,%d)", e.Kind, e.Index, e.To)
	case FullRefresh:
		return e.Kind.String() + "()"
	default:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Index)
	}
}

// Inserted returns a RangeInserted event.
func Inserted(at, count int) Event { return Event{Kind: RangeInserted, Index: at, Count: count} }

// Removed returns an ItemRemoved event.
func Removed(at int) Event { return Event{Kind: ItemRemoved, Index: at} }

// Changed returns an ItemChanged event.
func Changed(at int) Event { return Event{Kind: ItemChanged, Index: at} }

// Moved returns an ItemMoved event.
func Moved(from, to int) Event { return Event{Kind: ItemMoved, Index: from, To: to} }

// Refreshed returns a FullRefresh event.
func Refreshed() Event { return Event{Kind: FullRefresh} }

// registry is an ordered set of callbacks. Dispatch iterates a snapshot,
// so callbacks may cancel themselves.
type registry[F any] struct {
	nextID  int
	entries []entry[F]
}

type entry[F any] struct {
	id int
	fn F
}

func (r *registry[F]) add(fn F) func() {
	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, entry[F]{id: id, fn: fn})
	return func() { r.remove(id) }
}

func (r *registry[F]) remove(id int) {
	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return
		}
	}
}

func (r *registry[F]) snapshot() []F {
	fns := make([]F, len(r.entries))
	for i, e := range r.entries {
		fns[i] = e.fn
	}
	return fns
}
