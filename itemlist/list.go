// Package itemlist provides an ordered, observable collection of list items.
//
// A List broadcasts two kinds of signals on every successful mutation:
// fine-grained positional events (for a recycling surface that re-renders
// only what changed) and a coarse "here is the whole list" notification
// (for derived UI such as an empty-state placeholder). Fine-grained
// listeners always run before coarse observers.
//
// Lists are not safe for concurrent use. All mutations are expected to
// happen on the UI goroutine, and listeners must not mutate the list
// synchronously.
package itemlist

import "github.com/llehouerou/broadlist/item"

// List holds an ordered collection of items. The zero value is not usable;
// create lists with New.
type List[T comparable] struct {
	items           []T
	lastItemRefresh bool
	listeners       registry[func(Event)]
	observers       registry[func([]T)]
}

// New creates a list pre-seeded with items. Nil and uncomparable items are
// dropped.
func New[T comparable](items ...T) *List[T] {
	return &List[T]{
		items: compact(items),
	}
}

// SetLastItemRefresh toggles the extra ItemChanged event for the item that
// precedes an insertion, and for the new last item after removing the old
// one. Removing any other item emits no extra event, since the last item
// is unchanged. Use it when the last row carries its own decoration.
func (l *List[T]) SetLastItemRefresh(enabled bool) {
	l.lastItemRefresh = enabled
}

// LastItemRefresh reports whether last-item refresh mode is enabled.
func (l *List[T]) LastItemRefresh() bool {
	return l.lastItemRefresh
}

// Subscribe registers a fine-grained listener.
// The returned function unregisters it.
func (l *List[T]) Subscribe(fn func(Event)) (cancel func()) {
	return l.listeners.add(fn)
}

// Observe registers a coarse observer called with the full list after each
// successful mutation. Observers must not modify the slice.
// The returned function unregisters it.
func (l *List[T]) Observe(fn func(items []T)) (cancel func()) {
	return l.observers.add(fn)
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Get returns the item at index i, or false if out of bounds.
func (l *List[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Items returns a copy of all items.
func (l *List[T]) Items() []T {
	result := make([]T, len(l.items))
	copy(result, l.items)
	return result
}

// IndexOf returns the index of the first occurrence of v, or -1.
func (l *List[T]) IndexOf(v T) int {
	if !item.Comparable(v) {
		return -1
	}
	for i, it := range l.items {
		if it == v {
			return i
		}
	}
	return -1
}

// Insert inserts v at index at, clamped to [0, Len].
// Returns false (and emits nothing) if v is nil or not comparable.
func (l *List[T]) Insert(v T, at int) bool {
	if !usable(v) {
		return false
	}
	return l.insert([]T{v}, at)
}

// Append adds v to the end of the list.
func (l *List[T]) Append(v T) bool {
	return l.Insert(v, len(l.items))
}

// Prepend adds v to the beginning of the list.
func (l *List[T]) Prepend(v T) bool {
	return l.Insert(v, 0)
}

// InsertAll inserts items at index at, preserving their order, and emits a
// single RangeInserted event for the whole block. Nil and uncomparable
// entries are dropped; an empty block is a no-op.
func (l *List[T]) InsertAll(items []T, at int) bool {
	return l.insert(compact(items), at)
}

// AppendAll adds items to the end of the list.
func (l *List[T]) AppendAll(items []T) bool {
	return l.InsertAll(items, len(l.items))
}

func (l *List[T]) insert(block []T, at int) bool {
	if len(block) == 0 {
		return false
	}
	at = clamp(at, 0, len(l.items))

	l.items = append(l.items[:at], append(block, l.items[at:]...)...)

	events := []Event{Inserted(at, len(block))}
	if l.lastItemRefresh && at > 0 {
		events = append(events, Changed(at-1))
	}
	l.emit(events...)
	return true
}

// Remove removes the first occurrence of v.
// Returns false (and emits nothing) if v is not in the list.
func (l *List[T]) Remove(v T) bool {
	if !usable(v) {
		return false
	}
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	l.removeAt(i)
	return true
}

// RemoveAt removes the item at index i and returns it.
// Returns false if i is out of bounds.
func (l *List[T]) RemoveAt(i int) (T, bool) {
	v, ok := l.Get(i)
	if !ok {
		return v, false
	}
	l.removeAt(i)
	return v, true
}

func (l *List[T]) removeAt(i int) {
	last := len(l.items) - 1
	copy(l.items[i:], l.items[i+1:])
	var zero T
	l.items[last] = zero
	l.items = l.items[:last]

	events := []Event{Removed(i)}
	if l.lastItemRefresh && i == len(l.items) && i > 0 {
		events = append(events, Changed(i-1))
	}
	l.emit(events...)
}

// Move moves the item at from to index to.
// Returns false if either index is out of bounds or they are equal.
func (l *List[T]) Move(from, to int) bool {
	if from < 0 || from >= len(l.items) || to < 0 || to >= len(l.items) {
		return false
	}
	if from == to {
		return false
	}

	v := l.items[from]
	l.items = append(l.items[:from], l.items[from+1:]...)
	l.items = append(l.items[:to], append([]T{v}, l.items[to:]...)...)

	l.emit(Moved(from, to))
	return true
}

// ReplaceAll clears the list and loads items, emitting one FullRefresh and
// one coarse notification. Observers never see the intermediate empty list.
// An empty (or all-nil) argument is a no-op; use Clear to empty the list.
func (l *List[T]) ReplaceAll(items []T) bool {
	block := compact(items)
	if len(block) == 0 {
		return false
	}
	l.items = block
	l.emit(Refreshed())
	return true
}

// Clear removes all items. Clearing an empty list is a no-op.
func (l *List[T]) Clear() bool {
	if len(l.items) == 0 {
		return false
	}
	l.items = nil
	l.emit(Refreshed())
	return true
}

// Refresh emits ItemChanged for the first occurrence of v so the surface
// rebinds it. The list itself is unchanged, so observers are not called.
func (l *List[T]) Refresh(v T) bool {
	if !usable(v) {
		return false
	}
	return l.RefreshAt(l.IndexOf(v))
}

// RefreshAt emits ItemChanged for index i.
func (l *List[T]) RefreshAt(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	for _, fn := range l.listeners.snapshot() {
		fn(Changed(i))
	}
	return true
}

// emit delivers events to every listener, then the snapshot to every
// observer.
func (l *List[T]) emit(events ...Event) {
	for _, fn := range l.listeners.snapshot() {
		for _, e := range events {
			fn(e)
		}
	}
	observers := l.observers.snapshot()
	if len(observers) == 0 {
		return
	}
	snapshot := l.Items()
	for _, fn := range observers {
		fn(snapshot)
	}
}

func compact[T comparable](items []T) []T {
	out := make([]T, 0, len(items))
	for _, v := range items {
		if usable(v) {
			out = append(out, v)
		}
	}
	return out
}

// usable reports whether v may be stored and looked up by identity.
func usable(v any) bool {
	return !item.IsNil(v) && item.Comparable(v)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
