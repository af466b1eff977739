// Package item defines the records displayed by a list adapter and the
// narrow capabilities a bound record receives from it.
package item

import "reflect"

// ViewType selects the container template that renders a record.
// A record kind must always return the same value.
type ViewType int

// Record is anything that can appear in an adapter's list.
//
// Implementations embed Base and are used by pointer: removal works by
// identity, and the adapter attaches a Context to the record at bind time.
// Values whose dynamic type is not comparable (a struct with a slice field,
// say) have no identity; lists reject them like nil and never panic.
type Record interface {
	ViewType() ViewType

	// Attach replaces the record's binding context. A nil context detaches it.
	Attach(ctx Context)
	// Context returns the current binding context, or nil if unbound.
	Context() Context

	// SetPosition records the last-known index of the record.
	SetPosition(pos int)
	// Position returns the last-known index of the record.
	Position() int
}

// Container is a recyclable render unit able to display one record at a time.
type Container interface {
	// ViewType is the template this container was instantiated for.
	ViewType() ViewType
	// Render draws the currently bound record.
	Render(width int, focused bool) string
}

// Source identifies the widget a click came from.
type Source struct {
	Container Container
	Widget    string // e.g. "row", "checkbox", "delete"
}

// Context is the capability a bound record holds on its adapter.
// It is a lookup handle, not ownership: once the adapter rebinds the
// container or drops the record, Container reports false and clicks no-op.
//
// A Context must not be used to mutate the list from inside a bind callback.
type Context interface {
	// Handler returns the click handler configured on the adapter, or nil.
	Handler() ClickHandler
	// Container returns the live container the record is bound to.
	Container() (Container, bool)
	// Items returns a snapshot of the adapter's current list.
	Items() []Record
	// Click routes a click on widget to the adapter's handler.
	Click(widget string) bool
	// LongClick routes a long-press on widget to the adapter's handler,
	// if it supports long-presses.
	LongClick(widget string) bool
}

// Base implements the bookkeeping half of Record.
// Embed it and add a ViewType method:
//
//	type Title struct {
//	    item.Base
//	    Name string
//	}
//
//	func (*Title) ViewType() item.ViewType { return ViewTitle }
type Base struct {
	ctx      Context
	position int
}

// Attach implements Record.
func (b *Base) Attach(ctx Context) {
	b.ctx = ctx
}

// Context implements Record.
func (b *Base) Context() Context {
	return b.ctx
}

// SetPosition implements Record.
func (b *Base) SetPosition(pos int) {
	b.position = pos
}

// Position implements Record.
func (b *Base) Position() int {
	return b.position
}

// OnClick forwards a click to the adapter through the current binding.
// Returns false when the record is not bound.
func (b *Base) OnClick(widget string) bool {
	if b.ctx == nil {
		return false
	}
	return b.ctx.Click(widget)
}

// OnLongClick forwards a long-press through the current binding.
// Returns false when the record is not bound or the handler only
// supports plain clicks.
func (b *Base) OnLongClick(widget string) bool {
	if b.ctx == nil {
		return false
	}
	return b.ctx.LongClick(widget)
}

// IsLast reports whether the record is the last entry of its adapter's list.
// Returns false when unbound.
func (b *Base) IsLast() bool {
	if b.ctx == nil {
		return false
	}
	items := b.ctx.Items()
	return len(items) > 0 && items[len(items)-1].Context() == b.ctx
}

// IsNil reports whether v is nil or a typed nil pointer.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive // only nilable kinds matter
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Comparable reports whether v can be compared with == without panicking.
// Nil is comparable.
func Comparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}
