// Package adapter binds an observable list of heterogeneous records to a
// recycling list surface.
//
// The adapter owns the list. It answers the surface's queries (item count,
// view type per position), creates containers through a Template, binds
// records into containers, and forwards the list's positional change
// events to attached surfaces. Every bound record receives a revocable
// item.Context that routes clicks to the adapter's handler.
//
// An Adapter is not safe for concurrent use; call it from the UI goroutine.
package adapter

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/llehouerou/broadlist/item"
	"github.com/llehouerou/broadlist/itemlist"
)

// ErrNoContainer is returned when the template cannot produce a container.
// No record of that view type can be displayed, so callers treat it as fatal.
var ErrNoContainer = errors.New("no container for view type")

// Surface receives fine-grained change notifications.
type Surface interface {
	RangeInserted(at, count int)
	ItemRemoved(at int)
	ItemChanged(at int)
	ItemMoved(from, to int)
	FullRefresh()
}

// Record constrains an adapter's element type: a list record that can be
// found again by identity.
type Record interface {
	item.Record
	comparable
}

// Option configures an Adapter.
type Option func(*options)

type options struct {
	handler         item.ClickHandler
	lastItemRefresh bool
	logger          *slog.Logger
}

// WithClickHandler sets the initial click handler.
func WithClickHandler(h item.ClickHandler) Option {
	return func(o *options) {
		o.handler = h
	}
}

// WithLastItemRefresh enables last-item refresh mode on the backing list.
func WithLastItemRefresh(enabled bool) Option {
	return func(o *options) {
		o.lastItemRefresh = enabled
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Adapter wraps an itemlist.List with view-type dispatch, container
// binding and click routing.
type Adapter[T Record] struct {
	list    *itemlist.List[T]
	tmpl    Template
	handler item.ClickHandler
	logger  *slog.Logger

	nextToken   uint64
	byToken     map[uint64]*binding[T]
	byContainer map[item.Container]*binding[T]
	byRecord    map[item.Record]*binding[T]
}

// binding ties one record to one container for as long as neither is rebound.
type binding[T Record] struct {
	token     uint64
	record    T
	container item.Container
}

// New creates an adapter over items (which may be empty).
func New[T Record](tmpl Template, items []T, opts ...Option) *Adapter[T] {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	list := itemlist.New(items...)
	list.SetLastItemRefresh(o.lastItemRefresh)

	return &Adapter[T]{
		list:        list,
		tmpl:        tmpl,
		handler:     o.handler,
		logger:      o.logger,
		byToken:     make(map[uint64]*binding[T]),
		byContainer: make(map[item.Container]*binding[T]),
		byRecord:    make(map[item.Record]*binding[T]),
	}
}

// Attach connects a recycling surface. Notifications reach surfaces before
// coarse observers. The returned function detaches it.
func (a *Adapter[T]) Attach(s Surface) (detach func()) {
	return a.list.Subscribe(func(e itemlist.Event) {
		switch e.Kind {
		case itemlist.RangeInserted:
			s.RangeInserted(e.Index, e.Count)
		case itemlist.ItemRemoved:
			s.ItemRemoved(e.Index)
		case itemlist.ItemChanged:
			s.ItemChanged(e.Index)
		case itemlist.ItemMoved:
			s.ItemMoved(e.Index, e.To)
		case itemlist.FullRefresh:
			s.FullRefresh()
		}
	})
}

// Observe registers fn to receive the full list after every successful
// mutation. The slice must not be modified.
func (a *Adapter[T]) Observe(fn func(items []T)) (cancel func()) {
	return a.list.Observe(fn)
}

// SetLastItemRefresh toggles last-item refresh mode: an insertion also
// refreshes the record before it, and removing the last record refreshes
// the new last row. Removing any other record refreshes nothing extra.
func (a *Adapter[T]) SetLastItemRefresh(enabled bool) {
	a.list.SetLastItemRefresh(enabled)
}

// SetClickHandler replaces the click handler. Bound records see the new
// handler immediately. A nil handler disables click routing.
func (a *Adapter[T]) SetClickHandler(h item.ClickHandler) {
	a.handler = h
}

// ClickHandler returns the current click handler.
func (a *Adapter[T]) ClickHandler() item.ClickHandler {
	return a.handler
}

// ItemCount returns the number of records.
func (a *Adapter[T]) ItemCount() int {
	return a.list.Len()
}

// IsEmpty reports whether the adapter holds no records.
func (a *Adapter[T]) IsEmpty() bool {
	return a.list.Len() == 0
}

// Item returns the record at pos, or false if out of range.
func (a *Adapter[T]) Item(pos int) (T, bool) {
	return a.list.Get(pos)
}

// Items returns a copy of all records.
func (a *Adapter[T]) Items() []T {
	return a.list.Items()
}

// IndexOf returns the position of r, or -1.
func (a *Adapter[T]) IndexOf(r T) int {
	return a.list.IndexOf(r)
}

// ViewTypeAt returns the view type of the record at pos, or 0 if out of range.
func (a *Adapter[T]) ViewTypeAt(pos int) item.ViewType {
	r, ok := a.list.Get(pos)
	if !ok {
		return 0
	}
	return r.ViewType()
}

// CreateContainer asks the template for a new, unbound container.
// A failure wraps ErrNoContainer.
func (a *Adapter[T]) CreateContainer(vt item.ViewType) (item.Container, error) {
	c, err := a.tmpl.Instantiate(vt)
	if err == nil && item.IsNil(c) {
		err = errors.New("template returned nil")
	}
	if err != nil {
		a.logger.Error("create container failed", "view_type", int(vt), "error", err)
		return nil, fmt.Errorf("%w %d: %w", ErrNoContainer, vt, err)
	}
	return c, nil
}

// BindContainer binds the record at pos into c. It is a no-op when pos is
// no longer valid, since surfaces may deliver binds queued before a removal.
func (a *Adapter[T]) BindContainer(c item.Container, pos int) {
	if item.IsNil(c) {
		return
	}
	if !item.Comparable(c) {
		a.logger.Warn("bind ignored: container is not comparable", "type", fmt.Sprintf("%T", c))
		return
	}
	r, ok := a.list.Get(pos)
	if !ok {
		a.logger.Debug("stale bind ignored", "position", pos, "count", a.list.Len())
		return
	}

	a.revokeContainer(c)
	a.revokeRecord(r)

	a.nextToken++
	b := &binding[T]{token: a.nextToken, record: r, container: c}
	a.byToken[b.token] = b
	a.byContainer[c] = b
	a.byRecord[r] = b

	r.SetPosition(pos)
	r.Attach(&bindingContext[T]{owner: a, token: b.token})
	a.tmpl.Bind(c, r)
}

// Click routes a click on widget of container c to the handler, passing
// the record currently bound to c. Returns false if nothing is bound or no
// handler is set.
func (a *Adapter[T]) Click(c item.Container, widget string) bool {
	if !item.Comparable(c) {
		return false
	}
	b, ok := a.byContainer[c]
	if !ok {
		return false
	}
	return a.click(b, widget)
}

// LongClick routes a long-press like Click. Returns false if the handler
// does not implement item.LongClickHandler.
func (a *Adapter[T]) LongClick(c item.Container, widget string) bool {
	if !item.Comparable(c) {
		return false
	}
	b, ok := a.byContainer[c]
	if !ok {
		return false
	}
	return a.longClick(b, widget)
}

func (a *Adapter[T]) click(b *binding[T], widget string) bool {
	if a.handler == nil {
		return false
	}
	a.handler.OnItemClick(item.Source{Container: b.container, Widget: widget}, b.record)
	return true
}

func (a *Adapter[T]) longClick(b *binding[T], widget string) bool {
	h, ok := a.handler.(item.LongClickHandler)
	if !ok {
		return false
	}
	h.OnItemLongClick(item.Source{Container: b.container, Widget: widget}, b.record)
	return true
}

// Add appends r.
func (a *Adapter[T]) Add(r T) bool {
	a.warnUncomparable(r)
	return a.list.Append(r)
}

// AddAtTop inserts r at position 0.
func (a *Adapter[T]) AddAtTop(r T) bool {
	a.warnUncomparable(r)
	return a.list.Prepend(r)
}

// InsertAt inserts r at pos, clamped to [0, ItemCount].
func (a *Adapter[T]) InsertAt(pos int, r T) bool {
	a.warnUncomparable(r)
	return a.list.Insert(r, pos)
}

// AddAll appends records as one block.
func (a *Adapter[T]) AddAll(records []T) bool {
	a.warnUncomparable(records...)
	return a.list.AppendAll(records)
}

// InsertAllAt inserts records as one block at pos.
func (a *Adapter[T]) InsertAllAt(pos int, records []T) bool {
	a.warnUncomparable(records...)
	return a.list.InsertAll(records, pos)
}

// SetItems replaces the whole list and requests a full refresh.
// An empty argument is a no-op; use Clear to empty the adapter.
func (a *Adapter[T]) SetItems(records []T) bool {
	a.warnUncomparable(records...)
	if !hasRecord(records) {
		return false
	}
	a.revokeAll()
	ok := a.list.ReplaceAll(records)
	for i, r := range a.list.Items() {
		r.SetPosition(i)
	}
	return ok
}

// Clear removes every record.
func (a *Adapter[T]) Clear() bool {
	if a.list.Len() == 0 {
		return false
	}
	a.revokeAll()
	return a.list.Clear()
}

// Remove removes the first occurrence of r. Records without identity are
// never in the list, so removing one is a no-op.
func (a *Adapter[T]) Remove(r T) bool {
	i := a.list.IndexOf(r)
	if i < 0 {
		return false
	}
	a.revokeLeaving(i)
	_, ok := a.list.RemoveAt(i)
	return ok
}

// RemoveAt removes the record at pos.
func (a *Adapter[T]) RemoveAt(pos int) bool {
	if _, ok := a.list.Get(pos); !ok {
		return false
	}
	a.revokeLeaving(pos)
	_, ok := a.list.RemoveAt(pos)
	return ok
}

// Move moves the record at from to position to.
func (a *Adapter[T]) Move(from, to int) bool {
	return a.list.Move(from, to)
}

// Refresh asks attached surfaces to rebind r after its fields changed.
func (a *Adapter[T]) Refresh(r T) bool {
	return a.list.Refresh(r)
}

// revokeLeaving revokes the binding of the record at i unless another
// occurrence of it stays in the list.
func (a *Adapter[T]) revokeLeaving(i int) {
	r, _ := a.list.Get(i)
	for j, other := range a.list.Items() {
		if j != i && item.Record(other) == item.Record(r) {
			return
		}
	}
	a.revokeRecord(r)
}

func (a *Adapter[T]) revokeRecord(r T) {
	if b, ok := a.byRecord[r]; ok {
		a.revoke(b)
	}
}

func (a *Adapter[T]) revokeContainer(c item.Container) {
	if b, ok := a.byContainer[c]; ok {
		a.revoke(b)
	}
}

func (a *Adapter[T]) revokeAll() {
	for _, b := range a.byToken {
		a.revoke(b)
	}
}

func (a *Adapter[T]) revoke(b *binding[T]) {
	delete(a.byToken, b.token)
	delete(a.byContainer, b.container)
	delete(a.byRecord, b.record)
	b.record.Attach(nil)
}

func hasRecord[T Record](records []T) bool {
	for _, r := range records {
		if !item.IsNil(r) && item.Comparable(r) {
			return true
		}
	}
	return false
}

// warnUncomparable logs records the list will drop for lacking identity.
func (a *Adapter[T]) warnUncomparable(records ...T) {
	for _, r := range records {
		if !item.Comparable(r) {
			a.logger.Warn("record ignored: type is not comparable", "type", fmt.Sprintf("%T", r))
		}
	}
}
