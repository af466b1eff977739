package sample

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/broadlist/adapter"
	"github.com/llehouerou/broadlist/decorator"
	"github.com/llehouerou/broadlist/internal/keymap"
	"github.com/llehouerou/broadlist/internal/state"
	"github.com/llehouerou/broadlist/internal/ui"
	"github.com/llehouerou/broadlist/internal/ui/confirm"
	"github.com/llehouerou/broadlist/internal/ui/textinput"
	"github.com/llehouerou/broadlist/item"
	"github.com/llehouerou/broadlist/recycler"
)

// ToastDuration is how long a toast stays on screen.
const ToastDuration = 3 * time.Second

// Messages shown by the demo.
const (
	EmptyText       = "No item found"
	LongPressHint   = "Please long press on the button"
	LongPressedText = "Item Long Pressed"
)

const (
	tagContact = "contact"
	tagTitle   = "title"
	tagClear   = "clear"
	tagFind    = "find"
)

type toastExpiredMsg struct {
	seq int
}

// Config holds what the demo needs from its caller.
type Config struct {
	Store           state.Interface
	Spacing         decorator.Spacing
	ScrollMargin    int
	LastItemRefresh bool
	Logger          *slog.Logger
	Now             func() time.Time // defaults to time.Now
}

// Model is the demo application. It is used by pointer.
type Model struct {
	ui.Base
	adapter *adapter.Adapter[item.Record]
	list    *recycler.Model
	stop    func()

	keys     *keymap.Resolver
	help     help.Model
	helpKeys keymap.Help

	prompt  textinput.Model
	confirm confirm.Model

	store  state.Interface
	logger *slog.Logger
	now    func() time.Time

	empty    bool
	toast    string
	toastSeq int
	pending  []tea.Cmd // commands queued by click handlers
	err      error
}

// New loads the stored list and builds the demo around it.
func New(cfg Config) (*Model, error) {
	m := &Model{
		keys:     keymap.NewResolver(keymap.All),
		help:     help.New(),
		helpKeys: keymap.NewHelp(keymap.All),
		prompt:   textinput.New(),
		store:    cfg.Store,
		logger:   cfg.Logger,
		now:      cfg.Now,
	}
	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}
	if m.now == nil {
		m.now = time.Now
	}

	var records []item.Record
	if m.store != nil {
		entries, err := m.store.Load()
		if err != nil {
			return nil, fmt.Errorf("loading items: %w", err)
		}
		records = fromEntries(entries, m.logger)
	}

	m.adapter = adapter.New(Templates(m.now), records,
		adapter.WithClickHandler(item.Handlers{Click: m.onClick, LongClick: m.onLongClick}),
		adapter.WithLastItemRefresh(cfg.LastItemRefresh),
		adapter.WithLogger(m.logger),
	)
	m.list = recycler.New(m.adapter,
		recycler.WithSpacing(cfg.Spacing),
		recycler.WithScrollMargin(cfg.ScrollMargin),
		recycler.WithLogger(m.logger),
	)
	m.list.SetFocused(true)
	m.list.SetTop(ui.HeaderHeight)

	m.empty = m.adapter.IsEmpty()
	m.stop = m.adapter.Observe(m.itemsChanged)
	return m, nil
}

// Adapter returns the adapter behind the list.
func (m *Model) Adapter() *adapter.Adapter[item.Record] {
	return m.adapter
}

// List returns the recycling surface.
func (m *Model) List() *recycler.Model {
	return m.list
}

// Empty reports whether the placeholder is shown.
func (m *Model) Empty() bool {
	return m.empty
}

// Toast returns the message currently shown, or "".
func (m *Model) Toast() string {
	return m.toast
}

// Err returns the error that stopped the demo, if any.
func (m *Model) Err() error {
	return m.err
}

// Close detaches the demo from its adapter.
func (m *Model) Close() {
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
	m.list.Detach()
}

func (m *Model) itemsChanged(records []item.Record) {
	m.empty = len(records) == 0
	m.persist(records)
}

func (m *Model) persist(records []item.Record) {
	if m.store != nil {
		m.store.Save(toEntries(records))
	}
}

func (m *Model) onClick(src item.Source, r item.Record) {
	if src.Widget == WidgetDelete {
		m.adapter.Remove(r)
		return
	}
	c, ok := r.(*Contact)
	if !ok {
		return
	}
	switch src.Widget {
	case WidgetCheckbox:
		c.Checked = !c.Checked
		m.adapter.Refresh(c)
		// refreshes do not reach observers
		m.persist(m.adapter.Items())
	case WidgetInfo:
		m.notify(LongPressHint)
	default:
		m.notify(fmt.Sprintf("Item Selected: %t", c.Checked))
	}
}

func (m *Model) onLongClick(src item.Source, r item.Record) {
	if _, ok := r.(*Contact); !ok {
		return
	}
	switch src.Widget {
	case WidgetInfo, recycler.RowWidget:
		m.notify(LongPressedText)
	}
}

// notify shows a toast and queues its expiry.
func (m *Model) notify(text string) {
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	m.pending = append(m.pending, tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	}))
}

func (m *Model) flush(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.pending...)
	m.pending = nil
	return tea.Batch(cmds...)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}
