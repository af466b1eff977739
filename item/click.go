package item

// ClickHandler receives single clicks on bound records.
type ClickHandler interface {
	OnItemClick(src Source, r Record)
}

// LongClickHandler additionally receives long-presses.
type LongClickHandler interface {
	ClickHandler
	OnItemLongClick(src Source, r Record)
}

// ClickFunc adapts a function to ClickHandler.
type ClickFunc func(src Source, r Record)

// OnItemClick implements ClickHandler.
func (f ClickFunc) OnItemClick(src Source, r Record) {
	f(src, r)
}

// Handlers combines click and long-press functions into a LongClickHandler.
// Either function may be nil.
type Handlers struct {
	Click     func(src Source, r Record)
	LongClick func(src Source, r Record)
}

// OnItemClick implements ClickHandler.
func (h Handlers) OnItemClick(src Source, r Record) {
	if h.Click != nil {
		h.Click(src, r)
	}
}

// OnItemLongClick implements LongClickHandler.
func (h Handlers) OnItemLongClick(src Source, r Record) {
	if h.LongClick != nil {
		h.LongClick(src, r)
	}
}
