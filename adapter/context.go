package adapter

import "github.com/llehouerou/broadlist/item"

// bindingContext is the item.Context handed to bound records. It holds a
// token rather than the container itself; the token dies when either the
// record or the container is rebound, or the record leaves the list.
type bindingContext[T Record] struct {
	owner *Adapter[T]
	token uint64
}

func (c *bindingContext[T]) live() (*binding[T], bool) {
	b, ok := c.owner.byToken[c.token]
	return b, ok
}

// Handler implements item.Context.
func (c *bindingContext[T]) Handler() item.ClickHandler {
	return c.owner.handler
}

// Container implements item.Context.
func (c *bindingContext[T]) Container() (item.Container, bool) {
	b, ok := c.live()
	if !ok {
		return nil, false
	}
	return b.container, true
}

// Items implements item.Context.
func (c *bindingContext[T]) Items() []item.Record {
	items := c.owner.list.Items()
	out := make([]item.Record, len(items))
	for i, r := range items {
		out[i] = r
	}
	return out
}

// Click implements item.Context.
func (c *bindingContext[T]) Click(widget string) bool {
	b, ok := c.live()
	if !ok {
		return false
	}
	return c.owner.click(b, widget)
}

// LongClick implements item.Context.
func (c *bindingContext[T]) LongClick(widget string) bool {
	b, ok := c.live()
	if !ok {
		return false
	}
	return c.owner.longClick(b, widget)
}
