package adapter

import (
	"fmt"
	"sort"

	"github.com/llehouerou/broadlist/item"
)

// Template materializes and fills containers. It is the boundary to the
// code that knows how a record's fields map onto a container's widgets.
type Template interface {
	// Instantiate returns a new, unbound container for vt.
	Instantiate(vt item.ViewType) (item.Container, error)
	// Bind fills c with the fields of r.
	Bind(c item.Container, r item.Record)
}

// Binder is implemented by containers that bind records themselves.
type Binder interface {
	Bind(r item.Record)
}

// Factory creates a container for one view type.
type Factory func() item.Container

// Registry is a Template dispatching on a view-type table.
// Containers it creates are bound through Binder when they implement it.
type Registry struct {
	factories map[item.ViewType]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[item.ViewType]Factory)}
}

// Register associates vt with f. Registering the same view type twice
// replaces the previous factory.
func (r *Registry) Register(vt item.ViewType, f Factory) *Registry {
	r.factories[vt] = f
	return r
}

// ViewTypes returns the registered view types in ascending order.
func (r *Registry) ViewTypes() []item.ViewType {
	types := make([]item.ViewType, 0, len(r.factories))
	for vt := range r.factories {
		types = append(types, vt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Instantiate implements Template.
func (r *Registry) Instantiate(vt item.ViewType) (item.Container, error) {
	f, ok := r.factories[vt]
	if !ok {
		return nil, fmt.Errorf("view type %d: not registered", vt)
	}
	c := f()
	if item.IsNil(c) {
		return nil, fmt.Errorf("view type %d: factory returned nil", vt)
	}
	return c, nil
}

// Bind implements Template.
func (r *Registry) Bind(c item.Container, rec item.Record) {
	if b, ok := c.(Binder); ok {
		b.Bind(rec)
	}
}
