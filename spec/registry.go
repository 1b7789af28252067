package spec

import (
	"slices"

	"github.com/signadot/tony-format/go-oapi/field"
	"github.com/signadot/tony-format/go-oapi/serial"
)

// Registry is a map which keeps insertion order.
type Registry[T any] struct {
	names []string
	items map[string]T
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{items: map[string]T{}}
}

// Set adds or replaces name. A replaced name keeps its position.
func (r *Registry[T]) Set(name string, v T) *Registry[T] {
	if _, ok := r.items[name]; !ok {
		r.names = append(r.names, name)
	}
	r.items[name] = v
	return r
}

// setDefault adds name unless it is present, reporting whether it was
// added.
func (r *Registry[T]) setDefault(name string, v T) bool {
	if _, ok := r.items[name]; ok {
		return false
	}
	r.Set(name, v)
	return true
}

func (r *Registry[T]) Get(name string) (T, bool) {
	if r == nil {
		var zero T
		return zero, false
	}
	v, ok := r.items[name]
	return v, ok
}

func (r *Registry[T]) Delete(name string) {
	if _, ok := r.items[name]; !ok {
		return
	}
	delete(r.items, name)
	r.names = slices.DeleteFunc(r.names, func(n string) bool { return n == name })
}

func (r *Registry[T]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

func (r *Registry[T]) Names() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.names)
}

func (r *Registry[T]) Entries() []serial.Entry {
	res := make([]serial.Entry, len(r.names))
	for i, name := range r.names {
		res[i] = serial.Entry{Key: name, Value: r.items[name]}
	}
	return res
}

// Clone copies the registry but not its values.
func (r *Registry[T]) Clone() *Registry[T] {
	if r == nil {
		return nil
	}
	res := NewRegistry[T]()
	for _, name := range r.names {
		res.Set(name, r.items[name])
	}
	return res
}

// omitEmpty skips nil and empty registries.
func omitEmpty[T any](r *Registry[T]) any {
	if r.Len() == 0 {
		return field.Skip
	}
	return r
}
