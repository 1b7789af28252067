package serial

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/signadot/tony-format/go-oapi/ir"
)

// Document serializes root in two passes, returning a tree whose last key
// is root.RegistryField() holding the materialized registry. Any value
// root itself holds under that key is replaced.
//
// The returned diagnostics are never nil.
func Document(root Root, opts ...Option) (*ir.Node, *Diagnostics, error) {
	o := makeOptions(opts)
	reg := root.Registry()
	if reg == nil {
		return nil, &Diagnostics{}, &Error{Message: fmt.Sprintf("%T: %v", root, ErrNoRegistry), Err: ErrNoRegistry}
	}
	key := root.RegistryField()

	c := newContext(true, reg, o)
	if rv := reflect.ValueOf(root); rv.Kind() == reflect.Pointer {
		if key, ok := visitOf(rv); ok {
			c.visited[key] = "$"
		}
	}
	entries, err := ToEntries(root)
	if err != nil {
		return nil, c.diags, c.wrap(err)
	}
	entries = slices.DeleteFunc(entries, func(e Entry) bool { return e.Key == key })
	res, err := c.entries(entries)
	if err != nil {
		return nil, c.diags, err
	}

	o.logger.Debug("materializing registry", "field", key)
	mc := newContext(false, nil, o)
	mc.path = append(mc.path, keySegment(key))
	reg2, err := mc.value(reg.Materialize())
	if err != nil {
		return nil, c.diags, err
	}
	res.Append(key, reg2)
	return res, c.diags, nil
}

// Value serializes v with referencing disabled.
func Value(v any, opts ...Option) (*ir.Node, error) {
	return newContext(false, nil, makeOptions(opts)).value(v)
}
