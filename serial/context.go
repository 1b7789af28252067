package serial

import (
	"encoding"
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/tony-format/go-oapi/debug"
	"github.com/signadot/tony-format/go-oapi/encode"
	"github.com/signadot/tony-format/go-oapi/field"
	"github.com/signadot/tony-format/go-oapi/ir"
	"github.com/signadot/tony-format/go-oapi/libdiff"

	"github.com/goccy/go-yaml"
)

// Context carries the state of one serialization pass. A Context is
// not safe for concurrent use.
type Context struct {
	referencing bool
	registry    Registry
	log         *slog.Logger
	diags       *Diagnostics

	path    []string
	visited map[visit]string
}

// visit identifies a pointer being written. The type is part of the key
// since a struct and its first field share an address.
type visit struct {
	t reflect.Type
	p uintptr
}

// visitOf reports the key for pointer rv, or false when rv points at a
// zero size value, which may share its address with unrelated values.
func visitOf(rv reflect.Value) (visit, bool) {
	if rv.Type().Elem().Size() == 0 {
		return visit{}, false
	}
	return visit{t: rv.Type(), p: rv.Pointer()}, true
}

// NewContext returns a Context which references into reg when
// referencing is set and reg is not nil.
func NewContext(referencing bool, reg Registry, opts ...Option) *Context {
	return newContext(referencing, reg, makeOptions(opts))
}

func newContext(referencing bool, reg Registry, o *options) *Context {
	return &Context{
		referencing: referencing && reg != nil,
		registry:    reg,
		log:         o.logger,
		diags:       &Diagnostics{},
		visited:     map[visit]string{},
	}
}

func (c *Context) Diagnostics() *Diagnostics {
	return c.diags
}

// Serialize converts v to a document tree.
func (c *Context) Serialize(v any) (*ir.Node, error) {
	return c.value(v)
}

func (c *Context) value(v any) (*ir.Node, error) {
	if debug.Serial() {
		debug.Logf("serial %s %T\n", c.pathString(), v)
	}
	if v == nil {
		return ir.Null(), nil
	}
	if field.IsSkip(v) {
		return nil, c.errorf(ErrUnsupported, "skip outside of a field")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ir.Null(), nil
		}
		if key, ok := visitOf(rv); ok {
			if prev, seen := c.visited[key]; seen {
				return nil, c.errorf(ErrCycle, "%T already being written at %s", v, prev)
			}
			c.visited[key] = c.pathString()
			defer delete(c.visited, key)
		}
	}

	switch x := v.(type) {
	case *ir.Node:
		res := x.Clone()
		res.Parent = nil
		return res, nil
	case Referenceable:
		if c.referencing && x.RefName() != "" {
			tok, err := c.reference(x)
			if err != nil {
				return nil, err
			}
			return c.object(tok)
		}
		return c.object(x)
	case field.Object:
		return c.object(x)
	case field.Optional:
		return c.value(x.Value())
	case Ordered:
		return c.entries(x.Entries())
	case Set:
		return c.sequence(x.SortedValues())
	case yaml.MapSlice:
		return c.mapSlice(x)
	case encoding.TextMarshaler:
		text, err := x.MarshalText()
		if err != nil {
			return nil, c.errorf(err, "%T", v)
		}
		return ir.FromString(string(text)), nil
	}
	return c.reflectValue(rv)
}

func (c *Context) reflectValue(rv reflect.Value) (*ir.Node, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ir.Null(), nil
		}
		return c.value(rv.Elem().Interface())
	case reflect.Bool:
		return ir.FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return ir.FromNumber(strconv.FormatUint(u, 10)), nil
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Float32:
		// keep the shortest float32 representation, 0.1 not 0.10000000149
		f, _ := strconv.ParseFloat(strconv.FormatFloat(rv.Float(), 'g', -1, 32), 64)
		return ir.FromFloat(f), nil
	case reflect.Float64:
		return ir.FromFloat(rv.Float()), nil
	case reflect.String:
		return ir.FromString(rv.String()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return ir.Null(), nil
		}
		fallthrough
	case reflect.Array:
		vals := make([]any, rv.Len())
		for i := range vals {
			vals[i] = rv.Index(i).Interface()
		}
		return c.sequence(vals)
	case reflect.Map:
		if rv.IsNil() {
			return ir.Null(), nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			return nil, c.errorf(ErrKeyType, "%s", rv.Type())
		}
		entries := make([]Entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, Entry{Key: iter.Key().String(), Value: iter.Value().Interface()})
		}
		slices.SortFunc(entries, func(a, b Entry) int { return strings.Compare(a.Key, b.Key) })
		return c.entries(entries)
	}
	return nil, c.errorf(ErrUnsupported, "%s", rv.Type())
}

func (c *Context) object(obj field.Object) (*ir.Node, error) {
	entries, err := ToEntries(obj)
	if err != nil {
		return nil, c.wrap(err)
	}
	return c.entries(entries)
}

func (c *Context) entries(entries []Entry) (*ir.Node, error) {
	res := ir.FromKeyVals(nil)
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Key] {
			return nil, c.errorf(ErrDuplicateKey, "%q", e.Key)
		}
		seen[e.Key] = true
		c.path = append(c.path, keySegment(e.Key))
		val, err := c.value(e.Value)
		c.path = c.path[:len(c.path)-1]
		if err != nil {
			return nil, err
		}
		res.Append(e.Key, val)
	}
	return res, nil
}

func (c *Context) sequence(vals []any) (*ir.Node, error) {
	nodes := make([]*ir.Node, len(vals))
	for i, v := range vals {
		c.path = append(c.path, "["+strconv.Itoa(i)+"]")
		val, err := c.value(v)
		c.path = c.path[:len(c.path)-1]
		if err != nil {
			return nil, err
		}
		nodes[i] = val
	}
	return ir.FromSlice(nodes), nil
}

func (c *Context) mapSlice(ms yaml.MapSlice) (*ir.Node, error) {
	entries := make([]Entry, len(ms))
	for i := range ms {
		key, ok := ms[i].Key.(string)
		if !ok {
			return nil, c.errorf(ErrKeyType, "%T", ms[i].Key)
		}
		entries[i] = Entry{Key: key, Value: ms[i].Value}
	}
	return c.entries(entries)
}

// reference stores obj on first sight and returns its reference token.
func (c *Context) reference(obj Referenceable) (field.Object, error) {
	name := obj.RefName()
	kept, err := c.registry.Lookup(obj)
	if err != nil {
		return nil, c.errorf(err, "lookup %q", name)
	}
	if kept == nil {
		c.log.Debug("storing", "ref", name, "path", c.pathString(), "value", inlineLazy(obj))
		if err := c.registry.Store(obj); err != nil {
			return nil, c.errorf(err, "store %q", name)
		}
	} else {
		c.log.Debug("found existing", "ref", name, "path", c.pathString())
		if err := c.checkRedefinition(name, kept, obj); err != nil {
			return nil, err
		}
	}
	tok, err := c.registry.Ref(obj)
	if err != nil {
		return nil, c.errorf(err, "ref %q", name)
	}
	if debug.Ref() {
		debug.Logf("ref %s -> %q\n", c.pathString(), name)
	}
	return tok, nil
}

func (c *Context) checkRedefinition(name string, kept, obj Referenceable) error {
	if samePointer(kept, obj) {
		return nil
	}
	inline := &Context{log: c.log, diags: &Diagnostics{}, visited: map[visit]string{}}
	from, err := inline.value(kept)
	if err != nil {
		return c.errorf(err, "stored %q", name)
	}
	to, err := inline.value(obj)
	if err != nil {
		return c.wrap(err)
	}
	if ir.Equal(from, to) {
		return nil
	}
	d := Diagnostic{
		Code:    CodeRedefinition,
		RefName: name,
		Path:    c.pathString(),
		Diff:    encode.MustString(libdiff.Diff(from, to)),
	}
	c.diags.add(d)
	c.log.Warn("conflicting redefinition, keeping the first", "ref", name, "path", d.Path, "diff", d.Diff)
	return nil
}

func inlineLazy(v any) debug.Lazy {
	return func() any {
		node, err := Value(v)
		if err != nil {
			return err.Error()
		}
		return strings.TrimSpace(encode.MustString(node, encode.EncodeWire(true)))
	}
}

func samePointer(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() != reflect.Pointer || ra.Type() != rb.Type() {
		return false
	}
	return ra.Pointer() == rb.Pointer()
}

func (c *Context) pathString() string {
	return "$" + strings.Join(c.path, "")
}

func keySegment(key string) string {
	if key != "" && strings.IndexAny(key, "'.*$[]") == -1 {
		return "." + key
	}
	return ".'" + strings.ReplaceAll(key, "'", "\\'") + "'"
}

func (c *Context) errorf(err error, format string, args ...any) error {
	return &Error{
		Path:    c.pathString(),
		Message: fmt.Sprintf("%s: %v", fmt.Sprintf(format, args...), err),
		Err:     err,
	}
}

// wrap sets the path of errors raised without one.
func (c *Context) wrap(err error) error {
	if e, ok := err.(*Error); ok && e.Path == "" {
		e.Path = c.pathString()
		return e
	}
	return err
}
