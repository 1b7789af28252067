package infer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/signadot/tony-format/go-oapi/debug"
	"github.com/signadot/tony-format/go-oapi/field"
	"github.com/signadot/tony-format/go-oapi/ir"
	"github.com/signadot/tony-format/go-oapi/serial"
	"github.com/signadot/tony-format/go-oapi/spec"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Option func(*inferrer) error

// RefIf names only the objects for which the boolean expression src
// holds, for example "depth > 0 && len(fields) >= 2". Objects which are
// not named are written inline.
func RefIf(src string) Option {
	return func(i *inferrer) error {
		prg, err := expr.Compile(src, expr.Env(env{}), expr.AsBool())
		if err != nil {
			return fmt.Errorf("ref predicate %q: %w", src, err)
		}
		i.refIf = prg
		return nil
	}
}

type env struct {
	Name   string   `expr:"name"`
	Key    string   `expr:"key"`
	Path   string   `expr:"path"`
	Depth  int      `expr:"depth"`
	Fields []string `expr:"fields"`
}

type inferrer struct {
	name  string
	refIf *vm.Program
	defs  *spec.Registry[*spec.Schema]
	// root is the definition of the root object when it is named.
	root *spec.Schema
}

// Doc is a document holding an inferred schema under "schema" and the
// named object schemas under "components".
type Doc struct {
	Schema      *spec.Schema
	Definitions *spec.Registry[*spec.Schema]
}

// Document infers the schema of sample, naming the root name.
func Document(name string, sample *ir.Node, opts ...Option) (*Doc, error) {
	i := &inferrer{name: name, defs: spec.NewRegistry[*spec.Schema]()}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	root, err := i.infer(sample, i.name, "", 0)
	if err != nil {
		return nil, err
	}
	if i.root != nil {
		root = i.root
	}
	return &Doc{Schema: root, Definitions: i.defs}, nil
}

func (d *Doc) Fields() []field.Field {
	return []field.Field{
		{Name: "schema", Value: d.Schema, Meta: field.Meta{Required: true}},
	}
}

// Registry holds the definitions, so the root schema is written as a
// reference to its own definition.
func (d *Doc) Registry() serial.Registry {
	return &spec.Components{Schemas: d.Definitions.Clone()}
}

func (d *Doc) RegistryField() string {
	return "components"
}

func (i *inferrer) infer(node *ir.Node, name, key string, depth int) (*spec.Schema, error) {
	switch node.Type {
	case ir.NullType:
		return &spec.Schema{}, nil
	case ir.BoolType:
		return &spec.Schema{Type_: "boolean"}, nil
	case ir.StringType:
		return &spec.Schema{Type_: "string"}, nil
	case ir.NumberType:
		if node.Float64 != nil {
			return &spec.Schema{Type_: "number", Format: "double"}, nil
		}
		return &spec.Schema{Type_: "integer", Format: "int64"}, nil
	case ir.ArrayType:
		res := &spec.Schema{Type_: "array"}
		if len(node.Values) == 0 {
			return res, nil
		}
		items, err := i.infer(node.Values[0], name, key, depth+1)
		if err != nil {
			return nil, err
		}
		res.Items = items
		return res, nil
	case ir.ObjectType:
		return i.object(node, name, key, depth)
	}
	return nil, fmt.Errorf("cannot infer schema of %s at %s", node.Type, node.Path())
}

// object returns the schema of node, or a reference to it when it is
// named.
func (i *inferrer) object(node *ir.Node, name, key string, depth int) (*spec.Schema, error) {
	keys := node.Keys()
	named, err := i.named(env{Name: name, Key: key, Path: node.Path(), Depth: depth, Fields: keys})
	if err != nil {
		return nil, err
	}
	res := &spec.Schema{Type_: "object", Properties: spec.NewRegistry[*spec.Schema]()}
	if named {
		name = i.unique(name)
		res.Referable = spec.ID(name)
		i.defs.Set(name, res)
		if depth == 0 {
			i.root = res
		}
	}
	if debug.Infer() {
		debug.Logf("infer %s name=%q named=%t\n", node.Path(), name, named)
	}
	for j, k := range keys {
		prop, err := i.infer(node.Values[j], name+pascal(k), k, depth+1)
		if err != nil {
			return nil, err
		}
		res.Properties.Set(k, prop)
	}
	if !named {
		return res, nil
	}
	return spec.SchemaRef(res)
}

func (i *inferrer) named(e env) (bool, error) {
	if i.refIf == nil {
		return true, nil
	}
	out, err := expr.Run(i.refIf, e)
	if err != nil {
		return false, fmt.Errorf("ref predicate at %s: %w", e.Path, err)
	}
	return out.(bool), nil
}

// unique suffixes name with a number when it is already defined.
func (i *inferrer) unique(name string) string {
	if _, ok := i.defs.Get(name); !ok {
		return name
	}
	for n := 2; ; n++ {
		cand := name + strconv.Itoa(n)
		if _, ok := i.defs.Get(cand); !ok {
			return cand
		}
	}
}

// pascal converts a key such as "first_name" to "FirstName".
func pascal(key string) string {
	parts := strings.FieldsFunc(key, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	b := &strings.Builder{}
	for _, p := range parts {
		rs := []rune(p)
		rs[0] = unicode.ToUpper(rs[0])
		b.WriteString(string(rs))
	}
	if b.Len() == 0 {
		return "Field"
	}
	return b.String()
}
