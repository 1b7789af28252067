package serial

import "github.com/signadot/tony-format/go-oapi/field"

type widget struct {
	name  string
	Title string
	Kind  field.Skippable[string]
	Child *widget
	Note  field.Skippable[any]
}

func (w *widget) RefName() string { return w.name }

func (w *widget) Fields() []field.Field {
	return []field.Field{
		{Name: "title", Value: field.OmitZero(w.Title)},
		{Name: "kind", Value: w.Kind},
		{Name: "child", Value: field.OmitNil(w.Child)},
		{Name: "note", Value: w.Note},
		{Name: "name", Value: w.name, Meta: field.Meta{NonSpec: true}},
	}
}

type token struct {
	Ref string
}

func (t *token) Fields() []field.Field {
	return []field.Field{
		{Name: "Ref", Value: t.Ref, Meta: field.Meta{SpecName: "$ref"}},
	}
}

type ordered []Entry

func (o ordered) Entries() []Entry { return o }

type stringSet map[string]bool

func (s stringSet) SortedValues() []any {
	res := make([]any, 0, len(s))
	for _, k := range []string{"a", "b", "c", "d"} {
		if s[k] {
			res = append(res, k)
		}
	}
	return res
}

type testRegistry struct {
	names   []string
	widgets map[string]Referenceable
}

func newTestRegistry() *testRegistry {
	return &testRegistry{widgets: map[string]Referenceable{}}
}

func (r *testRegistry) Lookup(obj Referenceable) (Referenceable, error) {
	if w, ok := r.widgets[obj.RefName()]; ok {
		return w, nil
	}
	return nil, nil
}

func (r *testRegistry) Store(obj Referenceable) error {
	name := obj.RefName()
	if name == "" {
		return ErrNoRefName
	}
	if _, ok := r.widgets[name]; ok {
		return nil
	}
	r.names = append(r.names, name)
	r.widgets[name] = obj
	return nil
}

func (r *testRegistry) Ref(obj Referenceable) (field.Object, error) {
	return &token{Ref: "#/components/widgets/" + obj.RefName()}, nil
}

type testComponents struct {
	Widgets ordered
}

func (c *testComponents) Fields() []field.Field {
	return []field.Field{
		{Name: "widgets", Value: field.OmitNil(c.Widgets)},
	}
}

func (r *testRegistry) Materialize() field.Object {
	res := &testComponents{}
	for _, name := range r.names {
		res.Widgets = append(res.Widgets, Entry{Key: name, Value: r.widgets[name]})
	}
	return res
}

type testDoc struct {
	Title      string
	Schema     any
	Items      []any
	Components any
	reg        *testRegistry
}

func (d *testDoc) Fields() []field.Field {
	return []field.Field{
		{Name: "title", Value: d.Title},
		{Name: "schema", Value: field.OmitNil(d.Schema)},
		{Name: "items", Value: field.OmitNil(d.Items)},
		{Name: "components", Value: field.OmitNil(d.Components)},
	}
}

func (d *testDoc) Registry() Registry {
	if d.reg != nil {
		return d.reg
	}
	return newTestRegistry()
}

func (d *testDoc) RegistryField() string { return "components" }

type envelope struct {
	Inner payload
}

func (e *envelope) Fields() []field.Field {
	return []field.Field{{Name: "inner", Value: &e.Inner}}
}

type payload struct {
	Kind string
}

func (p *payload) Fields() []field.Field {
	return []field.Field{{Name: "kind", Value: p.Kind}}
}

type marker struct{}

func (*marker) Fields() []field.Field {
	return []field.Field{{Name: "empty", Value: &blank{}}}
}

type blank struct{}

func (*blank) Fields() []field.Field { return nil }
