package serial

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/signadot/tony-format/go-oapi/encode"
	"github.com/signadot/tony-format/go-oapi/field"
	"github.com/signadot/tony-format/go-oapi/ir"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func mustDocument(t *testing.T, root Root, opts ...Option) (*ir.Node, *Diagnostics) {
	t.Helper()
	node, diags, err := Document(root, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return node, diags
}

func TestDocumentExample(t *testing.T) {
	doc := &testDoc{
		Title:  "Demo",
		Schema: &widget{name: "Widget", Kind: field.Set("object")},
	}
	node, diags := mustDocument(t, doc)
	if diags.Len() != 0 {
		t.Errorf("unexpected diagnostics: %s", diags)
	}
	want := `title: Demo
schema:
  $ref: "#/components/widgets/Widget"
components:
  widgets:
    Widget:
      kind: object
`
	if diff := cmp.Diff(want, encode.MustString(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDocumentIdempotent(t *testing.T) {
	doc := &testDoc{
		Title: "Demo",
		Items: []any{
			&widget{name: "A", Kind: field.Set("x")},
			&widget{name: "B", Child: &widget{name: "A", Kind: field.Set("x")}},
		},
	}
	first, _ := mustDocument(t, doc)
	second, _ := mustDocument(t, doc)
	if !ir.Equal(first, second) {
		t.Errorf("documents differ:\n%s\n%s", encode.MustString(first), encode.MustString(second))
	}
}

func TestValueIdempotent(t *testing.T) {
	v := &widget{
		name:  "Outer",
		Title: "outer",
		Child: &widget{name: "Inner", Kind: field.Set("leaf")},
		Note:  field.Set[any]([]any{&widget{name: "Other", Title: "other"}}),
	}
	first, err := Value(v)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Value(v)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(first, second) {
		t.Errorf("values differ:\n%s\n%s", encode.MustString(first), encode.MustString(second))
	}
	err = first.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if !isPost && y.Type == ir.ObjectType && ir.Get(y, "$ref") != nil {
			t.Errorf("token at %s", y.Path())
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(ir.Get(first, "child"), "kind"); got == nil || got.String != "leaf" {
		t.Errorf("expected inline child, got %s", encode.MustString(first))
	}
}

func TestDocumentDedup(t *testing.T) {
	reg := newTestRegistry()
	doc := &testDoc{
		Items: []any{
			&widget{name: "Pet", Title: "pet"},
			&widget{name: "Pet", Title: "pet"},
		},
		reg: reg,
	}
	node, diags := mustDocument(t, doc)
	if diags.Len() != 0 {
		t.Errorf("unexpected diagnostics: %s", diags)
	}
	if diff := cmp.Diff([]string{"Pet"}, reg.names); diff != "" {
		t.Errorf("registry names (-want +got):\n%s", diff)
	}
	items := ir.Get(node, "items")
	for i, item := range items.Values {
		ref := ir.Get(item, "$ref")
		if ref == nil || ref.String != "#/components/widgets/Pet" {
			t.Errorf("item %d: expected token, got %s", i, encode.MustString(item))
		}
	}
	widgets := ir.Get(ir.Get(node, "components"), "widgets")
	if diff := cmp.Diff([]string{"Pet"}, widgets.Keys()); diff != "" {
		t.Errorf("components (-want +got):\n%s", diff)
	}
}

func TestDocumentConflict(t *testing.T) {
	logs := bytes.NewBuffer(nil)
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	doc := &testDoc{
		Items: []any{
			&widget{name: "Pet", Kind: field.Set("cat")},
			&widget{name: "Pet", Kind: field.Set("dog")},
		},
	}
	node, diags := mustDocument(t, doc, WithLogger(logger))
	if diags.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", diags.Len())
	}
	d := diags.List[0]
	if d.Code != CodeRedefinition || d.RefName != "Pet" || d.Path != "$.items[1]" {
		t.Errorf("unexpected diagnostic %+v", d)
	}
	if d.Diff == "" {
		t.Error("empty diff")
	}
	kept := ir.Get(ir.Get(ir.Get(ir.Get(node, "components"), "widgets"), "Pet"), "kind")
	if kept == nil || kept.String != "cat" {
		t.Errorf("expected first definition kept, got %s", encode.MustString(node))
	}
	for _, item := range ir.Get(node, "items").Values {
		if ir.Get(item, "$ref") == nil {
			t.Errorf("expected token, got %s", encode.MustString(item))
		}
	}
	if !strings.Contains(logs.String(), "level=WARN") || !strings.Contains(logs.String(), "ref=Pet") {
		t.Errorf("expected warning log, got %q", logs.String())
	}
}

func TestSkipAndNull(t *testing.T) {
	node, err := Value(&widget{Title: "t", Note: field.Null})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"title", "note"}, node.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if ir.Get(node, "note").Type != ir.NullType {
		t.Errorf("note: %s", encode.MustString(node))
	}

	node, err = Value(&widget{Kind: field.Set("")})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(node); got != "kind: \"\"\n" {
		t.Errorf("present empty string: got %q", got)
	}
}

type renamed struct{}

func (renamed) Fields() []field.Field {
	return []field.Field{
		{Name: "_in", Value: "query"},
		{Name: "type_", Value: "object"},
		{Name: "Ref", Value: "#/x", Meta: field.Meta{SpecName: "$ref"}},
		{Name: "operation_id", Value: "getPets"},
		{Name: "ExternalDocs", Value: field.Skip},
	}
}

func TestRenaming(t *testing.T) {
	entries, err := ToEntries(renamed{})
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{
		{Key: "in", Value: "query"},
		{Key: "type", Value: "object"},
		{Key: "$ref", Value: "#/x"},
		{Key: "operationId", Value: "getPets"},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

type badName struct{}

func (badName) Fields() []field.Field {
	return []field.Field{{Name: "_", Value: 1}}
}

func TestEmptyName(t *testing.T) {
	_, err := Value(map[string]any{"x": badName{}})
	if !errors.Is(err, field.ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	var serr *Error
	if !errors.As(err, &serr) || serr.Path != "$.x" {
		t.Errorf("expected error at $.x, got %v", err)
	}
}

func TestNoTokensInRegistry(t *testing.T) {
	doc := &testDoc{
		Schema: &widget{
			name:  "Outer",
			Child: &widget{name: "Inner", Kind: field.Set("leaf")},
		},
	}
	node, _ := mustDocument(t, doc)
	comps := ir.Get(node, "components")
	err := comps.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if !isPost && y.Type == ir.ObjectType && ir.Get(y, "$ref") != nil {
			t.Errorf("token at %s", y.Path())
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	outer := ir.Get(ir.Get(comps, "widgets"), "Outer")
	if got := ir.Get(ir.Get(outer, "child"), "kind"); got == nil || got.String != "leaf" {
		t.Errorf("expected inline child, got %s", encode.MustString(outer))
	}
	if keys := node.Keys(); keys[len(keys)-1] != "components" {
		t.Errorf("components not last: %v", keys)
	}
}

func TestComponentsReplaced(t *testing.T) {
	doc := &testDoc{
		Title:      "x",
		Components: map[string]any{"stale": true},
	}
	node, _ := mustDocument(t, doc)
	if diff := cmp.Diff([]string{"title", "components"}, node.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if comps := ir.Get(node, "components"); len(comps.Fields) != 0 {
		t.Errorf("expected empty components, got %s", encode.MustString(comps))
	}
}

func TestAnonymousInline(t *testing.T) {
	reg := newTestRegistry()
	doc := &testDoc{Schema: &widget{Kind: field.Set("anon")}, reg: reg}
	node, _ := mustDocument(t, doc)
	if got := ir.Get(ir.Get(node, "schema"), "kind"); got == nil || got.String != "anon" {
		t.Errorf("expected inline, got %s", encode.MustString(node))
	}
	if len(reg.names) != 0 {
		t.Errorf("anonymous object stored: %v", reg.names)
	}
}

func TestContainers(t *testing.T) {
	v := map[string]any{
		"m":   map[string]int{"b": 2, "a": 1},
		"ms":  yaml.MapSlice{{Key: "z", Value: 1}, {Key: "y", Value: 2}},
		"ord": ordered{{Key: "q", Value: "1"}, {Key: "p", Value: "2"}},
		"set": stringSet{"c": true, "a": true},
		"arr": [2]int{1, 2},
		"nil": []int(nil),
		"opt": []field.Skippable[int]{field.Set(3)},
	}
	node, err := Value(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `arr:
  - 1
  - 2
m:
  a: 1
  b: 2
ms:
  z: 1
  "y": 2
nil: null
opt:
  - 3
ord:
  q: "1"
  p: "2"
set:
  - a
  - c
`
	if diff := cmp.Diff(want, encode.MustString(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

type location string

func TestScalars(t *testing.T) {
	s := "ptr"
	v := []any{
		nil, true, int8(-3), uint64(math.MaxUint64), float32(0.1), 2.5, location("path"), &s,
	}
	node, err := Value(v)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromSlice([]*ir.Node{
		ir.Null(),
		ir.FromBool(true),
		ir.FromInt(-3),
		ir.FromNumber("18446744073709551615"),
		ir.FromFloat(0.1),
		ir.FromFloat(2.5),
		ir.FromString("path"),
		ir.FromString("ptr"),
	})
	if !ir.Equal(want, node) {
		t.Errorf("got %s", encode.MustString(node))
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		V    any
		Err  error
		Path string
	}{
		{V: map[string]any{"f": func() {}}, Err: ErrUnsupported, Path: "$.f"},
		{V: []any{1, map[int]string{1: "x"}}, Err: ErrKeyType, Path: "$[1]"},
		{V: yaml.MapSlice{{Key: 1, Value: 2}}, Err: ErrKeyType, Path: "$"},
		{V: []any{complex(1, 2)}, Err: ErrUnsupported, Path: "$[0]"},
		{V: ordered{{Key: "a", Value: 1}, {Key: "a", Value: 2}}, Err: ErrDuplicateKey, Path: "$"},
		{V: []any{field.Skip}, Err: ErrUnsupported, Path: "$[0]"},
	}
	for i, test := range tests {
		_, err := Value(test.V)
		if !errors.Is(err, test.Err) {
			t.Errorf("[%d] expected %v, got %v", i, test.Err, err)
			continue
		}
		var serr *Error
		if !errors.As(err, &serr) || serr.Path != test.Path {
			t.Errorf("[%d] expected path %s, got %v", i, test.Path, err)
		}
	}
}

func TestCycle(t *testing.T) {
	w := &widget{name: "Loop"}
	w.Child = w
	_, err := Value(w)
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
	// referenced in pass 1, inlined and looping in pass 2
	_, diags, err := Document(&testDoc{Schema: w})
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
	if diags == nil {
		t.Error("nil diagnostics")
	}
}

func TestSharedPointerNotCycle(t *testing.T) {
	w := &widget{Kind: field.Set("shared")}
	node, err := Value([]any{w, w})
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Values) != 2 {
		t.Errorf("got %s", encode.MustString(node))
	}
}

func TestFirstFieldNotCycle(t *testing.T) {
	node, err := Value(&envelope{Inner: payload{Kind: "object"}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("inner:\n  kind: object\n", encode.MustString(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestZeroSizeNotCycle(t *testing.T) {
	node, err := Value(&marker{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("empty: {}\n", encode.MustString(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNodePassthrough(t *testing.T) {
	orig := ir.FromKeyVals([]ir.KeyVal{{Key: ir.FromString("a"), Val: ir.FromInt(1)}})
	node, err := Value(map[string]any{"raw": orig})
	if err != nil {
		t.Fatal(err)
	}
	raw := ir.Get(node, "raw")
	raw.Values[0] = ir.FromInt(2)
	if *orig.Values[0].Int64 != 1 {
		t.Error("original node modified")
	}
	if orig.Parent != nil {
		t.Error("original node reparented")
	}
}

func TestNoRegistry(t *testing.T) {
	_, diags, err := Document(nilRegistryDoc{})
	if !errors.Is(err, ErrNoRegistry) {
		t.Errorf("expected ErrNoRegistry, got %v", err)
	}
	if diags == nil || diags.Len() != 0 {
		t.Errorf("expected empty diagnostics, got %v", diags)
	}
}

type nilRegistryDoc struct{}

func (nilRegistryDoc) Fields() []field.Field { return nil }
func (nilRegistryDoc) Registry() Registry { return nil }
func (nilRegistryDoc) RegistryField() string { return "components" }
