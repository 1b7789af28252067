package spec

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/tony-format/go-oapi/encode"
	"github.com/signadot/tony-format/go-oapi/field"
	"github.com/signadot/tony-format/go-oapi/format"
	"github.com/signadot/tony-format/go-oapi/ir"
	"github.com/signadot/tony-format/go-oapi/serial"

	"github.com/google/go-cmp/cmp"
)

func petSchema() *Schema {
	pet := &Schema{Referable: ID("Pet"), Title: "Pet", Type_: "object"}
	return pet.Property("name", MustSchemaFor[string]()).Property("age", MustSchemaFor[int]())
}

func petAPI(pet *Schema) *OpenAPI {
	return &OpenAPI{
		Info: &Info{Title: "Foo"},
		Paths: NewRegistry[*PathItem]().Set("/", &PathItem{
			Get: &Operation{
				Responses: map[string]*Response{
					"200": {
						Description: "Your favourite pet",
						Content: map[string]*MediaType{
							"application/json": {Schema: pet},
						},
					},
				},
			},
		}),
	}
}

func jsonString(t *testing.T, node *ir.Node) string {
	t.Helper()
	buf := &strings.Builder{}
	if err := encode.Encode(node, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestPetExample(t *testing.T) {
	node, diags, err := serial.Document(petAPI(petSchema()))
	if err != nil {
		t.Fatal(err)
	}
	if diags.Len() != 0 {
		t.Errorf("unexpected diagnostics: %s", diags)
	}
	want := `{
  "openapi": "3.0.0",
  "info": {
    "title": "Foo",
    "version": "0.0.1-dev"
  },
  "paths": {
    "/": {
      "get": {
        "responses": {
          "200": {
            "description": "Your favourite pet",
            "content": {
              "application/json": {
                "schema": {
                  "$ref": "#/components/schemas/Pet"
                }
              }
            }
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Pet": {
        "title": "Pet",
        "type": "object",
        "properties": {
          "name": {
            "type": "string"
          },
          "age": {
            "type": "integer",
            "format": "int64"
          }
        }
      }
    }
  }
}
`
	if diff := cmp.Diff(want, jsonString(t, node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSharedComponents(t *testing.T) {
	limit := &Parameter{Referable: ID("Limit"), Name: "limit", Schema: MustSchemaFor[int]()}
	notFound := &Response{Referable: ID("NotFound"), Description: "not found"}
	api := &OpenAPI{
		Info: &Info{Title: "Pets"},
		Paths: NewRegistry[*PathItem]().
			Set("/pets", &PathItem{
				Get: &Operation{
					Parameters: []*Parameter{limit},
					Responses:  map[string]*Response{"200": {Description: "ok"}, "404": notFound},
				},
			}).
			Set("/owners", &PathItem{
				Get: &Operation{
					Parameters: []*Parameter{limit},
					Responses:  map[string]*Response{"404": notFound},
				},
			}),
	}
	node, diags, err := serial.Document(api)
	if err != nil {
		t.Fatal(err)
	}
	if diags.Len() != 0 {
		t.Errorf("unexpected diagnostics: %s", diags)
	}
	want := `openapi: 3.0.0
info:
  title: Pets
  version: 0.0.1-dev
paths:
  /pets:
    get:
      responses:
        "200":
          description: ok
        "404":
          $ref: "#/components/responses/NotFound"
      parameters:
        - $ref: "#/components/parameters/Limit"
  /owners:
    get:
      responses:
        "404":
          $ref: "#/components/responses/NotFound"
      parameters:
        - $ref: "#/components/parameters/Limit"
components:
  responses:
    NotFound:
      description: not found
  parameters:
    Limit:
      name: limit
      in: query
      schema:
        type: integer
        format: int64
`
	if diff := cmp.Diff(want, encode.MustString(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestConflictingSchemas(t *testing.T) {
	dup := &Schema{Referable: ID("Pet"), Type_: "string"}
	api := petAPI(petSchema())
	api.Paths.Set("/other", &PathItem{Post: &Operation{
		RequestBody: &RequestBody{Content: map[string]*MediaType{"text/plain": {Schema: dup}}},
		Responses:   map[string]*Response{"204": {Description: "done"}},
	}})
	node, diags, err := serial.Document(api)
	if err != nil {
		t.Fatal(err)
	}
	if diags.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", diags.Len())
	}
	d := diags.List[0]
	if d.Code != serial.CodeRedefinition || d.RefName != "Pet" {
		t.Errorf("unexpected diagnostic %+v", d)
	}
	if !strings.HasPrefix(d.Path, "$.paths./other.post") {
		t.Errorf("unexpected path %s", d.Path)
	}
	schemas := ir.Get(ir.Get(node, "components"), "schemas")
	if got := ir.Get(ir.Get(schemas, "Pet"), "title"); got == nil || got.String != "Pet" {
		t.Errorf("first definition not kept:\n%s", encode.MustString(schemas))
	}
}

func TestDocumentKeepsComponents(t *testing.T) {
	api := petAPI(petSchema())
	api.Components = &Components{
		Schemas: NewRegistry[*Schema]().Set("Error", &Schema{Type_: "string"}),
	}
	node, _, err := serial.Document(api)
	if err != nil {
		t.Fatal(err)
	}
	schemas := ir.Get(ir.Get(node, "components"), "schemas")
	if diff := cmp.Diff([]string{"Error", "Pet"}, schemas.Keys()); diff != "" {
		t.Errorf("schemas (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Error"}, api.Components.Schemas.Names()); diff != "" {
		t.Errorf("components modified (-want +got):\n%s", diff)
	}
	keys := node.Keys()
	if n := len(keys); keys[n-1] != "components" || strings.Count(strings.Join(keys, " "), "components") != 1 {
		t.Errorf("unexpected keys %v", keys)
	}
}

func TestValueHasNoRefs(t *testing.T) {
	node, err := serial.Value(petAPI(petSchema()))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(encode.MustString(node), "$ref") {
		t.Errorf("unexpected reference:\n%s", encode.MustString(node))
	}
}

type other struct{ Referable }

func (o *other) Fields() []field.Field { return nil }

func TestComponentsRegistry(t *testing.T) {
	c := &Components{}
	first := &Schema{Referable: ID("A"), Type_: "string"}
	second := &Schema{Referable: ID("A"), Type_: "integer"}

	got, err := c.Lookup(first)
	if err != nil || got != nil {
		t.Fatalf("lookup on empty: %v %v", got, err)
	}
	if err := c.Store(first); err != nil {
		t.Fatal(err)
	}
	if err := c.Store(second); err != nil {
		t.Fatal(err)
	}
	got, err = c.Lookup(second)
	if err != nil {
		t.Fatal(err)
	}
	if got != first {
		t.Errorf("expected first stored object, got %v", got)
	}
	ref, err := c.Ref(second)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&Reference{Ref: "#/components/schemas/A"}, ref); diff != "" {
		t.Errorf("ref (-want +got):\n%s", diff)
	}
	ref, err = c.Ref(&RequestBody{Referable: ID("Upload")})
	if err != nil {
		t.Fatal(err)
	}
	if got := ref.(*Reference).Ref; got != "#/components/requestBodies/Upload" {
		t.Errorf("got %s", got)
	}

	if err := c.Store(&Schema{}); !errors.Is(err, serial.ErrNoRefName) {
		t.Errorf("expected ErrNoRefName, got %v", err)
	}
	if err := c.Store(&other{ID("x")}); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("expected ErrUnknownComponent, got %v", err)
	}
	if _, err := c.Lookup(&other{ID("x")}); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("expected ErrUnknownComponent, got %v", err)
	}
	if _, err := c.Ref(&other{ID("x")}); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("expected ErrUnknownComponent, got %v", err)
	}
}

func TestUnknownComponentInDocument(t *testing.T) {
	api := petAPI(petSchema())
	api.Tags = []*Tag{{Name: "pets", ExternalDocs: &ExternalDocs{URL: "http://x"}}}
	api.Paths.Set("/odd", &PathItem{Summary: "odd", Parameters: []*Parameter{{Name: "q"}}})
	if _, _, err := serial.Document(api); err != nil {
		t.Fatal(err)
	}
	_, _, err := serial.Document(&oddRoot{})
	if !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("expected ErrUnknownComponent, got %v", err)
	}
}

type oddRoot struct{}

func (oddRoot) Fields() []field.Field {
	return []field.Field{{Name: "odd", Value: &other{ID("x")}}}
}
func (oddRoot) Registry() serial.Registry { return &Components{} }
func (oddRoot) RegistryField() string { return "components" }

func TestAddTags(t *testing.T) {
	op := &Operation{Responses: map[string]*Response{"200": {Description: "ok"}}}
	op.AddTags("pets", "animals")
	op.AddTags("pets")
	node, err := serial.Value(op)
	if err != nil {
		t.Fatal(err)
	}
	want := "tags:\n  - animals\n  - pets\nresponses:\n  \"200\":\n    description: ok\n"
	if diff := cmp.Diff(want, encode.MustString(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParameterLocation(t *testing.T) {
	node, err := serial.Value(&Parameter{Name: "id", In_: InPath, Required: field.Set(true)})
	if err != nil {
		t.Fatal(err)
	}
	want := "name: id\nin: path\nrequired: true\n"
	if diff := cmp.Diff(want, encode.MustString(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := serial.Value(&Parameter{Name: "id", In_: "body"}); err == nil {
		t.Error("expected error for invalid location")
	}
}

func TestMediaTypeExample(t *testing.T) {
	node, err := serial.Value(&MediaType{Schema: &Reference{Ref: "#/x"}, Example: field.Null})
	if err != nil {
		t.Fatal(err)
	}
	want := "schema:\n  $ref: \"#/x\"\nexample: null\n"
	if diff := cmp.Diff(want, encode.MustString(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
