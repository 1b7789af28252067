package spec

import "github.com/signadot/tony-format/go-oapi/field"

type Schema struct {
	Referable

	// Ref makes the schema a reference, see SchemaRef.
	Ref string

	Title       string
	Description string
	Default     field.Skippable[any]
	Examples    []any
	Definitions *Registry[*Schema]

	Type_            string
	MultipleOf       field.Skippable[int64]
	Maximum          field.Skippable[int64]
	ExclusiveMaximum field.Skippable[bool]
	Minimum          field.Skippable[int64]
	ExclusiveMinimum field.Skippable[bool]
	MaxLength        field.Skippable[int64]
	MinLength        field.Skippable[int64]
	Pattern          string
	Items            *Schema
	AdditionalItems  *Schema
	Format           string

	AllOf                []*Schema
	OneOf                []*Schema
	Not_                 *Schema
	AnyOf                []*Schema
	Properties           *Registry[*Schema]
	AdditionalProperties *Schema
	Required             []string
}

func (s *Schema) Fields() []field.Field {
	return []field.Field{
		s.idField(),
		{Name: "Ref", Value: field.OmitZero(s.Ref), Meta: field.Meta{SpecName: "$ref"}},
		{Name: "title", Value: field.OmitZero(s.Title)},
		{Name: "description", Value: field.OmitZero(s.Description)},
		{Name: "default", Value: s.Default},
		{Name: "examples", Value: field.OmitNil(s.Examples)},
		{Name: "definitions", Value: field.OmitNil(s.Definitions)},
		{Name: "type_", Value: field.OmitZero(s.Type_)},
		{Name: "multiple_of", Value: s.MultipleOf},
		{Name: "maximum", Value: s.Maximum},
		{Name: "exclusive_maximum", Value: s.ExclusiveMaximum},
		{Name: "minimum", Value: s.Minimum},
		{Name: "exclusive_minimum", Value: s.ExclusiveMinimum},
		{Name: "max_length", Value: s.MaxLength},
		{Name: "min_length", Value: s.MinLength},
		{Name: "pattern", Value: field.OmitZero(s.Pattern)},
		{Name: "items", Value: field.OmitNil(s.Items)},
		{Name: "additional_items", Value: field.OmitNil(s.AdditionalItems)},
		{Name: "format", Value: field.OmitZero(s.Format)},
		{Name: "all_of", Value: field.OmitNil(s.AllOf)},
		{Name: "one_of", Value: field.OmitNil(s.OneOf)},
		{Name: "not_", Value: field.OmitNil(s.Not_)},
		{Name: "any_of", Value: field.OmitNil(s.AnyOf)},
		{Name: "properties", Value: field.OmitNil(s.Properties)},
		{Name: "additional_properties", Value: field.OmitNil(s.AdditionalProperties)},
		{Name: "required", Value: field.OmitNil(s.Required)},
	}
}

// Property adds name to the object schema s, returning s.
func (s *Schema) Property(name string, prop *Schema) *Schema {
	if s.Properties == nil {
		s.Properties = NewRegistry[*Schema]()
	}
	s.Properties.Set(name, prop)
	return s
}

// SchemaRef returns a schema referencing s under components.
func SchemaRef(s *Schema) (*Schema, error) {
	ref, err := RefString(s)
	if err != nil {
		return nil, err
	}
	return &Schema{Ref: ref}, nil
}
