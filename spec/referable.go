package spec

import "github.com/signadot/tony-format/go-oapi/field"

// Referable is embedded by the object types which may be written once
// under components and referenced elsewhere. An empty ID writes the
// object inline.
type Referable struct {
	ID string
}

// ID returns a Referable for embedding in a composite literal:
//
//	&spec.Schema{Referable: spec.ID("Pet"), Type_: "object"}
func ID(id string) Referable {
	return Referable{ID: id}
}

func (r Referable) RefName() string {
	return r.ID
}

func (r Referable) idField() field.Field {
	return field.Field{Name: "ID", Value: r.ID, Meta: field.Meta{NonSpec: true}}
}

// Reference is a "$ref" token.
type Reference struct {
	Ref string
}

func (r *Reference) Fields() []field.Field {
	return []field.Field{
		{Name: "Ref", Value: r.Ref, Meta: field.Meta{SpecName: "$ref", Required: true}},
	}
}
