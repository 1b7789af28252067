package spec

import (
	"errors"
	"fmt"
	"path"

	"github.com/signadot/tony-format/go-oapi/field"
	"github.com/signadot/tony-format/go-oapi/serial"
)

var ErrUnknownComponent = errors.New("unknown component kind")

// Components holds reusable objects by kind. It implements
// serial.Registry for the Schema, Response, Parameter and RequestBody
// kinds.
//
// Components is not safe for concurrent mutation.
type Components struct {
	Schemas         *Registry[*Schema]
	Responses       *Registry[*Response]
	Parameters      *Registry[*Parameter]
	Examples        *Registry[any]
	RequestBodies   *Registry[*RequestBody]
	Headers         *Registry[any]
	SecuritySchemes *Registry[any]
	Links           *Registry[any]
	Callbacks       *Registry[any]
}

func (c *Components) Fields() []field.Field {
	return []field.Field{
		{Name: "schemas", Value: omitEmpty(c.Schemas)},
		{Name: "responses", Value: omitEmpty(c.Responses)},
		{Name: "parameters", Value: omitEmpty(c.Parameters)},
		{Name: "examples", Value: omitEmpty(c.Examples)},
		{Name: "request_bodies", Value: omitEmpty(c.RequestBodies)},
		{Name: "headers", Value: omitEmpty(c.Headers)},
		{Name: "security_schemes", Value: omitEmpty(c.SecuritySchemes)},
		{Name: "links", Value: omitEmpty(c.Links)},
		{Name: "callbacks", Value: omitEmpty(c.Callbacks)},
	}
}

// Kind returns the components key under which obj is stored.
func Kind(obj serial.Referenceable) (string, error) {
	switch obj.(type) {
	case *Schema:
		return "schemas", nil
	case *Response:
		return "responses", nil
	case *Parameter:
		return "parameters", nil
	case *RequestBody:
		return "requestBodies", nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnknownComponent, obj)
}

// RefString returns the reference to obj, such as
// "#/components/schemas/Pet".
func RefString(obj serial.Referenceable) (string, error) {
	kind, err := Kind(obj)
	if err != nil {
		return "", err
	}
	if obj.RefName() == "" {
		return "", fmt.Errorf("%w: %T", serial.ErrNoRefName, obj)
	}
	return path.Join("#/components", kind, obj.RefName()), nil
}

func (c *Components) Lookup(obj serial.Referenceable) (serial.Referenceable, error) {
	name := obj.RefName()
	switch x := obj.(type) {
	case *Schema:
		return lookup(c.Schemas, name)
	case *Response:
		return lookup(c.Responses, name)
	case *Parameter:
		return lookup(c.Parameters, name)
	case *RequestBody:
		return lookup(c.RequestBodies, name)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownComponent, x)
	}
}

// Store adds obj under its ID unless the ID is taken.
func (c *Components) Store(obj serial.Referenceable) error {
	name := obj.RefName()
	if name == "" {
		return fmt.Errorf("%w: %T", serial.ErrNoRefName, obj)
	}
	switch x := obj.(type) {
	case *Schema:
		store(&c.Schemas, name, x)
	case *Response:
		store(&c.Responses, name, x)
	case *Parameter:
		store(&c.Parameters, name, x)
	case *RequestBody:
		store(&c.RequestBodies, name, x)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownComponent, x)
	}
	return nil
}

func (c *Components) Ref(obj serial.Referenceable) (field.Object, error) {
	ref, err := RefString(obj)
	if err != nil {
		return nil, err
	}
	return &Reference{Ref: ref}, nil
}

// Materialize returns a copy of c.
func (c *Components) Materialize() field.Object {
	return c.Clone()
}

// Clone copies the registries of c but not the objects they hold.
func (c *Components) Clone() *Components {
	return &Components{
		Schemas:         c.Schemas.Clone(),
		Responses:       c.Responses.Clone(),
		Parameters:      c.Parameters.Clone(),
		Examples:        c.Examples.Clone(),
		RequestBodies:   c.RequestBodies.Clone(),
		Headers:         c.Headers.Clone(),
		SecuritySchemes: c.SecuritySchemes.Clone(),
		Links:           c.Links.Clone(),
		Callbacks:       c.Callbacks.Clone(),
	}
}

func lookup[T serial.Referenceable](r *Registry[T], name string) (serial.Referenceable, error) {
	if v, ok := r.Get(name); ok {
		return v, nil
	}
	return nil, nil
}

func store[T any](r **Registry[T], name string, v T) {
	if *r == nil {
		*r = NewRegistry[T]()
	}
	(*r).setDefault(name, v)
}
