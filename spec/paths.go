package spec

import (
	"fmt"

	"github.com/signadot/tony-format/go-oapi/field"
)

type PathItem struct {
	Summary     string
	Description string

	Get     *Operation
	Put     *Operation
	Post    *Operation
	Delete  *Operation
	Options *Operation
	Head    *Operation
	Patch   *Operation
	Trace   *Operation

	Parameters []*Parameter
}

func (p *PathItem) Fields() []field.Field {
	return []field.Field{
		{Name: "summary", Value: field.OmitZero(p.Summary)},
		{Name: "description", Value: field.OmitZero(p.Description)},
		{Name: "get", Value: field.OmitNil(p.Get)},
		{Name: "put", Value: field.OmitNil(p.Put)},
		{Name: "post", Value: field.OmitNil(p.Post)},
		{Name: "delete", Value: field.OmitNil(p.Delete)},
		{Name: "options", Value: field.OmitNil(p.Options)},
		{Name: "head", Value: field.OmitNil(p.Head)},
		{Name: "patch", Value: field.OmitNil(p.Patch)},
		{Name: "trace", Value: field.OmitNil(p.Trace)},
		{Name: "parameters", Value: field.OmitNil(p.Parameters)},
	}
}

type Operation struct {
	Tags        StringSet
	Summary     string
	Description string
	// Responses maps status codes or "default" to responses.
	Responses   map[string]*Response
	OperationID string
	Parameters  []*Parameter
	RequestBody *RequestBody
}

func (o *Operation) Fields() []field.Field {
	return []field.Field{
		{Name: "tags", Value: field.OmitNil(o.Tags)},
		{Name: "summary", Value: field.OmitZero(o.Summary)},
		{Name: "description", Value: field.OmitZero(o.Description)},
		{Name: "responses", Value: o.Responses, Meta: field.Meta{Required: true}},
		{Name: "OperationID", Value: field.OmitZero(o.OperationID), Meta: field.Meta{SpecName: "operationId"}},
		{Name: "parameters", Value: field.OmitNil(o.Parameters)},
		{Name: "request_body", Value: field.OmitNil(o.RequestBody)},
	}
}

func (o *Operation) AddTags(tags ...string) {
	if o.Tags == nil {
		o.Tags = StringSet{}
	}
	o.Tags.Add(tags...)
}

type ParameterLocation string

const (
	InQuery  ParameterLocation = "query"
	InHeader ParameterLocation = "header"
	InPath   ParameterLocation = "path"
	InCookie ParameterLocation = "cookie"
)

func (l ParameterLocation) MarshalText() ([]byte, error) {
	switch l {
	case InQuery, InHeader, InPath, InCookie:
		return []byte(l), nil
	}
	return nil, fmt.Errorf("invalid parameter location %q", string(l))
}

type Parameter struct {
	Referable
	Name string
	// In_ defaults to InQuery.
	In_             ParameterLocation
	Description     string
	Required        field.Skippable[bool]
	Deprecated      field.Skippable[bool]
	AllowEmptyValue field.Skippable[bool]
	Schema          *Schema
}

func (p *Parameter) Fields() []field.Field {
	in := p.In_
	if in == "" {
		in = InQuery
	}
	return []field.Field{
		p.idField(),
		{Name: "Name", Value: p.Name, Meta: field.Meta{Required: true}},
		{Name: "In_", Value: in},
		{Name: "Description", Value: field.OmitZero(p.Description)},
		{Name: "Required", Value: p.Required},
		{Name: "Deprecated", Value: p.Deprecated},
		{Name: "AllowEmptyValue", Value: p.AllowEmptyValue},
		{Name: "Schema", Value: field.OmitNil(p.Schema)},
	}
}

type RequestBody struct {
	Referable
	Content     map[string]*MediaType
	Description string
	Required    field.Skippable[bool]
}

func (r *RequestBody) Fields() []field.Field {
	return []field.Field{
		r.idField(),
		{Name: "content", Value: r.Content, Meta: field.Meta{Required: true}},
		{Name: "description", Value: field.OmitZero(r.Description)},
		{Name: "required", Value: r.Required},
	}
}

type Response struct {
	Referable
	Description string
	Content     map[string]*MediaType
}

func (r *Response) Fields() []field.Field {
	return []field.Field{
		r.idField(),
		{Name: "description", Value: r.Description, Meta: field.Meta{Required: true}},
		{Name: "content", Value: field.OmitNil(r.Content)},
	}
}

type MediaType struct {
	// Schema is a *Schema or a *Reference.
	Schema  field.Object
	Example field.Skippable[any]
}

func (m *MediaType) Fields() []field.Field {
	return []field.Field{
		{Name: "schema", Value: m.Schema, Meta: field.Meta{Required: true}},
		{Name: "example", Value: m.Example},
	}
}
