package spec

import (
	"cmp"

	"github.com/signadot/tony-format/go-oapi/field"
	"github.com/signadot/tony-format/go-oapi/serial"
)

const (
	DefaultOpenAPIVersion = "3.0.0"
	DefaultInfoVersion    = "0.0.1-dev"
)

// OpenAPI is a document root.
type OpenAPI struct {
	// OpenAPI defaults to DefaultOpenAPIVersion.
	OpenAPI      string
	Info         *Info
	Servers      []*Server
	Paths        *Registry[*PathItem]
	Components   *Components
	Security     []SecurityRequirement
	Tags         []*Tag
	ExternalDocs *ExternalDocs
}

func (o *OpenAPI) Fields() []field.Field {
	return []field.Field{
		{Name: "openapi", Value: cmp.Or(o.OpenAPI, DefaultOpenAPIVersion)},
		{Name: "info", Value: o.Info, Meta: field.Meta{Required: true}},
		{Name: "servers", Value: field.OmitNil(o.Servers)},
		{Name: "paths", Value: o.Paths, Meta: field.Meta{Required: true}},
		{Name: "components", Value: field.OmitNil(o.Components)},
		{Name: "security", Value: field.OmitNil(o.Security)},
		{Name: "tags", Value: field.OmitNil(o.Tags)},
		{Name: "external_docs", Value: field.OmitNil(o.ExternalDocs)},
	}
}

// Registry returns a copy of o.Components, so that serializing o does
// not modify it.
func (o *OpenAPI) Registry() serial.Registry {
	if o.Components == nil {
		return &Components{}
	}
	return o.Components.Clone()
}

func (o *OpenAPI) RegistryField() string {
	return "components"
}

type Info struct {
	Title          string
	Description    string
	TermsOfService string
	Contact        *Contact
	License        *License
	// Version defaults to DefaultInfoVersion.
	Version string
}

func (i *Info) Fields() []field.Field {
	return []field.Field{
		{Name: "title", Value: i.Title, Meta: field.Meta{Required: true}},
		{Name: "description", Value: field.OmitZero(i.Description)},
		{Name: "terms_of_service", Value: field.OmitZero(i.TermsOfService)},
		{Name: "contact", Value: field.OmitNil(i.Contact)},
		{Name: "license", Value: field.OmitNil(i.License)},
		{Name: "version", Value: cmp.Or(i.Version, DefaultInfoVersion)},
	}
}

type Contact struct {
	Name  string
	URL   string
	Email string
}

func (c *Contact) Fields() []field.Field {
	return []field.Field{
		{Name: "Name", Value: field.OmitZero(c.Name)},
		{Name: "URL", Value: field.OmitZero(c.URL), Meta: field.Meta{SpecName: "url"}},
		{Name: "Email", Value: field.OmitZero(c.Email)},
	}
}

type License struct {
	Name string
	URL  string
}

func (l *License) Fields() []field.Field {
	return []field.Field{
		{Name: "Name", Value: field.OmitZero(l.Name)},
		{Name: "URL", Value: field.OmitZero(l.URL), Meta: field.Meta{SpecName: "url"}},
	}
}

type Server struct {
	URL         string
	Description string
	Variables   map[string]*ServerVariable
}

func (s *Server) Fields() []field.Field {
	return []field.Field{
		{Name: "URL", Value: s.URL, Meta: field.Meta{SpecName: "url", Required: true}},
		{Name: "Description", Value: field.OmitZero(s.Description)},
		{Name: "Variables", Value: field.OmitNil(s.Variables)},
	}
}

type ServerVariable struct {
	Enum        []string
	Default     string
	Description string
}

func (v *ServerVariable) Fields() []field.Field {
	return []field.Field{
		{Name: "Enum", Value: field.OmitNil(v.Enum)},
		{Name: "Default", Value: v.Default, Meta: field.Meta{Required: true}},
		{Name: "Description", Value: field.OmitZero(v.Description)},
	}
}

// SecurityRequirement maps security scheme names to required scopes.
type SecurityRequirement map[string][]string

type Tag struct {
	Name         string
	Description  string
	ExternalDocs *ExternalDocs
}

func (t *Tag) Fields() []field.Field {
	return []field.Field{
		{Name: "Name", Value: t.Name, Meta: field.Meta{Required: true}},
		{Name: "Description", Value: field.OmitZero(t.Description)},
		{Name: "ExternalDocs", Value: field.OmitNil(t.ExternalDocs)},
	}
}

type ExternalDocs struct {
	Description string
	URL         string
}

func (e *ExternalDocs) Fields() []field.Field {
	return []field.Field{
		{Name: "Description", Value: field.OmitZero(e.Description)},
		{Name: "URL", Value: e.URL, Meta: field.Meta{SpecName: "url", Required: true}},
	}
}
