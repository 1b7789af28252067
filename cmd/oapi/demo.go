package main

import (
	"github.com/signadot/tony-format/go-oapi/field"
	"github.com/signadot/tony-format/go-oapi/spec"

	"github.com/scott-cotton/cli"
)

type Pet struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

func demo(cfg *DemoConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Demo.Parse(cc, args); err != nil {
		return err
	}
	api, err := petStore(cfg.Conflict)
	if err != nil {
		return err
	}
	if err := spec.Validate(api); err != nil {
		return err
	}
	return writeDocument(cfg.MainConfig, cc, api)
}

func petStore(conflict bool) (*spec.OpenAPI, error) {
	pet, err := spec.SchemaFor[Pet]()
	if err != nil {
		return nil, err
	}
	pet.Referable = spec.ID("Pet")
	pet.Required = []string{"id", "name"}
	pets := &spec.Schema{Type_: "array", Items: pet}

	limit := &spec.Parameter{
		Referable:   spec.ID("Limit"),
		Name:        "limit",
		Description: "how many items to return",
		Schema:      spec.MustSchemaFor[int32](),
	}
	petID := &spec.Parameter{
		Referable: spec.ID("PetID"),
		Name:      "petId",
		In_:       spec.InPath,
		Required:  field.Set(true),
		Schema:    spec.MustSchemaFor[string](),
	}
	notFound := &spec.Response{Referable: spec.ID("NotFound"), Description: "no such pet"}

	shown := pet
	if conflict {
		// same name, different definition
		shown, err = spec.SchemaFor[Pet]()
		if err != nil {
			return nil, err
		}
		shown.Referable = spec.ID("Pet")
	}

	list := &spec.Operation{
		Summary:     "List all pets",
		OperationID: "listPets",
		Parameters:  []*spec.Parameter{limit},
		Responses: map[string]*spec.Response{
			"200": {Description: "a page of pets", Content: jsonContent(pets)},
		},
	}
	list.AddTags("pets")
	create := &spec.Operation{
		Summary:     "Create a pet",
		OperationID: "createPets",
		RequestBody: &spec.RequestBody{Content: jsonContent(pet), Required: field.Set(true)},
		Responses:   map[string]*spec.Response{"201": {Description: "created"}},
	}
	create.AddTags("pets")
	show := &spec.Operation{
		Summary:     "Info for a specific pet",
		OperationID: "showPetById",
		Parameters:  []*spec.Parameter{petID},
		Responses: map[string]*spec.Response{
			"200": {Description: "the pet", Content: jsonContent(shown)},
			"404": notFound,
		},
	}
	show.AddTags("pets")

	return &spec.OpenAPI{
		Info: &spec.Info{
			Title:   "Swagger Petstore",
			Version: "1.0.0",
			License: &spec.License{Name: "MIT"},
		},
		Servers: []*spec.Server{{URL: "http://petstore.swagger.io/v1"}},
		Paths: spec.NewRegistry[*spec.PathItem]().
			Set("/pets", &spec.PathItem{Get: list, Post: create}).
			Set("/pets/{petId}", &spec.PathItem{Get: show}),
	}, nil
}

func jsonContent(s *spec.Schema) map[string]*spec.MediaType {
	return map[string]*spec.MediaType{"application/json": {Schema: s}}
}
