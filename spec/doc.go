// Package spec is the OpenAPI 3.0 object model.
//
// Each type declares its fields explicitly with Fields, in the order of
// the OpenAPI specification, so it can be serialized by package serial:
//
//	api := &spec.OpenAPI{
//		Info: &spec.Info{Title: "Pets"},
//		Paths: spec.NewRegistry[*spec.PathItem]().Set("/pets", &spec.PathItem{
//			Get: &spec.Operation{
//				Responses: map[string]*spec.Response{
//					"200": {Description: "ok", Content: map[string]*spec.MediaType{
//						"application/json": {Schema: pet},
//					}},
//				},
//			},
//		}),
//	}
//	node, diags, err := serial.Document(api)
//
// Schema, Response, Parameter and RequestBody values carrying a
// [Referable] ID are written once under components and referenced with
// "$ref" everywhere else.
package spec
