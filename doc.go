// Package oapi applies patches to serialized OpenAPI documents.
//
// Documents are built from Go object graphs by
// [github.com/signadot/tony-format/go-oapi/serial.Document], which
// deduplicates referenceable objects into the components section. Patch and
// MergePatch edit the resulting trees with RFC 6902 and RFC 7386 patches, so
// a generated document can be adjusted without touching the Go model.
package oapi
