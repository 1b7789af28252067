// Package parse reads YAML or JSON text into document trees.
//
// # Usage
//
//	node, err := parse.Parse(data)
//
//	// From a file; an empty document yields a null node.
//	node, err := parse.File("openapi.yaml")
//
// Mapping key order is preserved. JSON is read as YAML, which it is a
// subset of. Non-string mapping keys such as the status codes under an
// operation's responses become string keys.
package parse
