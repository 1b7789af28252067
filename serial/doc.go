// Package serial converts graphs of specification objects into document
// trees, replacing named sub-objects with "$ref" tokens into a shared
// registry.
//
// # Usage
//
//	node, diags, err := serial.Document(api)
//	if err != nil {
//	    return err
//	}
//	for _, d := range diags.List {
//	    log.Println(d)
//	}
//
//	// Serialize any value without references.
//	node, err := serial.Value(schema)
//
// # Passes
//
// [Document] runs two passes. The first walks the root with referencing
// enabled: each [Referenceable] with a non-empty ref name is stored in
// the root's [Registry] on first sight and written as the registry's
// reference token. The second serializes the registry's materialized
// contents with referencing disabled and appends them to the result
// under the root's registry field.
//
// When a ref name is seen again for an object that serializes
// differently from the one already stored, the stored one is kept and a
// [Diagnostic] is recorded.
//
// # Values
//
// Besides [field.Object] values, a Context serializes nil, booleans,
// numbers, strings, [encoding.TextMarshaler] values, pointers to these,
// slices, arrays, maps with string keys, [yaml.MapSlice], [Ordered] and
// [Set] containers, and *ir.Node trees, which are copied.
package serial
