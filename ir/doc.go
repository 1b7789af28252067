// Package ir provides the document tree produced by serialization.
//
// # Overview
//
// A serialized OpenAPI document is an ordered tree of nodes. Every node is
// one of:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (ordered key-value pairs), array (ordered list)
//
// The tree is a recursive tagged union: values are placed in fields
// depending on the node type.
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values. Keys are string
// typed, except in array diffs where int keys give positions. Object key
// order is significant: it is the declaration order of the fields of the
// object that was serialized.
//
// # Numbers
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: as a string fallback if neither can represent it
//
// # Tags
//
// Nodes may carry a tag (YAML-style, "!insert", "!replace"). Tags are only
// produced by [github.com/signadot/tony-format/go-oapi/libdiff]; serialized
// documents never carry them.
//
// # Thread Safety
//
// Node structures are not thread-safe. Clone nodes before handing them to
// other goroutines.
package ir
