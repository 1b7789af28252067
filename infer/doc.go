// Package infer derives schemas from sample documents.
//
// Every object in the sample becomes an object schema whose properties
// follow the sample's key order. Objects are given ref names built from
// their key path, "Pet" for the root and "PetOwner" for the object under
// its "owner" key. Named objects are collected as definitions and
// referenced with "$ref" from their parents, so that serializing a [Doc]
// with serial.Document lists each of them once under components.
//
// Which objects are named can be restricted with an expr-lang
// predicate, see [RefIf]. The predicate sees:
//
//	name    the ref name the object would get
//	key     the key of the object in its parent, or "" for the root
//	path    the path of the object in the sample, such as "$.owner"
//	depth   the nesting depth of the object, 0 for the root
//	fields  the keys of the object
package infer
