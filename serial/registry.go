package serial

import "github.com/signadot/tony-format/go-oapi/field"

// Referenceable objects may be written as a reference to a registry
// entry. An empty RefName makes the object anonymous, so it is always
// written inline.
type Referenceable interface {
	field.Object
	RefName() string
}

// Registry stores referenceable objects by ref name.
type Registry interface {
	// Lookup returns the stored object with the ref name of obj, or nil.
	Lookup(obj Referenceable) (Referenceable, error)
	// Store adds obj under its ref name. The first object stored under
	// a name is kept.
	Store(obj Referenceable) error
	// Ref returns the reference token for obj.
	Ref(obj Referenceable) (field.Object, error)
	// Materialize returns the registry contents as an object.
	Materialize() field.Object
}

// Root is a document root which carries a registry.
type Root interface {
	field.Object
	// Registry returns the registry to fill, creating an empty one when
	// the root has none.
	Registry() Registry
	// RegistryField is the key under which the materialized registry is
	// written.
	RegistryField() string
}
