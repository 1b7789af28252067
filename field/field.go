package field

// Meta holds per-field serialization metadata.
type Meta struct {
	// SpecName overrides the derived output name.
	SpecName string
	// NonSpec fields are never written.
	NonSpec bool
	// Required fields must be set for an object to validate.
	Required bool
}

type Field struct {
	Name  string
	Value any
	Meta  Meta
}

// Object is implemented by every serializable specification type.
type Object interface {
	Fields() []Field
}

// Optional is implemented by wrappers whose Value may be Skip.
type Optional interface {
	Value() any
}

// Unwrap returns the value of v if it is Optional, and v otherwise.
func Unwrap(v any) any {
	if o, ok := v.(Optional); ok {
		return o.Value()
	}
	return v
}
