package serial

import (
	"fmt"

	"github.com/signadot/tony-format/go-oapi/field"
)

// Entry is one key-value pair of a mapping.
type Entry struct {
	Key   string
	Value any
}

// Ordered is a mapping which keeps its own key order.
type Ordered interface {
	Entries() []Entry
}

// Set is an unordered collection written as an array.
type Set interface {
	SortedValues() []any
}

// ToEntries returns the output entries of obj in field order. Fields
// with NonSpec metadata or a Skip value are dropped, and set optionals
// are unwrapped.
func ToEntries(obj field.Object) ([]Entry, error) {
	fields := obj.Fields()
	res := make([]Entry, 0, len(fields))
	for _, f := range fields {
		if f.Meta.NonSpec {
			continue
		}
		v := field.Unwrap(f.Value)
		if field.IsSkip(v) {
			continue
		}
		name, err := field.OutputName(f)
		if err != nil {
			return nil, &Error{
				Message: fmt.Sprintf("field %q of %T: %v", f.Name, obj, err),
				Err:     err,
			}
		}
		res = append(res, Entry{Key: name, Value: v})
	}
	return res, nil
}
