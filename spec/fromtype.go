package spec

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
)

var ErrSchemaType = errors.New("cannot create schema from type")

// SchemaFallback creates schemas for types SchemaFromType does not
// handle. It returns nil, nil to decline.
type SchemaFallback func(t reflect.Type) (*Schema, error)

type SchemaOption func(*schemaBuilder)

func WithFallback(f SchemaFallback) SchemaOption {
	return func(b *schemaBuilder) { b.fallback = f }
}

// SchemaFromType describes values of t: strings, integers, floats,
// booleans, slices and arrays, maps with string keys, time.Time and
// structs, whose exported fields become properties named as by
// encoding/json.
func SchemaFromType(t reflect.Type, opts ...SchemaOption) (*Schema, error) {
	b := &schemaBuilder{building: map[reflect.Type]bool{}}
	for _, opt := range opts {
		opt(b)
	}
	return b.from(t)
}

func SchemaFor[T any](opts ...SchemaOption) (*Schema, error) {
	return SchemaFromType(reflect.TypeFor[T](), opts...)
}

// MustSchemaFor is like SchemaFor but panics on error.
func MustSchemaFor[T any](opts ...SchemaOption) *Schema {
	s, err := SchemaFor[T](opts...)
	if err != nil {
		panic(err)
	}
	return s
}

type Property struct {
	Name string
	Type reflect.Type
}

func Prop[T any](name string) Property {
	return Property{Name: name, Type: reflect.TypeFor[T]()}
}

// SchemaFromProperties builds an object schema with one property per
// entry of props, in order.
func SchemaFromProperties(props []Property, opts ...SchemaOption) (*Schema, error) {
	b := &schemaBuilder{building: map[reflect.Type]bool{}}
	for _, opt := range opts {
		opt(b)
	}
	res := &Schema{Type_: "object", Properties: NewRegistry[*Schema]()}
	for _, p := range props {
		s, err := b.from(p.Type)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", p.Name, err)
		}
		res.Properties.Set(p.Name, s)
	}
	return res, nil
}

type schemaBuilder struct {
	fallback SchemaFallback
	building map[reflect.Type]bool
}

var timeType = reflect.TypeFor[time.Time]()

func (b *schemaBuilder) from(t reflect.Type) (*Schema, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil", ErrSchemaType)
	}
	if t == timeType {
		return &Schema{Type_: "string", Format: "date-time"}, nil
	}
	switch t.Kind() {
	case reflect.Pointer:
		return b.from(t.Elem())
	case reflect.String:
		return &Schema{Type_: "string"}, nil
	case reflect.Bool:
		return &Schema{Type_: "boolean"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type_: "integer", Format: "int64"}, nil
	case reflect.Float32, reflect.Float64:
		return &Schema{Type_: "number", Format: "double"}, nil
	case reflect.Slice, reflect.Array:
		if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8 {
			return &Schema{Type_: "string", Format: "byte"}, nil
		}
		items, err := b.from(t.Elem())
		if err != nil {
			return nil, err
		}
		return &Schema{Type_: "array", Items: items}, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			break
		}
		vals, err := b.from(t.Elem())
		if err != nil {
			return nil, err
		}
		return &Schema{Type_: "object", Properties: NewRegistry[*Schema](), AdditionalProperties: vals}, nil
	case reflect.Struct:
		return b.fromStruct(t)
	}
	return b.fallbackFor(t)
}

func (b *schemaBuilder) fallbackFor(t reflect.Type) (*Schema, error) {
	if b.fallback != nil {
		s, err := b.fallback(t)
		if err != nil {
			return nil, err
		}
		if s != nil {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSchemaType, t)
}

func (b *schemaBuilder) fromStruct(t reflect.Type) (*Schema, error) {
	if b.building[t] {
		return nil, fmt.Errorf("%w: recursive type %s", ErrSchemaType, t)
	}
	b.building[t] = true
	defer delete(b.building, t)

	res := &Schema{Type_: "object", Properties: NewRegistry[*Schema]()}
	if err := b.addFields(res, t); err != nil {
		return nil, err
	}
	return res, nil
}

func (b *schemaBuilder) addFields(res *Schema, t reflect.Type) error {
	for i := range t.NumField() {
		f := t.Field(i)
		name, skip := jsonName(f)
		if skip {
			continue
		}
		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && ft != timeType {
				if err := b.addFields(res, ft); err != nil {
					return err
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		s, err := b.from(f.Type)
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", t, f.Name, err)
		}
		res.Properties.Set(name, s)
	}
	return nil
}

// jsonName returns the name given by the json tag of f, which may be
// empty, and whether the field is excluded.
func jsonName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return "", false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}
