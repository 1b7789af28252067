package spec

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/signadot/tony-format/go-oapi/field"
	"github.com/signadot/tony-format/go-oapi/serial"
)

var ErrRequired = errors.New("missing required field")

// Validate reports every field with Required metadata which is unset in
// the object graph under obj. Strings are unset when empty, and maps,
// slices and registries when empty.
func Validate(obj field.Object) error {
	v := &validator{seen: map[uintptr]bool{}}
	v.walk("$", obj)
	return errors.Join(v.errs...)
}

type validator struct {
	seen map[uintptr]bool
	errs []error
}

func (v *validator) walk(path string, val any) {
	if val == nil || field.IsSkip(val) {
		return
	}
	rv := reflect.ValueOf(val)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() || v.seen[rv.Pointer()] {
			return
		}
		v.seen[rv.Pointer()] = true
	}
	switch x := val.(type) {
	case field.Object:
		v.object(path, x)
		return
	case serial.Ordered:
		for _, e := range x.Entries() {
			v.walk(path+"."+e.Key, e.Value)
		}
		return
	case field.Optional:
		v.walk(path, x.Value())
		return
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			v.walk(fmt.Sprintf("%s[%d]", path, i), rv.Index(i).Interface())
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		for _, k := range keys {
			v.walk(path+"."+k.String(), rv.MapIndex(k).Interface())
		}
	}
}

func (v *validator) object(path string, obj field.Object) {
	for _, f := range obj.Fields() {
		if f.Meta.NonSpec {
			continue
		}
		name, err := field.OutputName(f)
		if err != nil {
			name = f.Name
		}
		val := field.Unwrap(f.Value)
		if f.Meta.Required && unset(val) {
			v.errs = append(v.errs, fmt.Errorf("%w: %s.%s of %T", ErrRequired, path, name, obj))
			continue
		}
		v.walk(path+"."+name, val)
	}
}

func unset(val any) bool {
	if val == nil || field.IsSkip(val) {
		return true
	}
	if r, ok := val.(interface{ Len() int }); ok {
		return r.Len() == 0
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Map, reflect.Slice, reflect.String:
		return rv.Len() == 0
	}
	return false
}
