package field

import (
	"fmt"
	"reflect"
)

type skip struct{}

func (skip) String() string { return "SKIP" }

// Skip marks a field as absent. It is distinct from nil, which is
// written as null.
var Skip any = skip{}

func IsSkip(v any) bool {
	_, ok := v.(skip)
	return ok
}

// Skippable is an optional value. The zero Skippable is absent.
type Skippable[T any] struct {
	v   T
	set bool
}

func Set[T any](v T) Skippable[T] {
	return Skippable[T]{v: v, set: true}
}

// Null is a present value written as null.
var Null = Set[any](nil)

func (s Skippable[T]) IsSet() bool { return s.set }

func (s Skippable[T]) Get() (T, bool) { return s.v, s.set }

// Value returns the wrapped value, or Skip when absent.
func (s Skippable[T]) Value() any {
	if !s.set {
		return Skip
	}
	return s.v
}

func (s Skippable[T]) String() string {
	if !s.set {
		return "SKIP"
	}
	return fmt.Sprint(s.v)
}

// OmitZero returns Skip when v is the zero value of its type, and v
// otherwise. Empty but non-nil maps and slices are kept.
func OmitZero[T comparable](v T) any {
	var zero T
	if v == zero {
		return Skip
	}
	return v
}

// OmitNil returns Skip for nil pointers, maps, slices and interfaces.
func OmitNil(v any) any {
	if v == nil {
		return Skip
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		if rv.IsNil() {
			return Skip
		}
	}
	return v
}
