package spec

import (
	"maps"
	"slices"
)

// StringSet is written as a sorted array.
type StringSet map[string]struct{}

func NewStringSet(vs ...string) StringSet {
	res := StringSet{}
	res.Add(vs...)
	return res
}

func (s StringSet) Add(vs ...string) {
	for _, v := range vs {
		s[v] = struct{}{}
	}
}

func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

func (s StringSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

func (s StringSet) SortedValues() []any {
	sorted := s.Sorted()
	res := make([]any, len(sorted))
	for i, v := range sorted {
		res[i] = v
	}
	return res
}
