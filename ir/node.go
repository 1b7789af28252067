package ir

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Node is a document tree node. See the package documentation for which
// fields each Type uses.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	Tag string

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) WithTag(tag string) *Node {
	y.Tag = tag
	return y
}

// Clone returns a deep copy of y attached to the same parent.
func (y *Node) Clone() *Node {
	res := &Node{
		Type:        y.Type,
		Parent:      y.Parent,
		ParentIndex: y.ParentIndex,
		ParentField: y.ParentField,
		Tag:         y.Tag,
		String:      y.String,
		Bool:        y.Bool,
		Number:      y.Number,
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	res.Fields = cloneChildren(res, y.Fields)
	res.Values = cloneChildren(res, y.Values)
	return res
}

func cloneChildren(parent *Node, children []*Node) []*Node {
	if children == nil {
		return nil
	}
	res := make([]*Node, len(children))
	for i, c := range children {
		res[i] = c.Clone()
		res[i].Parent = parent
	}
	return res
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

// FromNumber holds a number that fits neither int64 nor float64 without
// loss, such as a large uint64.
func FromNumber(v string) *Node {
	return &Node{Type: NumberType, Number: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap builds an object whose keys are sorted.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.append(FromString(k), m[k])
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds an object keeping the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	for _, kv := range kvs {
		res.append(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType, Values: make([]*Node, len(vs))}
	for i, v := range vs {
		v.Parent = res
		v.ParentIndex = i
		res.Values[i] = v
	}
	return res
}

// Append adds field: val at the end of the object y.
func (y *Node) Append(field string, val *Node) {
	if y.Type != ObjectType {
		panic(fmt.Sprintf("ir: Append on %s", y.Type))
	}
	y.append(FromString(field), val)
}

func (y *Node) append(key, val *Node) {
	i := len(y.Fields)
	for _, n := range []*Node{key, val} {
		n.Parent = y
		n.ParentIndex = i
		n.ParentField = key.String
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, val)
}

// Delete removes field from the object y, reporting whether it was present.
func (y *Node) Delete(field string) bool {
	i := slices.IndexFunc(y.Fields, func(f *Node) bool { return f.String == field })
	if i == -1 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	for j := i; j < len(y.Fields); j++ {
		y.Fields[j].ParentIndex = j
		y.Values[j].ParentIndex = j
	}
	return true
}

// Get returns the value of field in the object y, or nil.
func Get(y *Node, field string) *Node {
	for i, f := range y.Fields {
		if f.String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Keys returns the string keys of an object in order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

// Visit calls f on y before and after its values. Values are visited only
// when the first call returns true.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range y.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(y, true)
	return err
}

// Path returns a JSONPath-style location of y within its root, such as
// "$.paths./pets.get.responses.200".
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	prefix := y.Parent.Path()
	if y.Parent.Type == ArrayType {
		return prefix + "[" + strconv.Itoa(y.ParentIndex) + "]"
	}
	f := y.ParentField
	if f != "" && !strings.ContainsAny(f, "'.*$[]") {
		return prefix + "." + f
	}
	return prefix + ".'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}
