package libdiff

import (
	"fmt"

	"github.com/signadot/tony-format/go-oapi/ir"
)

// Reverse turns the diff of from and to into the diff of to and from.
func Reverse(diff *ir.Node) (*ir.Node, error) {
	res := diff.Clone()
	res.Parent = nil
	err := res.Visit(func(node *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		switch node.Tag {
		case InsertTag:
			node.Tag = DeleteTag
			return false, nil
		case DeleteTag:
			node.Tag = InsertTag
			return false, nil
		case ReplaceTag:
			return false, swapFromTo(node)
		case MoveTag:
			// the nested diff is reversed when visited
			return true, swapFromTo(node)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func swapFromTo(node *ir.Node) error {
	if node.Type != ir.ObjectType {
		return fmt.Errorf("%w: %s holds %s at %s", ErrMalformed, node.Tag, node.Type, node.Path())
	}
	f, t := -1, -1
	for i, k := range node.Keys() {
		switch k {
		case "from":
			f = i
		case "to":
			t = i
		}
	}
	if f == -1 || t == -1 {
		return fmt.Errorf("%w: %s without from and to at %s", ErrMalformed, node.Tag, node.Path())
	}
	node.Values[f], node.Values[t] = node.Values[t], node.Values[f]
	node.Values[f].ParentIndex, node.Values[f].ParentField = f, "from"
	node.Values[t].ParentIndex, node.Values[t].ParentField = t, "to"
	return nil
}
