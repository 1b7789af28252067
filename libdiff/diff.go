package libdiff

import (
	"errors"

	"github.com/signadot/tony-format/go-oapi/ir"
)

const (
	InsertTag  = "!insert"
	DeleteTag  = "!delete"
	ReplaceTag = "!replace"
	MoveTag    = "!move"
	ArrayTag   = "!arraydiff"
	StringTag  = "!strdiff"
)

var ErrMalformed = errors.New("malformed diff")

// Diff produces a succinct comparison of from and to. If there are
// no differences, Diff returns nil. Either side may be nil, giving an
// !insert or !delete of the other.
func Diff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil:
		return insert(to)
	case to == nil:
		return remove(from)
	}
	return diff(from, to)
}

func diff(from, to *ir.Node) *ir.Node {
	if from.Type != to.Type {
		return replace(from, to)
	}
	switch from.Type {
	case ir.ObjectType:
		return diffObject(from, to)
	case ir.ArrayType:
		return diffArray(from, to)
	case ir.StringType:
		return diffString(from, to)
	}
	if ir.Equal(from, to) {
		return nil
	}
	return replace(from, to)
}

func detached(node *ir.Node) *ir.Node {
	res := node.Clone()
	res.Parent = nil
	res.Tag = ""
	return res
}

func insert(to *ir.Node) *ir.Node {
	return detached(to).WithTag(InsertTag)
}

func remove(from *ir.Node) *ir.Node {
	return detached(from).WithTag(DeleteTag)
}

func replace(from, to *ir.Node) *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("from"), Val: detached(from)},
		{Key: ir.FromString("to"), Val: detached(to)},
	}).WithTag(ReplaceTag)
}

// alphabet maps strings to runes so that sequences of keys or element
// summaries can be diffed as text.
type alphabet map[string]rune

func (a alphabet) runes(ss []string) []rune {
	res := make([]rune, len(ss))
	for i, s := range ss {
		r, ok := a[s]
		if !ok {
			r = rune(len(a) + 1)
			a[s] = r
		}
		res[i] = r
	}
	return res
}
