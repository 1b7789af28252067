package libdiff

import (
	"strconv"
	"unicode/utf8"

	"github.com/signadot/tony-format/go-oapi/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffArray aligns the elements of from and to by their summaries. Edits
// are keyed by position in the aligned sequence, so a deletion directly
// followed by an insertion becomes a diff of the two elements.
func diffArray(from, to *ir.Node) *ir.Node {
	a := alphabet{}
	diffs := diffpatch.New().DiffMainRunes(a.runes(summaries(from)), a.runes(summaries(to)), false)

	var kvs []ir.KeyVal
	at := func(pos int, d *ir.Node) {
		if d == nil {
			return
		}
		key := ir.FromInt(int64(pos))
		key.String = strconv.Itoa(pos)
		kvs = append(kvs, ir.KeyVal{Key: key, Val: d})
	}
	pos, fi, ti := 0, 0, 0
	for k := 0; k < len(diffs); k++ {
		n := utf8.RuneCountInString(diffs[k].Text)
		switch diffs[k].Type {
		case diffpatch.DiffEqual:
			for range n {
				at(pos, diff(from.Values[fi], to.Values[ti]))
				pos++
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			ins := 0
			if k+1 < len(diffs) && diffs[k+1].Type == diffpatch.DiffInsert {
				ins = utf8.RuneCountInString(diffs[k+1].Text)
				k++
			}
			for j := range max(n, ins) {
				switch {
				case j < n && j < ins:
					at(pos, diff(from.Values[fi], to.Values[ti]))
					fi++
					ti++
				case j < n:
					at(pos, remove(from.Values[fi]))
					fi++
				default:
					at(pos, insert(to.Values[ti]))
					ti++
				}
				pos++
			}
		case diffpatch.DiffInsert:
			for range n {
				at(pos, insert(to.Values[ti]))
				pos++
				ti++
			}
		}
	}
	if len(kvs) == 0 {
		return nil
	}
	return ir.FromKeyVals(kvs).WithTag(ArrayTag)
}

func summaries(arr *ir.Node) []string {
	res := make([]string, len(arr.Values))
	for i, v := range arr.Values {
		res[i] = summary(v)
	}
	return res
}

// summary identifies an element for alignment. Objects are told apart by
// their $ref or name, which covers references and parameters.
func summary(node *ir.Node) string {
	switch node.Type {
	case ir.ObjectType:
		for _, k := range []string{"$ref", "name"} {
			if v := ir.Get(node, k); v != nil && v.Type == ir.StringType {
				return "object " + k + "=" + v.String
			}
		}
		return "object"
	case ir.ArrayType:
		return "array"
	case ir.StringType:
		return "string " + node.String
	case ir.BoolType:
		return "bool " + strconv.FormatBool(node.Bool)
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return "int " + strconv.FormatInt(*node.Int64, 10)
		case node.Float64 != nil:
			return "float " + strconv.FormatFloat(*node.Float64, 'g', -1, 64)
		}
		return "number " + node.Number
	}
	return "null"
}
