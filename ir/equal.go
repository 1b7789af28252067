package ir

import "strconv"

// Equal reports whether a and b hold the same document: the same types,
// scalars and keys, with keys in the same order. Tags are ignored.
//
// Numbers are equal when they are written the same way, so the integer 1
// and the float 1.0 differ.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return numberText(a) == numberText(b)
	case ArrayType:
		return allEqual(a.Values, b.Values)
	case ObjectType:
		return allEqual(a.Fields, b.Fields) && allEqual(a.Values, b.Values)
	}
	return false
}

func allEqual(as, bs []*Node) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}

func numberText(n *Node) string {
	switch {
	case n.Int64 != nil:
		return "i" + strconv.FormatInt(*n.Int64, 10)
	case n.Float64 != nil:
		return "f" + strconv.FormatFloat(*n.Float64, 'g', -1, 64)
	}
	return "n" + n.Number
}
