package libdiff

import (
	"unicode/utf8"

	"github.com/signadot/tony-format/go-oapi/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type keyEdit struct {
	op     diffpatch.Operation
	key    string
	fi, ti int
}

// diffObject aligns the keys of from and to, then diffs the values of the
// keys they share. A key deleted at one position and inserted at another
// is reported once, as a !move.
func diffObject(from, to *ir.Node) *ir.Node {
	a := alphabet{}
	fromKeys, toKeys := from.Keys(), to.Keys()
	diffs := diffpatch.New().DiffMainRunes(a.runes(fromKeys), a.runes(toKeys), false)

	var (
		edits    []keyEdit
		deleted  = map[string]int{}
		inserted = map[string]int{}
		fi, ti   int
	)
	for _, d := range diffs {
		for range utf8.RuneCountInString(d.Text) {
			switch d.Type {
			case diffpatch.DiffEqual:
				edits = append(edits, keyEdit{op: d.Type, key: fromKeys[fi], fi: fi, ti: ti})
				fi++
				ti++
			case diffpatch.DiffDelete:
				edits = append(edits, keyEdit{op: d.Type, key: fromKeys[fi], fi: fi})
				deleted[fromKeys[fi]] = fi
				fi++
			case diffpatch.DiffInsert:
				edits = append(edits, keyEdit{op: d.Type, key: toKeys[ti], ti: ti})
				inserted[toKeys[ti]] = ti
				ti++
			}
		}
	}

	var kvs []ir.KeyVal
	add := func(key string, d *ir.Node) {
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: d})
	}
	for _, e := range edits {
		switch e.op {
		case diffpatch.DiffEqual:
			if d := diff(from.Values[e.fi], to.Values[e.ti]); d != nil {
				add(e.key, d)
			}
		case diffpatch.DiffDelete:
			if _, moved := inserted[e.key]; !moved {
				add(e.key, remove(from.Values[e.fi]))
			}
		case diffpatch.DiffInsert:
			was, moved := deleted[e.key]
			if !moved {
				add(e.key, insert(to.Values[e.ti]))
				continue
			}
			add(e.key, move(was, e.ti, diff(from.Values[was], to.Values[e.ti])))
		}
	}
	if len(kvs) == 0 {
		return nil
	}
	return ir.FromKeyVals(kvs)
}

func move(from, to int, d *ir.Node) *ir.Node {
	res := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("from"), Val: ir.FromInt(int64(from))},
		{Key: ir.FromString("to"), Val: ir.FromInt(int64(to))},
	})
	if d != nil {
		res.Append("diff", d)
	}
	return res.WithTag(MoveTag)
}
