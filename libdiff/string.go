package libdiff

import (
	"strings"

	"github.com/signadot/tony-format/go-oapi/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffString diffs multi-line strings by line and others by character.
// When the edits touch more than half of the shorter string the strings
// are replaced instead.
func diffString(from, to *ir.Node) *ir.Node {
	if from.String == to.String {
		return nil
	}
	dmp := diffpatch.New()
	var edits []diffpatch.Diff
	if strings.Contains(from.String, "\n") || strings.Contains(to.String, "\n") {
		a, b, lines := dmp.DiffLinesToRunes(from.String, to.String)
		edits = dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)
	} else {
		edits = dmp.DiffCleanupSemantic(dmp.DiffMain(from.String, to.String, false))
	}
	changed := 0
	parts := make([]*ir.Node, 0, len(edits))
	for _, e := range edits {
		part := ir.FromString(e.Text)
		switch e.Type {
		case diffpatch.DiffInsert:
			part.Tag = InsertTag
			changed += len(e.Text)
		case diffpatch.DiffDelete:
			part.Tag = DeleteTag
			changed += len(e.Text)
		}
		parts = append(parts, part)
	}
	if changed > min(len(from.String), len(to.String))/2 {
		return replace(from, to)
	}
	return ir.FromSlice(parts).WithTag(StringTag)
}
