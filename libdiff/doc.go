// Package libdiff computes structural differences between document trees.
//
// # Usage
//
//	// Compute diff between two nodes; nil means equal.
//	diff := libdiff.Diff(oldNode, newNode)
//
//	// Swap the direction of a diff
//	rev, err := libdiff.Reverse(diff)
//
// Diffs are themselves document trees whose tags say what changed:
//
//	!insert     a value only present in to
//	!delete     a value only present in from
//	!replace    {from: ..., to: ...}
//	!move       {from: i, to: j, diff: ...}, an object key at a new position
//	!arraydiff  edits keyed by position in the aligned arrays
//	!strdiff    a sequence of kept, !insert and !delete text segments
//
// An object with differences yields an untagged object holding the diffs
// of the changed keys, in document order. Diffs are meant to be read:
// serialization reports one when the same reference name is used for two
// objects whose serialized forms differ. Tags of the compared documents
// are ignored.
package libdiff
