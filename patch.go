package oapi

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/signadot/tony-format/go-oapi/debug"
	"github.com/signadot/tony-format/go-oapi/encode"
	"github.com/signadot/tony-format/go-oapi/ir"
	"github.com/signadot/tony-format/go-oapi/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Patch applies the RFC 6902 operations in patch, an array of operation
// objects, to doc. doc is left unchanged.
func Patch(doc, patch *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("json patch of %s with %d ops\n", doc.Type, len(patch.Values))
	}
	if patch.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: json patch must be an array, got %s", ErrPatch, patch.Type)
	}
	p, err := wireJSON(patch)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := wireJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}

// MergePatch applies the RFC 7386 merge patch to doc: fields of patch
// replace those of doc recursively and null fields delete them.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merge patch of %s with %s\n", doc.Type, patch.Type)
	}
	d, err := wireJSON(doc)
	if err != nil {
		return nil, err
	}
	p, err := wireJSON(patch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}

func wireJSON(node *ir.Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
