package encode

import (
	"bytes"
	"fmt"

	"github.com/signadot/tony-format/go-oapi/ir"
)

// MustString encodes node, falling back to a Go representation when it
// cannot be encoded. It is meant for log and error messages.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	if node == nil {
		return "<nil>"
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", node)
	}
	return buf.String()
}
