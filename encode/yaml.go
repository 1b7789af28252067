package encode

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/signadot/tony-format/go-oapi/ir"
)

func encodeYAML(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	if node.Tag != "" {
		buf.WriteString(applyColor(es, node.Type, TagColor, node.Tag))
		if !isBlock(node) {
			buf.WriteByte(' ')
			return writeYAMLScalar(node, buf, es)
		}
		buf.WriteByte('\n')
		return writeYAMLBlock(node, buf, es, 0, false)
	}
	if !isBlock(node) {
		return writeYAMLScalar(node, buf, es)
	}
	return writeYAMLBlock(node, buf, es, 0, false)
}

// isBlock reports whether node is written as an indented block rather
// than on the line of its key or dash.
func isBlock(node *ir.Node) bool {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType:
		return len(node.Values) != 0
	}
	return false
}

// writeYAMLBlock writes a non-empty container at indent. When inlineFirst
// is set, the first entry continues the current line (after "- ").
func writeYAMLBlock(node *ir.Node, buf *bytes.Buffer, es *EncState, indent int, inlineFirst bool) error {
	pad := strings.Repeat(" ", indent)
	for i, val := range node.Values {
		if i > 0 || !inlineFirst {
			buf.WriteString(pad)
		}
		if node.Type == ir.ArrayType {
			buf.WriteString(applyColor(es, ir.ArrayType, SepColor, "-"))
			if err := writeYAMLItem(val, buf, es, indent); err != nil {
				return err
			}
			continue
		}
		buf.WriteString(applyColor(es, val.Type, FieldColor, yamlKey(node.Fields[i])))
		buf.WriteString(applyColor(es, ir.ObjectType, SepColor, ":"))
		if err := writeYAMLValue(val, buf, es, indent); err != nil {
			return err
		}
	}
	return nil
}

// writeYAMLValue writes the value of an object field, right after the
// colon.
func writeYAMLValue(val *ir.Node, buf *bytes.Buffer, es *EncState, indent int) error {
	if val.Tag != "" {
		buf.WriteByte(' ')
		buf.WriteString(applyColor(es, val.Type, TagColor, val.Tag))
	}
	if isBlock(val) {
		buf.WriteByte('\n')
		return writeYAMLBlock(val, buf, es, indent+es.yamlIndent(), false)
	}
	buf.WriteByte(' ')
	return writeYAMLScalar(val, buf, es)
}

// writeYAMLItem writes an array element, right after the dash.
func writeYAMLItem(val *ir.Node, buf *bytes.Buffer, es *EncState, indent int) error {
	if val.Tag != "" {
		buf.WriteByte(' ')
		buf.WriteString(applyColor(es, val.Type, TagColor, val.Tag))
		if isBlock(val) {
			buf.WriteByte('\n')
			return writeYAMLBlock(val, buf, es, indent+es.yamlIndent(), false)
		}
	}
	buf.WriteByte(' ')
	if isBlock(val) {
		return writeYAMLBlock(val, buf, es, indent+es.yamlIndent(), true)
	}
	return writeYAMLScalar(val, buf, es)
}

func writeYAMLScalar(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	s, err := scalarString(node, es)
	if err != nil {
		return err
	}
	buf.WriteString(applyColor(es, node.Type, ValueColor, s))
	buf.WriteByte('\n')
	return nil
}

func yamlKey(field *ir.Node) string {
	if field.Type == ir.NumberType && field.Int64 != nil {
		return strconv.FormatInt(*field.Int64, 10)
	}
	return quoteYAML(field.String)
}

// block sequences under "- " need at least 2 columns.
func (es *EncState) yamlIndent() int {
	return max(es.indent, 2)
}
