package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/tony-format/go-oapi/format"
	"github.com/signadot/tony-format/go-oapi/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent int
	wire   bool
	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.wire {
		es.format = format.JSONFormat
	}
	buf := bytes.NewBuffer(nil)
	var err error
	switch es.format {
	case format.JSONFormat:
		err = encodeJSON(node, buf, es, 0)
		if err == nil {
			buf.WriteByte('\n')
		}
	case format.YAMLFormat:
		err = encodeYAML(node, buf, es)
	default:
		err = fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func encodeJSON(node *ir.Node, buf *bytes.Buffer, es *EncState, depth int) error {
	if node.Tag != "" {
		return fmt.Errorf("%w: cannot encode tag %s in %s at %s", ErrEncoding, node.Tag, es.format, node.Path())
	}
	switch node.Type {
	case ir.ObjectType:
		return encodeJSONObject(node, buf, es, depth)
	case ir.ArrayType:
		return encodeJSONArray(node, buf, es, depth)
	default:
		s, err := scalarString(node, es)
		if err != nil {
			return err
		}
		buf.WriteString(applyColor(es, node.Type, ValueColor, s))
		return nil
	}
}

func encodeJSONObject(node *ir.Node, buf *bytes.Buffer, es *EncState, depth int) error {
	if len(node.Fields) == 0 {
		buf.WriteString(applyColor(es, ir.ObjectType, SepColor, "{}"))
		return nil
	}
	buf.WriteString(applyColor(es, ir.ObjectType, SepColor, "{"))
	for i, field := range node.Fields {
		if i > 0 {
			buf.WriteString(applyColor(es, ir.ObjectType, SepColor, ","))
		}
		writeJSONNL(buf, es, depth+1)
		if field.Type != ir.StringType {
			return fmt.Errorf("%w: %s keys unsupported in %s at %s", ErrEncoding, field.Type, es.format, node.Path())
		}
		buf.WriteString(applyColor(es, node.Values[i].Type, FieldColor, quoteJSON(field.String)))
		sep := ":"
		if !es.wire {
			sep = ": "
		}
		buf.WriteString(applyColor(es, ir.ObjectType, SepColor, sep))
		if err := encodeJSON(node.Values[i], buf, es, depth+1); err != nil {
			return err
		}
	}
	writeJSONNL(buf, es, depth)
	buf.WriteString(applyColor(es, ir.ObjectType, SepColor, "}"))
	return nil
}

func encodeJSONArray(node *ir.Node, buf *bytes.Buffer, es *EncState, depth int) error {
	if len(node.Values) == 0 {
		buf.WriteString(applyColor(es, ir.ArrayType, SepColor, "[]"))
		return nil
	}
	buf.WriteString(applyColor(es, ir.ArrayType, SepColor, "["))
	for i, val := range node.Values {
		if i > 0 {
			buf.WriteString(applyColor(es, ir.ArrayType, SepColor, ","))
		}
		writeJSONNL(buf, es, depth+1)
		if err := encodeJSON(val, buf, es, depth+1); err != nil {
			return err
		}
	}
	writeJSONNL(buf, es, depth)
	buf.WriteString(applyColor(es, ir.ArrayType, SepColor, "]"))
	return nil
}

func writeJSONNL(buf *bytes.Buffer, es *EncState, depth int) {
	if es.wire {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.indent*depth))
}

func scalarString(node *ir.Node, es *EncState) (string, error) {
	switch node.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(node.Bool), nil
	case ir.StringType:
		if es.format == format.JSONFormat {
			return quoteJSON(node.String), nil
		}
		return quoteYAML(node.String), nil
	case ir.NumberType:
		return numberString(node, es)
	case ir.ObjectType:
		return "{}", nil
	case ir.ArrayType:
		return "[]", nil
	}
	panic("type")
}

func numberString(node *ir.Node, es *EncState) (string, error) {
	switch {
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsInf(f, 0) || math.IsNaN(f) {
			if es.format == format.JSONFormat {
				return "", fmt.Errorf("%w: %v unsupported in %s at %s", ErrEncoding, f, es.format, node.Path())
			}
			switch {
			case math.IsNaN(f):
				return ".nan", nil
			case f > 0:
				return ".inf", nil
			default:
				return "-.inf", nil
			}
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s, nil
	case node.Number != "":
		return node.Number, nil
	}
	return "", fmt.Errorf("%w: empty number at %s", ErrEncoding, node.Path())
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}
