package parse

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/signadot/tony-format/go-oapi/ir"

	"github.com/goccy/go-yaml"
)

func Parse(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromYAML(v)
}

func ParseString(s string) (*ir.Node, error) {
	return Parse([]byte(s))
}

func File(path string) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	node, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

// FromYAML converts a value decoded by go-yaml with yaml.UseOrderedMap.
func FromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return ir.FromNumber(strconv.FormatUint(x, 10)), nil
		}
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, len(x))
		for i := range x {
			val, err := FromYAML(x[i].Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: ir.FromString(keyString(x[i].Key)), Val: val}
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, xv := range x {
			val, err := FromYAML(xv)
			if err != nil {
				return nil, err
			}
			m[k] = val
		}
		return ir.FromMap(m), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i := range x {
			val, err := FromYAML(x[i])
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func keyString(k any) string {
	switch x := k.(type) {
	case nil:
		return "null"
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
