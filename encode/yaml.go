package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/signadot/jsondom/ir"

	"github.com/goccy/go-yaml"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := ToYAMLAny(node)
	if err != nil {
		return err
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(es.indent))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(bytes.TrimRight(d, "\n")))
}

// ToYAMLAny converts node to the generic values go-yaml marshals, keeping
// object member order with yaml.MapSlice.
func ToYAMLAny(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		f := node.Number
		if f == math.Trunc(f) && math.Abs(f) < 1e15 {
			return int64(f), nil
		}
		return f, nil
	case ir.StringType:
		return node.String, nil
	case ir.RawType:
		var v any
		if err := yaml.UnmarshalWithOptions([]byte(node.String), &v, yaml.UseOrderedMap()); err != nil {
			return nil, fmt.Errorf("%w: raw value at %q: %w", ErrEncoding, node.Path(), err)
		}
		return v, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := ToYAMLAny(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Values))
		for i, elt := range node.Values {
			v, err := ToYAMLAny(elt)
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: elt.ParentField, Value: v}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %s node at %q", ErrEncoding, node.Type, node.Path())
	}
}
