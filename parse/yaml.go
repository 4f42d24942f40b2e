package parse

import (
	"fmt"
	"reflect"

	"github.com/signadot/jsondom/ir"

	"github.com/goccy/go-yaml"
)

func parseYAML(d []byte, opts *parseOpts) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromYAMLAny(v, opts.maxDepth)
}

// FromYAMLAny converts a value decoded by go-yaml into a tree.  Mapping keys
// are rendered with fmt.  maxDepth <= 0 disables the nesting limit.
func FromYAMLAny(v any, maxDepth int) (*ir.Node, error) {
	return fromYAML(v, &parseOpts{maxDepth: maxDepth}, 0)
}

func fromYAML(v any, opts *parseOpts, depth int) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case yaml.MapSlice:
		if opts.tooDeep(depth + 1) {
			return nil, fmt.Errorf("%w: limit %d", ErrNesting, opts.maxDepth)
		}
		res := ir.NewObject()
		for _, item := range x {
			child, err := fromYAML(item.Value, opts, depth+1)
			if err != nil {
				return nil, err
			}
			if err := res.AppendField(yamlKey(item.Key), child); err != nil {
				return nil, err
			}
		}
		return res, nil
	case map[string]any:
		return nil, fmt.Errorf("%w: unordered mapping", errInternal)
	case []any:
		if opts.tooDeep(depth + 1) {
			return nil, fmt.Errorf("%w: limit %d", ErrNesting, opts.maxDepth)
		}
		res := ir.NewArray()
		for _, elt := range x {
			child, err := fromYAML(elt, opts, depth+1)
			if err != nil {
				return nil, err
			}
			if err := res.Append(child); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromFloat(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromFloat(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(rv.Float()), nil
	}
	return nil, fmt.Errorf("%w: unsupported yaml value %T", ErrParse, v)
}

func yamlKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	if k == nil {
		return "null"
	}
	return fmt.Sprint(k)
}
