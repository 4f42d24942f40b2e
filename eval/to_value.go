package eval

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/signadot/jsondom/ir"
	"github.com/signadot/jsondom/parse"
)

var ErrUnsupported = errors.New("unsupported value")

// ToAny converts node to plain Go values: nil, bool, int for integral
// numbers, float64, string, []any and map[string]any.  When an object
// repeats a key the first member wins.  Raw values are parsed.
func ToAny(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		f := node.Number
		if f == math.Trunc(f) && math.Abs(f) < 1e15 {
			return int(f), nil
		}
		return f, nil
	case ir.StringType:
		return node.String, nil
	case ir.RawType:
		y, err := parse.Parse([]byte(node.String))
		if err != nil {
			return nil, fmt.Errorf("raw value at %q: %w", node.Path(), err)
		}
		return ToAny(y)
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := ToAny(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.ObjectType:
		res := make(map[string]any, len(node.Values))
		for _, elt := range node.Values {
			if _, present := res[elt.ParentField]; present {
				continue
			}
			v, err := ToAny(elt)
			if err != nil {
				return nil, err
			}
			res[elt.ParentField] = v
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: %s node at %q", ErrUnsupported, node.Type, node.Path())
}

// FromAny converts the result of an expression back to a tree.  Map keys
// are sorted.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case *ir.Node:
		return x.Clone(), nil
	case []any:
		vs := make([]*ir.Node, len(x))
		for i := range x {
			y, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			vs[i] = y
		}
		return ir.FromSlice(vs), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		kvs := make([]ir.KeyVal, len(keys))
		for i, k := range keys {
			y, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: k, Val: y}
		}
		return ir.FromKeyVals(kvs), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromFloat(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(rv.Float()), nil
	case reflect.String:
		return ir.FromString(rv.String()), nil
	case reflect.Bool:
		return ir.FromBool(rv.Bool()), nil
	case reflect.Slice, reflect.Array:
		vs := make([]*ir.Node, rv.Len())
		for i := range vs {
			y, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			vs[i] = y
		}
		return ir.FromSlice(vs), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromAny(m)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}
