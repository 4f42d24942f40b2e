package libdiff

import (
	"strconv"

	"github.com/signadot/jsondom/encode"
	"github.com/signadot/jsondom/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes turning from into to, in application order.
// Arrays are aligned on their longest common subsequence of elements,
// objects on their keys.  When an object repeats a key only the first
// member is compared, and members present in both trees are not reordered.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diff("", from, to, &res)
	return res
}

func diff(path string, from, to *ir.Node, res *[]Change) {
	if from.Type != to.Type {
		*res = append(*res, MakeChange(path, from, to))
		return
	}
	switch from.Type {
	case ir.ArrayType:
		diffArray(path, from, to, res)
	case ir.ObjectType:
		diffObject(path, from, to, res)
	default:
		if ir.Compare(from, to) != 0 {
			*res = append(*res, MakeChange(path, from, to))
		}
	}
}

// childPath renders the path of the child tok of a node of type t at path.
func childPath(path string, t ir.Type, tok string) string {
	if t == ir.ObjectType && path == "" {
		return tok
	}
	return path + "[" + tok + "]"
}

// summary identifies scalars by value and containers by type, so that
// containers of the same type line up and are compared recursively.
func summary(node *ir.Node) string {
	if node.Type.IsContainer() {
		return node.Type.String()
	}
	switch node.Type {
	case ir.RawType:
		return "raw-" + node.String
	case ir.NumberType:
		return "number-" + encode.FormatNumber(node.Number)
	case ir.StringType:
		return "string-" + node.String
	case ir.BoolType:
		return "bool-" + strconv.FormatBool(node.Bool)
	}
	return node.Type.String()
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	res := make([]rune, len(node.Values))
	for i, v := range node.Values {
		s := summary(v)
		r, ok := m[s]
		if !ok {
			r = rune(len(m) + 1)
			m[s] = r
		}
		res[i] = r
	}
	return res
}

func diffArray(path string, from, to *ir.Node, res *[]Change) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	// ri is the position in the array as it is after the changes so far.
	fi, ti, ri := 0, 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			for range n {
				*res = append(*res, MakeChange(childPath(path, ir.ArrayType, strconv.Itoa(ri)), from.Values[fi], nil))
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				*res = append(*res, MakeChange(childPath(path, ir.ArrayType, strconv.Itoa(ri)), nil, to.Values[ti]))
				ti++
				ri++
			}
		case diffpatch.DiffEqual:
			for range n {
				diff(childPath(path, ir.ArrayType, strconv.Itoa(ri)), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
				ri++
			}
		}
	}
}

func diffObject(path string, from, to *ir.Node, res *[]Change) {
	seen := map[string]bool{}
	for _, f := range from.Values {
		k := f.ParentField
		if seen[k] {
			continue
		}
		seen[k] = true
		cp := childPath(path, ir.ObjectType, k)
		t := to.Get(k)
		if t == nil {
			*res = append(*res, MakeChange(cp, f, nil))
			continue
		}
		diff(cp, f, t, res)
	}
	for _, t := range to.Values {
		k := t.ParentField
		if seen[k] {
			continue
		}
		seen[k] = true
		*res = append(*res, MakeChange(childPath(path, ir.ObjectType, k), nil, t))
	}
}
