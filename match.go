package jsondom

import (
	"github.com/signadot/jsondom/debug"
	"github.com/signadot/jsondom/ir"
)

// Match reports whether v matches pattern.  A null pattern matches
// anything.  An object pattern matches an object holding every key of the
// pattern with a matching value; other keys are ignored.  An array pattern
// matches an array of the same length whose elements match pairwise.
// Scalars match when equal.
func (v *Value) Match(pattern *Value) bool {
	if !v.IsValid() || !pattern.IsValid() {
		return false
	}
	return match(v.node, pattern.node)
}

func match(doc, pat *ir.Node) bool {
	if debug.Match() {
		debug.Logf("match %s at %q against %v\n", doc.Type, doc.Path(), pat)
	}
	if pat.Type == ir.NullType {
		return true
	}
	if doc.Type != pat.Type {
		return false
	}
	switch pat.Type {
	case ir.ObjectType:
		return matchObject(doc, pat)
	case ir.ArrayType:
		return matchArray(doc, pat)
	}
	return ir.Equal(doc, pat)
}

func matchObject(doc, pat *ir.Node) bool {
	for _, p := range pat.Values {
		d := doc.Get(p.ParentField)
		if d == nil || !match(d, p) {
			return false
		}
	}
	return true
}

func matchArray(doc, pat *ir.Node) bool {
	if len(doc.Values) != len(pat.Values) {
		return false
	}
	for i := range doc.Values {
		if !match(doc.Values[i], pat.Values[i]) {
			return false
		}
	}
	return true
}

// Trim returns a new owning copy of v keeping only what pattern names.
// Object members whose keys the pattern lacks are dropped.  Each element of
// an array pattern keeps the first unused element of v that matches it.
// Scalars and null patterns keep v as is.
func (v *Value) Trim(pattern *Value) *Value {
	if !v.IsValid() || !pattern.IsValid() {
		return &Value{}
	}
	return own(trim(pattern.node, v.node))
}

func trim(pat, doc *ir.Node) *ir.Node {
	if pat.Type != doc.Type {
		return doc.Clone()
	}
	switch pat.Type {
	case ir.ObjectType:
		var kvs []ir.KeyVal
		for _, d := range doc.Values {
			p := pat.Get(d.ParentField)
			if p == nil {
				continue
			}
			kvs = append(kvs, ir.KeyVal{Key: d.ParentField, Val: trim(p, d)})
		}
		return ir.FromKeyVals(kvs)
	case ir.ArrayType:
		res := []*ir.Node{}
		used := make([]bool, len(doc.Values))
		for _, p := range pat.Values {
			for i, d := range doc.Values {
				if used[i] || !match(d, p) {
					continue
				}
				res = append(res, trim(p, d))
				used[i] = true
				break
			}
		}
		return ir.FromSlice(res)
	}
	return doc.Clone()
}
