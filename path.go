package jsondom

import (
	"github.com/signadot/jsondom/debug"
	"github.com/signadot/jsondom/ir"
)

// Lookup resolves path relative to v and returns a reference to the node it
// addresses, or an empty handle when any step fails to resolve.  See
// [ir.Node.Lookup] for the path syntax.
//
//	v.Lookup("zoo[big][tiger][1]")
//	v.Lookup("[2][name]")
func (v *Value) Lookup(path string) *Value {
	var res *ir.Node
	if v.IsValid() {
		res = v.node.Lookup(path)
	}
	if debug.Path() {
		debug.Logf("lookup %q from %q: %v\n", path, pathOf(v.node), res)
	}
	return ref(res)
}

func pathOf(n *ir.Node) string {
	if n == nil {
		return ""
	}
	return n.Path()
}
