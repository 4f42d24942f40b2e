package eval

import (
	"github.com/signadot/jsondom/ir"
)

var (
	whereamiSym = Func("whereami", func(doc *ir.Node, _ ...any) (any, error) {
		return doc.Path(), nil
	}, new(func() string))

	lookupSym = Func("lookup", func(doc *ir.Node, params ...any) (any, error) {
		res := doc.Lookup(params[0].(string))
		if res == nil {
			return nil, nil
		}
		return ToAny(res)
	}, new(func(string) any))

	rootSym = Func("root", func(doc *ir.Node, _ ...any) (any, error) {
		return ToAny(doc.Root())
	}, new(func() any))

	pathsSym = Func("paths", func(doc *ir.Node, _ ...any) (any, error) {
		ps := doc.Paths()
		res := make([]any, len(ps))
		for i, p := range ps {
			res[i] = p
		}
		return res, nil
	}, new(func() []any))

	typeofSym = Func("typeof", func(doc *ir.Node, params ...any) (any, error) {
		res := doc.Lookup(params[0].(string))
		if res == nil {
			return ir.InvalidType.String(), nil
		}
		return res.Type.String(), nil
	}, new(func(string) string))
)

// WhereAmI returns the path of the evaluation node: whereami().
func WhereAmI() Symbol { return whereamiSym }

// LookupPath resolves a path relative to the evaluation node:
// lookup("zoo[big][1]").  Unresolved paths give nil.
func LookupPath() Symbol { return lookupSym }

// Root gives the whole document containing the evaluation node: root().
func Root() Symbol { return rootSym }

// Paths lists the paths below the evaluation node: paths().
func Paths() Symbol { return pathsSym }

// TypeOf names the type of the node at a path: typeof("a[0]").
func TypeOf() Symbol { return typeofSym }
