package eval

import (
	"github.com/signadot/jsondom/ir"

	"github.com/expr-lang/expr"
)

// Symbol is a function made available to expressions.  Instance binds it to
// the node an expression is evaluated against.
type Symbol interface {
	String() string
	Instance(doc *ir.Node) expr.Option
}

type name string

func (s name) String() string {
	return string(s)
}

// funcSymbol is a Symbol backed by a plain Go function.  types lists the
// signatures expr type checks calls against.
type funcSymbol struct {
	name
	fn    func(doc *ir.Node, params ...any) (any, error)
	types []any
}

func (s *funcSymbol) Instance(doc *ir.Node) expr.Option {
	return expr.Function(string(s.name), func(params ...any) (any, error) {
		return s.fn(doc, params...)
	}, s.types...)
}

// Func returns a Symbol named n calling fn with the evaluation node.
func Func(n string, fn func(doc *ir.Node, params ...any) (any, error), types ...any) Symbol {
	return &funcSymbol{name: name(n), fn: fn, types: types}
}
