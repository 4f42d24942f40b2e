package eval

import (
	"fmt"

	"github.com/signadot/jsondom/debug"
	"github.com/signadot/jsondom/ir"

	"github.com/expr-lang/expr"
)

// DocName is the variable holding the evaluation node itself.
const DocName = "$"

// Env returns the variables an expression sees when evaluated against doc:
// the members of doc when it is an object, plus doc itself under DocName.
func Env(doc *ir.Node) (map[string]any, error) {
	v, err := ToAny(doc)
	if err != nil {
		return nil, err
	}
	env := map[string]any{}
	if m, ok := v.(map[string]any); ok {
		for k, x := range m {
			env[k] = x
		}
	}
	env[DocName] = v
	return env, nil
}

// Options returns the expr options binding every registered symbol to doc.
// They must follow any expr.Env option, which turns undefined variables
// back into compile errors.
func Options(doc *ir.Node) []expr.Option {
	syms := Symbols()
	res := make([]expr.Option, 0, len(syms)+1)
	res = append(res, expr.AllowUndefinedVariables())
	for _, s := range syms {
		res = append(res, s.Instance(doc))
	}
	return res
}

// Eval evaluates the expr expression src against doc and returns the result
// as a new parentless tree.  doc is not modified.
func Eval(doc *ir.Node, src string) (*ir.Node, error) {
	env, err := Env(doc)
	if err != nil {
		return nil, err
	}
	opts := append([]expr.Option{expr.Env(env)}, Options(doc)...)
	prog, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	out, err := expr.Run(prog, env)
	if err != nil {
		return nil, fmt.Errorf("run %q: %w", src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q at %q: %v\n", src, doc.Path(), out)
	}
	return FromAny(out)
}
