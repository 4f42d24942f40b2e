package jsondom

import (
	"fmt"

	"github.com/signadot/jsondom/eval"
)

// Query evaluates an expr-lang expression against v and returns the result
// as a new owning handle.  Object members of v are visible as variables,
// "$" is v itself, and lookup(path) resolves paths relative to v:
//
//	v.Query(`lookup("zoo[big][tiger][1]") * 2`)
//	v.Query(`len($.items) > 0`)
func (v *Value) Query(expression string) (*Value, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: query %q", ErrEmpty, expression)
	}
	n, err := eval.Eval(v.node, expression)
	if err != nil {
		return nil, err
	}
	return own(n), nil
}
