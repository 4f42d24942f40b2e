package eval

import (
	"os"
	"strings"

	"github.com/signadot/jsondom/debug"
	"github.com/signadot/jsondom/ir"
)

var osenvSym = Func(osenvName, func(doc *ir.Node, params ...any) (any, error) {
	key := strings.TrimSpace(params[0].(string))
	if debug.Eval() {
		debug.Logf("getenv %q at %q\n", key, doc.Path())
	}
	return os.Getenv(key), nil
}, new(func(string) string))

// OSEnv reads an environment variable: getenv("HOME").
func OSEnv() Symbol {
	return osenvSym
}

const osenvName = "getenv"
