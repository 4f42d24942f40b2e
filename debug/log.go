package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsondom/encode"
	"github.com/signadot/jsondom/ir"
)

var out io.Writer = os.Stderr

// Logf writes a debug message to stderr.  *ir.Node arguments are rendered as
// compact JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = nodeString(x)
		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}

func nodeString(x *ir.Node) string {
	if x == nil {
		return "<nil>"
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf, encode.EncodeWire(true)); err != nil {
		return fmt.Sprintf("[raw *ir.Node %s] %v", x.Type, err)
	}
	return buf.String()
}
