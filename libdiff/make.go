package libdiff

import (
	"bytes"
	"fmt"

	"github.com/signadot/jsondom/encode"
	"github.com/signadot/jsondom/ir"
)

// Change is one edit turning a tree into another.  Path addresses the
// edited node in the tree as it is when the change applies: changes are
// meant to be applied in order.  From is nil for inserts and To is nil for
// deletes.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

// MakeChange builds the change replacing from by to at path.  A nil from
// makes an insert, a nil to a delete.  Both nodes are copied.
func MakeChange(path string, from, to *ir.Node) Change {
	switch {
	case from == nil:
		return Change{Op: Insert, Path: path, To: to.Clone()}
	case to == nil:
		return Change{Op: Delete, Path: path, From: from.Clone()}
	default:
		return Change{Op: Replace, Path: path, From: from.Clone(), To: to.Clone()}
	}
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s: %s", c.Path, compact(c.To))
	case Delete:
		return fmt.Sprintf("- %s: %s", c.Path, compact(c.From))
	}
	if c.From.Type == ir.StringType && c.To.Type == ir.StringType {
		return fmt.Sprintf("~ %s: %s", c.Path, DiffString(c.From.String, c.To.String))
	}
	return fmt.Sprintf("~ %s: %s -> %s", c.Path, compact(c.From), compact(c.To))
}

func compact(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return "<" + err.Error() + ">"
	}
	return buf.String()
}
