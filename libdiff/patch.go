package libdiff

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jsondom/ir"
)

var (
	ErrPatch    = errors.New("cannot apply change")
	ErrConflict = fmt.Errorf("%w: conflict", ErrPatch)
)

// Patch applies cs to doc in order.  Deletes and replaces check that the
// node they remove equals the change's From.  Object members are inserted
// at the end of their object.  On error doc holds the changes applied so
// far.
func Patch(doc *ir.Node, cs []Change) error {
	for i := range cs {
		if err := apply(doc, &cs[i]); err != nil {
			return fmt.Errorf("change %d (%s %q): %w", i, cs[i].Op, cs[i].Path, err)
		}
	}
	return nil
}

func apply(doc *ir.Node, c *Change) error {
	if c.Op == Insert {
		return insert(doc, c)
	}
	target := doc.Lookup(c.Path)
	if target == nil {
		return fmt.Errorf("%w: no node at path", ErrPatch)
	}
	if !ir.Equal(target, c.From) {
		return ErrConflict
	}
	if c.Op == Delete {
		if target == doc {
			return fmt.Errorf("%w: delete of the root", ErrPatch)
		}
		target.Free()
		return nil
	}
	return target.Assign(c.To.Clone())
}

func insert(doc *ir.Node, c *Change) error {
	parentPath, tok := splitPath(c.Path)
	parent := doc.Lookup(parentPath)
	if parent == nil {
		return fmt.Errorf("%w: no parent at %q", ErrPatch, parentPath)
	}
	switch parent.Type {
	case ir.ArrayType:
		i, err := strconv.Atoi(tok)
		if err != nil || i > parent.Len() {
			return fmt.Errorf("%w: bad index %q", ErrPatch, tok)
		}
		return parent.Insert(i, c.To.Clone())
	case ir.ObjectType:
		return parent.AppendField(tok, c.To.Clone())
	}
	return fmt.Errorf("%w: insert into %s", ErrPatch, parent.Type)
}

// splitPath splits off the last token of path.
func splitPath(path string) (string, string) {
	if !strings.HasSuffix(path, "]") {
		return "", path
	}
	i := strings.LastIndexByte(path, '[')
	if i == -1 {
		return "", path
	}
	return path[:i], path[i+1 : len(path)-1]
}
