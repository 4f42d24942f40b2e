package jsondom

import (
	"fmt"

	"github.com/signadot/jsondom/debug"
	"github.com/signadot/jsondom/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies the RFC 6902 JSON patch document to v.  The result
// replaces v's content in place, so v keeps its position in its parent.
// Handles referencing nodes under v are invalidated.
func (v *Value) ApplyPatch(patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("decode patch: %w", err)
	}
	return v.patch("patch", patch, ops.Apply)
}

// MergePatch applies the RFC 7386 merge patch to v in place.
func (v *Value) MergePatch(patch []byte) error {
	return v.patch("merge patch", patch, func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, patch)
	})
}

func (v *Value) patch(what string, patch []byte, apply func([]byte) ([]byte, error)) error {
	if !v.IsValid() {
		return fmt.Errorf("%w: %s target", ErrEmpty, what)
	}
	doc, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	out, err := apply(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	n, err := parse.Parse(out)
	if err != nil {
		return fmt.Errorf("%s result: %w", what, err)
	}
	if debug.Patch() {
		debug.Logf("%s %s at %q: %v -> %v\n", what, patch, v.node.Path(), v.node, n)
	}
	return v.node.Assign(n)
}

// CreateMergePatch returns the RFC 7386 merge patch turning from into to.
// Both must be objects, or both arrays.
func CreateMergePatch(from, to *Value) ([]byte, error) {
	a, err := from.wire("merge patch source")
	if err != nil {
		return nil, err
	}
	b, err := to.wire("merge patch target")
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}

func (v *Value) wire(what string) ([]byte, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, what)
	}
	if !v.node.Type.IsContainer() {
		return nil, fmt.Errorf("%w: %s is %s", ErrWrongType, what, v.node.Type)
	}
	return v.MarshalJSON()
}
