package jsondom

import (
	"fmt"

	"github.com/signadot/jsondom/debug"
	"github.com/signadot/jsondom/ir"
	"github.com/signadot/jsondom/parse"
)

// Value is a handle onto a tree node.  The zero Value is an empty handle.
type Value struct {
	node  *ir.Node
	owner bool
}

func own(n *ir.Node) *Value {
	return &Value{node: n, owner: true}
}

func ref(n *ir.Node) *Value {
	return &Value{node: n}
}

func Null() *Value                { return own(ir.Null()) }
func FromBool(b bool) *Value      { return own(ir.FromBool(b)) }
func FromNumber(f float64) *Value { return own(ir.FromFloat(f)) }
func FromString(s string) *Value  { return own(ir.FromString(s)) }
func NewArray() *Value            { return own(ir.NewArray()) }
func NewObject() *Value           { return own(ir.NewObject()) }

// FromRaw returns a value that prints as the given JSON text, unchanged.
func FromRaw(json string) *Value { return own(ir.FromRaw(json)) }

// Number is the set of element types accepted by FromNumbers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// FromNumbers returns an array holding xs converted to float64.
func FromNumbers[T Number](xs []T) *Value {
	res := NewArray()
	for _, x := range xs {
		res.node.Append(ir.FromFloat(float64(x)))
	}
	return res
}

func FromBools(xs []bool) *Value {
	res := NewArray()
	for _, x := range xs {
		res.node.Append(ir.FromBool(x))
	}
	return res
}

func FromStrings(xs []string) *Value {
	res := NewArray()
	for _, x := range xs {
		res.node.Append(ir.FromString(x))
	}
	return res
}

// FromNode returns a reference to n.  The handle never owns n.
func FromNode(n *ir.Node) *Value {
	return ref(n)
}

// Adopt returns an owning handle for n, which must be a parentless node
// nothing else owns, such as one returned by Release.  It panics with
// ErrAttached when n has a parent.
func Adopt(n *ir.Node) *Value {
	if n == nil {
		return &Value{}
	}
	if n.Parent != nil {
		panic(fmt.Errorf("%w: Adopt of node at %q", ErrAttached, n.Path()))
	}
	return own(n)
}

// Parse parses d, JSON unless an option selects another format, into a new
// owning handle.
func Parse(d []byte, opts ...parse.ParseOption) (*Value, error) {
	n, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return own(n), nil
}

func ParseYAML(d []byte) (*Value, error) {
	return Parse(d, parse.ParseYAML())
}

// Parse fills the empty handle v from text.  On error v stays empty.
func (v *Value) Parse(text string, opts ...parse.ParseOption) error {
	if v.node != nil {
		panic(fmt.Errorf("%w: Parse into %s", ErrNotEmpty, v.kind()))
	}
	n, err := parse.Parse([]byte(text), opts...)
	if err != nil {
		return err
	}
	v.node, v.owner = n, true
	return nil
}

// Move transfers the content of v, owning or not, to a new handle and
// empties v.
func (v *Value) Move() *Value {
	res := &Value{node: v.node, owner: v.owner}
	v.node, v.owner = nil, false
	if debug.Owner() && res.node != nil {
		debug.Logf("move %v owner=%t\n", res.node, res.owner)
	}
	return res
}

// Duplicate returns an owning copy of v's node without its children.
func (v *Value) Duplicate() *Value {
	if !v.IsValid() {
		return &Value{}
	}
	return own(v.node.CloneShallow())
}

// DuplicateRecursive returns an owning deep copy of v's subtree.
func (v *Value) DuplicateRecursive() *Value {
	if !v.IsValid() {
		return &Value{}
	}
	return own(v.node.Clone())
}

// Detach removes v's node from its parent and makes v its owner.  Nodes
// without a parent are left alone: they already belong to some owner.
func (v *Value) Detach() {
	if v.node == nil || v.node.Parent == nil {
		return
	}
	if debug.Owner() {
		debug.Logf("detach %q\n", v.node.Path())
	}
	v.node.Detach()
	v.owner = true
}

// Clear empties v, freeing the subtree first when v owns it.  Clearing an
// empty handle does nothing.
func (v *Value) Clear() {
	if v.node == nil {
		return
	}
	if v.owner {
		if debug.Owner() {
			debug.Logf("free %v\n", v.node)
		}
		v.node.Free()
	}
	v.node, v.owner = nil, false
}

// Delete removes v's node from its tree and frees it.
func (v *Value) Delete() {
	v.Detach()
	v.Clear()
}

// Release detaches v's node, empties v and hands the node to the caller.
// It returns nil when v is empty or references a node owned by another
// handle.
func (v *Value) Release() *ir.Node {
	v.Detach()
	if !v.owner {
		return nil
	}
	res := v.node
	v.node, v.owner = nil, false
	return res
}

// Node returns the node v refers to, nil when v is empty.  The node stays
// under v's control.
func (v *Value) Node() *ir.Node {
	return v.node
}

func (v *Value) is(t ir.Type) bool {
	return v.node != nil && v.node.Type == t
}

// IsValid reports whether v refers to a live node.
func (v *Value) IsValid() bool {
	return v.node != nil && v.node.Type != ir.InvalidType
}

func (v *Value) IsEmpty() bool  { return v.node == nil }
func (v *Value) IsNull() bool   { return v.is(ir.NullType) }
func (v *Value) IsBool() bool   { return v.is(ir.BoolType) }
func (v *Value) IsNumber() bool { return v.is(ir.NumberType) }
func (v *Value) IsString() bool { return v.is(ir.StringType) }
func (v *Value) IsArray() bool  { return v.is(ir.ArrayType) }
func (v *Value) IsObject() bool { return v.is(ir.ObjectType) }
func (v *Value) IsRaw() bool    { return v.is(ir.RawType) }

// IsReference reports whether v points into a tree it does not own.
func (v *Value) IsReference() bool { return v.node != nil && !v.owner }

func (v *Value) IsOwner() bool { return v.node != nil && v.owner }

// Type returns the type of v's node, InvalidType when v is empty.
func (v *Value) Type() ir.Type {
	if v.node == nil {
		return ir.InvalidType
	}
	return v.node.Type
}

// Name returns the key under which v is stored in its parent object, or "".
func (v *Value) Name() string {
	if v.node == nil || v.node.Parent == nil || v.node.Parent.Type != ir.ObjectType {
		return ""
	}
	return v.node.ParentField
}

// Equal reports whether v and other hold deep-equal trees.  Two empty
// handles are equal.
func (v *Value) Equal(other *Value) bool {
	return ir.Equal(v.node, other.node)
}

func (v *Value) kind() string {
	if v.node == nil {
		return "empty value"
	}
	return v.node.Type.String()
}

func (v *Value) must(t ir.Type, op string) {
	if !v.is(t) {
		panic(fmt.Errorf("%w: %s on %s, want %s", ErrWrongType, op, v.kind(), t))
	}
}

// movable reports whether v holds a node that can be attached somewhere.
// It panics with ErrAttached when v does not own its node.
func (v *Value) movable(op string) bool {
	if v == nil || !v.IsValid() {
		return false
	}
	if !v.owner || v.node.Parent != nil {
		panic(fmt.Errorf("%w: %s of %s at %q; detach or duplicate it first",
			ErrAttached, op, v.kind(), v.node.Path()))
	}
	return true
}

// attach hands child's node to v's node via f.  It returns false when
// child is empty or f refuses the node, e.g. because it would create a
// cycle.
func (v *Value) attach(child *Value, op string, f func(*ir.Node) error) bool {
	if !child.movable(op) {
		return false
	}
	if err := f(child.node); err != nil {
		if debug.Owner() {
			debug.Logf("%s refused: %v\n", op, err)
		}
		return false
	}
	if debug.Owner() {
		debug.Logf("%s moved %v to %q\n", op, child.node, child.node.Path())
	}
	child.node, child.owner = nil, false
	return true
}
