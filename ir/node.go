package ir

import (
	"fmt"
	"math"
)

// Node is a single tagged value in a tree.  Containers keep their children
// in Values; a child records its position in ParentIndex and, when the
// parent is an object, its key in ParentField.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Values      []*Node

	Bool   bool
	Number float64
	String string
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:   NumberType,
		Number: f,
	}
}

func FromInt(v int64) *Node {
	return FromFloat(float64(v))
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

// FromRaw returns a node whose text is emitted verbatim by encoders.  The
// text is not validated.
func FromRaw(v string) *Node {
	return &Node{
		Type:   RawType,
		String: v,
	}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

// New returns a fresh node of type t with a zero payload.
func New(t Type) *Node {
	return &Node{Type: t}
}

func FromSlice(ySlice []*Node) *Node {
	res := NewArray()
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := NewObject()
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// Int returns the number payload truncated to an int64, saturating at the
// int64 bounds.  NaN yields 0.
func (y *Node) Int() int64 {
	f := y.Number
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

// CloneShallow copies y without its children.  The copy is parentless.
func (y *Node) CloneShallow() *Node {
	return &Node{
		Type:   y.Type,
		Bool:   y.Bool,
		Number: y.Number,
		String: y.String,
	}
}

// Clone copies the subtree rooted at y.  The copy is parentless.
func (y *Node) Clone() *Node {
	dst := y.CloneShallow()
	if len(y.Values) == 0 {
		return dst
	}
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dv := yv.Clone()
		dv.Parent = dst
		dv.ParentIndex = i
		dv.ParentField = yv.ParentField
		dst.Values[i] = dv
	}
	return dst
}

func (y *Node) Len() int {
	return len(y.Values)
}

// Index returns the child at position i, or nil when i is out of range.
func (y *Node) Index(i int) *Node {
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// FieldIndex returns the position of the first child keyed by field, or -1.
func (y *Node) FieldIndex(field string) int {
	if y.Type != ObjectType {
		return -1
	}
	for i, v := range y.Values {
		if v.ParentField == field {
			return i
		}
	}
	return -1
}

// Get returns the first child keyed by field, or nil.
func (y *Node) Get(field string) *Node {
	i := y.FieldIndex(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

func (y *Node) FirstChild() *Node {
	return y.Index(0)
}

func (y *Node) LastChild() *Node {
	return y.Index(len(y.Values) - 1)
}

// Next returns the following sibling, or nil at the end of the chain.
func (y *Node) Next() *Node {
	if y.Parent == nil {
		return nil
	}
	return y.Parent.Index(y.ParentIndex + 1)
}

// Prev returns the preceding sibling, or nil for the first child.
func (y *Node) Prev() *Node {
	if y.Parent == nil {
		return nil
	}
	return y.Parent.Index(y.ParentIndex - 1)
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (y *Node) checkChild(c *Node) error {
	if !y.Type.IsContainer() {
		return fmt.Errorf("%w: %s", ErrNotContainer, y.Type)
	}
	if c == nil {
		return fmt.Errorf("%w: nil child", ErrNotContainer)
	}
	if c.Parent != nil {
		return fmt.Errorf("%w: %s at %q", ErrAttached, c.Type, c.Path())
	}
	for p := y; p != nil; p = p.Parent {
		if p == c {
			return ErrCycle
		}
	}
	return nil
}

func (y *Node) reindex(from int) {
	for i := from; i < len(y.Values); i++ {
		y.Values[i].ParentIndex = i
	}
}

// Append adds c as the last element of the array y.
func (y *Node) Append(c *Node) error {
	if y.Type != ArrayType {
		return fmt.Errorf("%w: append to %s", ErrNotContainer, y.Type)
	}
	if err := y.checkChild(c); err != nil {
		return err
	}
	c.Parent = y
	c.ParentIndex = len(y.Values)
	c.ParentField = ""
	y.Values = append(y.Values, c)
	return nil
}

// AppendField adds c under key field as the last member of the object y.
// Existing members with the same key are kept.
func (y *Node) AppendField(field string, c *Node) error {
	if y.Type != ObjectType {
		return fmt.Errorf("%w: add field %q to %s", ErrNotContainer, field, y.Type)
	}
	if err := y.checkChild(c); err != nil {
		return err
	}
	c.Parent = y
	c.ParentIndex = len(y.Values)
	c.ParentField = field
	y.Values = append(y.Values, c)
	return nil
}

// Insert places c before position i of the array y.  Positions at or past
// the end append.
func (y *Node) Insert(i int, c *Node) error {
	if y.Type != ArrayType {
		return fmt.Errorf("%w: insert into %s", ErrNotContainer, y.Type)
	}
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrRange, i)
	}
	if i >= len(y.Values) {
		return y.Append(c)
	}
	if err := y.checkChild(c); err != nil {
		return err
	}
	c.Parent = y
	c.ParentField = ""
	y.Values = append(y.Values, nil)
	copy(y.Values[i+1:], y.Values[i:])
	y.Values[i] = c
	y.reindex(i)
	return nil
}

// ReplaceAt puts c at position i of the container y and returns the detached
// node that was there.  Object keys are preserved.
func (y *Node) ReplaceAt(i int, c *Node) (*Node, error) {
	if err := y.checkChild(c); err != nil {
		return nil, err
	}
	old := y.Index(i)
	if old == nil {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrRange, i, len(y.Values))
	}
	c.Parent = y
	c.ParentIndex = i
	c.ParentField = old.ParentField
	y.Values[i] = c
	old.Parent = nil
	old.ParentIndex = 0
	old.ParentField = ""
	return old, nil
}

// Detach removes y from its parent, if any, and returns y.
func (y *Node) Detach() *Node {
	p := y.Parent
	if p == nil {
		return y
	}
	i := y.ParentIndex
	if i < 0 || i >= len(p.Values) || p.Values[i] != y {
		panic("ir: corrupt parent index")
	}
	n := len(p.Values)
	copy(p.Values[i:], p.Values[i+1:])
	p.Values[n-1] = nil
	p.Values = p.Values[:n-1]
	p.reindex(i)
	y.Parent = nil
	y.ParentIndex = 0
	y.ParentField = ""
	return y
}

// Free detaches y and invalidates the subtree rooted at it.  Nodes that
// have been freed report InvalidType.
func (y *Node) Free() {
	y.Detach()
	y.free()
}

func (y *Node) free() {
	for _, c := range y.Values {
		c.free()
	}
	*y = Node{}
}

// Assign replaces the content of y with that of the parentless node src,
// keeping y's position in its parent.  The previous children of y are freed
// and src is consumed.
func (y *Node) Assign(src *Node) error {
	if src.Parent != nil {
		return fmt.Errorf("%w: %s at %q", ErrAttached, src.Type, src.Path())
	}
	if src == y {
		return nil
	}
	for p := y; p != nil; p = p.Parent {
		if p == src {
			return ErrCycle
		}
	}
	for _, c := range y.Values {
		c.free()
	}
	y.Type = src.Type
	y.Bool = src.Bool
	y.Number = src.Number
	y.String = src.String
	y.Values = src.Values
	for _, c := range y.Values {
		c.Parent = y
	}
	*src = Node{}
	return nil
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
