package jsondom

import "github.com/signadot/jsondom/ir"

// ArraySize returns the number of elements of the array v.
func (v *Value) ArraySize() int {
	v.must(ir.ArrayType, "ArraySize")
	return v.node.Len()
}

// Index returns a reference to element i, or an empty handle when i is out
// of range.
func (v *Value) Index(i int) *Value {
	v.must(ir.ArrayType, "Index")
	return ref(v.node.Index(i))
}

// vivify turns an empty handle into an owned container of type t when
// child can be attached.  A populated v must already have type t.
func (v *Value) vivify(t ir.Type, child *Value, op string) bool {
	if v.node != nil {
		v.must(t, op)
	}
	if !child.movable(op) {
		return false
	}
	if v.node == nil {
		v.node, v.owner = ir.New(t), true
	}
	return true
}

// Add appends child to the array v, moving it.  An empty v becomes an
// array first.
func (v *Value) Add(child *Value) bool {
	if !v.vivify(ir.ArrayType, child, "Add") {
		return false
	}
	return v.attach(child, "Add", v.node.Append)
}

func (v *Value) AddBool(b bool) bool      { return v.Add(FromBool(b)) }
func (v *Value) AddNumber(f float64) bool { return v.Add(FromNumber(f)) }
func (v *Value) AddString(s string) bool  { return v.Add(FromString(s)) }
func (v *Value) AddNull() bool            { return v.Add(Null()) }
func (v *Value) AddEmptyObject() bool     { return v.Add(NewObject()) }
func (v *Value) AddEmptyArray() bool      { return v.Add(NewArray()) }

// Insert places child before element i of the array v, moving it.  An i at
// or past the end appends; a negative i is refused.
func (v *Value) Insert(i int, child *Value) bool {
	v.must(ir.ArrayType, "Insert")
	return v.attach(child, "Insert", func(n *ir.Node) error {
		return v.node.Insert(i, n)
	})
}

func (v *Value) InsertBool(i int, b bool) bool      { return v.Insert(i, FromBool(b)) }
func (v *Value) InsertNumber(i int, f float64) bool { return v.Insert(i, FromNumber(f)) }
func (v *Value) InsertString(i int, s string) bool  { return v.Insert(i, FromString(s)) }
func (v *Value) InsertNull(i int) bool              { return v.Insert(i, Null()) }
func (v *Value) InsertEmptyObject(i int) bool       { return v.Insert(i, NewObject()) }
func (v *Value) InsertEmptyArray(i int) bool        { return v.Insert(i, NewArray()) }

// DeleteIndex removes and frees element i.  Out of range indices are
// ignored.
func (v *Value) DeleteIndex(i int) {
	v.Index(i).Delete()
}

// Replace frees element i and puts child in its place, moving it.  It
// returns false when i is out of range.
func (v *Value) Replace(i int, child *Value) bool {
	v.must(ir.ArrayType, "Replace")
	return v.replaceAt(i, child, "Replace")
}

func (v *Value) replaceAt(i int, child *Value, op string) bool {
	var old *ir.Node
	ok := v.attach(child, op, func(n *ir.Node) error {
		var err error
		old, err = v.node.ReplaceAt(i, n)
		return err
	})
	if ok {
		old.Free()
	}
	return ok
}
