package jsondom

import "github.com/signadot/jsondom/ir"

// HasField reports whether the object v has a member keyed name.  Keys
// match exactly.
func (v *Value) HasField(name string) bool {
	v.must(ir.ObjectType, "HasField")
	return v.node.FieldIndex(name) != -1
}

// Field returns a reference to the first member keyed name, or an empty
// handle.
func (v *Value) Field(name string) *Value {
	v.must(ir.ObjectType, "Field")
	return ref(v.node.Get(name))
}

// AddField appends child under name to the object v, moving it.  An empty v
// becomes an object first.  Members already keyed name are kept.
func (v *Value) AddField(name string, child *Value) bool {
	if !v.vivify(ir.ObjectType, child, "AddField") {
		return false
	}
	return v.attach(child, "AddField", func(n *ir.Node) error {
		return v.node.AppendField(name, n)
	})
}

func (v *Value) AddFieldBool(name string, b bool) bool      { return v.AddField(name, FromBool(b)) }
func (v *Value) AddFieldNumber(name string, f float64) bool { return v.AddField(name, FromNumber(f)) }
func (v *Value) AddFieldString(name, s string) bool         { return v.AddField(name, FromString(s)) }
func (v *Value) AddFieldNull(name string) bool              { return v.AddField(name, Null()) }
func (v *Value) AddFieldObject(name string) bool            { return v.AddField(name, NewObject()) }
func (v *Value) AddFieldArray(name string) bool             { return v.AddField(name, NewArray()) }

// DeleteField removes and frees the first member keyed name, if any.
func (v *Value) DeleteField(name string) {
	v.Field(name).Delete()
}

// ReplaceField frees the first member keyed name and puts child in its
// place under the same key, moving it.  It returns false when there is no
// such member.
func (v *Value) ReplaceField(name string, child *Value) bool {
	v.must(ir.ObjectType, "ReplaceField")
	i := v.node.FieldIndex(name)
	if i == -1 {
		return false
	}
	return v.replaceAt(i, child, "ReplaceField")
}
