package jsondom

import "github.com/signadot/jsondom/ir"

func (v *Value) GetBool() bool {
	v.must(ir.BoolType, "GetBool")
	return v.node.Bool
}

func (v *Value) GetNumber() float64 {
	v.must(ir.NumberType, "GetNumber")
	return v.node.Number
}

// GetInt returns the number truncated towards zero, saturating at the int64
// bounds.
func (v *Value) GetInt() int64 {
	v.must(ir.NumberType, "GetInt")
	return v.node.Int()
}

func (v *Value) GetString() string {
	v.must(ir.StringType, "GetString")
	return v.node.String
}

// GetRaw returns the verbatim text of a raw value.
func (v *Value) GetRaw() string {
	v.must(ir.RawType, "GetRaw")
	return v.node.String
}

func (v *Value) SetBool(b bool) bool {
	v.must(ir.BoolType, "SetBool")
	v.node.Bool = b
	return true
}

func (v *Value) SetNumber(f float64) bool {
	v.must(ir.NumberType, "SetNumber")
	v.node.Number = f
	return true
}

func (v *Value) SetString(s string) bool {
	v.must(ir.StringType, "SetString")
	v.node.String = s
	return true
}
