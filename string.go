package jsondom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/jsondom/encode"
	"github.com/signadot/jsondom/format"
	"github.com/signadot/jsondom/ir"
	"github.com/signadot/jsondom/parse"
)

// Encode writes v to w with the given options.
func (v *Value) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	if !v.IsValid() {
		return fmt.Errorf("%w: encode", ErrEmpty)
	}
	return encode.Encode(v.node, w, opts...)
}

func (v *Value) text(opts ...encode.EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := v.Encode(buf, opts...); err != nil {
		return ""
	}
	return buf.String()
}

// String returns v as compact JSON, or "" when v is empty or cannot be
// printed.
func (v *Value) String() string {
	return v.text(encode.EncodeWire(true))
}

// FormattedString returns v as indented JSON.
func (v *Value) FormattedString() string {
	return v.text()
}

func (v *Value) YAML() (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := v.Encode(buf, encode.EncodeFormat(format.YAMLFormat)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MarshalJSON encodes v compactly.  An empty handle encodes as null.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v.IsEmpty() {
		return []byte("null"), nil
	}
	buf := bytes.NewBuffer(nil)
	if err := v.Encode(buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the content of v with the parsed d.
func (v *Value) UnmarshalJSON(d []byte) error {
	n, err := parse.Parse(d)
	if err != nil {
		return err
	}
	v.Clear()
	v.node, v.owner = n, true
	return nil
}

// C length modifiers, accepted and ignored by Sprintf.
const lengthMods = "hljztqL"

// Sprintf formats the single scalar v with a printf conversion such as
// "%05d" or "%.3f".  Null prints as the string "null".  Bools and numbers
// print through a floating point conversion (f, e, g, a) or an integer one
// (d, i, u, o, x, c, p), chosen by the final letter; other letters give
// "{wrong fmt}".  The unsigned conversions u, o, x and p print negative
// values as their 64-bit two's complement.  Strings print through spec as is.  Containers, raw values
// and empty handles give "".
func (v *Value) Sprintf(spec string) string {
	if spec == "" || spec[0] != '%' {
		panic(fmt.Errorf("%w: %q", ErrBadFormatSpec, spec))
	}
	verb := spec[len(spec)-1]
	flags := strings.Map(func(r rune) rune {
		if strings.ContainsRune(lengthMods, r) {
			return -1
		}
		return r
	}, spec[:len(spec)-1])

	switch v.Type() {
	case ir.NullType:
		return fmt.Sprintf(flags+string(verb), "null")
	case ir.StringType:
		return fmt.Sprintf(flags+string(verb), v.node.String)
	case ir.BoolType, ir.NumberType:
	default:
		return ""
	}
	f := v.node.Number
	if v.node.Type == ir.BoolType {
		f = 0
		if v.node.Bool {
			f = 1
		}
	}
	n := ir.FromFloat(f).Int()
	switch verb {
	case 'f', 'F', 'e', 'E', 'g', 'G':
		return fmt.Sprintf(flags+string(verb), f)
	case 'a':
		return fmt.Sprintf(flags+"x", f)
	case 'A':
		return fmt.Sprintf(flags+"X", f)
	case 'd', 'i', 'D', 'I':
		return fmt.Sprintf(flags+"d", n)
	case 'u', 'U':
		return fmt.Sprintf(flags+"d", uint64(n))
	case 'o', 'x', 'X':
		return fmt.Sprintf(flags+string(verb), uint64(n))
	case 'O':
		return fmt.Sprintf(flags+"o", uint64(n))
	case 'c', 'C':
		return fmt.Sprintf(flags+"c", n)
	case 'p', 'P':
		return fmt.Sprintf("%#"+flags[1:]+"x", uint64(n))
	}
	return "{wrong fmt}"
}
