package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/jsondom/format"
	"github.com/signadot/jsondom/ir"

	"github.com/segmentio/encoding/json"
)

type EncState struct {
	depth, indent int
	wire          bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w.  The default output is indented JSON without a
// trailing newline; EncodeWire selects the compact form.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	if es.format == format.YAMLFormat {
		return encodeYAML(node, w, es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeValue(w, es, node.Type, "null")
	case ir.BoolType:
		return writeValue(w, es, node.Type, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		return writeValue(w, es, node.Type, FormatNumber(node.Number))
	case ir.StringType:
		return writeValue(w, es, node.Type, Quote(node.String))
	case ir.RawType:
		if node.String == "" {
			return fmt.Errorf("%w: empty raw value at %q", ErrEncoding, node.Path())
		}
		return writeString(w, node.String)
	case ir.ArrayType:
		return encodeContainer(node, w, es, "[", "]")
	case ir.ObjectType:
		return encodeContainer(node, w, es, "{", "}")
	default:
		return fmt.Errorf("%w: %s node at %q", ErrEncoding, node.Type, node.Path())
	}
}

func encodeContainer(node *ir.Node, w io.Writer, es *EncState, open, close string) error {
	if err := writeSep(w, es, node.Type, open); err != nil {
		return err
	}
	if len(node.Values) == 0 {
		return writeSep(w, es, node.Type, close)
	}
	es.depth++
	for i, child := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, node.Type, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if node.Type == ir.ObjectType {
			if err := writeField(w, es, child.ParentField); err != nil {
				return err
			}
		}
		if err := encode(child, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, node.Type, close)
}

// Helper functions for writing
func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeValue(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, SepColor, s)
	}
	return writeString(w, s)
}

func writeField(w io.Writer, es *EncState, field string) error {
	q := Quote(field)
	if es.Color != nil {
		q = es.Color(ir.ObjectType, FieldColor, q)
	}
	if err := writeString(w, q); err != nil {
		return err
	}
	if err := writeSep(w, es, ir.ObjectType, ":"); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, " ")
}

// FormatNumber renders f the way the encoder does: integral values without
// a fraction or exponent, other finite values in their shortest round-trip
// form, and NaN or infinities as null.
func FormatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Quote returns s as a JSON string literal.  Invalid UTF-8 is replaced by
// U+FFFD so that the literal reads back as the same text.
func Quote(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	return string(json.AppendEscape(make([]byte, 0, len(s)+2), s, 0))
}
