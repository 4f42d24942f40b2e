package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/jsondom/encode"
	"github.com/signadot/jsondom/ir"
)

func TestParseJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`null`, `null`},
		{` true `, `true`},
		{`false`, `false`},
		{`12`, `12`},
		{`-1.5e2`, `-150`},
		{`"a\u00e9\n"`, `"aé\n"`},
		{`[]`, `[]`},
		{`{}`, `{}`},
		{`[1, [2, [3]], {"k": []}]`, `[1,[2,[3]],{"k":[]}]`},
		{`{"a": {"b": [true, null]}, "c": "d"}`, `{"a":{"b":[true,null]},"c":"d"}`},
		{`{"a": 1, "a": 2}`, `{"a":1,"a":2}`},
		{"\n{\"x\":\t[ ]}\n", `{"x":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			node, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if got := encode.MustString(node, encode.EncodeWire(true)); got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseStructure(t *testing.T) {
	node, err := Parse([]byte(`{"zoo": {"big": ["lion", "tiger"]}, "n": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	tiger := node.Get("zoo").Get("big").Index(1)
	if tiger == nil || tiger.String != "tiger" {
		t.Fatalf("zoo[big][1] = %v", tiger)
	}
	if p := tiger.Path(); p != "zoo[big][1]" {
		t.Errorf("Path() = %q", p)
	}
	if n := node.Get("n"); n.Type != ir.NumberType || n.Int() != 3 {
		t.Errorf("n = %v", n)
	}
	if node.Values[1].ParentIndex != 1 || node.Values[1].ParentField != "n" {
		t.Errorf("bad parent links on n: %d %q", node.Values[1].ParentIndex, node.Values[1].ParentField)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		``,
		`   `,
		`{`,
		`[1,]`,
		`{"a" 1}`,
		`{a: 1}`,
		`tru`,
		`1 2`,
		`"unterminated`,
		`[1] x`,
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			node, err := Parse([]byte(in))
			if !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) = %v, %v, want ErrParse", in, node, err)
			}
			if node != nil {
				t.Errorf("Parse(%q) returned a node on error", in)
			}
		})
	}
}

func TestParseMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", 5) + strings.Repeat("]", 5)
	if _, err := Parse([]byte(deep), MaxDepth(5)); err != nil {
		t.Fatalf("depth 5 with limit 5: %v", err)
	}
	_, err := Parse([]byte(deep), MaxDepth(4))
	if !errors.Is(err, ErrNesting) {
		t.Errorf("depth 5 with limit 4: err = %v, want ErrNesting", err)
	}
	if _, err := Parse([]byte(deep), MaxDepth(0)); err != nil {
		t.Errorf("unlimited: %v", err)
	}
	_, err = Parse([]byte("a:\n  b:\n    c: 1\n"), ParseYAML(), MaxDepth(2))
	if !errors.Is(err, ErrNesting) {
		t.Errorf("yaml depth 3 with limit 2: err = %v, want ErrNesting", err)
	}
}

func TestParseYAML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a: 1\nb: [x, true]\n", `{"a":1,"b":["x",true]}`},
		{"z: 1\na: 2\n", `{"z":1,"a":2}`},
		{"- 1.5\n- ~\n", `[1.5,null]`},
		{"1: one\n", `{"1":"one"}`},
		{"hello\n", `"hello"`},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			node, err := Parse([]byte(tt.in), ParseYAML())
			if err != nil {
				t.Fatal(err)
			}
			if got := encode.MustString(node, encode.EncodeWire(true)); got != tt.want {
				t.Errorf("Parse(%q, ParseYAML()) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
