package eval

import (
	"errors"
	"testing"

	"github.com/signadot/jsondom/encode"
	"github.com/signadot/jsondom/ir"
	"github.com/signadot/jsondom/parse"

	"github.com/google/go-cmp/cmp"
)

const zoo = `{"zoo": {"big": {"tiger": [10, 20]}}, "n": 2, "name": "z"}`

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`n + 1`, `3`},
		{`n / 4`, `0.5`},
		{`name + "!"`, `"z!"`},
		{`lookup("zoo[big][tiger][1]")`, `20`},
		{`lookup("zoo[big][tiger][9]")`, `null`},
		{`zoo.big.tiger[0] < n * 10`, `true`},
		{`$.n == n`, `true`},
		{`missing == nil`, `true`},
		{`typeof("zoo[big]")`, `"Object"`},
		{`len(paths())`, `7`},
		{`whereami()`, `""`},
		{`[n, name]`, `[2,"z"]`},
		{`{"b": 1, "a": n}`, `{"a":2,"b":1}`},
	}
	doc := mustParse(t, zoo)
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Eval(doc, tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if s := encode.MustString(got, encode.EncodeWire(true)); s != tt.want {
				t.Errorf("Eval(%q) = %s, want %s", tt.src, s, tt.want)
			}
		})
	}
	if s := encode.MustString(doc, encode.EncodeWire(true)); s != `{"zoo":{"big":{"tiger":[10,20]}},"n":2,"name":"z"}` {
		t.Errorf("Eval modified its input: %s", s)
	}
}

func TestEvalSubtree(t *testing.T) {
	doc := mustParse(t, zoo)
	tiger := doc.Lookup("zoo[big][tiger]")
	got, err := Eval(tiger, `[whereami(), lookup("[0]"), len(root().zoo)]`)
	if err != nil {
		t.Fatal(err)
	}
	want := `["zoo[big][tiger]",10,1]`
	if s := encode.MustString(got, encode.EncodeWire(true)); s != want {
		t.Errorf("Eval() = %s, want %s", s, want)
	}
}

func TestEvalErrors(t *testing.T) {
	doc := mustParse(t, zoo)
	for _, src := range []string{`n +`, `lookup(1)`, `1 / (n - n) > "x"`} {
		if _, err := Eval(doc, src); err == nil {
			t.Errorf("Eval(%q) succeeded", src)
		}
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("JSONDOM_EVAL_TEST", "here")
	got, err := Eval(ir.Null(), `getenv(" JSONDOM_EVAL_TEST ")`)
	if err != nil {
		t.Fatal(err)
	}
	if got.String != "here" {
		t.Errorf("getenv = %q", got.String)
	}
}

func TestToAny(t *testing.T) {
	doc := mustParse(t, `{"a": [1, 1.5, true, null, "s"], "a": 0, "r": 1}`)
	doc.Values[2].Type = ir.RawType
	doc.Values[2].String = `{"x": [2]}`
	got, err := ToAny(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": []any{1, 1.5, true, nil, "s"},
		"r": map[string]any{"x": []any{2}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToAny() (-want +got):\n%s", diff)
	}
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, `null`},
		{int8(-3), `-3`},
		{uint(7), `7`},
		{float32(0.5), `0.5`},
		{[]int{1, 2}, `[1,2]`},
		{map[string]int{"b": 2, "a": 1}, `{"a":1,"b":2}`},
		{ir.FromString("node"), `"node"`},
	}
	for _, tt := range tests {
		got, err := FromAny(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if s := encode.MustString(got, encode.EncodeWire(true)); s != tt.want {
			t.Errorf("FromAny(%#v) = %s, want %s", tt.in, s, tt.want)
		}
	}
	if _, err := FromAny(struct{}{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("FromAny(struct{}{}) err = %v", err)
	}
	if _, err := FromAny(map[int]any{1: 2}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("FromAny(map[int]any) err = %v", err)
	}
}

func TestRegister(t *testing.T) {
	if err := Register(Root()); !errors.Is(err, ErrSymbolExists) {
		t.Errorf("Register(Root()) err = %v", err)
	}
	if Lookup("lookup") == nil {
		t.Error("lookup not registered")
	}
	syms := Symbols()
	for i := 1; i < len(syms); i++ {
		if syms[i-1].String() >= syms[i].String() {
			t.Errorf("Symbols() not sorted: %s before %s", syms[i-1], syms[i])
		}
	}
}
