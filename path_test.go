package jsondom

import (
	"testing"
)

type pathTest struct {
	Path  string
	Doc   string
	Res   string
	Empty bool
}

const zooDoc = `{"zoo":{"big":{"tiger":[10,20,30]},"small":[{"name":"mouse"}]},"list":[[1,2],{"k":"v"}],"n":1}`

var pathTests = []pathTest{
	{Path: "", Doc: zooDoc, Res: zooDoc},
	{Path: "zoo[big][tiger][1]", Doc: zooDoc, Res: "20"},
	{Path: "zoo[big][tiger][9]", Doc: zooDoc, Empty: true},
	{Path: "missing", Doc: zooDoc, Empty: true},
	{Path: "n", Doc: zooDoc, Res: "1"},
	{Path: "zoo[small][0][name]", Doc: zooDoc, Res: `"mouse"`},
	{Path: "zoo[small][0]name", Doc: zooDoc, Res: `"mouse"`},
	{Path: "list[0][1]", Doc: zooDoc, Res: "2"},
	{Path: "list[1][k]", Doc: zooDoc, Res: `"v"`},
	{Path: "[list][0]", Doc: zooDoc, Res: "[1,2]"},
	{Path: "[1]", Doc: `[0,[5,6]]`, Res: "[5,6]"},
	{Path: "[1][0]", Doc: `[0,[5,6]]`, Res: "5"},
	{Path: "[-1]", Doc: `[0,1]`, Empty: true},
	{Path: "[x]", Doc: `[0,1]`, Empty: true},
	{Path: "[+1]", Doc: `[0,1]`, Empty: true},
	{Path: "[]", Doc: `[0,1]`, Empty: true},
	{Path: "[99999999999999999999]", Doc: `[0,1]`, Empty: true},
	{Path: "[0", Doc: `[0,1]`, Empty: true},
	{Path: "n[0]", Doc: zooDoc, Empty: true},
	{Path: "n[0]", Doc: `{"n":[7]}`, Res: "7"},
	{Path: "0", Doc: `[0,1]`, Empty: true},
	{Path: "[0]x", Doc: `[{"x":3}]`, Res: "3"},
	{Path: "[0]x", Doc: `[[3]]`, Empty: true},
	{Path: "a", Doc: `{"a":1,"a":2}`, Res: "1"},
	{Path: "A", Doc: `{"a":1}`, Empty: true},
	{Path: "[a b]", Doc: `{"a b":true}`, Res: "true"},
	{Path: "k", Doc: `"k"`, Empty: true},
}

func TestLookup(t *testing.T) {
	for _, pt := range pathTests {
		t.Run(pt.Path, func(t *testing.T) {
			doc, err := Parse([]byte(pt.Doc))
			if err != nil {
				t.Fatal(err)
			}
			res := doc.Lookup(pt.Path)
			if pt.Empty {
				if !res.IsEmpty() {
					t.Errorf("Lookup(%q) = %s, want empty", pt.Path, res)
				}
				return
			}
			if res.IsEmpty() {
				t.Fatalf("Lookup(%q) is empty, want %s", pt.Path, pt.Res)
			}
			if !res.IsReference() {
				t.Errorf("Lookup(%q) returned an owning handle", pt.Path)
			}
			if got := res.String(); got != pt.Res {
				t.Errorf("Lookup(%q) = %s, want %s", pt.Path, got, pt.Res)
			}
		})
	}
}

func TestLookupPathOfResult(t *testing.T) {
	doc, err := Parse([]byte(zooDoc))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range doc.Node().Paths() {
		res := doc.Lookup(p)
		if res.Node() == nil || res.Node().Path() != p {
			t.Errorf("Lookup(%q) does not round trip through Path()", p)
		}
	}
}

func TestLookupEmptyHandle(t *testing.T) {
	var v Value
	if !v.Lookup("a[0]").IsEmpty() {
		t.Error("Lookup on an empty handle is not empty")
	}
	doc, _ := Parse([]byte(`{"a":[1]}`))
	a := doc.Lookup("a")
	doc.Clear()
	if !a.Lookup("[0]").IsEmpty() {
		t.Error("Lookup through a freed reference is not empty")
	}
}
