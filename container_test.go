package jsondom

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAutoVivify(t *testing.T) {
	var arr Value
	arr.AddNumber(1)
	arr.AddNumber(2)
	if !arr.IsArray() || arr.ArraySize() != 2 || arr.String() != "[1,2]" || !arr.IsOwner() {
		t.Errorf("Add on empty = %s", arr.String())
	}

	var obj Value
	obj.AddFieldNumber("k", 5)
	if !obj.IsObject() || obj.String() != `{"k":5}` {
		t.Errorf("AddField on empty = %s", obj.String())
	}

	var ins Value
	expectPanic(t, ErrWrongType, func() { ins.Insert(0, Null()) })
	expectPanic(t, ErrWrongType, func() { FromNumber(1).Add(Null()) })
	expectPanic(t, ErrWrongType, func() { NewArray().AddField("k", Null()) })
	expectPanic(t, ErrWrongType, func() { NewObject().Add(Null()) })
}

func TestAutoVivifyNeedsChild(t *testing.T) {
	var arr Value
	if arr.Add(&Value{}) || !arr.IsEmpty() {
		t.Errorf("failed Add() vivified the handle: %s", arr.Type())
	}
	var obj Value
	if obj.AddField("k", nil) || !obj.IsEmpty() {
		t.Errorf("failed AddField() vivified the handle: %s", obj.Type())
	}
	var ref Value
	expectPanic(t, ErrAttached, func() { ref.Add(FromBools([]bool{true}).Index(0)) })
	if !ref.IsEmpty() {
		t.Errorf("refused Add() vivified the handle: %s", ref.Type())
	}
}

func TestAddTyped(t *testing.T) {
	v := NewArray()
	v.AddBool(true)
	v.AddNumber(1.5)
	v.AddString("s")
	v.AddNull()
	v.AddEmptyObject()
	v.AddEmptyArray()
	if got := v.String(); got != `[true,1.5,"s",null,{},[]]` {
		t.Errorf("typed adds = %s", got)
	}

	o := NewObject()
	o.AddFieldBool("b", false)
	o.AddFieldNumber("n", 2)
	o.AddFieldString("s", "x")
	o.AddFieldNull("z")
	o.AddFieldObject("o")
	o.AddFieldArray("a")
	if got := o.String(); got != `{"b":false,"n":2,"s":"x","z":null,"o":{},"a":[]}` {
		t.Errorf("typed field adds = %s", got)
	}
}

func TestAddMoves(t *testing.T) {
	v := NewArray()
	child := FromString("c")
	node := child.Node()
	if !v.Add(child) {
		t.Fatal("Add() = false")
	}
	if !child.IsEmpty() {
		t.Error("Add() left the child handle populated")
	}
	if v.Index(0).Node() != node {
		t.Error("Add() copied the child")
	}

	if v.Add(&Value{}) || v.Add(nil) {
		t.Error("Add() of an empty handle succeeded")
	}
	if v.Add(v) {
		t.Error("Add() of the container itself succeeded")
	}
	v.AddEmptyArray()
	inner := v.Index(1)
	if inner.Add(v) {
		t.Error("Add() of an ancestor succeeded")
	}
	if v.IsEmpty() || v.ArraySize() != 2 {
		t.Errorf("failed Add() changed the container: %s", v)
	}

	other := NewArray()
	expectPanic(t, ErrAttached, func() { other.Add(v.Index(0)) })
	expectPanic(t, ErrAttached, func() { NewObject().AddField("k", v.Index(0)) })
	expectPanic(t, ErrAttached, func() { other.Add(v.Lookup("")) })
}

func TestInsert(t *testing.T) {
	tests := []struct {
		at   int
		want string
		ok   bool
	}{
		{0, `[9,1,2]`, true},
		{1, `[1,9,2]`, true},
		{2, `[1,2,9]`, true},
		{7, `[1,2,9]`, true},
		{-1, `[1,2]`, false},
	}
	for _, tt := range tests {
		v := FromNumbers([]int{1, 2})
		if ok := v.InsertNumber(tt.at, 9); ok != tt.ok {
			t.Errorf("Insert(%d) = %t, want %t", tt.at, ok, tt.ok)
		}
		if got := v.String(); got != tt.want {
			t.Errorf("Insert(%d) gives %s, want %s", tt.at, got, tt.want)
		}
	}
	v := NewArray()
	v.InsertBool(0, true)
	v.InsertString(0, "s")
	v.InsertNull(1)
	v.InsertEmptyObject(9)
	v.InsertEmptyArray(0)
	if got := v.String(); got != `[[],"s",null,true,{}]` {
		t.Errorf("typed inserts = %s", got)
	}
}

func TestDeleteIndex(t *testing.T) {
	v := FromNumbers([]int{1, 2, 3})
	two := v.Index(1)
	v.DeleteIndex(1)
	if got := v.String(); got != "[1,3]" {
		t.Errorf("DeleteIndex(1) = %s", got)
	}
	if two.IsValid() {
		t.Error("deleted element still valid")
	}
	var seen []float64
	for _, e := range v.All() {
		seen = append(seen, e.GetNumber())
	}
	if diff := cmp.Diff([]float64{1, 3}, seen); diff != "" {
		t.Errorf("iteration after delete (-want +got):\n%s", diff)
	}
	v.DeleteIndex(5)
	v.DeleteIndex(-1)
	if v.ArraySize() != 2 {
		t.Error("out of range DeleteIndex removed something")
	}
}

func TestReplace(t *testing.T) {
	v := FromStrings([]string{"a", "b"})
	old := v.Index(0)
	child := FromBool(true)
	if !v.Replace(0, child) || v.String() != `[true,"b"]` || !child.IsEmpty() {
		t.Errorf("Replace(0) = %s", v)
	}
	if old.IsValid() {
		t.Error("replaced element still valid")
	}
	keep := FromBool(false)
	if v.Replace(2, keep) || keep.IsEmpty() {
		t.Error("Replace() out of range consumed the child")
	}

	o := mustParse(t, `{"a":1,"b":2,"a":3}`)
	if !o.ReplaceField("a", FromString("x")) {
		t.Fatal("ReplaceField() = false")
	}
	if got := o.String(); got != `{"a":"x","b":2,"a":3}` {
		t.Errorf("ReplaceField() = %s", got)
	}
	if o.ReplaceField("c", Null()) {
		t.Error("ReplaceField() of a missing key succeeded")
	}
}

func TestObjectFields(t *testing.T) {
	o := mustParse(t, `{"a":1,"A":2,"a":3}`)
	if !o.HasField("a") || !o.HasField("A") || o.HasField("b") {
		t.Error("HasField")
	}
	if o.Field("a").GetNumber() != 1 {
		t.Error("Field() does not return the first match")
	}
	if !o.Field("b").IsEmpty() {
		t.Error("Field() of a missing key is not empty")
	}
	if !o.Field("a").IsReference() {
		t.Error("Field() returned an owner")
	}
	o.DeleteField("a")
	if got := o.String(); got != `{"A":2,"a":3}` {
		t.Errorf("DeleteField() = %s", got)
	}
	o.DeleteField("missing")
	o.AddFieldNumber("A", 4)
	if got := o.String(); got != `{"A":2,"a":3,"A":4}` {
		t.Errorf("duplicate AddField() = %s", got)
	}
	expectPanic(t, ErrWrongType, func() { NewArray().HasField("a") })
	expectPanic(t, ErrWrongType, func() { NewArray().Field("a") })
	expectPanic(t, ErrWrongType, func() { NewObject().Index(0) })
	expectPanic(t, ErrWrongType, func() { NewObject().ArraySize() })
	expectPanic(t, ErrWrongType, func() { NewObject().Replace(0, Null()) })
	expectPanic(t, ErrWrongType, func() { NewArray().ReplaceField("a", Null()) })
}

func TestIndexBounds(t *testing.T) {
	v := FromNumbers([]int{1})
	for _, i := range []int{-1, 1, 100} {
		if !v.Index(i).IsEmpty() {
			t.Errorf("Index(%d) not empty", i)
		}
	}
	if !v.Index(0).IsReference() {
		t.Error("Index(0) is not a reference")
	}
}

func TestIterator(t *testing.T) {
	v := mustParse(t, `{"a":1,"b":2,"c":3}`)
	var fwd, back []string
	for it := v.Begin(); it != v.End(); it = it.Next() {
		fwd = append(fwd, it.Value().Name())
	}
	for it := v.Last(); !it.Done(); it = it.Prev() {
		back = append(back, it.Value().Name())
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, fwd); diff != "" {
		t.Errorf("forward (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"c", "b", "a"}, back); diff != "" {
		t.Errorf("backward (-want +got):\n%s", diff)
	}
	if v.Begin().Prev() != v.End() {
		t.Error("Prev() of the first child is not End")
	}
	if v.End().Next() != v.End() || !v.End().Value().IsEmpty() {
		t.Error("End cursor moves")
	}
	if NewArray().Begin() != NewArray().End() || (&Value{}).Begin() != (&Value{}).End() {
		t.Error("Begin() of an empty container is not End")
	}
	if FromNumber(1).Last() != (Iterator{}) {
		t.Error("Last() of a scalar")
	}
}

func TestRange(t *testing.T) {
	v := mustParse(t, `{"a":1,"b":2,"c":3}`)
	got := map[string]float64{}
	for k, e := range v.Fields() {
		got[k] = e.GetNumber()
		if k == "b" {
			e.Delete()
		}
	}
	if diff := cmp.Diff(map[string]float64{"a": 1, "b": 2, "c": 3}, got); diff != "" {
		t.Errorf("Fields() (-want +got):\n%s", diff)
	}
	if v.String() != `{"a":1,"c":3}` {
		t.Errorf("delete during range: %s", v)
	}
	for range NewArray().Fields() {
		t.Error("Fields() of an array yields")
	}

	var idx []int
	for i := range FromStrings([]string{"x", "y", "z"}).All() {
		idx = append(idx, i)
		if i == 1 {
			break
		}
	}
	if diff := cmp.Diff([]int{0, 1}, idx); diff != "" {
		t.Errorf("All() with break (-want +got):\n%s", diff)
	}
}

func TestJSONMarshal(t *testing.T) {
	type doc struct {
		Name  string `json:"name"`
		Value *Value `json:"value"`
	}
	in := doc{Name: "n", Value: mustParse(t, `{"k":[1,true]}`)}
	d, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"name":"n","value":{"k":[1,true]}}` {
		t.Errorf("json.Marshal() = %s", d)
	}
	var out doc
	if err := json.Unmarshal(d, &out); err != nil {
		t.Fatal(err)
	}
	if !out.Value.Equal(in.Value) || !out.Value.IsOwner() {
		t.Errorf("json.Unmarshal() = %s", out.Value)
	}
	empty, err := json.Marshal(&Value{})
	if err != nil || string(empty) != "null" {
		t.Errorf("json.Marshal(empty) = %s, %v", empty, err)
	}
}
