package jsondom

import (
	"iter"

	"github.com/signadot/jsondom/ir"
)

// Iterator is a cursor over the children of an array or object.  The zero
// Iterator is the end position.  Iterators compare equal when they are at
// the same child.
type Iterator struct {
	node *ir.Node
}

// Begin returns a cursor at the first child of v, or End when v has no
// children.
func (v *Value) Begin() Iterator {
	if v.node == nil {
		return Iterator{}
	}
	return Iterator{node: v.node.FirstChild()}
}

// Last returns a cursor at the last child of v, or End.
func (v *Value) Last() Iterator {
	if v.node == nil {
		return Iterator{}
	}
	return Iterator{node: v.node.LastChild()}
}

func (v *Value) End() Iterator {
	return Iterator{}
}

func (it Iterator) Done() bool {
	return it.node == nil
}

func (it Iterator) Next() Iterator {
	if it.node == nil {
		return it
	}
	return Iterator{node: it.node.Next()}
}

// Prev moves back one child.  Moving back from the first child yields End.
func (it Iterator) Prev() Iterator {
	if it.node == nil {
		return it
	}
	return Iterator{node: it.node.Prev()}
}

// Value returns a reference to the child under the cursor.
func (it Iterator) Value() *Value {
	return ref(it.node)
}

// All ranges over the children of v with their positions.  The current
// child may be deleted during the loop.
func (v *Value) All() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		i := 0
		for it := v.Begin(); !it.Done(); i++ {
			next := it.Next()
			if !yield(i, it.Value()) {
				return
			}
			it = next
		}
	}
}

// Fields ranges over the members of the object v with their keys.
func (v *Value) Fields() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if !v.IsObject() {
			return
		}
		for it := v.Begin(); !it.Done(); {
			next := it.Next()
			if !yield(it.node.ParentField, it.Value()) {
				return
			}
			it = next
		}
	}
}
