// Package ir provides the tree representation underlying jsondom values.
//
// # Node Structure
//
// A Node represents a single value: null, boolean, number, string, array,
// object, or a raw pre-rendered JSON fragment.  The Type field selects which
// payload field is meaningful:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: Number (float64)
//   - StringType: String
//   - RawType: String, emitted verbatim by encoders
//   - ArrayType, ObjectType: Values
//
// InvalidType is the zero value.  It is also the type of every node in a
// subtree released with Free, so stale references can be told apart from
// live ones.
//
// # Children
//
// Containers hold their children in Values.  Each child records its parent,
// its position (ParentIndex) and, for object members, its key (ParentField).
// Objects may hold several members with the same key; lookups by key return
// the first one.
//
// The sibling chain is exposed through Next, Prev, FirstChild and LastChild.
//
// # Ownership
//
// A node is attached to at most one parent.  Append, AppendField, Insert
// and ReplaceAt refuse nodes that already have a parent (ErrAttached) and
// refuse to make a node its own descendant (ErrCycle).  Detach unlinks a
// node without invalidating it.
//
// # Related Packages
//
//   - github.com/signadot/jsondom/parse - Parse text to IR
//   - github.com/signadot/jsondom/encode - Encode IR to text
package ir
