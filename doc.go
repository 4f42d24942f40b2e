// Package jsondom provides a document object model over JSON-like trees.
//
// A [Value] is a handle onto a node of an [ir.Node] tree.  Handles either
// own their node or merely reference it:
//
//   - factories, [Parse], [Value.Duplicate], [Value.DuplicateRecursive],
//     [Value.Move] and [Value.Detach] produce owning handles;
//   - [Value.Index], [Value.Field], [Value.Lookup] and iterators produce
//     references into an existing tree.
//
// Ownership moves explicitly.  b := a.Move() leaves a empty, and attaching a
// handle to a container with Add, Insert, AddField or Replace hands its node
// to the container and empties the handle.  Clearing an owning handle frees
// its subtree; clearing a reference only forgets it.  Nodes that have been
// freed report IsValid() == false through any reference that outlived them.
//
// Using an accessor on a value of the wrong kind is a programming error and
// panics with an error wrapping [ErrWrongType].  Looking up data that is not
// there (a missing key, an index out of range, a path that does not resolve)
// is not an error: the result is an empty handle.
//
// Paths use the bracket syntax produced by [ir.Node.Path]:
//
//	v.Lookup("zoo[big][tiger][1]")
//
// Values are not safe for concurrent use.
package jsondom
