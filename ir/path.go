package ir

import (
	"strconv"
	"strings"
)

// Path returns the address of y relative to its root, in the bracket syntax
// understood by path lookups: "zoo[big][tiger][1]".  The root's path is "".
func (y *Node) Path() string {
	if y.Parent == nil {
		return ""
	}
	prefix := y.Parent.Path()
	switch y.Parent.Type {
	case ObjectType:
		if prefix == "" {
			return y.ParentField
		}
		return prefix + "[" + y.ParentField + "]"
	case ArrayType:
		return prefix + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// Paths lists the addresses of every node under y in document order,
// excluding y itself.
func (y *Node) Paths() []string {
	var res []string
	y.Visit(func(node *Node, isPost bool) (bool, error) {
		if isPost || node == y {
			return true, nil
		}
		res = append(res, node.Path())
		return true, nil
	})
	return res
}

// Lookup resolves path relative to y and returns the node it addresses, or
// nil when a step does not resolve.
//
// A path is an optional leading bare name followed by bracketed tokens.
// "[tok]" selects element tok of an array, where tok must be a non-negative
// decimal index, or member tok of an object.  A trailing bare name selects
// an object member.  Object members match the first exact key.  The empty
// path addresses y itself.
func (y *Node) Lookup(path string) *Node {
	node := y
	for node != nil && path != "" {
		if path[0] == '[' {
			end := strings.IndexByte(path, ']')
			if end == -1 {
				return nil
			}
			node = node.step(path[1:end])
			path = path[end+1:]
			continue
		}
		open := strings.IndexByte(path, '[')
		if open == -1 {
			if node.Type != ObjectType {
				return nil
			}
			return node.Get(path)
		}
		node = node.step(path[:open])
		path = path[open:]
	}
	return node
}

func (y *Node) step(tok string) *Node {
	switch y.Type {
	case ArrayType:
		i, ok := parseIndex(tok)
		if !ok {
			return nil
		}
		return y.Index(i)
	case ObjectType:
		return y.Get(tok)
	}
	return nil
}

func parseIndex(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return i, true
}
