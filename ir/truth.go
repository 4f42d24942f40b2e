package ir

// Truth reports whether node is "truthy": non-empty containers and strings,
// non-zero numbers, true. Null, invalid nodes and empty values are false.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case ObjectType, ArrayType:
		return len(node.Values) != 0
	case StringType, RawType:
		return node.String != ""
	case NumberType:
		return node.Number != 0
	case BoolType:
		return node.Bool
	case NullType, InvalidType:
		return false
	default:
		panic("type")
	}
}
