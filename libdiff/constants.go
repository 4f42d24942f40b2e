package libdiff

// Op is the kind of a Change.
type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (op Op) String() string {
	switch op {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return "unknown"
}

// Sign is the single character prefixing the op in rendered changes.
func (op Op) Sign() string {
	switch op {
	case Insert:
		return "+"
	case Delete:
		return "-"
	}
	return "~"
}
