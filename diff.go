package jsondom

import "github.com/signadot/jsondom/libdiff"

// Diff returns a line diff between the indented forms of v and other, or ""
// when they print the same.
func (v *Value) Diff(other *Value) string {
	return libdiff.Lines(v.lines(), other.lines())
}

func (v *Value) lines() string {
	s := v.FormattedString()
	if s == "" {
		return ""
	}
	return s + "\n"
}

// Changes returns the structural edits turning v into other.  Empty or
// freed handles have no changes.
func (v *Value) Changes(other *Value) []libdiff.Change {
	if !v.IsValid() || !other.IsValid() {
		return nil
	}
	return libdiff.Diff(v.node, other.node)
}
