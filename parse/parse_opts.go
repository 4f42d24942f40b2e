package parse

import "github.com/signadot/jsondom/format"

// DefaultMaxDepth is the container nesting limit applied unless MaxDepth
// overrides it.
const DefaultMaxDepth = 1000

type parseOpts struct {
	format   format.Format
	maxDepth int
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// MaxDepth limits how deeply arrays and objects may nest.  Values <= 0
// remove the limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

func (o *parseOpts) tooDeep(depth int) bool {
	return o.maxDepth > 0 && depth > o.maxDepth
}
