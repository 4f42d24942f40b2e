// Package parse builds IR trees from JSON or YAML text.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"zoo": [1, 2]}`))
//
//	// YAML input
//	node, err := parse.Parse(data, parse.ParseYAML())
//
//	// Tighter nesting limit
//	node, err := parse.Parse(data, parse.MaxDepth(64))
//
// JSON input is validated in full before the tree is built, so a failed
// parse never yields a partial tree.  All numbers are stored as float64.
// Objects keep member order and duplicate keys.
//
// # Related Packages
//
//   - github.com/signadot/jsondom/ir - IR representation
//   - github.com/signadot/jsondom/encode - Encode IR to text
package parse
