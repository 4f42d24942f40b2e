// Package format names the text formats jsondom reads and writes.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	node, err := parse.Parse(data, parse.ParseFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/jsondom/parse - Parse text to IR
//   - github.com/signadot/jsondom/encode - Encode IR to text
package format
