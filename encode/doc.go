// Package encode encodes IR nodes to JSON or YAML text.
//
// # Usage
//
//	// Indented JSON
//	err := encode.Encode(node, w)
//
//	// Compact JSON
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//
//	// YAML
//	err := encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//
// Nodes of InvalidType (for instance nodes released with ir.Node.Free)
// cannot be encoded and yield ErrEncoding.
//
// # Related Packages
//
//   - github.com/signadot/jsondom/ir - IR representation
//   - github.com/signadot/jsondom/parse - Parse text to IR
package encode
