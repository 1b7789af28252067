// Package encode writes document trees as YAML or JSON text.
//
// # Usage
//
//	// Encode a serialized document as YAML
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode as indented JSON, with colors
//	err := encode.Encode(node, os.Stdout,
//	    encode.EncodeFormat(format.JSONFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
//	// Compact JSON on one line
//	err := encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
//
// Object keys are written in node order. Tags are written in YAML and
// rejected in JSON.
package encode
