// Package encode encodes kmkv documents as kmkv, JSON or YAML text.
//
// # Usage
//
//	d := ir.NewDocument()
//	d.Set("name", ir.FromString("alice"))
//	d.Set("tags", ir.FromArray([]string{"a", "b"}))
//	err := encode.Encode(d, os.Stdout)
//
//	// Encode to JSON
//	err = encode.Encode(d, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
//	// or
//	data, err := encode.MarshalJSON(d)
//
// In kmkv output, strings containing a newline, or starting with '{', are
// written in bracket form.  In JSON output, "array" tagged strings become
// arrays of their trimmed comma separated elements.
//
// # Related Packages
//
//   - github.com/signadot/kmkv-format/kmkv/ir - IR representation
//   - github.com/signadot/kmkv-format/kmkv/parse - Parse text to IR
package encode
