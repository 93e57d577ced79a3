// Package format names the document formats kmkv tools read and write.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	out := "doc" + f.Suffix()
//
// # Related Packages
//
//   - github.com/signadot/kmkv-format/kmkv/parse - Parse text to IR
//   - github.com/signadot/kmkv-format/kmkv/encode - Encode IR to text
package format
