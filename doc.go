// Package kmkv reads, writes, compares and patches kmkv documents.
//
// A kmkv document is a sequence of lines "keyword value".  A keyword may
// carry a tag, as in "tags{array} a, b".  Values spanning several lines are
// written between "{" at the end of the keyword line and "}" at the start
// of a line.  The "kmkv" tag marks a value holding a nested document.
//
// # Usage
//
//	doc, err := kmkv.Load("config.kmkv")
//	d, err := kmkv.ToJSON(doc)
//	ok, err := kmkv.Match(doc, pattern)
//	res, err := kmkv.Patch(doc, patch)
//
// # Related Packages
//
//   - github.com/signadot/kmkv-format/kmkv/parse - parsing
//   - github.com/signadot/kmkv-format/kmkv/encode - encoding
//   - github.com/signadot/kmkv-format/kmkv/mergeop - match and patch operations
//   - github.com/signadot/kmkv-format/kmkv/libdiff - differences
//   - github.com/signadot/kmkv-format/kmkv/eval - expressions
package kmkv
