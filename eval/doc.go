// Package eval evaluates expr-lang expressions over kmkv documents.
//
// # Usage
//
//	// Evaluate an expression with the document as environment
//	v, err := eval.Eval(doc, `name + " is " + age`)
//
//	// Keep the top level entries for which an expression holds
//	res, err := eval.Filter(doc, `tag == "array" && len(value) > 2`)
//
//	// Replace "$[expr]" references and evaluate tagged entries
//	res, err := eval.Expand(doc, nil)
//
// Inside expressions, documents are maps, "array" tagged strings are
// lists of strings and other strings are strings.  The functions
// getpath, haspath, keys and getenv are available.
//
// # Related Packages
//
//   - github.com/signadot/kmkv-format/kmkv/ir - IR representation
package eval
