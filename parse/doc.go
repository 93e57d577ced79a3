// Package parse builds kmkv documents from text.
//
// # Usage
//
//	doc, err := parse.Parse([]byte("name Alice\nage 30\n"))
//	if err != nil {
//	    return err
//	}
//
//	// Import JSON
//	doc, err := parse.ParseJSON([]byte(`{"name": "Alice"}`))
//
//	// Read a file, choosing the format from its extension
//	doc, err := parse.ParseFile("config.kmkv")
//
// Values tagged "kmkv" are parsed recursively into nested documents.  All
// other values are kept verbatim as strings together with their tag.
//
// # Related Packages
//
//   - github.com/signadot/kmkv-format/kmkv/ir - IR representation
//   - github.com/signadot/kmkv-format/kmkv/encode - Encode IR to text
//   - github.com/signadot/kmkv-format/kmkv/token - Tokenization
package parse
