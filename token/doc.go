// Package token splits kmkv text into keyword/value pairs.
//
// [Next] reads a single pair from the front of its input.  [Tokenizer]
// and [Tokenize] apply it over a whole input, reporting absolute offsets
// which [PosDoc] turns into line and column positions.
package token
