// Package libdiff computes and applies differences between kmkv documents.
//
// # Usage
//
//	// Compute the changes turning one document into another
//	changes := libdiff.Diff(oldDoc, newDoc)
//
//	// Apply them, possibly to a document which has drifted
//	err := libdiff.Apply(doc, changes)
//
// Changes to strings carry a character level patch so that a change can
// be applied to a string which was edited elsewhere.
//
// # Related Packages
//
//   - github.com/signadot/kmkv-format/kmkv/ir - IR representation
//   - github.com/signadot/kmkv-format/kmkv/mergeop - Merging and patching
package libdiff
