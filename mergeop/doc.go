// Package mergeop provides the operations used to match and patch kmkv
// documents.
//
// # Overview
//
// Operations are invoked through tags on string items of a pattern or a
// patch document.  Documents are always tagged "kmkv", so operations apply
// to single entries:
//
//	name{glob} A*
//	tags{append} c, d
//	old{delete}
//
// Operations are divided into two categories:
//
//   - Match operations: test an item (glob, regex, not, type, tag, absent)
//   - Patch operations: change an entry of a document (delete, append,
//     retag, json-patch, merge-patch)
//
// [Merge] overlays one document onto another, dispatching patch
// operations and merging nested documents recursively.
//
// # Related Packages
//
//   - github.com/signadot/kmkv-format/kmkv/ir - IR representation
//   - github.com/signadot/kmkv-format/kmkv/libdiff - Document differences
package mergeop
