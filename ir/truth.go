package ir

// Truth reports whether it is truthy: empty items, empty strings, arrays
// without elements and empty documents are false.
func Truth(it *Item) bool {
	if it == nil {
		return false
	}
	switch it.Type {
	case DocumentType:
		return it.Doc.Len() != 0
	case StringType:
		if it.IsArray() {
			return len(it.Array()) != 0
		}
		return it.String != ""
	case NoneType:
		return false
	default:
		panic("type")
	}
}
