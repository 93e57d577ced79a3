package ir

import "fmt"

type Type int

const (
	NoneType Type = iota
	StringType
	DocumentType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NoneType:     "None",
		StringType:   "String",
		DocumentType: "Document",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"None":     NoneType,
		"String":   StringType,
		"Document": DocumentType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NoneType,
		StringType,
		DocumentType,
	}
}

func (t Type) IsLeaf() bool {
	return t != DocumentType
}
