package model

// TypeParamType is a use of a type parameter inside a generic declaration.
type TypeParamType struct {
	Name string
}

func (*TypeParamType) typeNode() {}

func (t *TypeParamType) String() string { return t.Name }
