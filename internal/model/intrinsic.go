package model

// IntrinsicType is a predeclared basic type occurrence: string, bool, the
// numeric kinds, and friends.
type IntrinsicType struct {
	Name string
}

func (*IntrinsicType) typeNode() {}

func (t *IntrinsicType) String() string { return t.Name }
