package model

import (
	"go/types"

	"github.com/SamuraiJack/typedoc/internal/common"
)

// ReferenceType is a by-name link to a named declaration. References created
// during conversion start unresolved (Target zero); the post-resolve linking
// pass fills in Target for every symbol that still has a reflection, and
// reports the rest as dangling.
type ReferenceType struct {
	// Name is the bare declaration name.
	Name string

	// Package is the import path of the declaring package, empty for
	// universe-scope names.
	Package string

	// Symbol is the checker object the reference points at. Used only as a
	// lookup key; nil for synthetic references.
	Symbol types.Object

	// Target is the ID of the resolved reflection, zero while unresolved.
	Target int

	// External marks references into packages outside the analyzed set.
	// These never resolve and are not reported as dangling.
	External bool

	// TypeArguments holds converted type arguments for instantiated
	// generic references, in order.
	TypeArguments []Type
}

func (*ReferenceType) typeNode() {}

func (t *ReferenceType) String() string {
	name := common.QualifiedName(common.PkgAlias(t.Package), t.Name)
	if common.IsEmpty(t.TypeArguments) {
		return name
	}

	args := ""
	for i, a := range t.TypeArguments {
		if i > 0 {
			args += ", "
		}
		args += a.String()
	}

	return name + "[" + args + "]"
}
