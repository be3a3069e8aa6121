package model

import "github.com/SamuraiJack/typedoc/internal/common"

// Kind tags a Reflection with its structural role in the graph.
type Kind int

const (
	KindProject Kind = iota
	KindPackage
	KindFunction
	KindMethod
	KindStruct
	KindInterface
	KindAlias
	KindVariable
	KindConstant
	KindField
	KindSignature
	KindParameter
	KindTypeParameter
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindProject:
		return "project"
	case KindPackage:
		return "package"
	case KindFunction:
		return "function"
	case KindMethod:
		return "method"
	case KindStruct:
		return "struct"
	case KindInterface:
		return "interface"
	case KindAlias:
		return "alias"
	case KindVariable:
		return "variable"
	case KindConstant:
		return "constant"
	case KindField:
		return "field"
	case KindSignature:
		return "signature"
	case KindParameter:
		return "parameter"
	case KindTypeParameter:
		return "typeParameter"
	default:
		return common.UnknownStr
	}
}

// IsDeclaration reports whether the kind represents a named declaration
// (as opposed to structural members like signatures and parameters).
func (k Kind) IsDeclaration() bool {
	switch k {
	case KindFunction, KindMethod, KindStruct, KindInterface, KindAlias,
		KindVariable, KindConstant, KindField:
		return true
	default:
		return false
	}
}

// Flags carries orthogonal properties of a reflection.
type Flags struct {
	// Exported reports whether the declaration is exported from its package.
	Exported bool
	// Embedded marks embedded struct fields and interface embeddings.
	Embedded bool
	// Variadic marks the final parameter of a variadic signature.
	Variadic bool
}
