package convert

import (
	"go/ast"

	"github.com/SamuraiJack/typedoc/internal/common"
)

// NodeKind identifies the dispatchable shape of a syntax node.
type NodeKind int

const (
	NodeUnknown NodeKind = iota
	NodeFile
	NodeFuncDecl
	NodeTypeSpec
	NodeValueSpec
	NodeImportSpec
	NodeField

	// NodeKindTotal is the number of kinds defined.
	NodeKindTotal = int(iota)
)

// String returns a human-readable kind name.
func (k NodeKind) String() string {
	switch k {
	case NodeFile:
		return "file"
	case NodeFuncDecl:
		return "funcDecl"
	case NodeTypeSpec:
		return "typeSpec"
	case NodeValueSpec:
		return "valueSpec"
	case NodeImportSpec:
		return "importSpec"
	case NodeField:
		return "field"
	default:
		return common.UnknownStr
	}
}

// KindOf classifies a syntax node for dispatch. Nodes outside the
// dispatchable set map to NodeUnknown and silently produce no reflection.
func KindOf(node ast.Node) NodeKind {
	switch node.(type) {
	case *ast.File:
		return NodeFile
	case *ast.FuncDecl:
		return NodeFuncDecl
	case *ast.TypeSpec:
		return NodeTypeSpec
	case *ast.ValueSpec:
		return NodeValueSpec
	case *ast.ImportSpec:
		return NodeImportSpec
	case *ast.Field:
		return NodeField
	default:
		return NodeUnknown
	}
}
