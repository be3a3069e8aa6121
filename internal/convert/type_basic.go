package convert

import (
	"go/ast"
	"go/types"

	"github.com/SamuraiJack/typedoc/internal/model"
)

// Chain priorities of the built-in type converters. Higher runs first;
// plugins slot themselves anywhere around these.
const (
	priorityUniverseIdent = 150
	priorityIntrinsic     = 100
	priorityTypeParam     = 90
	priorityReference     = 80
	priorityComposite     = 70
	priorityFunc          = 60
	priorityInterface     = 50
	priorityFallback      = -1000
)

// intrinsicConverter documents predeclared basic types.
type intrinsicConverter struct{}

func (intrinsicConverter) Priority() int { return priorityIntrinsic }

func (intrinsicConverter) SupportsType(_ *Context, typ types.Type) bool {
	_, ok := typ.(*types.Basic)
	return ok
}

func (intrinsicConverter) ConvertType(_ *Context, typ types.Type) model.Type {
	return &model.IntrinsicType{Name: typ.(*types.Basic).Name()}
}

// universeIdentConverter documents uses of universe-scope named types
// (error, any, comparable) as intrinsics rather than external references.
// Node affinity only: it needs the identifier to know a keyword-like name
// was actually written.
type universeIdentConverter struct{}

func (universeIdentConverter) Priority() int { return priorityUniverseIdent }

func (universeIdentConverter) SupportsNode(ctx *Context, node ast.Expr, _ types.Type) bool {
	ident, ok := node.(*ast.Ident)
	if !ok {
		return false
	}
	obj := ctx.ObjectOf(ident)
	_, isTypeName := obj.(*types.TypeName)

	return isTypeName && obj.Pkg() == nil
}

func (universeIdentConverter) ConvertNode(_ *Context, node ast.Expr, _ types.Type) model.Type {
	return &model.IntrinsicType{Name: node.(*ast.Ident).Name}
}

// typeParamConverter documents uses of type parameters.
type typeParamConverter struct{}

func (typeParamConverter) Priority() int { return priorityTypeParam }

func (typeParamConverter) SupportsType(_ *Context, typ types.Type) bool {
	_, ok := typ.(*types.TypeParam)
	return ok
}

func (typeParamConverter) ConvertType(_ *Context, typ types.Type) model.Type {
	return &model.TypeParamType{Name: typ.(*types.TypeParam).Obj().Name()}
}

// interfaceConverter documents inline interface types. The empty interface
// reads as the intrinsic any; anything richer keeps the checker rendering.
type interfaceConverter struct{}

func (interfaceConverter) Priority() int { return priorityInterface }

func (interfaceConverter) SupportsType(_ *Context, typ types.Type) bool {
	_, ok := typ.(*types.Interface)
	return ok
}

func (interfaceConverter) ConvertType(_ *Context, typ types.Type) model.Type {
	iface := typ.(*types.Interface)
	if iface.Empty() {
		return &model.IntrinsicType{Name: "any"}
	}

	return &model.UnknownType{Repr: typeRepr(typ)}
}

// fallbackConverter accepts every type, rendering it through the checker.
// Registered at the bottom of the chain so a dispatch miss only happens
// when the built-ins are deliberately absent.
type fallbackConverter struct{}

func (fallbackConverter) Priority() int { return priorityFallback }

func (fallbackConverter) SupportsType(_ *Context, _ types.Type) bool { return true }

func (fallbackConverter) ConvertType(_ *Context, typ types.Type) model.Type {
	return &model.UnknownType{Repr: typeRepr(typ)}
}

// typeRepr renders a checker type with package-name qualification.
func typeRepr(typ types.Type) string {
	return types.TypeString(typ, func(p *types.Package) string { return p.Name() })
}
