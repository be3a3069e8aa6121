package convert

import (
	"go/ast"
	"go/types"

	"github.com/SamuraiJack/typedoc/internal/model"
)

// referenceConverter documents occurrences of named types as by-name
// references into the graph. It participates in both chains: with a node
// it can convert explicit type-argument expressions; on a bare type it
// falls back to the checker's instantiation info. References into packages
// outside the analyzed set are marked external and never dangle.
//
// A reference to a declaration that has not been converted yet triggers
// conversion of its declaring node, which is where deep recursion (and the
// visit-stack guard) comes from.
type referenceConverter struct{}

func (referenceConverter) Priority() int { return priorityReference }

// typeName unwraps the declared object behind named and alias types.
func typeName(typ types.Type) *types.TypeName {
	switch t := typ.(type) {
	case *types.Named:
		return t.Obj()
	case *types.Alias:
		return t.Obj()
	default:
		return nil
	}
}

func (referenceConverter) SupportsNode(_ *Context, _ ast.Expr, typ types.Type) bool {
	return typeName(typ) != nil
}

func (c referenceConverter) ConvertNode(ctx *Context, node ast.Expr, typ types.Type) model.Type {
	return c.convert(ctx, node, typ)
}

func (referenceConverter) SupportsType(_ *Context, typ types.Type) bool {
	return typeName(typ) != nil
}

func (c referenceConverter) ConvertType(ctx *Context, typ types.Type) model.Type {
	return c.convert(ctx, nil, typ)
}

func (referenceConverter) convert(ctx *Context, node ast.Expr, typ types.Type) model.Type {
	sym := typeName(typ)

	ref := &model.ReferenceType{
		Name:   sym.Name(),
		Symbol: sym,
	}
	if pkg := sym.Pkg(); pkg != nil {
		ref.Package = pkg.Path()
		ref.External = !ctx.Program.IsAnalyzed(pkg.Path())
	} else {
		// Universe-scope names (error without a node) never resolve.
		ref.External = true
	}

	if !ref.External && ctx.Project.ForSymbol(sym) == nil {
		if decl := ctx.DeclarationNode(sym); decl != nil {
			// Forward reference: convert the declaration now, in its own
			// file's checker scope. The visit stack breaks cycles.
			ctx.EnterFile(ctx.fileOf(decl), func() {
				ctx.Converter.ConvertNode(ctx, decl)
			})
		}
	}

	ref.TypeArguments = convertTypeArguments(ctx, node, typ)
	if target := ctx.Project.ForSymbol(sym); target != nil {
		ref.Target = target.ID
	}
	ctx.Project.TrackReference(ref)

	return ref
}

// convertTypeArguments converts the type arguments of an instantiated
// generic reference, pairing explicit argument expressions with the
// checker's instantiation when a node is available.
func convertTypeArguments(ctx *Context, node ast.Expr, typ types.Type) []model.Type {
	named, ok := typ.(*types.Named)
	if !ok || named.TypeArgs() == nil || named.TypeArgs().Len() == 0 {
		return nil
	}

	args := named.TypeArgs()
	typs := make([]types.Type, args.Len())
	for i := range args.Len() {
		typs[i] = args.At(i)
	}

	return ctx.Converter.ConvertTypes(ctx, typeArgExprs(node), typs)
}

// typeArgExprs extracts explicit type-argument expressions, when written.
func typeArgExprs(node ast.Expr) []ast.Expr {
	switch n := node.(type) {
	case *ast.IndexExpr:
		return []ast.Expr{n.Index}
	case *ast.IndexListExpr:
		return n.Indices
	default:
		return nil
	}
}
