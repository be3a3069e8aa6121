package convert

import (
	"go/ast"
	"go/types"

	"github.com/SamuraiJack/typedoc/internal/model"
)

// functionConverter turns function and method declarations into reflections
// carrying one signature each.
type functionConverter struct{}

func (functionConverter) SupportedKinds() []NodeKind {
	return []NodeKind{NodeFuncDecl}
}

func (functionConverter) Convert(ctx *Context, node ast.Node) *model.Reflection {
	decl, ok := node.(*ast.FuncDecl)
	if !ok {
		return nil
	}
	obj := ctx.ObjectOf(decl.Name)
	fn, ok := obj.(*types.Func)
	if !ok || !ctx.includeSymbol(fn) {
		return nil
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return nil
	}

	kind := model.KindFunction
	scope := packageScope(ctx, fn.Pkg())
	if decl.Recv != nil {
		kind = model.KindMethod
		if owner := receiverReflection(ctx, sig); owner != nil {
			scope = owner
		}
	}

	var refl *model.Reflection
	ctx.WithScope(scope, func() {
		var created bool
		refl, created = ctx.EnsureDeclaration(fn, fn.Name(), kind, decl)
		if !created {
			return
		}
		refl.Comment = docText(decl.Doc, nil)
		refl.Flags.Exported = fn.Exported()

		ctx.WithScope(refl, func() {
			buildSignature(ctx, fn.Name(), decl.Type, sig, decl)
		})

		if decl.Body != nil {
			ctx.Converter.emit(Event{
				Kind:       EventFunctionImplementationFound,
				Context:    ctx,
				Reflection: refl,
				Node:       decl,
			})
		}
	})

	return refl
}

// receiverReflection finds (converting on demand) the reflection of the
// method's receiver type, or nil when the receiver is filtered out.
func receiverReflection(ctx *Context, sig *types.Signature) *model.Reflection {
	recv := sig.Recv()
	if recv == nil {
		return nil
	}
	t := recv.Type()
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}
	sym := named.Obj()
	if r := ctx.Project.ForSymbol(sym); r != nil {
		return r
	}
	if node := ctx.DeclarationNode(sym); node != nil {
		// Methods can precede their receiver's declaration in program
		// order; convert the declaring node now, in its own file's
		// checker scope.
		var refl *model.Reflection
		ctx.EnterFile(ctx.fileOf(node), func() {
			refl = ctx.Converter.ConvertNode(ctx, node)
		})
		return refl
	}

	return nil
}

// buildSignature creates the signature reflection for a function-shaped
// declaration under the current scope, with parameter and type-parameter
// children, and the return type on the signature itself.
func buildSignature(ctx *Context, name string, ftype *ast.FuncType, sig *types.Signature, node ast.Node) *model.Reflection {
	sigRefl := ctx.CreateSignature(name, node)

	ctx.WithScope(sigRefl, func() {
		convertTypeParamFields(ctx, ftype.TypeParams)

		paramExprs := fieldTypeExprs(ftype.Params)
		params := sig.Params()
		for i := range params.Len() {
			v := params.At(i)
			var expr ast.Expr
			if i < len(paramExprs) {
				expr = paramExprs[i]
			}
			pname := v.Name()
			if pname == "" {
				pname = "_"
			}
			p := ctx.CreateParameter(pname, expr)
			p.Type = ctx.Converter.ConvertType(ctx, expr, v.Type())
			if sig.Variadic() && i == params.Len()-1 {
				p.Flags.Variadic = true
			}
		}

		resultExprs := fieldTypeExprs(ftype.Results)
		results := sig.Results()
		switch results.Len() {
		case 0:
		case 1:
			var expr ast.Expr
			if len(resultExprs) > 0 {
				expr = resultExprs[0]
			}
			sigRefl.Type = ctx.Converter.ConvertType(ctx, expr, results.At(0).Type())
		default:
			typs := make([]types.Type, results.Len())
			for i := range results.Len() {
				typs[i] = results.At(i).Type()
			}
			elems := ctx.Converter.ConvertTypes(ctx, resultExprs, typs)
			sigRefl.Type = &model.TupleType{Elems: elems}
		}
	})

	return sigRefl
}

// convertTypeParamFields creates type-parameter reflections (with their
// converted constraints) under the current scope.
func convertTypeParamFields(ctx *Context, fields *ast.FieldList) {
	if fields == nil {
		return
	}
	for _, field := range fields.List {
		for _, name := range field.Names {
			tp := ctx.CreateTypeParameter(name.Name, field)
			tp.Type = ctx.Converter.ConvertType(ctx, field.Type, nil)
		}
	}
}

// fieldTypeExprs expands a field list into one type expression per declared
// name, aligning ast positions with the checker's tuples.
func fieldTypeExprs(fields *ast.FieldList) []ast.Expr {
	if fields == nil {
		return nil
	}
	var out []ast.Expr
	for _, field := range fields.List {
		n := len(field.Names)
		if n == 0 {
			n = 1
		}
		for range n {
			out = append(out, field.Type)
		}
	}

	return out
}
