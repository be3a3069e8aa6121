package convert

import (
	"go/ast"
	"go/types"

	"github.com/SamuraiJack/typedoc/internal/model"
)

// typeSpecConverter turns type declarations into struct, interface, or
// alias reflections with their members.
type typeSpecConverter struct{}

func (typeSpecConverter) SupportedKinds() []NodeKind {
	return []NodeKind{NodeTypeSpec}
}

func (typeSpecConverter) Convert(ctx *Context, node ast.Node) *model.Reflection {
	spec, ok := node.(*ast.TypeSpec)
	if !ok {
		return nil
	}
	obj := ctx.ObjectOf(spec.Name)
	if obj == nil || !ctx.includeSymbol(obj) {
		return nil
	}

	var refl *model.Reflection
	ctx.WithScope(packageScope(ctx, obj.Pkg()), func() {
		var created bool
		refl, created = ctx.EnsureDeclaration(obj, obj.Name(), declKindFor(spec, obj), spec)
		if refl.Comment == "" {
			refl.Comment = docText(spec.Doc, spec.Comment)
		}
		refl.Flags.Exported = obj.Exported()
		if !created {
			return
		}

		ctx.WithScope(refl, func() {
			convertTypeParamFields(ctx, spec.TypeParams)

			switch t := spec.Type.(type) {
			case *ast.StructType:
				convertStructFields(ctx, t)
			case *ast.InterfaceType:
				convertInterfaceMembers(ctx, refl, t)
			default:
				// Alias targets and defined non-composite types document
				// their right-hand side as the reflection's type.
				refl.Type = ctx.Converter.ConvertType(ctx, spec.Type, nil)
			}
		})
	})

	return refl
}

// declKindFor picks the reflection kind for a type declaration from its
// declared shape.
func declKindFor(spec *ast.TypeSpec, obj types.Object) model.Kind {
	if spec.Assign.IsValid() {
		return model.KindAlias
	}
	switch obj.Type().Underlying().(type) {
	case *types.Struct:
		return model.KindStruct
	case *types.Interface:
		return model.KindInterface
	default:
		return model.KindAlias
	}
}

func convertStructFields(ctx *Context, st *ast.StructType) {
	if st.Fields == nil {
		return
	}
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			convertEmbeddedField(ctx, field)
			continue
		}
		for _, name := range field.Names {
			obj := ctx.ObjectOf(name)
			if !ctx.includeSymbol(obj) {
				continue
			}
			f := ctx.CreateDeclaration(name.Name, model.KindField, field)
			f.Comment = docText(field.Doc, field.Comment)
			f.Flags.Exported = obj.Exported()
			f.Type = ctx.Converter.ConvertType(ctx, field.Type, nil)
		}
	}
}

func convertEmbeddedField(ctx *Context, field *ast.Field) {
	// The embedded field's name is the bare type name.
	ident := embeddedIdent(field.Type)
	if ident == nil {
		return
	}
	obj := ctx.ObjectOf(ident)
	if obj != nil && !ctx.includeSymbol(obj) {
		return
	}
	f := ctx.CreateDeclaration(ident.Name, model.KindField, field)
	f.Comment = docText(field.Doc, field.Comment)
	f.Flags.Embedded = true
	if obj != nil {
		f.Flags.Exported = obj.Exported()
	}
	f.Type = ctx.Converter.ConvertType(ctx, field.Type, nil)
}

// embeddedIdent unwraps the identifier naming an embedded field type.
func embeddedIdent(expr ast.Expr) *ast.Ident {
	switch t := expr.(type) {
	case *ast.Ident:
		return t
	case *ast.StarExpr:
		return embeddedIdent(t.X)
	case *ast.SelectorExpr:
		return t.Sel
	case *ast.IndexExpr:
		return embeddedIdent(t.X)
	case *ast.IndexListExpr:
		return embeddedIdent(t.X)
	default:
		return nil
	}
}

// convertInterfaceMembers converts explicit methods to method reflections
// and folds embedded type-set terms into a union on the interface itself.
func convertInterfaceMembers(ctx *Context, refl *model.Reflection, it *ast.InterfaceType) {
	if it.Methods == nil {
		return
	}

	var terms []model.UnionTerm
	for _, field := range it.Methods.List {
		if len(field.Names) == 0 {
			// Embedded interface or type-set term.
			converted := ctx.Converter.ConvertType(ctx, field.Type, nil)
			switch u := converted.(type) {
			case nil:
			case *model.UnionType:
				terms = append(terms, u.Terms...)
			default:
				terms = append(terms, model.UnionTerm{Type: converted})
			}
			continue
		}

		name := field.Names[0]
		obj := ctx.ObjectOf(name)
		if !ctx.includeSymbol(obj) {
			continue
		}
		ftype, ok := field.Type.(*ast.FuncType)
		if !ok {
			continue
		}
		sig, ok := obj.Type().(*types.Signature)
		if !ok {
			continue
		}
		m := ctx.CreateDeclaration(name.Name, model.KindMethod, field)
		m.Comment = docText(field.Doc, field.Comment)
		m.Flags.Exported = obj.Exported()
		ctx.WithScope(m, func() {
			buildSignature(ctx, name.Name, ftype, sig, field)
		})
	}

	switch {
	case len(terms) == 1 && !terms[0].Tilde:
		refl.Type = terms[0].Type
	case len(terms) > 0:
		refl.Type = &model.UnionType{Terms: terms}
	}
}

// packageScope returns (creating on demand) the package reflection that
// declarations of pkg attach to. Conversion can reach a declaration
// through cross-file recursion before its own file was visited; the
// package reflection must exist either way.
func packageScope(ctx *Context, pkg *types.Package) *model.Reflection {
	if pkg == nil {
		return ctx.Scope()
	}
	if pr := ctx.packageReflections[pkg.Path()]; pr != nil {
		return pr
	}

	var pr *model.Reflection
	ctx.WithScope(&ctx.Project.Reflection, func() {
		pr = ctx.CreateDeclaration(pkg.Path(), model.KindPackage, nil)
	})
	ctx.packageReflections[pkg.Path()] = pr

	return pr
}
