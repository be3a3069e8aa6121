package convert

import (
	"go/ast"
	"go/types"

	"github.com/SamuraiJack/typedoc/internal/model"
)

// valueSpecConverter turns var and const declarations into reflections.
// Const-ness comes from the checker object, not the surrounding
// declaration keyword, so the converter needs no extra dispatch context.
type valueSpecConverter struct{}

func (valueSpecConverter) SupportedKinds() []NodeKind {
	return []NodeKind{NodeValueSpec}
}

func (valueSpecConverter) Convert(ctx *Context, node ast.Node) *model.Reflection {
	spec, ok := node.(*ast.ValueSpec)
	if !ok {
		return nil
	}

	var first *model.Reflection
	for _, name := range spec.Names {
		obj := ctx.ObjectOf(name)
		if !ctx.includeSymbol(obj) {
			continue
		}

		kind := model.KindVariable
		value := ""
		if konst, ok := obj.(*types.Const); ok {
			kind = model.KindConstant
			value = konst.Val().String()
		}

		ctx.WithScope(packageScope(ctx, obj.Pkg()), func() {
			refl, created := ctx.EnsureDeclaration(obj, obj.Name(), kind, spec)
			if !created {
				return
			}
			refl.Comment = docText(spec.Doc, spec.Comment)
			refl.Flags.Exported = obj.Exported()
			refl.DefaultValue = value
			refl.Type = ctx.Converter.ConvertType(ctx, spec.Type, obj.Type())
			if first == nil {
				first = refl
			}
		})
	}

	return first
}
