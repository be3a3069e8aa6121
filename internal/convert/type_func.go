package convert

import (
	"go/types"

	"github.com/SamuraiJack/typedoc/internal/model"
)

// funcTypeConverter documents function-shaped type occurrences (fields,
// parameters, elements). Declared functions never reach this converter;
// they become signature reflections instead.
type funcTypeConverter struct{}

func (funcTypeConverter) Priority() int { return priorityFunc }

func (funcTypeConverter) SupportsType(_ *Context, typ types.Type) bool {
	_, ok := typ.(*types.Signature)
	return ok
}

func (funcTypeConverter) ConvertType(ctx *Context, typ types.Type) model.Type {
	sig := typ.(*types.Signature)

	out := &model.FuncType{Variadic: sig.Variadic()}
	params := sig.Params()
	for i := range params.Len() {
		if p := ctx.Converter.ConvertType(ctx, nil, params.At(i).Type()); p != nil {
			out.Params = append(out.Params, p)
		}
	}
	results := sig.Results()
	for i := range results.Len() {
		if r := ctx.Converter.ConvertType(ctx, nil, results.At(i).Type()); r != nil {
			out.Results = append(out.Results, r)
		}
	}

	return out
}

// unionConverter documents type-set unions from interface constraints.
type unionConverter struct{}

func (unionConverter) Priority() int { return priorityFunc }

func (unionConverter) SupportsType(_ *Context, typ types.Type) bool {
	_, ok := typ.(*types.Union)
	return ok
}

func (unionConverter) ConvertType(ctx *Context, typ types.Type) model.Type {
	u := typ.(*types.Union)

	out := &model.UnionType{}
	for i := range u.Len() {
		term := u.Term(i)
		converted := ctx.Converter.ConvertType(ctx, nil, term.Type())
		if converted == nil {
			continue
		}
		out.Terms = append(out.Terms, model.UnionTerm{Tilde: term.Tilde(), Type: converted})
	}
	if len(out.Terms) == 0 {
		return nil
	}

	return out
}
