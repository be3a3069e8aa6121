package convert

import (
	"go/types"

	"github.com/SamuraiJack/typedoc/internal/model"
)

// pointerConverter documents pointer occurrences.
type pointerConverter struct{}

func (pointerConverter) Priority() int { return priorityComposite }

func (pointerConverter) SupportsType(_ *Context, typ types.Type) bool {
	_, ok := typ.(*types.Pointer)
	return ok
}

func (pointerConverter) ConvertType(ctx *Context, typ types.Type) model.Type {
	elem := ctx.Converter.ConvertType(ctx, nil, typ.(*types.Pointer).Elem())
	if elem == nil {
		return nil
	}

	return &model.PointerType{Elem: elem}
}

// sequenceConverter documents slice and array occurrences.
type sequenceConverter struct{}

func (sequenceConverter) Priority() int { return priorityComposite }

func (sequenceConverter) SupportsType(_ *Context, typ types.Type) bool {
	switch typ.(type) {
	case *types.Slice, *types.Array:
		return true
	default:
		return false
	}
}

func (sequenceConverter) ConvertType(ctx *Context, typ types.Type) model.Type {
	switch t := typ.(type) {
	case *types.Slice:
		elem := ctx.Converter.ConvertType(ctx, nil, t.Elem())
		if elem == nil {
			return nil
		}
		return &model.ArrayType{Elem: elem, Len: -1}
	case *types.Array:
		elem := ctx.Converter.ConvertType(ctx, nil, t.Elem())
		if elem == nil {
			return nil
		}
		return &model.ArrayType{Elem: elem, Len: t.Len()}
	default:
		return nil
	}
}

// mapConverter documents map occurrences.
type mapConverter struct{}

func (mapConverter) Priority() int { return priorityComposite }

func (mapConverter) SupportsType(_ *Context, typ types.Type) bool {
	_, ok := typ.(*types.Map)
	return ok
}

func (mapConverter) ConvertType(ctx *Context, typ types.Type) model.Type {
	m := typ.(*types.Map)
	key := ctx.Converter.ConvertType(ctx, nil, m.Key())
	elem := ctx.Converter.ConvertType(ctx, nil, m.Elem())
	if key == nil || elem == nil {
		return nil
	}

	return &model.MapType{Key: key, Elem: elem}
}

// chanConverter documents channel occurrences.
type chanConverter struct{}

func (chanConverter) Priority() int { return priorityComposite }

func (chanConverter) SupportsType(_ *Context, typ types.Type) bool {
	_, ok := typ.(*types.Chan)
	return ok
}

func (chanConverter) ConvertType(ctx *Context, typ types.Type) model.Type {
	ch := typ.(*types.Chan)
	elem := ctx.Converter.ConvertType(ctx, nil, ch.Elem())
	if elem == nil {
		return nil
	}

	dir := model.ChanBidirectional
	switch ch.Dir() {
	case types.SendOnly:
		dir = model.ChanSend
	case types.RecvOnly:
		dir = model.ChanReceive
	}

	return &model.ChanType{Dir: dir, Elem: elem}
}
