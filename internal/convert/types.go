package convert

import (
	"go/ast"
	"go/types"
	"sort"

	"github.com/SamuraiJack/typedoc/internal/model"
)

// TypeConverter is the base capability every type converter carries.
// Converters additionally implement NodeTypeConverter, TypeOnlyConverter,
// or both; membership is checked once at registration time.
type TypeConverter interface {
	// Priority orders the dispatch chains; higher priority is tried first.
	Priority() int
}

// NodeTypeConverter converts a type occurrence using the original syntax
// node alongside the resolved type.
type NodeTypeConverter interface {
	TypeConverter
	SupportsNode(ctx *Context, node ast.Expr, typ types.Type) bool
	ConvertNode(ctx *Context, node ast.Expr, typ types.Type) model.Type
}

// TypeOnlyConverter converts a bare checker type.
type TypeOnlyConverter interface {
	TypeConverter
	SupportsType(ctx *Context, typ types.Type) bool
	ConvertType(ctx *Context, typ types.Type) model.Type
}

// typeRecord is the typed registration record produced by the capability
// check at Register time.
type typeRecord struct {
	order    int
	nodeConv NodeTypeConverter
	typeConv TypeOnlyConverter
}

func (r typeRecord) priority() int {
	if r.nodeConv != nil {
		return r.nodeConv.Priority()
	}

	return r.typeConv.Priority()
}

// TypeRegistry owns the two priority-ordered dispatch chains: node-based
// converters and type-only converters. Both chains stay sorted by
// descending priority after every registration or removal, with
// registration order breaking ties.
type TypeRegistry struct {
	records   []typeRecord
	nodeChain []typeRecord
	typeChain []typeRecord
	nextOrder int
}

// NewTypeRegistry creates an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{}
}

// Register adds a type converter to whichever chains its capabilities
// qualify it for. A converter implementing neither capability pair is
// ignored.
func (r *TypeRegistry) Register(conv TypeConverter) {
	rec := typeRecord{order: r.nextOrder}
	if nc, ok := conv.(NodeTypeConverter); ok {
		rec.nodeConv = nc
	}
	if tc, ok := conv.(TypeOnlyConverter); ok {
		rec.typeConv = tc
	}
	if rec.nodeConv == nil && rec.typeConv == nil {
		return
	}

	r.nextOrder++
	r.records = append(r.records, rec)
	r.rebuild()
}

// Remove deletes the converter from both chains, wherever present.
func (r *TypeRegistry) Remove(conv TypeConverter) {
	out := r.records[:0]
	for _, rec := range r.records {
		if rec.nodeConv == conv || rec.typeConv == conv {
			continue
		}
		out = append(out, rec)
	}
	r.records = out
	r.rebuild()
}

// rebuild re-derives both chains so dispatch always sees correctly ordered
// chains immediately after any mutation.
func (r *TypeRegistry) rebuild() {
	r.nodeChain = r.nodeChain[:0]
	r.typeChain = r.typeChain[:0]
	for _, rec := range r.records {
		if rec.nodeConv != nil {
			r.nodeChain = append(r.nodeChain, rec)
		}
		if rec.typeConv != nil {
			r.typeChain = append(r.typeChain, rec)
		}
	}

	byPriority := func(chain []typeRecord) func(i, j int) bool {
		return func(i, j int) bool {
			return chain[i].priority() > chain[j].priority()
		}
	}
	sort.SliceStable(r.nodeChain, byPriority(r.nodeChain))
	sort.SliceStable(r.typeChain, byPriority(r.typeChain))
}

// NodeChainLen returns the number of node-based entries.
func (r *TypeRegistry) NodeChainLen() int { return len(r.nodeChain) }

// TypeChainLen returns the number of type-only entries.
func (r *TypeRegistry) TypeChainLen() int { return len(r.typeChain) }

// convertNode scans the node chain in descending priority; the first
// converter whose predicate accepts performs the conversion.
func (r *TypeRegistry) convertNode(ctx *Context, node ast.Expr, typ types.Type) model.Type {
	for _, rec := range r.nodeChain {
		if rec.nodeConv.SupportsNode(ctx, node, typ) {
			return rec.nodeConv.ConvertNode(ctx, node, typ)
		}
	}

	return nil
}

// convertType scans the type chain the same way using only the type.
func (r *TypeRegistry) convertType(ctx *Context, typ types.Type) model.Type {
	for _, rec := range r.typeChain {
		if rec.typeConv.SupportsType(ctx, typ) {
			return rec.typeConv.ConvertType(ctx, typ)
		}
	}

	return nil
}
