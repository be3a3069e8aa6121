package convert

import (
	"go/ast"

	"github.com/SamuraiJack/typedoc/internal/model"
	"github.com/SamuraiJack/typedoc/internal/output"
)

// NodeConverter turns one syntax node into zero or one reflections.
type NodeConverter interface {
	// SupportedKinds declares the node kinds this converter handles.
	SupportedKinds() []NodeKind
	// Convert produces a reflection for node, or nil when the node
	// contributes nothing to the graph.
	Convert(ctx *Context, node ast.Node) *model.Reflection
}

// NodeRegistry maps each node kind to exactly one converter.
type NodeRegistry struct {
	byKind map[NodeKind]NodeConverter
}

// NewNodeRegistry creates an empty registry.
func NewNodeRegistry() *NodeRegistry {
	return &NodeRegistry{byKind: make(map[NodeKind]NodeConverter)}
}

// Register associates kind with converter. A later registration for the
// same kind replaces the earlier one; last writer wins.
func (r *NodeRegistry) Register(kind NodeKind, conv NodeConverter) {
	if prev, ok := r.byKind[kind]; ok && prev != conv {
		output.Debug("node converter replaced", "kind", kind.String())
	}
	r.byKind[kind] = conv
}

// RegisterConverter registers converter for every kind it declares.
func (r *NodeRegistry) RegisterConverter(conv NodeConverter) {
	for _, kind := range conv.SupportedKinds() {
		r.Register(kind, conv)
	}
}

// Unregister removes every kind mapped to this converter instance.
func (r *NodeRegistry) Unregister(conv NodeConverter) {
	for kind, c := range r.byKind {
		if c == conv {
			delete(r.byKind, kind)
		}
	}
}

// Lookup returns the converter registered for kind, or nil.
func (r *NodeRegistry) Lookup(kind NodeKind) NodeConverter {
	return r.byKind[kind]
}

// Dispatch converts node with the converter registered for its kind.
// An unregistered kind is not an error: it yields no reflection.
func (r *NodeRegistry) Dispatch(ctx *Context, node ast.Node) *model.Reflection {
	conv := r.byKind[KindOf(node)]
	if conv == nil {
		return nil
	}

	return conv.Convert(ctx, node)
}
