package convert

import (
	"go/ast"
	"go/types"

	"github.com/SamuraiJack/typedoc/internal/analyze"
	"github.com/SamuraiJack/typedoc/internal/common"
	"github.com/SamuraiJack/typedoc/internal/diagnostic"
	"github.com/SamuraiJack/typedoc/internal/match"
	"github.com/SamuraiJack/typedoc/internal/model"
	"github.com/SamuraiJack/typedoc/internal/output"
)

// Options controls a converter's behavior across runs.
type Options struct {
	// Name is the name given to the produced project root.
	Name string
	// Exclude holds glob patterns for source files to leave out.
	Exclude []string
	// IncludeUnexported also documents unexported declarations.
	IncludeUnexported bool
	// SkipErrorChecking suppresses all blocking diagnostics.
	SkipErrorChecking bool
}

// Converter orchestrates a conversion run: it owns the dispatch registries
// and the observer registry, drives the compile and resolve passes, and
// guards recursive node conversion against cycles. Each Converter instance
// is independent; there is no process-wide registry state.
type Converter struct {
	opts      Options
	nodes     *NodeRegistry
	types     *TypeRegistry
	observers map[EventKind][]Observer
}

// New creates a converter with the built-in converter set registered.
func New(opts Options) *Converter {
	c := NewEmpty(opts)
	registerBuiltins(c)

	return c
}

// NewEmpty creates a converter with empty registries. Callers register
// their own converter set; useful for tests and special-purpose pipelines.
func NewEmpty(opts Options) *Converter {
	return &Converter{
		opts:      opts,
		nodes:     NewNodeRegistry(),
		types:     NewTypeRegistry(),
		observers: make(map[EventKind][]Observer),
	}
}

// Options returns the converter's options.
func (c *Converter) Options() Options {
	return c.opts
}

// Nodes returns the node dispatch table for plugin registration.
func (c *Converter) Nodes() *NodeRegistry {
	return c.nodes
}

// Types returns the type dispatch chains for plugin registration.
func (c *Converter) Types() *TypeRegistry {
	return c.types
}

// Convert drives a full compile→resolve run over the program and returns
// the blocking diagnostics (empty on success) together with the produced
// project. The two never mix: a non-empty diagnostic list means the compile
// pass was aborted before any file conversion.
func (c *Converter) Convert(prog *analyze.Program) ([]diagnostic.Diagnostic, *model.Project) {
	project := model.NewProject(c.opts.Name)
	ctx := newContext(c, prog, project)

	c.emit(Event{Kind: EventBeginRun, Context: ctx})

	filter := &analyze.FileFilter{Exclude: c.opts.Exclude}
	files := filter.IncludedFiles(prog)

	classifier := &diagnostic.Classifier{
		Suppress: c.opts.SkipErrorChecking,
		Included: filter.Includes,
	}
	if blocking := classifier.Classify(c.collectDiagnostics(prog)); !common.IsEmpty(blocking) {
		output.Debug("conversion aborted", "category", blocking[0].Category.String(), "count", len(blocking))
		c.emit(Event{Kind: EventEndRun, Context: ctx})
		return blocking, project
	}

	ctx.indexDeclarations(files)

	// Compile pass. Files convert sequentially, in program order: every
	// conversion mutates the shared scope state on the context.
	for _, file := range files {
		c.emit(Event{Kind: EventFileBegin, Context: ctx, Node: file})
		c.ConvertNode(ctx, file)
	}

	c.resolve(ctx)

	c.emit(Event{Kind: EventEndRun, Context: ctx})
	return nil, project
}

func (c *Converter) collectDiagnostics(prog *analyze.Program) diagnostic.CategorySet {
	set := prog.Diagnostics()
	set.Options = append(set.Options, c.optionDiagnostics()...)

	return set
}

// optionDiagnostics validates the converter options themselves; failures
// land in the highest-priority category.
func (c *Converter) optionDiagnostics() []diagnostic.Diagnostic {
	var diags []diagnostic.Diagnostic
	for _, pattern := range c.opts.Exclude {
		if !analyze.ValidPattern(pattern) {
			diags = append(diags, diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Category: diagnostic.CategoryOptions,
				Code:     "bad_exclude_pattern",
				Message:  "malformed exclude pattern " + pattern,
			})
		}
	}

	return diags
}

// resolve runs the per-reflection resolve pass and the dangling-reference
// scan. The id set is snapshotted before iterating: observers may add or
// remove reflections without disturbing the pass.
func (c *Converter) resolve(ctx *Context) {
	c.emit(Event{Kind: EventResolveBegin, Context: ctx})

	for _, id := range ctx.Project.IDs() {
		r := ctx.Project.ByID(id)
		if r == nil {
			// Removed by an observer earlier in this pass.
			continue
		}
		c.emit(Event{Kind: EventResolve, Context: ctx, Reflection: r})
	}

	if dangling := ctx.Project.ResolveReferences(); !common.IsEmpty(dangling) {
		c.reportDangling(ctx, dangling)
	}

	c.emit(Event{Kind: EventResolveEnd, Context: ctx})
}

// reportDangling emits one aggregated warning for every unresolved name.
// Dangling references never fail the run.
func (c *Converter) reportDangling(ctx *Context, names []string) {
	known := make([]string, 0, ctx.Project.Count())
	for _, id := range ctx.Project.IDs() {
		if r := ctx.Project.ByID(id); r != nil && r.Kind.IsDeclaration() {
			known = append(known, r.Name)
		}
	}

	for _, name := range names {
		keyvals := []any{"name", name}
		if s, ok := common.First(match.Suggest(name, known, match.DefaultMinScore, match.DefaultMaxSuggestions)); ok {
			keyvals = append(keyvals, "closest", s.Name)
		}
		output.Warn("unresolved reference", keyvals...)
	}
	output.Warn("dangling references found", "count", len(names))
}

// ConvertNode dispatches a node conversion, guarding against cycles: a node
// already on the active visit stack yields no reflection, leaving the
// in-progress conversion to complete normally. The stack is extended by
// copy, never in place, so sibling conversions made after this call returns
// do not observe the pushed node.
func (c *Converter) ConvertNode(ctx *Context, node ast.Node) *model.Reflection {
	if node == nil || ctx.Visiting(node) {
		return nil
	}

	prev := ctx.visiting
	extended := make([]ast.Node, len(prev), len(prev)+1)
	copy(extended, prev)
	ctx.visiting = append(extended, node)
	defer func() { ctx.visiting = prev }()

	return c.nodes.Dispatch(ctx, node)
}

// ConvertType converts a type occurrence. With a node supplied, its type is
// resolved through the checker when not already given and the node-based
// chain is scanned first; the type-only chain is the fallback. No matching
// converter is not an error: the occurrence simply produces no type.
func (c *Converter) ConvertType(ctx *Context, node ast.Expr, typ types.Type) model.Type {
	if node != nil {
		if typ == nil {
			typ = ctx.TypeOf(node)
		}
		if converted := c.types.convertNode(ctx, node, typ); converted != nil {
			return converted
		}
	}
	if typ == nil {
		return nil
	}

	return c.types.convertType(ctx, typ)
}

// ConvertTypes is the batch form of ConvertType: nodes and types are zipped
// position by position, the shorter side padded with absence, and only the
// successfully produced types are returned, in order.
func (c *Converter) ConvertTypes(ctx *Context, nodes []ast.Expr, typs []types.Type) []model.Type {
	n := max(len(nodes), len(typs))
	out := make([]model.Type, 0, n)
	for i := range n {
		var node ast.Expr
		var typ types.Type
		if i < len(nodes) {
			node = nodes[i]
		}
		if i < len(typs) {
			typ = typs[i]
		}
		if converted := c.ConvertType(ctx, node, typ); converted != nil {
			out = append(out, converted)
		}
	}

	return out
}
