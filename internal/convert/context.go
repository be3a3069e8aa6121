package convert

import (
	"go/ast"
	"go/types"

	"github.com/SamuraiJack/typedoc/internal/analyze"
	"github.com/SamuraiJack/typedoc/internal/model"
)

// Context is the per-run mutable state threaded through every conversion:
// the engine handle, the output project, the current reflection scope, and
// the visit stack used for cycle detection.
type Context struct {
	// Program is the analysis engine handle for this run.
	Program *analyze.Program
	// Project is the graph being built.
	Project *model.Project
	// Converter owns the dispatch registries driving this run.
	Converter *Converter

	scope *model.Reflection
	file  *ast.File

	// visiting is the stack of nodes currently being converted on the
	// active call path. Extended copy-on-push: recursive conversions see
	// the extended stack, sibling calls made later do not.
	visiting []ast.Node

	// packageReflections maps import paths to their package reflections,
	// one per package regardless of file count.
	packageReflections map[string]*model.Reflection

	// declNodes maps checker objects to their declaring syntax nodes,
	// letting type converters recurse into not-yet-converted declarations.
	declNodes map[types.Object]ast.Node
}

func newContext(conv *Converter, prog *analyze.Program, project *model.Project) *Context {
	return &Context{
		Program:            prog,
		Project:            project,
		Converter:          conv,
		scope:              &project.Reflection,
		packageReflections: make(map[string]*model.Reflection),
		declNodes:          make(map[types.Object]ast.Node),
	}
}

// Scope returns the reflection new declarations attach to.
func (c *Context) Scope() *model.Reflection {
	return c.scope
}

// WithScope runs fn with scope as the current scope, restoring the previous
// scope afterwards.
func (c *Context) WithScope(scope *model.Reflection, fn func()) {
	prev := c.scope
	c.scope = scope
	defer func() { c.scope = prev }()
	fn()
}

// File returns the source file currently being converted.
func (c *Context) File() *ast.File {
	return c.file
}

// EnterFile runs fn with file as the current file, restoring afterwards.
func (c *Context) EnterFile(file *ast.File, fn func()) {
	prev := c.file
	c.file = file
	defer func() { c.file = prev }()
	fn()
}

// Visiting reports whether node is on the active visit stack.
func (c *Context) Visiting(node ast.Node) bool {
	for _, v := range c.visiting {
		if v == node {
			return true
		}
	}

	return false
}

// TypeOf resolves the checker type of an expression in the current file.
func (c *Context) TypeOf(expr ast.Expr) types.Type {
	return c.Program.TypeOf(c.file, expr)
}

// ObjectOf returns the checker object an identifier denotes.
func (c *Context) ObjectOf(ident *ast.Ident) types.Object {
	return c.Program.ObjectOf(c.file, ident)
}

// DeclarationNode returns the syntax node declaring sym, or nil. The index
// covers type, value, and function declarations of the included files and is
// built lazily on first use.
func (c *Context) DeclarationNode(sym types.Object) ast.Node {
	return c.declNodes[sym]
}

func (c *Context) indexDeclarations(files []*ast.File) {
	for _, file := range files {
		pkg := c.Program.PackageOf(file)
		if pkg == nil || pkg.TypesInfo == nil {
			continue
		}
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if obj := pkg.TypesInfo.Defs[d.Name]; obj != nil {
					c.declNodes[obj] = d
				}
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					switch s := spec.(type) {
					case *ast.TypeSpec:
						if obj := pkg.TypesInfo.Defs[s.Name]; obj != nil {
							c.declNodes[obj] = s
						}
					case *ast.ValueSpec:
						for _, name := range s.Names {
							if obj := pkg.TypesInfo.Defs[name]; obj != nil {
								c.declNodes[obj] = s
							}
						}
					}
				}
			}
		}
	}
}

// fileOf returns the parsed file containing node, so conversions that jump
// across files (reference recursion) can restore the right checker scope.
func (c *Context) fileOf(node ast.Node) *ast.File {
	for _, file := range c.Program.Files() {
		if file.FileStart <= node.Pos() && node.End() <= file.FileEnd {
			return file
		}
	}

	return nil
}
