package convert

import (
	"go/ast"
	"go/types"

	"github.com/SamuraiJack/typedoc/internal/model"
)

// CreateDeclaration creates a declaration reflection under the current
// scope and fires the declaration-created event.
func (c *Context) CreateDeclaration(name string, kind model.Kind, node ast.Node) *model.Reflection {
	r := c.Project.CreateReflection(name, kind, c.scope)
	c.Converter.emit(Event{Kind: EventDeclarationCreated, Context: c, Reflection: r, Node: node})

	return r
}

// EnsureDeclaration returns the reflection already documenting sym, or
// creates one under the current scope, registering the symbol lookup and
// firing the declaration-created event. The second result reports whether
// the reflection was created by this call.
func (c *Context) EnsureDeclaration(sym types.Object, name string, kind model.Kind, node ast.Node) (*model.Reflection, bool) {
	if existing := c.Project.ForSymbol(sym); existing != nil {
		return existing, false
	}

	r := c.Project.CreateReflection(name, kind, c.scope)
	c.Project.RegisterSymbol(sym, r)
	c.Converter.emit(Event{Kind: EventDeclarationCreated, Context: c, Reflection: r, Node: node})

	return r, true
}

// CreateSignature creates a signature reflection under the current scope
// and fires the signature-created event.
func (c *Context) CreateSignature(name string, node ast.Node) *model.Reflection {
	r := c.Project.CreateReflection(name, model.KindSignature, c.scope)
	c.Converter.emit(Event{Kind: EventSignatureCreated, Context: c, Reflection: r, Node: node})

	return r
}

// CreateParameter creates a parameter reflection under the current scope
// and fires the parameter-created event.
func (c *Context) CreateParameter(name string, node ast.Node) *model.Reflection {
	r := c.Project.CreateReflection(name, model.KindParameter, c.scope)
	c.Converter.emit(Event{Kind: EventParameterCreated, Context: c, Reflection: r, Node: node})

	return r
}

// CreateTypeParameter creates a type-parameter reflection under the current
// scope and fires the type-parameter-created event.
func (c *Context) CreateTypeParameter(name string, node ast.Node) *model.Reflection {
	r := c.Project.CreateReflection(name, model.KindTypeParameter, c.scope)
	c.Converter.emit(Event{Kind: EventTypeParameterCreated, Context: c, Reflection: r, Node: node})

	return r
}

// includeSymbol applies the exported-only filter.
func (c *Context) includeSymbol(sym types.Object) bool {
	if sym == nil || sym.Name() == "_" {
		return false
	}

	return sym.Exported() || c.Converter.opts.IncludeUnexported
}
