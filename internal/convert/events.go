package convert

import (
	"go/ast"

	"github.com/SamuraiJack/typedoc/internal/common"
	"github.com/SamuraiJack/typedoc/internal/model"
)

// EventKind is the closed set of lifecycle events a run emits.
type EventKind int

const (
	// EventBeginRun fires once when a conversion run starts.
	EventBeginRun EventKind = iota
	// EventEndRun fires once when a run finishes, aborted or not.
	EventEndRun
	// EventFileBegin fires before each included source file is converted.
	EventFileBegin
	// EventDeclarationCreated fires when a declaration reflection is created.
	EventDeclarationCreated
	// EventSignatureCreated fires when a signature reflection is created.
	EventSignatureCreated
	// EventParameterCreated fires when a parameter reflection is created.
	EventParameterCreated
	// EventTypeParameterCreated fires when a type-parameter reflection is created.
	EventTypeParameterCreated
	// EventFunctionImplementationFound fires for function declarations
	// carrying a body.
	EventFunctionImplementationFound
	// EventResolveBegin fires before the resolve pass.
	EventResolveBegin
	// EventResolve fires once per reflection during the resolve pass.
	EventResolve
	// EventResolveEnd fires after the resolve pass.
	EventResolveEnd
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventBeginRun:
		return "beginRun"
	case EventEndRun:
		return "endRun"
	case EventFileBegin:
		return "fileBegin"
	case EventDeclarationCreated:
		return "declarationCreated"
	case EventSignatureCreated:
		return "signatureCreated"
	case EventParameterCreated:
		return "parameterCreated"
	case EventTypeParameterCreated:
		return "typeParameterCreated"
	case EventFunctionImplementationFound:
		return "functionImplementationFound"
	case EventResolveBegin:
		return "resolveBegin"
	case EventResolve:
		return "resolve"
	case EventResolveEnd:
		return "resolveEnd"
	default:
		return common.UnknownStr
	}
}

// Event is the payload delivered to observers. Context is always set.
// Reflection is set for the created/resolve events; Node is set when the
// event originated at a specific syntax node (nil for synthetic creations
// and run-level events).
type Event struct {
	Kind       EventKind
	Context    *Context
	Reflection *model.Reflection
	Node       ast.Node
}

// Observer receives lifecycle events. Observers run synchronously, in
// registration order, and may mutate the context and graph before control
// returns to the orchestrator.
type Observer func(Event)

// On subscribes an observer to one event kind.
func (c *Converter) On(kind EventKind, fn Observer) {
	c.observers[kind] = append(c.observers[kind], fn)
}

func (c *Converter) emit(ev Event) {
	for _, fn := range c.observers[ev.Kind] {
		fn(ev)
	}
}
