package model

import "github.com/SamuraiJack/typedoc/internal/common"

// Reflection is a node in the documentation graph. Every reflection except
// the project root has exactly one parent and appears in exactly one parent's
// child list. Reflections are created by node converters and mutated freely
// until the run finishes; they are never destroyed, only detached.
type Reflection struct {
	// ID uniquely identifies the reflection within its project. IDs are
	// assigned monotonically at registration, so ascending ID order is
	// creation order.
	ID int

	// Name is the declared name, or a synthetic one for anonymous members.
	Name string

	// Kind tags the structural role of this reflection.
	Kind Kind

	// Parent owns this reflection; nil only for the project root.
	Parent *Reflection

	// Children holds owned reflections in declaration order.
	Children []*Reflection

	// Comment is the associated doc comment, trimmed.
	Comment string

	// Flags carries orthogonal properties (exported, embedded, variadic).
	Flags Flags

	// Type is the documented type occurrence, when the kind has one
	// (fields, variables, parameters, alias targets, signature returns).
	Type Type

	// DefaultValue is the rendered constant value for constant reflections.
	DefaultValue string
}

// AddChild appends child to r's child list and sets its parent.
// A child already owned elsewhere is detached from its previous parent first.
func (r *Reflection) AddChild(child *Reflection) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = r
	r.Children = append(r.Children, child)
}

// RemoveChild detaches child from r, clearing its parent link.
// It is a no-op when child is not owned by r.
func (r *Reflection) RemoveChild(child *Reflection) {
	for i, c := range r.Children {
		if c == child {
			r.Children = append(r.Children[:i], r.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// ChildrenOfKind returns the owned reflections with the given kind,
// preserving declaration order.
func (r *Reflection) ChildrenOfKind(kind Kind) []*Reflection {
	var out []*Reflection
	for _, c := range r.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}

	return out
}

// Signatures returns the owned signature reflections.
func (r *Reflection) Signatures() []*Reflection {
	return r.ChildrenOfKind(KindSignature)
}

// Parameters returns the owned parameter reflections.
func (r *Reflection) Parameters() []*Reflection {
	return r.ChildrenOfKind(KindParameter)
}

// TypeParameters returns the owned type-parameter reflections.
func (r *Reflection) TypeParameters() []*Reflection {
	return r.ChildrenOfKind(KindTypeParameter)
}

// HasChildren reports whether the reflection owns any children.
func (r *Reflection) HasChildren() bool {
	return !common.IsEmpty(r.Children)
}

// FullName returns the dotted path from the first named ancestor below the
// project down to this reflection.
func (r *Reflection) FullName() string {
	if r.Parent == nil || r.Parent.Kind == KindProject {
		return r.Name
	}

	return r.Parent.FullName() + "." + r.Name
}

// String returns "kind name" for debugging.
func (r *Reflection) String() string {
	return r.Kind.String() + " " + r.Name
}
