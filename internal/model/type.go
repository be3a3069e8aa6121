package model

import "fmt"

// Type is a value object describing a single type occurrence in the
// documentation. Types are owned by whichever reflection or type references
// them. The value-object graph is acyclic: cyclic declarations are broken
// upstream by the converter's visit stack before a cycle can form here.
type Type interface {
	fmt.Stringer
	typeNode()
}

// UnknownType stands in for type occurrences no converter handled.
type UnknownType struct {
	// Repr is the engine's textual rendering of the type.
	Repr string
}

func (*UnknownType) typeNode() {}

func (t *UnknownType) String() string {
	if t.Repr == "" {
		return "unknown"
	}

	return t.Repr
}
