package model

// UnionType is an ordered set of alternative types, produced from interface
// type-set embeddings (`int | ~string`).
type UnionType struct {
	Terms []UnionTerm
}

// UnionTerm is one alternative of a union. Tilde marks approximation
// (underlying-type) terms.
type UnionTerm struct {
	Tilde bool
	Type  Type
}

func (*UnionType) typeNode() {}

func (t *UnionType) String() string {
	out := ""
	for i, term := range t.Terms {
		if i > 0 {
			out += " | "
		}
		if term.Tilde {
			out += "~"
		}
		out += term.Type.String()
	}

	return out
}
