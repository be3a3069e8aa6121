package model

// FuncType is a function type occurrence (a `func(...)` appearing as a
// field, parameter, or element type, as opposed to a declared function,
// which becomes a signature reflection).
type FuncType struct {
	Params   []Type
	Results  []Type
	Variadic bool
}

func (*FuncType) typeNode() {}

func (t *FuncType) String() string {
	out := "func("
	for i, p := range t.Params {
		if i > 0 {
			out += ", "
		}
		if t.Variadic && i == len(t.Params)-1 {
			out += "..."
		}
		out += p.String()
	}
	out += ")"

	switch len(t.Results) {
	case 0:
		return out
	case 1:
		return out + " " + t.Results[0].String()
	default:
		return out + " " + (&TupleType{Elems: t.Results}).String()
	}
}
