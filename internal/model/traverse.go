package model

// WalkTypes calls fn for t and every type value reachable from it.
// The walk is depth-first in declaration order. A nil type is ignored.
func WalkTypes(t Type, fn func(Type)) {
	if t == nil {
		return
	}
	fn(t)

	switch tt := t.(type) {
	case *ReferenceType:
		for _, a := range tt.TypeArguments {
			WalkTypes(a, fn)
		}
	case *PointerType:
		WalkTypes(tt.Elem, fn)
	case *ArrayType:
		WalkTypes(tt.Elem, fn)
	case *MapType:
		WalkTypes(tt.Key, fn)
		WalkTypes(tt.Elem, fn)
	case *ChanType:
		WalkTypes(tt.Elem, fn)
	case *TupleType:
		for _, e := range tt.Elems {
			WalkTypes(e, fn)
		}
	case *UnionType:
		for _, term := range tt.Terms {
			WalkTypes(term.Type, fn)
		}
	case *FuncType:
		for _, p := range tt.Params {
			WalkTypes(p, fn)
		}
		for _, r := range tt.Results {
			WalkTypes(r, fn)
		}
	}
}

// WalkReflections calls fn for r and every reflection owned below it,
// depth-first in declaration order.
func WalkReflections(r *Reflection, fn func(*Reflection)) {
	if r == nil {
		return
	}
	fn(r)
	for _, c := range r.Children {
		WalkReflections(c, fn)
	}
}
