package model

import "strconv"

// PointerType is a pointer occurrence.
type PointerType struct {
	Elem Type
}

func (*PointerType) typeNode() {}

func (t *PointerType) String() string { return "*" + t.Elem.String() }

// ArrayType is a slice or array occurrence. Len is -1 for slices.
type ArrayType struct {
	Elem Type
	Len  int64
}

func (*ArrayType) typeNode() {}

func (t *ArrayType) String() string {
	if t.Len < 0 {
		return "[]" + t.Elem.String()
	}

	return "[" + strconv.FormatInt(t.Len, 10) + "]" + t.Elem.String()
}

// MapType is a map occurrence.
type MapType struct {
	Key  Type
	Elem Type
}

func (*MapType) typeNode() {}

func (t *MapType) String() string {
	return "map[" + t.Key.String() + "]" + t.Elem.String()
}

// ChanDir mirrors the channel direction of the occurrence.
type ChanDir int

const (
	ChanBidirectional ChanDir = iota
	ChanSend
	ChanReceive
)

// ChanType is a channel occurrence.
type ChanType struct {
	Dir  ChanDir
	Elem Type
}

func (*ChanType) typeNode() {}

func (t *ChanType) String() string {
	switch t.Dir {
	case ChanSend:
		return "chan<- " + t.Elem.String()
	case ChanReceive:
		return "<-chan " + t.Elem.String()
	default:
		return "chan " + t.Elem.String()
	}
}

// TupleType is an ordered sequence of types, used for multi-value returns.
type TupleType struct {
	Elems []Type
}

func (*TupleType) typeNode() {}

func (t *TupleType) String() string {
	out := "("
	for i, e := range t.Elems {
		if i > 0 {
			out += ", "
		}
		out += e.String()
	}

	return out + ")"
}
