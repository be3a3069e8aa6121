// Package render serializes a finished documentation project into portable
// artifacts. The in-memory graph is first lowered to a plain document tree
// with stable field names, then encoded as JSON or YAML.
package render

import (
	"strconv"

	"github.com/SamuraiJack/typedoc/internal/model"
)

// SchemaVersion identifies the artifact layout. Bumped on breaking changes
// to the document tree.
const SchemaVersion = "typedoc/1"

// Document is the top-level artifact.
type Document struct {
	Schema   string   `json:"schema" yaml:"schema"`
	Dangling []string `json:"dangling,omitempty" yaml:"dangling,omitempty"`
	Root     *Node    `json:"root" yaml:"root"`
}

// Node is the serialized form of one reflection.
type Node struct {
	ID           int      `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Kind         string   `json:"kind" yaml:"kind"`
	Comment      string   `json:"comment,omitempty" yaml:"comment,omitempty"`
	Exported     bool     `json:"exported,omitempty" yaml:"exported,omitempty"`
	Embedded     bool     `json:"embedded,omitempty" yaml:"embedded,omitempty"`
	Variadic     bool     `json:"variadic,omitempty" yaml:"variadic,omitempty"`
	Type         *TypeDoc `json:"type,omitempty" yaml:"type,omitempty"`
	DefaultValue string   `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Children     []*Node  `json:"children,omitempty" yaml:"children,omitempty"`
}

// TypeDoc is the serialized form of one type occurrence, discriminated by
// Kind.
type TypeDoc struct {
	Kind string `json:"kind" yaml:"kind"`

	// Intrinsic, reference, typeParam, unknown.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Reference only.
	Package       string     `json:"package,omitempty" yaml:"package,omitempty"`
	Target        int        `json:"target,omitempty" yaml:"target,omitempty"`
	External      bool       `json:"external,omitempty" yaml:"external,omitempty"`
	TypeArguments []*TypeDoc `json:"typeArguments,omitempty" yaml:"typeArguments,omitempty"`

	// Containers.
	Elem *TypeDoc `json:"elem,omitempty" yaml:"elem,omitempty"`
	Key  *TypeDoc `json:"key,omitempty" yaml:"key,omitempty"`
	Len  string   `json:"len,omitempty" yaml:"len,omitempty"`
	Dir  string   `json:"dir,omitempty" yaml:"dir,omitempty"`

	// Tuples and unions.
	Elems []*TypeDoc `json:"elems,omitempty" yaml:"elems,omitempty"`
	Terms []*Term    `json:"terms,omitempty" yaml:"terms,omitempty"`

	// Function types.
	Params   []*TypeDoc `json:"params,omitempty" yaml:"params,omitempty"`
	Results  []*TypeDoc `json:"results,omitempty" yaml:"results,omitempty"`
	Variadic bool       `json:"variadic,omitempty" yaml:"variadic,omitempty"`
}

// Term is one alternative of a serialized union type.
type Term struct {
	Tilde bool     `json:"tilde,omitempty" yaml:"tilde,omitempty"`
	Type  *TypeDoc `json:"type" yaml:"type"`
}

// BuildDocument lowers a project graph into its serializable document tree.
func BuildDocument(p *model.Project) *Document {
	return &Document{
		Schema:   SchemaVersion,
		Dangling: p.Dangling,
		Root:     buildNode(&p.Reflection),
	}
}

func buildNode(r *model.Reflection) *Node {
	n := &Node{
		ID:           r.ID,
		Name:         r.Name,
		Kind:         r.Kind.String(),
		Comment:      r.Comment,
		Exported:     r.Flags.Exported,
		Embedded:     r.Flags.Embedded,
		Variadic:     r.Flags.Variadic,
		Type:         buildType(r.Type),
		DefaultValue: r.DefaultValue,
	}
	for _, child := range r.Children {
		n.Children = append(n.Children, buildNode(child))
	}

	return n
}

func buildType(t model.Type) *TypeDoc {
	switch t := t.(type) {
	case nil:
		return nil
	case *model.IntrinsicType:
		return &TypeDoc{Kind: "intrinsic", Name: t.Name}
	case *model.ReferenceType:
		doc := &TypeDoc{
			Kind:     "reference",
			Name:     t.Name,
			Package:  t.Package,
			Target:   t.Target,
			External: t.External,
		}
		for _, arg := range t.TypeArguments {
			doc.TypeArguments = append(doc.TypeArguments, buildType(arg))
		}

		return doc
	case *model.PointerType:
		return &TypeDoc{Kind: "pointer", Elem: buildType(t.Elem)}
	case *model.ArrayType:
		if t.Len < 0 {
			return &TypeDoc{Kind: "slice", Elem: buildType(t.Elem)}
		}

		return &TypeDoc{
			Kind: "array",
			Elem: buildType(t.Elem),
			Len:  strconv.FormatInt(t.Len, 10),
		}
	case *model.MapType:
		return &TypeDoc{Kind: "map", Key: buildType(t.Key), Elem: buildType(t.Elem)}
	case *model.ChanType:
		return &TypeDoc{Kind: "chan", Dir: chanDir(t.Dir), Elem: buildType(t.Elem)}
	case *model.TupleType:
		doc := &TypeDoc{Kind: "tuple"}
		for _, e := range t.Elems {
			doc.Elems = append(doc.Elems, buildType(e))
		}

		return doc
	case *model.UnionType:
		doc := &TypeDoc{Kind: "union"}
		for _, term := range t.Terms {
			doc.Terms = append(doc.Terms, &Term{Tilde: term.Tilde, Type: buildType(term.Type)})
		}

		return doc
	case *model.FuncType:
		doc := &TypeDoc{Kind: "func", Variadic: t.Variadic}
		for _, p := range t.Params {
			doc.Params = append(doc.Params, buildType(p))
		}
		for _, r := range t.Results {
			doc.Results = append(doc.Results, buildType(r))
		}

		return doc
	case *model.TypeParamType:
		return &TypeDoc{Kind: "typeParam", Name: t.Name}
	default:
		return &TypeDoc{Kind: "unknown", Name: t.String()}
	}
}

func chanDir(d model.ChanDir) string {
	switch d {
	case model.ChanSend:
		return "send"
	case model.ChanReceive:
		return "receive"
	default:
		return "both"
	}
}
