package model

import (
	"go/types"
	"sort"

	"github.com/SamuraiJack/typedoc/internal/common"
)

// Project is the unique root of a reflection graph. It owns identity
// assignment, the id-to-reflection mapping, the symbol-to-reflection lookup
// used for cross-referencing, and the dangling-reference report.
type Project struct {
	Reflection

	byID     map[int]*Reflection
	bySymbol map[types.Object]*Reflection
	nextID   int

	// references holds every by-symbol reference created during conversion,
	// resolved (or reported dangling) after the resolve pass.
	references []*ReferenceType

	// Dangling lists the reference names that failed to resolve, filled by
	// ResolveReferences. Non-fatal: a populated list still means a
	// successful run.
	Dangling []string
}

// NewProject creates an empty project root with the given name.
func NewProject(name string) *Project {
	p := &Project{
		byID:     make(map[int]*Reflection),
		bySymbol: make(map[types.Object]*Reflection),
		nextID:   1,
	}
	p.Reflection = Reflection{Name: name, Kind: KindProject}
	p.register(&p.Reflection)

	return p
}

func (p *Project) register(r *Reflection) {
	r.ID = p.nextID
	p.nextID++
	p.byID[r.ID] = r
}

// CreateReflection creates a reflection, assigns its identity, and attaches
// it to parent. The project root is used when parent is nil.
func (p *Project) CreateReflection(name string, kind Kind, parent *Reflection) *Reflection {
	if parent == nil {
		parent = &p.Reflection
	}

	r := &Reflection{Name: name, Kind: kind}
	p.register(r)
	parent.AddChild(r)

	return r
}

// ByID returns the reflection with the given id, or nil.
func (p *Project) ByID(id int) *Reflection {
	return p.byID[id]
}

// IDs returns a sorted snapshot of every registered reflection id.
// Snapshotting lets callers iterate safely while reflections are added or
// removed mid-pass.
func (p *Project) IDs() []int {
	ids := make([]int, 0, len(p.byID))
	for id := range p.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Count returns the number of registered reflections, the root included.
func (p *Project) Count() int {
	return len(p.byID)
}

// RegisterSymbol records that sym is documented by r, enabling by-symbol
// cross-references.
func (p *Project) RegisterSymbol(sym types.Object, r *Reflection) {
	if sym == nil || r == nil {
		return
	}
	p.bySymbol[sym] = r
}

// ForSymbol returns the reflection documenting sym, or nil.
func (p *Project) ForSymbol(sym types.Object) *Reflection {
	if sym == nil {
		return nil
	}

	return p.bySymbol[sym]
}

// Remove deletes r from the id mapping, its parent's child list, and the
// symbol lookup. The reflection value itself stays valid; it is simply no
// longer part of the graph. Removing the root is not allowed and is a no-op.
func (p *Project) Remove(r *Reflection) {
	if r == nil || r == &p.Reflection {
		return
	}

	delete(p.byID, r.ID)
	if r.Parent != nil {
		r.Parent.RemoveChild(r)
	}
	for sym, ref := range p.bySymbol {
		if ref == r {
			delete(p.bySymbol, sym)
		}
	}
}

// TrackReference records a reference for post-resolve linking.
func (p *Project) TrackReference(ref *ReferenceType) {
	if ref == nil {
		return
	}
	p.references = append(p.references, ref)
}

// ResolveReferences links every tracked reference to its target reflection
// and returns the names that could not be resolved, deduplicated, in first
// occurrence order. External references (symbols outside the analyzed
// packages) are not considered dangling.
func (p *Project) ResolveReferences() []string {
	var dangling []string
	for _, ref := range p.references {
		if ref.External || ref.Symbol == nil {
			continue
		}
		if target := p.ForSymbol(ref.Symbol); target != nil {
			ref.Target = target.ID
			continue
		}
		ref.Target = 0
		dangling = append(dangling, ref.Name)
	}

	p.Dangling = common.Dedup(dangling)
	return p.Dangling
}
