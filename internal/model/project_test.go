package model

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSymbol(name string) types.Object {
	pkg := types.NewPackage("example.com/fixture", "fixture")
	return types.NewTypeName(token.NoPos, pkg, name, types.Typ[types.Int])
}

func TestNewProjectRegistersRoot(t *testing.T) {
	p := NewProject("demo")

	assert.Equal(t, 1, p.ID)
	assert.Equal(t, KindProject, p.Kind)
	assert.Same(t, &p.Reflection, p.ByID(1))
	assert.Equal(t, 1, p.Count())
}

func TestCreateReflectionAssignsMonotonicIDs(t *testing.T) {
	p := NewProject("demo")

	a := p.CreateReflection("a", KindPackage, nil)
	b := p.CreateReflection("b", KindStruct, a)

	assert.Equal(t, 2, a.ID)
	assert.Equal(t, 3, b.ID)
	assert.Same(t, &p.Reflection, a.Parent)
	assert.Same(t, a, b.Parent)
	assert.Equal(t, []int{1, 2, 3}, p.IDs())
}

func TestRemoveDetachesEverywhere(t *testing.T) {
	p := NewProject("demo")
	sym := testSymbol("Gone")

	r := p.CreateReflection("Gone", KindStruct, nil)
	p.RegisterSymbol(sym, r)

	p.Remove(r)

	assert.Nil(t, p.ByID(r.ID))
	assert.Nil(t, p.ForSymbol(sym))
	assert.Empty(t, p.Children)
	// The value itself stays usable after detachment.
	assert.Equal(t, "Gone", r.Name)
}

func TestRemoveRootIsNoOp(t *testing.T) {
	p := NewProject("demo")

	p.Remove(&p.Reflection)

	assert.Equal(t, 1, p.Count())
	assert.Same(t, &p.Reflection, p.ByID(1))
}

func TestResolveReferencesLinksTargets(t *testing.T) {
	p := NewProject("demo")
	sym := testSymbol("Point")
	r := p.CreateReflection("Point", KindStruct, nil)
	p.RegisterSymbol(sym, r)

	ref := &ReferenceType{Name: "Point", Symbol: sym}
	p.TrackReference(ref)

	dangling := p.ResolveReferences()

	assert.Empty(t, dangling)
	assert.Equal(t, r.ID, ref.Target)
}

func TestResolveReferencesReportsDanglingOnce(t *testing.T) {
	p := NewProject("demo")
	sym := testSymbol("Missing")

	// Two references at the same missing symbol report one dangling name.
	first := &ReferenceType{Name: "Missing", Symbol: sym}
	second := &ReferenceType{Name: "Missing", Symbol: sym}
	p.TrackReference(first)
	p.TrackReference(second)

	dangling := p.ResolveReferences()

	require.Equal(t, []string{"Missing"}, dangling)
	assert.Equal(t, dangling, p.Dangling)
	assert.Zero(t, first.Target)
	assert.Zero(t, second.Target)
}

func TestResolveReferencesSkipsExternal(t *testing.T) {
	p := NewProject("demo")

	p.TrackReference(&ReferenceType{Name: "Time", Symbol: testSymbol("Time"), External: true})
	p.TrackReference(&ReferenceType{Name: "synthetic"})

	assert.Empty(t, p.ResolveReferences())
}

func TestResolveReferencesClearsStaleTarget(t *testing.T) {
	p := NewProject("demo")
	sym := testSymbol("Point")
	r := p.CreateReflection("Point", KindStruct, nil)
	p.RegisterSymbol(sym, r)

	ref := &ReferenceType{Name: "Point", Symbol: sym}
	p.TrackReference(ref)
	require.Empty(t, p.ResolveReferences())
	require.Equal(t, r.ID, ref.Target)

	// A plugin removed the target between resolve passes.
	p.Remove(r)
	dangling := p.ResolveReferences()

	assert.Equal(t, []string{"Point"}, dangling)
	assert.Zero(t, ref.Target)
}
