package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuraiJack/typedoc/internal/analyze"
	"github.com/SamuraiJack/typedoc/internal/convert"
	"github.com/SamuraiJack/typedoc/internal/diagnostic"
	"github.com/SamuraiJack/typedoc/internal/model"
)

func loadFixture(t *testing.T, dir string) *analyze.Program {
	t.Helper()

	prog, err := analyze.Load(analyze.Config{Dir: dir}, "./...")
	require.NoError(t, err)

	return prog
}

func convertFixture(t *testing.T, dir string, opts convert.Options) *model.Project {
	t.Helper()

	diags, project := convert.New(opts).Convert(loadFixture(t, dir))
	require.Empty(t, diags)

	return project
}

func findByName(root *model.Reflection, kind model.Kind, name string) *model.Reflection {
	var found *model.Reflection
	model.WalkReflections(root, func(r *model.Reflection) {
		if found == nil && r.Kind == kind && r.Name == name {
			found = r
		}
	})

	return found
}

func TestConvertShapesDeclarations(t *testing.T) {
	project := convertFixture(t, "../../examples/shapes", convert.Options{Name: "shapes-docs"})

	assert.Equal(t, "shapes-docs", project.Name)

	pkg := findByName(&project.Reflection, model.KindPackage, "github.com/SamuraiJack/typedoc/examples/shapes")
	require.NotNil(t, pkg)
	assert.Contains(t, pkg.Comment, "fixture")

	point := findByName(pkg, model.KindStruct, "Point")
	require.NotNil(t, point)
	assert.True(t, point.Flags.Exported)
	require.NotNil(t, findByName(point, model.KindField, "X"))
	require.NotNil(t, findByName(point, model.KindField, "Y"))

	unit := findByName(pkg, model.KindConstant, "Unit")
	require.NotNil(t, unit)
	assert.Equal(t, `"px"`, unit.DefaultValue)

	origin := findByName(pkg, model.KindVariable, "Origin")
	require.NotNil(t, origin)

	alias := findByName(pkg, model.KindAlias, "ID")
	require.NotNil(t, alias)
	require.NotNil(t, alias.Type)
	assert.Equal(t, "int64", alias.Type.String())

	// Unexported declarations stay out without the opt-in.
	assert.Nil(t, findByName(pkg, model.KindStruct, "bounds"))
}

func TestConvertShapesMethods(t *testing.T) {
	project := convertFixture(t, "../../examples/shapes", convert.Options{Name: "shapes-docs"})

	point := findByName(&project.Reflection, model.KindStruct, "Point")
	require.NotNil(t, point)

	translate := findByName(point, model.KindMethod, "Translate")
	require.NotNil(t, translate)
	sigs := translate.Signatures()
	require.Len(t, sigs, 1)

	params := sigs[0].Parameters()
	require.Len(t, params, 2)
	assert.Equal(t, "dx", params[0].Name)
	assert.Equal(t, "dy", params[1].Name)
	require.NotNil(t, sigs[0].Type)
	assert.Contains(t, sigs[0].Type.String(), "Point")

	// Pointer receivers attach to the same declaration reflection.
	circle := findByName(&project.Reflection, model.KindStruct, "Circle")
	require.NotNil(t, circle)
	require.NotNil(t, findByName(circle, model.KindMethod, "Area"))
}

func TestConvertShapesEmbedding(t *testing.T) {
	project := convertFixture(t, "../../examples/shapes", convert.Options{Name: "shapes-docs"})

	rect := findByName(&project.Reflection, model.KindStruct, "Rect")
	require.NotNil(t, rect)

	embedded := findByName(rect, model.KindField, "Point")
	require.NotNil(t, embedded)
	assert.True(t, embedded.Flags.Embedded)
}

func TestConvertShapesInterfaces(t *testing.T) {
	project := convertFixture(t, "../../examples/shapes", convert.Options{Name: "shapes-docs"})

	shape := findByName(&project.Reflection, model.KindInterface, "Shape")
	require.NotNil(t, shape)
	area := findByName(shape, model.KindMethod, "Area")
	require.NotNil(t, area)
	require.Len(t, area.Signatures(), 1)

	// A single embedded interface folds to a plain reference.
	named := findByName(&project.Reflection, model.KindInterface, "Named")
	require.NotNil(t, named)
	require.NotNil(t, findByName(named, model.KindMethod, "Name"))
	require.NotNil(t, named.Type)
	assert.Contains(t, named.Type.String(), "Shape")
}

func TestConvertResolvesReferences(t *testing.T) {
	project := convertFixture(t, "../../examples/shapes", convert.Options{Name: "shapes-docs"})

	point := findByName(&project.Reflection, model.KindStruct, "Point")
	require.NotNil(t, point)
	origin := findByName(&project.Reflection, model.KindVariable, "Origin")
	require.NotNil(t, origin)

	ref, ok := origin.Type.(*model.ReferenceType)
	require.True(t, ok, "Origin documents a reference, got %T", origin.Type)
	assert.Equal(t, point.ID, ref.Target)
	assert.False(t, ref.External)
	assert.Empty(t, project.Dangling)
}

func TestConvertIncludeUnexported(t *testing.T) {
	project := convertFixture(t, "../../examples/shapes", convert.Options{
		Name:              "shapes-docs",
		IncludeUnexported: true,
	})

	bounds := findByName(&project.Reflection, model.KindStruct, "bounds")
	require.NotNil(t, bounds)
	assert.False(t, bounds.Flags.Exported)
	require.NotNil(t, findByName(bounds, model.KindField, "Min"))
}

func TestConvertGenerics(t *testing.T) {
	project := convertFixture(t, "../../examples/generics", convert.Options{Name: "generics-docs"})

	pair := findByName(&project.Reflection, model.KindStruct, "Pair")
	require.NotNil(t, pair)
	tps := pair.TypeParameters()
	require.Len(t, tps, 2)
	assert.Equal(t, "K", tps[0].Name)
	assert.Equal(t, "V", tps[1].Name)

	sum := findByName(&project.Reflection, model.KindFunction, "Sum")
	require.NotNil(t, sum)
	sigs := sum.Signatures()
	require.Len(t, sigs, 1)
	require.Len(t, sigs[0].TypeParameters(), 1)
	assert.Equal(t, "T", sigs[0].TypeParameters()[0].Name)

	require.NotNil(t, findByName(&project.Reflection, model.KindInterface, "Number"))

	// An instantiated generic reference carries its type arguments.
	index := findByName(&project.Reflection, model.KindStruct, "Index")
	require.NotNil(t, index)
	all := findByName(index, model.KindField, "All")
	require.NotNil(t, all)
	ref, ok := all.Type.(*model.ReferenceType)
	require.True(t, ok, "All documents a reference, got %T", all.Type)
	assert.Equal(t, "List", ref.Name)
	require.Len(t, ref.TypeArguments, 1)
	assert.Equal(t, "string", ref.TypeArguments[0].String())
}

func TestConvertSelfReferentialType(t *testing.T) {
	project := convertFixture(t, "../../examples/recursive", convert.Options{Name: "recursive-docs"})

	tree := findByName(&project.Reflection, model.KindStruct, "Tree")
	require.NotNil(t, tree)

	kids := findByName(tree, model.KindField, "Kids")
	require.NotNil(t, kids)
	arr, ok := kids.Type.(*model.ArrayType)
	require.True(t, ok, "Kids documents a slice, got %T", kids.Type)
	ptr, ok := arr.Elem.(*model.PointerType)
	require.True(t, ok, "Kids element documents a pointer, got %T", arr.Elem)
	ref, ok := ptr.Elem.(*model.ReferenceType)
	require.True(t, ok, "Kids pointee documents a reference, got %T", ptr.Elem)
	assert.Equal(t, "Tree", ref.Name)
	assert.Equal(t, tree.ID, ref.Target)

	// The declaration that mentions its own type converts exactly once.
	trees := 0
	model.WalkReflections(&project.Reflection, func(r *model.Reflection) {
		if r.Kind == model.KindStruct && r.Name == "Tree" {
			trees++
		}
	})
	assert.Equal(t, 1, trees)
	assert.Empty(t, project.Dangling)
}

func TestConvertMutuallyRecursiveTypes(t *testing.T) {
	project := convertFixture(t, "../../examples/recursive", convert.Options{Name: "recursive-docs"})

	ring := findByName(&project.Reflection, model.KindStruct, "Ring")
	require.NotNil(t, ring)
	link := findByName(&project.Reflection, model.KindStruct, "Link")
	require.NotNil(t, link)

	// Ring reaches Link, and Link reaches back, across two files. Both
	// directions must land on the same pair of reflections.
	head := findByName(ring, model.KindField, "Head")
	require.NotNil(t, head)
	ptr, ok := head.Type.(*model.PointerType)
	require.True(t, ok, "Head documents a pointer, got %T", head.Type)
	ref, ok := ptr.Elem.(*model.ReferenceType)
	require.True(t, ok, "Head pointee documents a reference, got %T", ptr.Elem)
	assert.Equal(t, link.ID, ref.Target)

	parent := findByName(link, model.KindField, "Parent")
	require.NotNil(t, parent)
	backPtr, ok := parent.Type.(*model.PointerType)
	require.True(t, ok, "Parent documents a pointer, got %T", parent.Type)
	backRef, ok := backPtr.Elem.(*model.ReferenceType)
	require.True(t, ok, "Parent pointee documents a reference, got %T", backPtr.Elem)
	assert.Equal(t, ring.ID, backRef.Target)

	for _, name := range []string{"Ring", "Link"} {
		seen := 0
		model.WalkReflections(&project.Reflection, func(r *model.Reflection) {
			if r.Kind == model.KindStruct && r.Name == name {
				seen++
			}
		})
		assert.Equal(t, 1, seen, "%s converted exactly once", name)
	}
	assert.Empty(t, project.Dangling)
}

func TestConvertAbortsOnBadExcludePattern(t *testing.T) {
	prog := loadFixture(t, "../../examples/shapes")

	diags, project := convert.New(convert.Options{Exclude: []string{"[bad"}}).Convert(prog)

	require.Len(t, diags, 1)
	assert.Equal(t, "bad_exclude_pattern", diags[0].Code)
	assert.Equal(t, diagnostic.CategoryOptions, diags[0].Category)
	assert.Equal(t, 1, project.Count(), "aborted run leaves only the root")
}

func TestConvertAbortsOnTypeErrors(t *testing.T) {
	prog := loadFixture(t, "../analyze/testdata/broken")

	diags, project := convert.New(convert.Options{}).Convert(prog)

	require.NotEmpty(t, diags)
	assert.Equal(t, diagnostic.CategorySemantic, diags[0].Category)
	assert.Equal(t, 1, project.Count())
}

func TestConvertSkipErrorChecking(t *testing.T) {
	prog := loadFixture(t, "../analyze/testdata/broken")

	diags, project := convert.New(convert.Options{SkipErrorChecking: true}).Convert(prog)

	assert.Empty(t, diags)
	require.NotNil(t, findByName(&project.Reflection, model.KindFunction, "Bad"))
}

func TestConvertExcludedFilesProduceNothing(t *testing.T) {
	prog := loadFixture(t, "../../examples/shapes")

	diags, project := convert.New(convert.Options{Exclude: []string{"*.go"}}).Convert(prog)

	assert.Empty(t, diags)
	assert.Equal(t, 1, project.Count())
}

func TestConvertMultipleFilesShareOnePackage(t *testing.T) {
	project := convertFixture(t, "../../examples/shapes", convert.Options{Name: "shapes-docs"})

	// The fixture spans two files; both land under a single package
	// reflection, the root's only child.
	require.Len(t, project.Children, 1)
	pkg := project.Children[0]
	assert.Equal(t, model.KindPackage, pkg.Kind)

	require.NotNil(t, findByName(pkg, model.KindConstant, "Version"))
	require.NotNil(t, findByName(pkg, model.KindFunction, "Perimeter"))
	require.NotNil(t, findByName(pkg, model.KindStruct, "Rect"))

	// Reaching Rect through both its own file and the cross-file uses in
	// extra.go must not create duplicates.
	rects := 0
	model.WalkReflections(pkg, func(r *model.Reflection) {
		if r.Kind == model.KindStruct && r.Name == "Rect" {
			rects++
		}
	})
	assert.Equal(t, 1, rects)
}

func TestConvertEveryReflectionHasOneParent(t *testing.T) {
	project := convertFixture(t, "../../examples/shapes", convert.Options{Name: "shapes-docs"})

	reachable := 0
	model.WalkReflections(&project.Reflection, func(r *model.Reflection) {
		reachable++
		if r == &project.Reflection {
			assert.Nil(t, r.Parent)
			return
		}
		require.NotNil(t, r.Parent, "%s has no parent", r)
		assert.Contains(t, r.Parent.Children, r)
	})

	assert.Equal(t, project.Count(), reachable, "registered reflections all reachable from the root")
}

func TestConvertDanglingAfterRemoval(t *testing.T) {
	prog := loadFixture(t, "../../examples/shapes")
	conv := convert.New(convert.Options{Name: "shapes-docs"})

	// Drop the Point declaration right before linking; references at it
	// must be reported dangling, exactly once, without failing the run.
	conv.On(convert.EventResolveBegin, func(ev convert.Event) {
		point := findByName(&ev.Context.Project.Reflection, model.KindStruct, "Point")
		require.NotNil(t, point)
		ev.Context.Project.Remove(point)
	})

	diags, project := conv.Convert(prog)

	assert.Empty(t, diags)
	assert.Equal(t, []string{"Point"}, project.Dangling)
}
