package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuraiJack/typedoc/internal/convert"
)

func TestRunEventOrder(t *testing.T) {
	prog := loadFixture(t, "../../examples/shapes")
	conv := convert.New(convert.Options{Name: "shapes-docs"})

	var order []convert.EventKind
	record := func(ev convert.Event) { order = append(order, ev.Kind) }
	for _, kind := range []convert.EventKind{
		convert.EventBeginRun,
		convert.EventEndRun,
		convert.EventFileBegin,
		convert.EventResolveBegin,
		convert.EventResolveEnd,
	} {
		conv.On(kind, record)
	}

	diags, _ := conv.Convert(prog)
	require.Empty(t, diags)

	// Two fixture files, so FileBegin fires twice between BeginRun and
	// the resolve pair.
	require.Len(t, order, 6)
	assert.Equal(t, convert.EventBeginRun, order[0])
	assert.Equal(t, convert.EventFileBegin, order[1])
	assert.Equal(t, convert.EventFileBegin, order[2])
	assert.Equal(t, convert.EventResolveBegin, order[3])
	assert.Equal(t, convert.EventResolveEnd, order[4])
	assert.Equal(t, convert.EventEndRun, order[5])
}

func TestResolveVisitsEveryReflectionOnce(t *testing.T) {
	prog := loadFixture(t, "../../examples/shapes")
	conv := convert.New(convert.Options{Name: "shapes-docs"})

	seen := map[int]int{}
	conv.On(convert.EventResolve, func(ev convert.Event) {
		seen[ev.Reflection.ID]++
	})

	diags, project := conv.Convert(prog)
	require.Empty(t, diags)

	assert.Len(t, seen, project.Count())
	for id, count := range seen {
		assert.Equal(t, 1, count, "reflection %d resolved more than once", id)
	}
}

func TestObserversRunInRegistrationOrder(t *testing.T) {
	prog := loadFixture(t, "../../examples/shapes")
	conv := convert.New(convert.Options{Name: "shapes-docs"})

	var order []string
	conv.On(convert.EventBeginRun, func(convert.Event) { order = append(order, "first") })
	conv.On(convert.EventBeginRun, func(convert.Event) { order = append(order, "second") })

	diags, _ := conv.Convert(prog)
	require.Empty(t, diags)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestAbortedRunStillEndsRun(t *testing.T) {
	prog := loadFixture(t, "../analyze/testdata/broken")
	conv := convert.New(convert.Options{})

	var kinds []convert.EventKind
	conv.On(convert.EventBeginRun, func(ev convert.Event) { kinds = append(kinds, ev.Kind) })
	conv.On(convert.EventEndRun, func(ev convert.Event) { kinds = append(kinds, ev.Kind) })
	conv.On(convert.EventFileBegin, func(ev convert.Event) { kinds = append(kinds, ev.Kind) })

	diags, _ := conv.Convert(prog)
	require.NotEmpty(t, diags)

	assert.Equal(t, []convert.EventKind{convert.EventBeginRun, convert.EventEndRun}, kinds)
}

func TestImplementationEventFiresForBodies(t *testing.T) {
	prog := loadFixture(t, "../../examples/shapes")
	conv := convert.New(convert.Options{Name: "shapes-docs"})

	impls := map[string]bool{}
	conv.On(convert.EventFunctionImplementationFound, func(ev convert.Event) {
		impls[ev.Reflection.Name] = true
	})

	diags, _ := conv.Convert(prog)
	require.Empty(t, diags)

	assert.True(t, impls["Scale"])
	assert.True(t, impls["Translate"])
}
