package diagnostic

import "github.com/SamuraiJack/typedoc/internal/common"

// Category identifies which of the engine's diagnostic buckets a
// diagnostic came from. Categories form a fixed priority order: an earlier
// non-empty category shadows everything after it, because later categories
// are usually consequences of earlier ones (a semantic error cascading from
// a parse error, for example).
type Category int

const (
	// CategoryOptions covers configuration and option validation failures.
	CategoryOptions Category = iota
	// CategorySyntax covers per-file parse errors.
	CategorySyntax
	// CategoryGlobal covers cross-file concerns: package listing and
	// module resolution failures.
	CategoryGlobal
	// CategorySemantic covers type-check errors.
	CategorySemantic
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryOptions:
		return "options"
	case CategorySyntax:
		return "syntax"
	case CategoryGlobal:
		return "global"
	case CategorySemantic:
		return "semantic"
	default:
		return common.UnknownStr
	}
}

// CategorySet holds the engine's diagnostics grouped by category, in
// classification priority order.
type CategorySet struct {
	Options  []Diagnostic
	Syntax   []Diagnostic
	Global   []Diagnostic
	Semantic []Diagnostic
}

// ordered returns the categories in priority order.
func (s CategorySet) ordered() [][]Diagnostic {
	return [][]Diagnostic{s.Options, s.Syntax, s.Global, s.Semantic}
}

// Classifier decides which diagnostics block a conversion run.
type Classifier struct {
	// Suppress short-circuits classification: nothing blocks.
	Suppress bool
	// Included reports whether a source file participates in the run.
	// Diagnostics without a position are always considered relevant.
	// A nil predicate includes everything.
	Included func(file string) bool
}

// Classify filters each category to diagnostics relevant to the included
// file set and returns the first non-empty category, sorted. Later
// categories are dropped entirely. Returns nil when every category is
// empty or suppression is requested.
func (c *Classifier) Classify(set CategorySet) []Diagnostic {
	if c.Suppress {
		return nil
	}

	for _, category := range set.ordered() {
		relevant := c.filter(category)
		if common.IsEmpty(relevant) {
			continue
		}

		Sort(relevant)
		return relevant
	}

	return nil
}

func (c *Classifier) filter(diags []Diagnostic) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if file := d.File(); file != "" && c.Included != nil && !c.Included(file) {
			continue
		}
		out = append(out, d)
	}

	return out
}
