// Package analyze is the boundary to the analysis engine.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to load the
// documented source, and exposes exactly what the conversion pipeline needs:
// parsed files in program order, the checker's type oracle, file inclusion,
// and the engine's diagnostics grouped into classifier categories.
package analyze
