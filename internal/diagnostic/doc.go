// Package diagnostic provides structured diagnostics for the conversion
// pipeline and the classifier that decides which of them block a run.
//
// Key capabilities:
//   - Severity-coded diagnostics with stable ordering
//   - Four-category classification (options, syntax, global, semantic)
//   - First-non-empty-category blocking semantics
package diagnostic
