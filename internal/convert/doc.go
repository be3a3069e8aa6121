// Package convert drives the compile→resolve pipeline that turns analyzed
// source into a reflection graph.
//
// The orchestrator owns two dispatch layers: a node table mapping each
// syntax-node kind to exactly one converter, and two priority-ordered type
// chains (node-aware and type-only) scanned first-match-wins. Converters
// recursively call back into the orchestrator for nested constructs; a
// copy-on-push visit stack on the context breaks cycles. Every structural
// decision point emits a lifecycle event observers can hook.
package convert
