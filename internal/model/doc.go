// Package model defines the reflection graph: the mutable documentation
// structure every converter writes into.
//
// Key types:
//   - Reflection: one node of the graph (declaration, signature, parameter, ...)
//   - Project: the unique root; owns identity assignment, the id mapping,
//     the symbol lookup, and the dangling-reference report
//   - Type: value objects describing type occurrences (intrinsic, reference,
//     union, ...)
package model
