// Package match provides fuzzy identifier matching.
//
// It is used to attach "did you mean" suggestions to dangling-reference
// warnings: unresolved names are scored against every known declaration
// name with a normalized Levenshtein similarity.
package match
