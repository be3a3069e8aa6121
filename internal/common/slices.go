package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// ContainsFunc returns true if any element of the slice satisfies the predicate.
func ContainsFunc[S ~[]E, E any](s S, pred func(E) bool) bool {
	for _, e := range s {
		if pred(e) {
			return true
		}
	}

	return false
}

// Dedup returns the slice with duplicates removed, preserving first-seen order.
func Dedup[S ~[]E, E comparable](s S) S {
	if len(s) < 2 {
		return s
	}

	seen := make(map[E]struct{}, len(s))
	out := make(S, 0, len(s))
	for _, e := range s {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out
}
