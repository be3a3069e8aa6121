package match

import "sort"

// DefaultMinScore is the minimum similarity for a name to be suggested.
const DefaultMinScore = 0.6

// DefaultMaxSuggestions caps how many suggestions a single name receives.
const DefaultMaxSuggestions = 3

// Suggestion is a known name scored against a queried one.
type Suggestion struct {
	Name  string
	Score float64
}

// Suggest ranks known names by similarity to name and returns the best
// matches scoring at least minScore, at most max of them. Ties keep the
// order of known, so output is deterministic for a deterministic input.
func Suggest(name string, known []string, minScore float64, max int) []Suggestion {
	var out []Suggestion
	for _, candidate := range known {
		if candidate == name {
			continue
		}
		score := NormalizedLevenshteinScore(name, candidate)
		if score < minScore {
			continue
		}
		out = append(out, Suggestion{Name: candidate, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if max > 0 && len(out) > max {
		out = out[:max]
	}

	return out
}
