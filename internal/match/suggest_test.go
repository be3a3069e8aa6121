package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestRanksBySimilarity(t *testing.T) {
	known := []string{"Circle", "Rect", "Circl", "Triangle"}

	got := Suggest("Circle", known, DefaultMinScore, DefaultMaxSuggestions)

	require.NotEmpty(t, got)
	assert.Equal(t, "Circl", got[0].Name)
	for _, s := range got {
		assert.GreaterOrEqual(t, s.Score, DefaultMinScore)
		assert.NotEqual(t, "Circle", s.Name, "exact match is not a suggestion")
	}
}

func TestSuggestRespectsMax(t *testing.T) {
	known := []string{"Shape1", "Shape2", "Shape3", "Shape4"}

	got := Suggest("Shape", known, 0.1, 2)

	assert.Len(t, got, 2)
}

func TestSuggestNothingAboveThreshold(t *testing.T) {
	got := Suggest("Circle", []string{"xyz", "qqq"}, DefaultMinScore, DefaultMaxSuggestions)

	assert.Empty(t, got)
}

func TestSuggestDeterministicTieBreak(t *testing.T) {
	// Equal scores keep input order.
	first := Suggest("ab", []string{"ax", "ay"}, 0.1, 0)
	second := Suggest("ab", []string{"ax", "ay"}, 0.1, 0)

	require.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, "ax", first[0].Name)
}
