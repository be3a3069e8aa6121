package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b), "Levenshtein(%q, %q)", tt.a, tt.b)
		assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "symmetry for (%q, %q)", tt.a, tt.b)
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	assert.Equal(t, 1.0, LevenshteinNormalized("", ""))
	assert.Equal(t, 1.0, LevenshteinNormalized("same", "same"))
	assert.Equal(t, 0.0, LevenshteinNormalized("abc", "xyz"))
	assert.InDelta(t, 0.75, LevenshteinNormalized("abcd", "abcx"), 1e-9)
}

func TestNormalizedScoreIgnoresCasingAndSeparators(t *testing.T) {
	assert.Equal(t, 1.0, NormalizedLevenshteinScore("OrderID", "order_id"))
	assert.Equal(t, 1.0, NormalizedLevenshteinScore("customerName", "Customer-Name"))
}

func TestNormalizeIdent(t *testing.T) {
	assert.Equal(t, "orderid", NormalizeIdent("OrderID"))
	assert.Equal(t, "gethttpresponse", NormalizeIdent("getHTTPResponse"))
	assert.Equal(t, "xmlparser", NormalizeIdent("xml_parser"))
}

func TestTokenizeIdent(t *testing.T) {
	assert.Equal(t, []string{"get", "http", "response"}, TokenizeIdent("getHTTPResponse"))
	assert.Nil(t, TokenizeIdent(""))
}
