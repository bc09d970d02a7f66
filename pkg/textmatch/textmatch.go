package textmatch

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold trims surrounding whitespace and case-folds s for comparison.
// Folding (rather than plain lowercasing) keeps comparisons correct for
// the occasional non-ASCII manufacturer name in the reference corpus.
func Fold(s string) string {
	// cases.Caser carries internal state, so a fresh one per call keeps
	// the package safe for concurrent use.
	return cases.Fold().String(strings.TrimSpace(s))
}

// Equal reports whether a and b are equal after folding.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Contains reports whether needle occurs within haystack after folding
// both sides. An empty needle never matches.
func Contains(haystack, needle string) bool {
	n := Fold(needle)
	if n == "" {
		return false
	}
	return strings.Contains(Fold(haystack), n)
}

// Tokenize splits term on whitespace and returns the folded tokens whose
// length is at least minLen runes. Token order follows the input.
func Tokenize(term string, minLen int) []string {
	fields := strings.Fields(Fold(term))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) >= minLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
