package textmatch_test

import (
	"testing"

	"github.com/dmitrymomot/devicekit/pkg/textmatch"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "iphone 14 pro", textmatch.Fold("  iPhone 14 Pro "))
	assert.Equal(t, "adreno (tm) 710", textmatch.Fold("Adreno (TM) 710"))
	assert.Equal(t, "", textmatch.Fold("   "))
}

func TestEqual(t *testing.T) {
	t.Parallel()
	assert.True(t, textmatch.Equal("Google Pixel 7", "google pixel 7"))
	assert.True(t, textmatch.Equal(" iPhone XS ", "IPHONE XS"))
	assert.False(t, textmatch.Equal("iPhone X", "iPhone XS"))
}

func TestContains(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     bool
	}{
		{name: "case-insensitive hit", haystack: "Google Pixel 7 Pro", needle: "pixel 7", want: true},
		{name: "exact", haystack: "Moto G84", needle: "Moto G84", want: true},
		{name: "miss", haystack: "Moto G84", needle: "Pixel", want: false},
		{name: "empty needle never matches", haystack: "anything", needle: "", want: false},
		{name: "whitespace needle never matches", haystack: "anything", needle: "  ", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, textmatch.Contains(tt.haystack, tt.needle))
		})
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"galaxy", "ultra"}, textmatch.Tokenize("Galaxy S8 Ultra", 4))
	assert.Equal(t, []string{"galaxy", "s8", "ultra"}, textmatch.Tokenize("Galaxy S8 Ultra", 1))
	assert.Empty(t, textmatch.Tokenize("   ", 1))
	assert.Empty(t, textmatch.Tokenize("a b", 3))
}
