// Package textmatch is the single home for the string normalization and
// matching primitives shared by the fingerprint resolvers and the
// reference matcher: case folding, folded equality, folded substring
// containment and whitespace tokenization.
//
// Keeping these in one place means search-quality changes (for example
// a smarter fold or tokenizer) never require touching cascade logic.
package textmatch
