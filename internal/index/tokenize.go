// Package index implements the hybrid lexical retrieval engine: an in-memory
// document store with derived vector-space and Okapi indices, score fusion,
// and blended search.
package index

import "strings"

// Tokenize lowercases text and splits it on whitespace, dropping empty
// tokens. No stemming and no punctuation stripping beyond what whitespace
// splitting yields. Both scoring indices use it, so they share one term
// universe.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
