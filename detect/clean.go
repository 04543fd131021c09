package detect

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// cleanText normalizes raw input for n-gram extraction: trims outer
// whitespace, applies Unicode case folding, strips punctuation (\p{P}) and
// digits (\p{N}), and collapses whitespace runs to a single space.
func cleanText(text string) string {
	folded := cases.Fold().String(strings.TrimSpace(text))
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsPunct(r) || unicode.IsNumber(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// containsLetter reports whether s has at least one Unicode letter.
func containsLetter(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLetter)
}
