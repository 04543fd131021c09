package ngram

import (
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestExtract_Properties verifies structural invariants of n-gram extraction
// over arbitrary strings and orders.
func TestExtract_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every extracted ngram has the requested order", prop.ForAll(
		func(text string, n int) bool {
			for _, g := range Extract(text, n) {
				if g.Len() != n {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
		gen.IntRange(1, MaxLength),
	))

	properties.Property("extracted ngrams are distinct", prop.ForAll(
		func(text string, n int) bool {
			seen := make(map[Ngram]struct{})
			for _, g := range Extract(text, n) {
				if _, ok := seen[g]; ok {
					return false
				}
				seen[g] = struct{}{}
			}
			return true
		},
		gen.AnyString(),
		gen.IntRange(1, MaxLength),
	))

	properties.Property("ngram count is bounded by window count", prop.ForAll(
		func(text string, n int) bool {
			length := utf8.RuneCountInString(text)
			got := len(Extract(text, n))
			if length < n {
				return got == 0
			}
			return got <= length-n+1
		},
		gen.AnyString(),
		gen.IntRange(1, MaxLength),
	))

	properties.Property("backoff chain shrinks by one character per step", prop.ForAll(
		func(text string) bool {
			for _, g := range Extract(text, MaxLength) {
				chain := g.BackoffChain()
				if len(chain) != g.Len() {
					return false
				}
				for i, p := range chain {
					if p.Len() != g.Len()-i {
						return false
					}
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
