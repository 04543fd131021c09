// Package rules implements the script- and character-based classifier that
// runs before statistical scoring: it can short-circuit the whole detection
// when script evidence is unambiguous, and it narrows the candidate set
// handed to the scorer.
package rules

import (
	"slices"
	"strings"

	"github.com/MeKo-Tech/langid/lang"
)

// Engine applies the rule-only classification for one configured language
// set. It is immutable and safe for concurrent use.
type Engine struct {
	languages  []lang.Language // configured set, catalog order
	configured map[lang.Language]struct{}
}

// NewEngine creates a rule engine over the configured languages. The slice
// must be in catalog order; the engine keeps its own copy.
func NewEngine(languages []lang.Language) *Engine {
	e := &Engine{
		languages:  make([]lang.Language, len(languages)),
		configured: make(map[lang.Language]struct{}, len(languages)),
	}
	copy(e.languages, languages)
	for _, l := range languages {
		e.configured[l] = struct{}{}
	}
	return e
}

// Languages returns the configured language set in catalog order. The
// returned slice is a copy.
func (e *Engine) Languages() []lang.Language {
	out := make([]lang.Language, len(e.languages))
	copy(out, e.languages)
	return out
}

// DetectByRules classifies words on script and character evidence alone.
// It returns lang.Unknown unless the evidence points at a single configured
// language strongly enough to skip statistical scoring.
func (e *Engine) DetectByRules(words []string) lang.Language {
	totalCounts := make(map[lang.Language]int)

	for _, word := range words {
		wordCounts := e.countWordLanguages(word)
		switch len(wordCounts) {
		case 0:
			totalCounts[lang.Unknown]++
		case 1:
			var only lang.Language
			for l := range wordCounts {
				only = l
			}
			if _, ok := e.configured[only]; ok {
				totalCounts[only]++
			} else {
				totalCounts[lang.Unknown]++
			}
		default:
			winner, tied := strictMax(wordCounts)
			if tied {
				totalCounts[lang.Unknown]++
			} else if _, ok := e.configured[winner]; ok {
				totalCounts[winner]++
			} else {
				totalCounts[lang.Unknown]++
			}
		}
	}

	if float64(totalCounts[lang.Unknown]) < 0.5*float64(len(words)) {
		delete(totalCounts, lang.Unknown)
	}

	if len(totalCounts) == 0 {
		return lang.Unknown
	}
	if len(totalCounts) == 1 {
		for l := range totalCounts {
			return l
		}
	}
	winner, tied := strictMax(totalCounts)
	if tied {
		return lang.Unknown
	}
	return winner
}

// countWordLanguages tallies the languages a single word's characters point
// to: scripts owned by exactly one catalog language count for that language,
// and Latin or Devanagari characters count for every language whose unique
// characters contain them.
func (e *Engine) countWordLanguages(word string) map[lang.Language]int {
	counts := make(map[lang.Language]int)
	for _, r := range word {
		matchedUnique := false
		for _, s := range lang.Scripts() {
			owner, ok := s.SingleLanguage()
			if !ok || !s.MatchesRune(r) {
				continue
			}
			counts[owner]++
			matchedUnique = true
		}
		if matchedUnique {
			continue
		}
		if lang.ScriptLatin.MatchesRune(r) || lang.ScriptDevanagari.MatchesRune(r) {
			for _, l := range lang.All() {
				if strings.ContainsRune(l.UniqueCharacters(), r) {
					counts[l]++
				}
			}
		}
	}
	return counts
}

// strictMax returns the language with the highest count, reporting a tie
// when the runner-up matches it. Keys are visited in catalog order so the
// result is deterministic, but catalog order never decides a tie.
func strictMax(counts map[lang.Language]int) (lang.Language, bool) {
	keys := make([]lang.Language, 0, len(counts))
	for l := range counts {
		keys = append(keys, l)
	}
	slices.Sort(keys)

	var winner lang.Language
	best, second := -1, -1
	for _, l := range keys {
		c := counts[l]
		switch {
		case c > best:
			second = best
			best = c
			winner = l
		case c > second:
			second = c
		}
	}
	return winner, best == second
}
