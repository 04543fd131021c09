package rules

import (
	"strings"

	"github.com/MeKo-Tech/langid/lang"
)

// disambiguation maps a character class to the languages it suggests.
// Entries are consulted in declaration order; for each word only the first
// entry the word contains a character of counts.
type disambiguation struct {
	chars     string
	languages []lang.Language
}

var disambiguationTable = []disambiguation{
	{"Îî", []lang.Language{lang.French}},
	{"Ññ", []lang.Language{lang.Spanish}},
	{"Ûû", []lang.Language{lang.French}},
	{"Ëë", []lang.Language{lang.French}},
	{"ÈèÙù", []lang.Language{lang.French}},
	{"Êê", []lang.Language{lang.French}},
	{"Ôô", []lang.Language{lang.French}},
	{"Àà", []lang.Language{lang.French}},
	{"Üü", []lang.Language{lang.Spanish}},
	{"Çç", []lang.Language{lang.French}},
	{"Óó", []lang.Language{lang.Spanish}},
	{"ÁáÍíÚú", []lang.Language{lang.Spanish}},
	{"Éé", []lang.Language{lang.French, lang.Spanish}},
}

// FilterCandidates narrows the configured language set before statistical
// scoring, based on the dominant script of words and the disambiguation
// table. The result preserves catalog order and is never nil; when no script
// evidence is found it is the full configured set.
func (e *Engine) FilterCandidates(words []string) []lang.Language {
	scriptCounts := make(map[lang.Script]int)
	for _, word := range words {
		for _, s := range lang.Scripts() {
			if s.Matches(word) {
				scriptCounts[s]++
				break
			}
		}
	}

	if len(scriptCounts) == 0 {
		return e.Languages()
	}

	// Dominant script; script probe order breaks equal counts.
	var dominant lang.Script
	best := -1
	for _, s := range lang.Scripts() {
		if c := scriptCounts[s]; c > best {
			best = c
			dominant = s
		}
	}

	filtered := make([]lang.Language, 0, len(e.languages))
	for _, l := range e.languages {
		if l.UsesScript(dominant) {
			filtered = append(filtered, l)
		}
	}

	charCounts := make(map[lang.Language]int)
	for _, word := range words {
		for _, entry := range disambiguationTable {
			if !strings.ContainsAny(word, entry.chars) {
				continue
			}
			for _, l := range entry.languages {
				charCounts[l]++
			}
			break
		}
	}

	threshold := len(words) / 2
	strong := make(map[lang.Language]struct{})
	for l, c := range charCounts {
		if c >= threshold {
			strong[l] = struct{}{}
		}
	}
	if len(strong) == 0 {
		return filtered
	}

	narrowed := make([]lang.Language, 0, len(filtered))
	for _, l := range filtered {
		if _, ok := strong[l]; ok {
			narrowed = append(narrowed, l)
		}
	}
	if len(narrowed) == 0 {
		return filtered
	}
	return narrowed
}
