// Package scorer combines n-gram log-probabilities into per-language scores.
package scorer

import (
	"math"

	"github.com/MeKo-Tech/langid/internal/model"
	"github.com/MeKo-Tech/langid/internal/ngram"
	"github.com/MeKo-Tech/langid/lang"
)

// ScoreLanguage sums the natural-log probability of each test ngram under the
// training model for l. For each ngram the probability is taken from the
// longest prefix in its backoff chain with a non-zero stored frequency; an
// ngram with no such prefix contributes nothing. The result is non-positive.
func ScoreLanguage(store *model.Store, l lang.Language, testNgrams []ngram.Ngram) float64 {
	var sum float64
	for _, g := range testNgrams {
		for _, prefix := range g.BackoffChain() {
			if f := store.RelativeFrequency(l, prefix); f > 0 {
				sum += math.Log(f)
				break
			}
		}
	}
	return sum
}

// LanguageProbabilities scores every candidate against the test model and
// returns the languages with strictly negative scores. A score of zero means
// no ngram matched (or matched only with frequency 1.0) and counts as no
// evidence.
func LanguageProbabilities(store *model.Store, testNgrams []ngram.Ngram, candidates []lang.Language) map[lang.Language]float64 {
	probs := make(map[lang.Language]float64, len(candidates))
	for _, l := range candidates {
		if score := ScoreLanguage(store, l, testNgrams); score < 0 {
			probs[l] = score
		}
	}
	return probs
}

// UnigramHits counts, per candidate, the unigrams of the test model that have
// a non-zero frequency in the language's unigram training model. Languages
// with no hits are absent from the result.
func UnigramHits(store *model.Store, unigrams []ngram.Ngram, candidates []lang.Language) map[lang.Language]int {
	hits := make(map[lang.Language]int, len(candidates))
	for _, l := range candidates {
		for _, g := range unigrams {
			if store.RelativeFrequency(l, g) > 0 {
				hits[l]++
			}
		}
	}
	return hits
}
