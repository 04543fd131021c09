// Package testutil builds in-memory language-model fixtures for tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/langid/internal/model"
	"github.com/MeKo-Tech/langid/internal/ngram"
	"github.com/MeKo-Tech/langid/lang"
)

// ModelDoc encodes one model document in the training-pipeline JSON layout.
// Frequencies are given as strings, either decimals or fractions "a/b".
func ModelDoc(t *testing.T, code string, freqs map[string]string) []byte {
	t.Helper()

	doc := struct {
		Language string            `json:"language"`
		Ngrams   map[string]string `json:"ngrams"`
	}{Language: code, Ngrams: freqs}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data
}

// ModelFS builds a models filesystem with explicit documents per language and
// order. The outer map key is the language; the inner key is the order.
func ModelFS(t *testing.T, docs map[lang.Language]map[int]map[string]string) fstest.MapFS {
	t.Helper()

	fsys := fstest.MapFS{}
	for l, orders := range docs {
		for order, freqs := range orders {
			fsys[model.ResourcePath(l.Code(), order)] = &fstest.MapFile{
				Data: ModelDoc(t, l.Code(), freqs),
			}
		}
	}
	return fsys
}

// TrainModelFS derives model documents for all five orders from a cleaned
// sample text per language. Unigram frequencies are count/total; higher
// orders carry the conditional frequency count(ngram)/count(prefix), the
// same shape the out-of-band training pipeline produces. Frequencies are
// encoded as fractions to exercise the loader's fraction expansion.
func TrainModelFS(t *testing.T, corpora map[lang.Language]string) fstest.MapFS {
	t.Helper()

	fsys := fstest.MapFS{}
	for l, text := range corpora {
		runes := []rune(text)

		counts := make([]map[string]int, ngram.MaxLength+1)
		totals := make([]int, ngram.MaxLength+1)
		for order := 1; order <= ngram.MaxLength; order++ {
			counts[order] = make(map[string]int)
			for i := 0; i+order <= len(runes); i++ {
				counts[order][string(runes[i:i+order])]++
				totals[order]++
			}
		}

		for order := 1; order <= ngram.MaxLength; order++ {
			if totals[order] == 0 {
				continue
			}
			freqs := make(map[string]string, len(counts[order]))
			for g, c := range counts[order] {
				denom := totals[1]
				if order > 1 {
					prefix := string([]rune(g)[:order-1])
					denom = counts[order-1][prefix]
				}
				freqs[g] = fmt.Sprintf("%d/%d", c, denom)
			}
			fsys[model.ResourcePath(l.Code(), order)] = &fstest.MapFile{
				Data: ModelDoc(t, l.Code(), freqs),
			}
		}
	}
	return fsys
}
