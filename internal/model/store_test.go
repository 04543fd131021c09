package model

import (
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/MeKo-Tech/langid/internal/ngram"
	"github.com/MeKo-Tech/langid/lang"
)

func englishUnigrams(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"language-models/en/unigrams.json": &fstest.MapFile{
			Data: []byte(`{"language":"en","ngrams":{"a":"0.08","b":"1/64","e":"0.12"}}`),
		},
	}
}

func TestRelativeFrequency_Lookup(t *testing.T) {
	store := NewStore(englishUnigrams(t), []lang.Language{lang.English})

	assert.InDelta(t, 0.08, store.RelativeFrequency(lang.English, ngram.New("a")), 1e-12)
	assert.InDelta(t, 1.0/64.0, store.RelativeFrequency(lang.English, ngram.New("b")), 1e-12)

	// Missing key returns zero.
	assert.Zero(t, store.RelativeFrequency(lang.English, ngram.New("z")))

	// Unconfigured language returns zero.
	assert.Zero(t, store.RelativeFrequency(lang.German, ngram.New("a")))
}

func TestRelativeFrequency_EmptyNgramPanics(t *testing.T) {
	store := NewStore(englishUnigrams(t), []lang.Language{lang.English})
	assert.Panics(t, func() { store.RelativeFrequency(lang.English, ngram.Ngram("")) })
}

func TestRelativeFrequency_OversizedNgramPanics(t *testing.T) {
	store := NewStore(englishUnigrams(t), []lang.Language{lang.English})
	assert.Panics(t, func() { store.RelativeFrequency(lang.English, ngram.Ngram("abcdef")) })
}

func TestRelativeFrequency_MissingModelPanics(t *testing.T) {
	store := NewStore(fstest.MapFS{}, []lang.Language{lang.English})
	assert.Panics(t, func() { store.RelativeFrequency(lang.English, ngram.New("a")) })
}

func TestRelativeFrequency_CorruptModelPanics(t *testing.T) {
	fsys := fstest.MapFS{
		"language-models/en/unigrams.json": &fstest.MapFile{Data: []byte(`{not json`)},
	}
	store := NewStore(fsys, []lang.Language{lang.English})
	assert.Panics(t, func() { store.RelativeFrequency(lang.English, ngram.New("a")) })
}

func TestRelativeFrequency_PrefersCompiledModel(t *testing.T) {
	packed, err := msgpack.Marshal(map[string]float64{"a": 0.5})
	require.NoError(t, err)

	fsys := englishUnigrams(t)
	fsys["language-models/en/unigrams.msgpack"] = &fstest.MapFile{Data: packed}

	store := NewStore(fsys, []lang.Language{lang.English})
	assert.InDelta(t, 0.5, store.RelativeFrequency(lang.English, ngram.New("a")), 1e-12)
	// JSON-only keys are not visible when the compiled file wins.
	assert.Zero(t, store.RelativeFrequency(lang.English, ngram.New("e")))
}

// TestRelativeFrequency_ConcurrentFirstUse exercises the once-gate: many
// goroutines racing on first touch must all observe the same table.
func TestRelativeFrequency_ConcurrentFirstUse(t *testing.T) {
	store := NewStore(englishUnigrams(t), []lang.Language{lang.English})

	const goroutines = 32
	var wg sync.WaitGroup
	results := make([]float64, goroutines)
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = store.RelativeFrequency(lang.English, ngram.New("e"))
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.InDelta(t, 0.12, r, 1e-12)
	}
}
