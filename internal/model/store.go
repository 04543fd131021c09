package model

import (
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
	"time"

	"github.com/MeKo-Tech/langid/internal/ngram"
	"github.com/MeKo-Tech/langid/lang"
)

// table is the lazily materialized frequency table for one (language, order)
// pair. The once-gate guarantees exactly one materialization under concurrent
// first use; after Do returns, freqs is immutable and read lock-free.
type table struct {
	once  sync.Once
	freqs map[string]float64
	err   error
}

// Store answers relative-frequency lookups against the per-language,
// per-order training models. A Store is immutable after construction and safe
// for concurrent use; the only blocking point is first-touch materialization
// of a table, which reads and decodes the persisted model document.
//
// A missing or undecodable model document is a packaging bug, not user input;
// lookups that hit one panic with a diagnostic.
type Store struct {
	fsys fs.FS
	// tables[order][language], orders 1..ngram.MaxLength. The maps are fully
	// populated at construction so concurrent readers never mutate them.
	tables [ngram.MaxLength + 1]map[lang.Language]*table
}

// NewStore creates a store over fsys (rooted at the models directory) serving
// the given languages.
func NewStore(fsys fs.FS, languages []lang.Language) *Store {
	s := &Store{fsys: fsys}
	for order := 1; order <= ngram.MaxLength; order++ {
		s.tables[order] = make(map[lang.Language]*table, len(languages))
		for _, l := range languages {
			if l == lang.Unknown {
				continue
			}
			s.tables[order][l] = &table{}
		}
	}
	return s
}

// RelativeFrequency returns the stored frequency of g in the training model
// for l at g's order, or 0.0 when the model has no entry for g. Panics on the
// empty ngram, on orders above ngram.MaxLength, and on unreadable model data.
func (s *Store) RelativeFrequency(l lang.Language, g ngram.Ngram) float64 {
	if g == "" {
		panic("model: relative frequency of empty ngram")
	}
	order := g.Len()
	if order > ngram.MaxLength {
		panic(fmt.Sprintf("model: unsupported ngram length %d: %q", order, g))
	}
	t, ok := s.tables[order][l]
	if !ok {
		return 0
	}
	t.once.Do(func() {
		start := time.Now()
		t.freqs, t.err = readModel(s.fsys, l.Code(), order)
		if t.err != nil {
			return
		}
		slog.Debug("language model materialized",
			"language", l.String(),
			"order", orderWords[order],
			"ngrams", len(t.freqs),
			"duration", time.Since(start))
	})
	// A missing or undecodable model is a packaging bug; every access fails
	// loudly, not only the first.
	if t.err != nil {
		panic(fmt.Sprintf("model: loading %s %s model: %v", l, orderWords[order], t.err))
	}
	return t.freqs[string(g)]
}
