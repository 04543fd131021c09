// Package detect identifies the natural language of input text.
//
// A Detector combines script- and character-based rules with statistical
// n-gram scoring over per-language training models. Rules handle the
// unambiguous cases (a script used by only one catalog language, or
// characters unique to one language, when that language is configured)
// without touching the models; everything else is scored across n-gram
// orders 1..5 and reported as relative confidences, where the best-scoring
// language gets 1.0 and the rest fall toward 0.0.
//
// A Detector is immutable after construction and safe for concurrent use by
// any number of goroutines. Training models are materialized lazily on first
// use per (language, order) pair and retained for the detector's lifetime.
package detect

import (
	"cmp"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MeKo-Tech/langid/internal/model"
	"github.com/MeKo-Tech/langid/internal/ngram"
	"github.com/MeKo-Tech/langid/internal/rules"
	"github.com/MeKo-Tech/langid/internal/scorer"
	"github.com/MeKo-Tech/langid/lang"
)

// Config holds configuration for a Detector.
type Config struct {
	// Languages the detector may report. Unknown entries and duplicates are
	// ignored. An empty slice means the full catalog; a non-empty slice with
	// no catalog language in it is rejected by New.
	Languages []lang.Language

	// MinimumRelativeDistance is the margin in [0.0, 0.99] by which the top
	// confidence must exceed the runner-up for Detect to commit to an answer.
	MinimumRelativeDistance float64

	// ModelsDir overrides the training-model directory. Resolution falls back
	// to the LANGID_MODELS_DIR environment variable and the project models/
	// directory.
	ModelsDir string

	// FS overrides the filesystem the models are read from. When set,
	// ModelsDir is ignored. Used by tests and embedded deployments.
	FS fs.FS
}

// DefaultConfig returns a configuration covering the full language catalog
// with no confidence margin.
func DefaultConfig() Config {
	return Config{Languages: lang.All()}
}

// ConfidenceValue pairs a language with its relative confidence in (0.0, 1.0].
type ConfidenceValue struct {
	Language lang.Language `json:"language"`
	Value    float64       `json:"value"`
}

// Detector identifies the most likely language of a text snippet.
type Detector struct {
	languages               []lang.Language // catalog order, deduped, no Unknown
	minimumRelativeDistance float64
	rules                   *rules.Engine
	store                   *model.Store
}

// New creates a Detector from cfg.
func New(cfg Config) (*Detector, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	languages := normalizeLanguages(cfg.Languages)
	if len(languages) == 0 {
		return nil, fmt.Errorf("detect: no detectable language configured")
	}

	fsys := cfg.FS
	if fsys == nil {
		fsys = os.DirFS(model.GetModelsDir(cfg.ModelsDir))
	}

	slog.Debug("initializing detector",
		"languages", len(languages),
		"minimum_relative_distance", cfg.MinimumRelativeDistance)

	return &Detector{
		languages:               languages,
		minimumRelativeDistance: cfg.MinimumRelativeDistance,
		rules:                   rules.NewEngine(languages),
		store:                   model.NewStore(fsys, languages),
	}, nil
}

func validateConfig(cfg Config) error {
	if cfg.MinimumRelativeDistance < 0 || cfg.MinimumRelativeDistance > 0.99 {
		return fmt.Errorf("detect: minimum relative distance %v outside [0.0, 0.99]",
			cfg.MinimumRelativeDistance)
	}
	return nil
}

// normalizeLanguages dedupes, drops Unknown, and sorts into catalog order.
// An empty input selects the full catalog.
func normalizeLanguages(languages []lang.Language) []lang.Language {
	if len(languages) == 0 {
		return lang.All()
	}
	seen := make(map[lang.Language]struct{}, len(languages))
	out := make([]lang.Language, 0, len(languages))
	for _, l := range languages {
		if l == lang.Unknown {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// Languages returns the configured language set in catalog order.
func (d *Detector) Languages() []lang.Language {
	return d.rules.Languages()
}

// MinimumRelativeDistance returns the configured confidence margin.
func (d *Detector) MinimumRelativeDistance() float64 {
	return d.minimumRelativeDistance
}

// Equal reports whether two detectors have the same configured language set
// and minimum relative distance.
func (d *Detector) Equal(other *Detector) bool {
	if other == nil {
		return false
	}
	return d.minimumRelativeDistance == other.minimumRelativeDistance &&
		slices.Equal(d.languages, other.languages)
}

// Detect returns the most likely language of text, or lang.Unknown when the
// evidence is insufficient, the top two confidences are tied, or the margin
// between them is below the configured minimum relative distance.
func (d *Detector) Detect(text string) lang.Language {
	values := d.ConfidenceValues(text)
	if len(values) == 0 {
		return lang.Unknown
	}
	if len(values) == 1 {
		return values[0].Language
	}
	top, second := values[0], values[1]
	if top.Value == second.Value {
		return lang.Unknown
	}
	if top.Value-second.Value < d.minimumRelativeDistance {
		return lang.Unknown
	}
	return top.Language
}

// ConfidenceValues returns the configured languages the input gives evidence
// for, with relative confidences in (0.0, 1.0], ordered by descending
// confidence; equal confidences are ordered by language catalog order. The
// best-scoring language always has confidence 1.0. The result is empty when
// the cleaned input is empty or contains no letters.
func (d *Detector) ConfidenceValues(text string) []ConfidenceValue {
	cleaned := cleanText(text)
	if cleaned == "" || !containsLetter(cleaned) {
		return nil
	}
	words := strings.Split(cleaned, " ")

	if ruled := d.rules.DetectByRules(words); ruled != lang.Unknown {
		return []ConfidenceValue{{Language: ruled, Value: 1.0}}
	}

	candidates := d.rules.FilterCandidates(words)
	return relativize(d.scoreAcrossOrders(cleaned, candidates))
}

// scoreAcrossOrders runs statistical scoring for orders 1..5, narrowing the
// candidate set whenever an order produced evidence, and returns the summed
// log-probability per surviving language, divided by the language's unigram
// hit count where it has one. Languages whose total is zero are left out.
func (d *Detector) scoreAcrossOrders(cleaned string, candidates []lang.Language) map[lang.Language]float64 {
	length := utf8.RuneCountInString(cleaned)
	sums := make(map[lang.Language]float64, len(candidates))
	var unigramHits map[lang.Language]int

	for order := 1; order <= ngram.MaxLength; order++ {
		if length < order {
			break
		}
		testModel := ngram.Extract(cleaned, order)
		probs := scorer.LanguageProbabilities(d.store, testModel, candidates)
		if order == 1 {
			unigramHits = scorer.UnigramHits(d.store, testModel, candidates)
		}
		if len(probs) == 0 {
			continue
		}
		narrowed := candidates[:0:0]
		for _, l := range candidates {
			if score, ok := probs[l]; ok {
				sums[l] += score
				narrowed = append(narrowed, l)
			}
		}
		candidates = narrowed
	}

	totals := make(map[lang.Language]float64, len(candidates))
	for _, l := range candidates {
		total := sums[l]
		if hits, ok := unigramHits[l]; ok {
			total /= float64(hits)
		}
		if total == 0 {
			continue
		}
		totals[l] = total
	}
	return totals
}

// relativize converts summed log-probabilities into relative confidences.
// Scores are negative; dividing the maximum (closest to zero) by each score
// maps the best language to 1.0 and weaker ones into (0.0, 1.0).
func relativize(scores map[lang.Language]float64) []ConfidenceValue {
	if len(scores) == 0 {
		return nil
	}

	languages := make([]lang.Language, 0, len(scores))
	for l := range scores {
		languages = append(languages, l)
	}
	slices.Sort(languages)

	maxScore := scores[languages[0]]
	for _, l := range languages[1:] {
		if scores[l] > maxScore {
			maxScore = scores[l]
		}
	}

	values := make([]ConfidenceValue, 0, len(languages))
	for _, l := range languages {
		values = append(values, ConfidenceValue{Language: l, Value: maxScore / scores[l]})
	}

	// Stable sort keeps catalog order among equal confidences.
	slices.SortStableFunc(values, func(a, b ConfidenceValue) int {
		return cmp.Compare(b.Value, a.Value)
	})
	return values
}
