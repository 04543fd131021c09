package model

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// modelDocument is the JSON layout emitted by the training pipeline: a
// language code and a mapping from ngram string to relative frequency. The
// frequency is a JSON number, a decimal string, or a rational fraction string
// "a/b" expanded at load time.
type modelDocument struct {
	Language string                     `json:"language"`
	Ngrams   map[string]json.RawMessage `json:"ngrams"`
}

// decodeJSONModel parses a JSON model document into a frequency table.
func decodeJSONModel(data []byte) (map[string]float64, error) {
	var doc modelDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid model document: %w", err)
	}
	freqs := make(map[string]float64, len(doc.Ngrams))
	for g, raw := range doc.Ngrams {
		if g == "" {
			return nil, fmt.Errorf("invalid model document: empty ngram key")
		}
		f, err := parseFrequency(raw)
		if err != nil {
			return nil, fmt.Errorf("ngram %q: %w", g, err)
		}
		freqs[g] = f
	}
	return freqs, nil
}

// parseFrequency expands a raw JSON frequency value: a number, a decimal
// string, or a fraction string "a/b".
func parseFrequency(raw json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return validateFrequency(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("frequency is neither number nor string: %s", raw)
	}
	if num, denom, ok := strings.Cut(s, "/"); ok {
		a, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid fraction numerator %q", s)
		}
		b, err := strconv.ParseFloat(denom, 64)
		if err != nil || b == 0 {
			return 0, fmt.Errorf("invalid fraction denominator %q", s)
		}
		return validateFrequency(a / b)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frequency %q", s)
	}
	return validateFrequency(v)
}

func validateFrequency(f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 || f > 1 {
		return 0, fmt.Errorf("frequency %v outside (0, 1]", f)
	}
	return f, nil
}

// readModel loads the frequency table for (isoCode, order) from fsys,
// preferring the compiled msgpack document over the JSON one.
func readModel(fsys fs.FS, isoCode string, order int) (map[string]float64, error) {
	if data, err := fs.ReadFile(fsys, CompiledPath(isoCode, order)); err == nil {
		var freqs map[string]float64
		if err := msgpack.Unmarshal(data, &freqs); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", CompiledPath(isoCode, order), err)
		}
		return freqs, nil
	}
	data, err := fs.ReadFile(fsys, ResourcePath(isoCode, order))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ResourcePath(isoCode, order), err)
	}
	freqs, err := decodeJSONModel(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", ResourcePath(isoCode, order), err)
	}
	return freqs, nil
}
