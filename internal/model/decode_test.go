package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONModel(t *testing.T) {
	data := []byte(`{
		"language": "en",
		"ngrams": {
			"th": "12/345",
			"he": 0.031,
			"an": "0.0205"
		}
	}`)

	freqs, err := decodeJSONModel(data)
	require.NoError(t, err)
	assert.Len(t, freqs, 3)
	assert.InDelta(t, 12.0/345.0, freqs["th"], 1e-12)
	assert.InDelta(t, 0.031, freqs["he"], 1e-12)
	assert.InDelta(t, 0.0205, freqs["an"], 1e-12)
}

func TestDecodeJSONModel_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{`},
		{"empty ngram key", `{"ngrams":{"":"0.5"}}`},
		{"zero frequency", `{"ngrams":{"a":"0"}}`},
		{"negative frequency", `{"ngrams":{"a":-0.5}}`},
		{"frequency above one", `{"ngrams":{"a":"1.5"}}`},
		{"zero denominator", `{"ngrams":{"a":"1/0"}}`},
		{"garbage fraction", `{"ngrams":{"a":"x/y"}}`},
		{"garbage decimal", `{"ngrams":{"a":"abc"}}`},
		{"bool value", `{"ngrams":{"a":true}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeJSONModel([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestDecodeJSONModel_BoundaryFrequencies(t *testing.T) {
	// 1.0 is inside the contract's half-open interval (0, 1].
	freqs, err := decodeJSONModel([]byte(`{"ngrams":{"a":"1/1"}}`))
	require.NoError(t, err)
	assert.Equal(t, 1.0, freqs["a"])
}
