package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/MeKo-Tech/langid/lang"
)

// CompileResult summarizes one compiled model document.
type CompileResult struct {
	Language lang.Language
	Order    int
	Ngrams   int
	Path     string
}

// CompileDir converts the JSON model documents under modelsDir into their
// compiled msgpack form, written next to the originals. Languages without a
// JSON document for some order are skipped silently; undecodable documents
// are an error.
func CompileDir(modelsDir string, languages []lang.Language) ([]CompileResult, error) {
	base := GetModelsDir(modelsDir)
	var results []CompileResult
	for _, l := range languages {
		if l == lang.Unknown {
			continue
		}
		for order := 1; order <= len(orderWords)-1; order++ {
			jsonPath := filepath.Join(base, filepath.FromSlash(ResourcePath(l.Code(), order)))
			data, err := os.ReadFile(jsonPath)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return results, fmt.Errorf("reading %s: %w", jsonPath, err)
			}
			freqs, err := decodeJSONModel(data)
			if err != nil {
				return results, fmt.Errorf("decoding %s: %w", jsonPath, err)
			}
			packed, err := msgpack.Marshal(freqs)
			if err != nil {
				return results, fmt.Errorf("encoding %s: %w", jsonPath, err)
			}
			outPath := filepath.Join(base, filepath.FromSlash(CompiledPath(l.Code(), order)))
			if err := os.WriteFile(outPath, packed, 0o644); err != nil {
				return results, fmt.Errorf("writing %s: %w", outPath, err)
			}
			results = append(results, CompileResult{
				Language: l,
				Order:    order,
				Ngrams:   len(freqs),
				Path:     outPath,
			})
		}
	}
	return results, nil
}
