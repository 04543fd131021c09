// Package model materializes and serves the per-language, per-order n-gram
// frequency tables produced by the out-of-band training pipeline.
package model

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// Default models directory.
const DefaultModelsDir = "models"

// Environment variable for models directory override.
const EnvModelsDir = "LANGID_MODELS_DIR"

// modelsSubdir is the resource subtree holding per-language model documents.
const modelsSubdir = "language-models"

// orderWords names the five supported n-gram orders in resource filenames.
var orderWords = [...]string{
	1: "unigram",
	2: "bigram",
	3: "trigram",
	4: "quadrigram",
	5: "fivegram",
}

// findProjectRoot finds the project root by looking for go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.New("could not find project root (go.mod not found)")
}

// GetModelsDir returns the models directory path from various sources
// Priority: 1. Explicit modelsDir parameter, 2. Environment variable, 3. Project root + default.
func GetModelsDir(modelsDir string) string {
	if modelsDir != "" {
		return modelsDir
	}

	if envDir := os.Getenv(EnvModelsDir); envDir != "" {
		return envDir
	}

	if projectRoot, err := findProjectRoot(); err == nil {
		return filepath.Join(projectRoot, DefaultModelsDir)
	}

	return DefaultModelsDir
}

// ResourcePath returns the slash-separated path of the JSON model document
// for an ISO 639-1 code and n-gram order, relative to the models directory.
func ResourcePath(isoCode string, order int) string {
	if order < 1 || order >= len(orderWords) {
		panic(fmt.Sprintf("model: unsupported ngram order %d", order))
	}
	return path.Join(modelsSubdir, isoCode, orderWords[order]+"s.json")
}

// CompiledPath returns the path of the compiled msgpack variant of the model
// document, relative to the models directory. The store prefers it over the
// JSON document when present.
func CompiledPath(isoCode string, order int) string {
	if order < 1 || order >= len(orderWords) {
		panic(fmt.Sprintf("model: unsupported ngram order %d", order))
	}
	return path.Join(modelsSubdir, isoCode, orderWords[order]+"s.msgpack")
}

// ValidateModelExists checks that a model document exists for the given
// language code and order under modelsDir, in either format.
func ValidateModelExists(modelsDir, isoCode string, order int) error {
	base := GetModelsDir(modelsDir)
	jsonPath := filepath.Join(base, filepath.FromSlash(ResourcePath(isoCode, order)))
	if _, err := os.Stat(jsonPath); err == nil {
		return nil
	}
	packed := filepath.Join(base, filepath.FromSlash(CompiledPath(isoCode, order)))
	if _, err := os.Stat(packed); err == nil {
		return nil
	}
	return fmt.Errorf("model file not found: %s", jsonPath)
}
