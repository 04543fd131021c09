package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/langid/internal/model"
	"github.com/MeKo-Tech/langid/lang"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, model.DefaultModelsDir, cfg.ModelsDir)
	assert.Equal(t, infoLevel, cfg.LogLevel)
	assert.False(t, cfg.Verbose)

	assert.Empty(t, cfg.Detector.Languages)
	assert.Zero(t, cfg.Detector.MinimumRelativeDistance)

	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 2, cfg.Output.ConfidencePrecision)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.CORSOrigin)

	assert.NoError(t, cfg.Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }},
		{"bad output format", func(c *Config) { c.Output.Format = "xml" }},
		{"negative precision", func(c *Config) { c.Output.ConfidencePrecision = -1 }},
		{"distance too large", func(c *Config) { c.Detector.MinimumRelativeDistance = 1.0 }},
		{"distance negative", func(c *Config) { c.Detector.MinimumRelativeDistance = -0.1 }},
		{"unknown language code", func(c *Config) { c.Detector.Languages = []string{"xx"} }},
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"bad timeout", func(c *Config) { c.Server.TimeoutSec = 0 }},
		{"bad text limit", func(c *Config) { c.Server.MaxTextKB = 0 }},
		{"negative workers", func(c *Config) { c.Batch.Workers = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDetectorLanguages(t *testing.T) {
	cfg := DefaultConfig()
	languages, err := cfg.DetectorLanguages()
	require.NoError(t, err)
	assert.Equal(t, lang.All(), languages)

	cfg.Detector.Languages = []string{"en", " de ", "ru"}
	languages, err = cfg.DetectorLanguages()
	require.NoError(t, err)
	assert.Equal(t, []lang.Language{lang.English, lang.German, lang.Russian}, languages)

	cfg.Detector.Languages = []string{"nope"}
	_, err = cfg.DetectorLanguages()
	assert.Error(t, err)
}

func TestBuildDetectorConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ModelsDir = "/opt/models"
	cfg.Detector.Languages = []string{"en", "fr"}
	cfg.Detector.MinimumRelativeDistance = 0.25

	detectorConfig, err := cfg.BuildDetectorConfig()
	require.NoError(t, err)
	assert.Equal(t, []lang.Language{lang.English, lang.French}, detectorConfig.Languages)
	assert.Equal(t, 0.25, detectorConfig.MinimumRelativeDistance)
	assert.Equal(t, "/opt/models", detectorConfig.ModelsDir)
}
