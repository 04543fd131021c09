// Package config defines the application configuration for langid and loads
// it from files, environment variables, and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/MeKo-Tech/langid/detect"
	"github.com/MeKo-Tech/langid/internal/model"
	"github.com/MeKo-Tech/langid/lang"
)

const (
	infoLevel = "info"

	// DefaultServerPort is the port the serve command binds by default.
	DefaultServerPort = 8080
)

// Config represents the complete configuration for the langid application.
// It includes settings for all commands (detect, batch, serve) and supports
// loading from configuration files, environment variables, and command-line
// flags.
type Config struct {
	// Global settings
	ModelsDir string `mapstructure:"models_dir" yaml:"models_dir" json:"models_dir"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose   bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Detector configuration
	Detector DetectorConfig `mapstructure:"detector" yaml:"detector" json:"detector"`

	// Output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Server configuration (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`

	// Batch processing configuration
	Batch BatchConfig `mapstructure:"batch" yaml:"batch" json:"batch"`
}

// DetectorConfig contains language detection settings.
type DetectorConfig struct {
	// Languages restricts detection to the given ISO 639-1 codes.
	// Empty means the full catalog.
	Languages []string `mapstructure:"languages" yaml:"languages" json:"languages"`

	// MinimumRelativeDistance is the confidence margin in [0.0, 0.99] the top
	// language must win by before detect commits to it.
	MinimumRelativeDistance float64 `mapstructure:"minimum_relative_distance" yaml:"minimum_relative_distance" json:"minimum_relative_distance"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Format              string `mapstructure:"format" yaml:"format" json:"format"` // "text" or "json"
	ConfidencePrecision int    `mapstructure:"confidence_precision" yaml:"confidence_precision" json:"confidence_precision"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host       string `mapstructure:"host" yaml:"host" json:"host"`
	Port       int    `mapstructure:"port" yaml:"port" json:"port"`
	CORSOrigin string `mapstructure:"cors_origin" yaml:"cors_origin" json:"cors_origin"`
	TimeoutSec int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	MaxTextKB  int    `mapstructure:"max_text_kb" yaml:"max_text_kb" json:"max_text_kb"`
}

// BatchConfig contains batch processing settings.
type BatchConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers" json:"workers"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ModelsDir: model.DefaultModelsDir,
		LogLevel:  infoLevel,
		Verbose:   false,
		Detector: DetectorConfig{
			Languages:               nil,
			MinimumRelativeDistance: 0.0,
		},
		Output: OutputConfig{
			Format:              "text",
			ConfidencePrecision: 2,
		},
		Server: ServerConfig{
			Host:       "localhost",
			Port:       DefaultServerPort,
			CORSOrigin: "*",
			TimeoutSec: 30,
			MaxTextKB:  256,
		},
		Batch: BatchConfig{
			Workers: 0, // 0 = number of CPUs
		},
	}
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", infoLevel, "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (must be debug, info, warn, or error)", c.LogLevel)
	}

	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q (must be text or json)", c.Output.Format)
	}
	if c.Output.ConfidencePrecision < 0 || c.Output.ConfidencePrecision > 10 {
		return fmt.Errorf("invalid confidence_precision %d (must be 0-10)", c.Output.ConfidencePrecision)
	}

	if c.Detector.MinimumRelativeDistance < 0 || c.Detector.MinimumRelativeDistance > 0.99 {
		return fmt.Errorf("invalid minimum_relative_distance %v (must be in [0.0, 0.99])",
			c.Detector.MinimumRelativeDistance)
	}
	if _, err := c.DetectorLanguages(); err != nil {
		return err
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Server.TimeoutSec < 1 {
		return fmt.Errorf("invalid server timeout %d (must be positive)", c.Server.TimeoutSec)
	}
	if c.Server.MaxTextKB < 1 {
		return fmt.Errorf("invalid max_text_kb %d (must be positive)", c.Server.MaxTextKB)
	}

	if c.Batch.Workers < 0 {
		return fmt.Errorf("invalid batch workers %d (must be >= 0)", c.Batch.Workers)
	}

	return nil
}

// DetectorLanguages resolves the configured ISO 639-1 codes to languages.
// An empty configuration selects the full catalog.
func (c *Config) DetectorLanguages() ([]lang.Language, error) {
	if len(c.Detector.Languages) == 0 {
		return lang.All(), nil
	}
	out := make([]lang.Language, 0, len(c.Detector.Languages))
	for _, code := range c.Detector.Languages {
		l, err := lang.FromCode(strings.TrimSpace(code))
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// BuildDetectorConfig builds the detect.Config described by this configuration.
func (c *Config) BuildDetectorConfig() (detect.Config, error) {
	languages, err := c.DetectorLanguages()
	if err != nil {
		return detect.Config{}, err
	}
	return detect.Config{
		Languages:               languages,
		MinimumRelativeDistance: c.Detector.MinimumRelativeDistance,
		ModelsDir:               c.ModelsDir,
	}, nil
}
