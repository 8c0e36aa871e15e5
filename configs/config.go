// Package configs loads and validates application configuration via
// viper, with defaults seeded for every key.
package configs

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`

	// Feature extraction configuration
	Feature FeatureConfig `mapstructure:"feature"`
}

// FeatureConfig contains feature extraction settings
type FeatureConfig struct {
	SampleRate       int           `mapstructure:"sample_rate"`
	WindowDuration   time.Duration `mapstructure:"window_duration"`
	StepDuration     time.Duration `mapstructure:"step_duration"`
	NumCepstra       int           `mapstructure:"num_cepstra"`
	NumFilters       int           `mapstructure:"num_filters"`
	FFTSize          int           `mapstructure:"fft_size"`
	MinFreq          float64       `mapstructure:"min_freq"`
	MaxFreq          float64       `mapstructure:"max_freq"`
	Preemphasis      float64       `mapstructure:"preemphasis"`
	LifterCoeff      float64       `mapstructure:"lifter_coeff"`
	UseEnergy        bool          `mapstructure:"use_energy"`
	NumDerivatives   int           `mapstructure:"num_derivatives"`
	DerivativeSpread int           `mapstructure:"derivative_spread"`
	WindowFunction   string        `mapstructure:"window_function"`
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	setDefaults(viper.GetViper())

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	f := config.Feature

	if f.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive")
	}
	if f.WindowDuration <= 0 || f.StepDuration <= 0 {
		return fmt.Errorf("window and step durations must be positive")
	}
	if f.NumCepstra <= 0 || f.NumFilters <= 0 {
		return fmt.Errorf("cepstra and filter counts must be positive")
	}
	if f.FFTSize <= 0 {
		return fmt.Errorf("fft size must be positive")
	}
	if f.Preemphasis < 0 || f.Preemphasis >= 1 {
		return fmt.Errorf("preemphasis must be in [0, 1)")
	}
	if f.NumDerivatives < 0 {
		return fmt.Errorf("derivative count cannot be negative")
	}

	switch config.OutputFormat {
	case "", "json", "yaml", "csv":
	default:
		return fmt.Errorf("unsupported output format: %s", config.OutputFormat)
	}

	return nil
}
