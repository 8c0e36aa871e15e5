package configs

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets default configuration values for all components
func setDefaults(v *viper.Viper) {
	if !v.IsSet("log_level") {
		v.Set("log_level", "info")
	}
	if !v.IsSet("output_format") {
		v.Set("output_format", "json")
	}

	// Feature extraction defaults: standard 13-coefficient MFCC setup
	if !v.IsSet("feature.sample_rate") {
		v.Set("feature.sample_rate", 16000)
	}
	if !v.IsSet("feature.window_duration") {
		v.Set("feature.window_duration", 25*time.Millisecond)
	}
	if !v.IsSet("feature.step_duration") {
		v.Set("feature.step_duration", 10*time.Millisecond)
	}
	if !v.IsSet("feature.num_cepstra") {
		v.Set("feature.num_cepstra", 13)
	}
	if !v.IsSet("feature.num_filters") {
		v.Set("feature.num_filters", 26)
	}
	if !v.IsSet("feature.fft_size") {
		v.Set("feature.fft_size", 512)
	}
	if !v.IsSet("feature.min_freq") {
		v.Set("feature.min_freq", 0.0)
	}
	if !v.IsSet("feature.max_freq") {
		// 0 resolves to half the sample rate
		v.Set("feature.max_freq", 0.0)
	}
	if !v.IsSet("feature.preemphasis") {
		v.Set("feature.preemphasis", 0.97)
	}
	if !v.IsSet("feature.lifter_coeff") {
		v.Set("feature.lifter_coeff", 22.0)
	}
	if !v.IsSet("feature.use_energy") {
		v.Set("feature.use_energy", true)
	}
	if !v.IsSet("feature.num_derivatives") {
		v.Set("feature.num_derivatives", 0)
	}
	if !v.IsSet("feature.derivative_spread") {
		v.Set("feature.derivative_spread", 2)
	}
	if !v.IsSet("feature.window_function") {
		v.Set("feature.window_function", "rectangular")
	}
}

// GetDefaultConfig returns a Config struct with all default values set
func GetDefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		OutputFormat: "json",
		Feature:      GetDefaultFeatureConfig(),
	}
}

// GetDefaultFeatureConfig returns default feature extraction settings
func GetDefaultFeatureConfig() FeatureConfig {
	return FeatureConfig{
		SampleRate:       16000,
		WindowDuration:   25 * time.Millisecond,
		StepDuration:     10 * time.Millisecond,
		NumCepstra:       13,
		NumFilters:       26,
		FFTSize:          512,
		MinFreq:          0,
		MaxFreq:          0,
		Preemphasis:      0.97,
		LifterCoeff:      22,
		UseEnergy:        true,
		NumDerivatives:   0,
		DerivativeSpread: 2,
		WindowFunction:   "rectangular",
	}
}
