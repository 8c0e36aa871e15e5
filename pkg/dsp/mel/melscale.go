// Package mel builds triangular Mel-scale filterbanks over FFT bins.
// A filterbank is a pure function of its configuration and is the most
// reusable artifact in the feature pipeline; an optional concurrency-safe
// cache memoizes it per configuration.
package mel

import "math"

// HzToMel converts a frequency in Hz to the Mel scale.
func HzToMel(hz float64) float64 {
	return 2595.0 * math.Log10(1.0+hz/700.0)
}

// MelToHz converts a Mel-scale value back to Hz.
func MelToHz(mel float64) float64 {
	return 700.0 * (math.Pow(10.0, mel/2595.0) - 1.0)
}
