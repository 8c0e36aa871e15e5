// Package cepstral computes MFCC, Mel-filterbank energy, and spectral
// subband centroid features from in-memory audio signals.
package cepstral

import (
	"errors"
	"fmt"
	"time"

	"github.com/audiomath/melfeat/pkg/dsp/mel"
	"github.com/audiomath/melfeat/pkg/dsp/sigproc"
	"github.com/audiomath/melfeat/pkg/logging"
)

var (
	// ErrTooManyCepstra indicates a requested cepstral count above the
	// filter count; the DCT only produces NumFilters coefficients.
	ErrTooManyCepstra = errors.New("cepstral count exceeds filter count")

	// ErrInvalidDerivatives indicates a negative derivative count or a
	// non-positive derivative spread.
	ErrInvalidDerivatives = errors.New("invalid derivative configuration")
)

// Config holds the parameters of a feature extraction pipeline. Zero
// values for MaxFreq and Window resolve to SampleRate/2 and the
// rectangular window before validation.
type Config struct {
	SampleRate     int           `json:"sample_rate"`
	WindowDuration time.Duration `json:"window_duration"`
	StepDuration   time.Duration `json:"step_duration"`
	NumCepstra     int           `json:"num_cepstra"`
	NumFilters     int           `json:"num_filters"`
	FFTSize        int           `json:"fft_size"`
	MinFreq        float64       `json:"min_freq"`
	MaxFreq        float64       `json:"max_freq"`
	Preemphasis    float64       `json:"preemphasis"`
	LifterCoeff    float64       `json:"lifter_coeff"`
	UseEnergy      bool          `json:"use_energy"`

	// NumDerivatives appends that many derivative blocks to the MFCC
	// matrix; DerivativeSpread controls how many neighbor frames feed
	// each slope estimate.
	NumDerivatives   int `json:"num_derivatives"`
	DerivativeSpread int `json:"derivative_spread"`

	// Window is the analysis window applied to each frame.
	Window sigproc.WindowFunc `json:"-"`

	// Cache, when set, memoizes the filterbank across extractors with
	// the same configuration.
	Cache *mel.FilterbankCache `json:"-"`

	// Logger receives debug diagnostics; nil means silent.
	Logger logging.Logger `json:"-"`
}

// DefaultConfig returns the standard 13-coefficient MFCC configuration
// for the given sample rate: 25 ms windows, 10 ms steps, 26 filters,
// 512-point FFT, 0.97 pre-emphasis, lifter 22, energy substitution on.
func DefaultConfig(sampleRate int) Config {
	return Config{
		SampleRate:       sampleRate,
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
	}
}

// frameGeometry rounds the window and step durations to sample counts.
func (c Config) frameGeometry() (frameLen, frameStep int, err error) {
	frameLen = sigproc.SamplesFromDuration(c.WindowDuration.Seconds(), c.SampleRate)
	frameStep = sigproc.SamplesFromDuration(c.StepDuration.Seconds(), c.SampleRate)
	if frameLen < 1 || frameStep < 1 {
		return 0, 0, fmt.Errorf("%w: window %v and step %v at %d Hz round to %d and %d samples",
			sigproc.ErrInvalidFrameGeometry, c.WindowDuration, c.StepDuration,
			c.SampleRate, frameLen, frameStep)
	}
	return frameLen, frameStep, nil
}

func (c Config) filterbankConfig() mel.FilterbankConfig {
	return mel.FilterbankConfig{
		NumFilters: c.NumFilters,
		FFTSize:    c.FFTSize,
		SampleRate: c.SampleRate,
		MinFreq:    c.MinFreq,
		MaxFreq:    c.MaxFreq,
	}
}
