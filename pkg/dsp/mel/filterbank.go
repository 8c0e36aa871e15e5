package mel

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrNyquistViolation indicates a maximum band edge above half the
	// sample rate.
	ErrNyquistViolation = errors.New("max frequency exceeds Nyquist")

	// ErrDegenerateFilter indicates a configuration whose FFT resolution
	// collapses a triangular filter to zero width.
	ErrDegenerateFilter = errors.New("degenerate mel filter")

	// ErrInvalidFilterbankConfig indicates non-positive filter counts or
	// FFT sizes, or an inverted frequency range.
	ErrInvalidFilterbankConfig = errors.New("invalid filterbank configuration")
)

// FilterbankConfig identifies a filterbank. Two equal configs always
// produce the same matrix, so the struct doubles as a cache key.
type FilterbankConfig struct {
	NumFilters int     `json:"num_filters"`
	FFTSize    int     `json:"fft_size"`
	SampleRate int     `json:"sample_rate"`
	MinFreq    float64 `json:"min_freq"`
	MaxFreq    float64 `json:"max_freq"` // 0 resolves to SampleRate/2
}

// resolve fills derived defaults and validates the configuration.
func (c FilterbankConfig) resolve() (FilterbankConfig, error) {
	if c.MaxFreq == 0 {
		c.MaxFreq = float64(c.SampleRate) / 2.0
	}
	if c.NumFilters < 1 || c.FFTSize < 2 || c.SampleRate < 1 {
		return c, fmt.Errorf("%w: filters=%d fft=%d rate=%d",
			ErrInvalidFilterbankConfig, c.NumFilters, c.FFTSize, c.SampleRate)
	}
	if c.MinFreq < 0 || c.MinFreq >= c.MaxFreq {
		return c, fmt.Errorf("%w: min_freq=%g max_freq=%g",
			ErrInvalidFilterbankConfig, c.MinFreq, c.MaxFreq)
	}
	if c.MaxFreq > float64(c.SampleRate)/2.0 {
		return c, fmt.Errorf("%w: max_freq=%g, sample_rate=%d",
			ErrNyquistViolation, c.MaxFreq, c.SampleRate)
	}
	return c, nil
}

// Filterbank builds a matrix of triangular filters mapping FFT bins to
// Mel-spaced bands. Filters are rows; columns are the FFTSize/2+1
// non-redundant FFT bins. Each filter rises linearly from zero at its
// left control bin to one at its center bin, then falls back to zero at
// its right control bin. Control bins are placed at Mel-equal spacing
// over [MinFreq, MaxFreq] and floored onto the FFT bin grid.
func Filterbank(cfg FilterbankConfig) ([][]float64, error) {
	cfg, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	// n_filters+2 points evenly spaced in mels, mapped back to Hz and
	// then onto fractional FFT bin indices
	melPoints := make([]float64, cfg.NumFilters+2)
	floats.Span(melPoints, HzToMel(cfg.MinFreq), HzToMel(cfg.MaxFreq))

	bins := make([]float64, len(melPoints))
	for i, m := range melPoints {
		bins[i] = math.Floor(float64(cfg.FFTSize+1) * MelToHz(m) / float64(cfg.SampleRate))
	}

	numBins := cfg.FFTSize/2 + 1
	bank := make([][]float64, cfg.NumFilters)
	for j := 0; j < cfg.NumFilters; j++ {
		left, center, right := bins[j], bins[j+1], bins[j+2]
		if center == left || right == center {
			return nil, fmt.Errorf("%w: filter %d has control bins (%g, %g, %g); reduce the filter count or raise the FFT size",
				ErrDegenerateFilter, j, left, center, right)
		}

		row := make([]float64, numBins)
		for i := int(left); i < int(center) && i < numBins; i++ {
			row[i] = (float64(i) - left) / (center - left)
		}
		for i := int(center); i < int(right) && i < numBins; i++ {
			row[i] = (right - float64(i)) / (right - center)
		}
		bank[j] = row
	}
	return bank, nil
}
