package sigproc

import (
	"fmt"
	"math"
)

// Preemphasize applies a first-order high-pass filter to the signal:
// out[0] = s[0], out[i] = s[i] - coeff*s[i-1]. A coefficient of 0
// disables the filter. The input slice is not modified.
func Preemphasize(signal []float64, coeff float64) ([]float64, error) {
	if math.IsNaN(coeff) || math.IsInf(coeff, 0) || coeff < 0 || coeff >= 1 {
		return nil, fmt.Errorf("%w: %v (want [0,1))", ErrInvalidPreemphasis, coeff)
	}

	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out, nil
	}

	out[0] = signal[0]
	for i := 1; i < len(signal); i++ {
		out[i] = signal[i] - coeff*signal[i-1]
	}
	return out, nil
}
