package cepstral

import "fmt"

// Delta estimates a local slope for every cell of a feature matrix using
// a symmetric regression over up to spread neighbor frames on each side:
//
//	d[t] = sum_{n=1..k} n*(c[t+n] - c[t-n]) / (2 * sum_{n=1..k} n^2)
//
// Near the matrix edges the spread shrinks to the frames actually
// available, reducing to a plain forward difference at the first frame
// and a backward difference at the last. The output has the same shape
// as the input.
func Delta(features [][]float64, spread int) ([][]float64, error) {
	if spread < 1 {
		return nil, fmt.Errorf("%w: spread=%d (must be >= 1)", ErrInvalidDerivatives, spread)
	}

	numFrames := len(features)
	out := make([][]float64, numFrames)
	for t := range features {
		width := len(features[t])
		out[t] = make([]float64, width)

		k := spread
		if t < k {
			k = t
		}
		if numFrames-1-t < k {
			k = numFrames - 1 - t
		}

		if k == 0 {
			// single frame, or an edge with no symmetric neighbors:
			// fall back to a one-sided difference
			switch {
			case t+1 < numFrames:
				diffRows(out[t], features[t+1], features[t])
			case t > 0:
				diffRows(out[t], features[t], features[t-1])
			}
			continue
		}

		denom := 0.0
		for n := 1; n <= k; n++ {
			denom += float64(n) * float64(n)
		}
		denom *= 2

		for j := 0; j < width; j++ {
			sum := 0.0
			for n := 1; n <= k; n++ {
				if j < len(features[t+n]) && j < len(features[t-n]) {
					sum += float64(n) * (features[t+n][j] - features[t-n][j])
				}
			}
			out[t][j] = sum / denom
		}
	}
	return out, nil
}

func diffRows(dst, a, b []float64) {
	for j := range dst {
		if j < len(a) && j < len(b) {
			dst[j] = a[j] - b[j]
		}
	}
}
