package cepstral

import "math"

// lifterWeights returns the sinusoidal lifter 1 + (L/2)*sin(pi*n/L) for
// the first count coefficients. A coefficient of zero or less disables
// liftering, returned as nil.
func lifterWeights(coeff float64, count int) []float64 {
	if coeff <= 0 {
		return nil
	}
	weights := make([]float64, count)
	for n := range weights {
		weights[n] = 1 + (coeff/2)*math.Sin(math.Pi*float64(n)/coeff)
	}
	return weights
}

// Lifter rescales higher-order cepstral coefficients in place-free
// fashion: it returns a new matrix with column n multiplied by
// 1 + (coeff/2)*sin(pi*n/coeff). A coeff of zero or less returns the
// input unchanged.
func Lifter(cepstra [][]float64, coeff float64) [][]float64 {
	weights := lifterWeights(coeff, widestRow(cepstra))
	if weights == nil {
		return cepstra
	}
	out := make([][]float64, len(cepstra))
	for i, row := range cepstra {
		out[i] = make([]float64, len(row))
		for n, v := range row {
			out[i][n] = v * weights[n]
		}
	}
	return out
}

func widestRow(m [][]float64) int {
	widest := 0
	for _, row := range m {
		if len(row) > widest {
			widest = len(row)
		}
	}
	return widest
}
