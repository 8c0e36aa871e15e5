package cepstral

import "math"

// dctMatrix builds the orthonormal type-II DCT basis for size inputs,
// keeping the first outputs rows. Row k, column n holds
// sqrt(2/N)*cos(pi*(n+1/2)*k/N), with row 0 scaled by an extra 1/sqrt(2).
func dctMatrix(outputs, size int) [][]float64 {
	matrix := make([][]float64, outputs)
	scale := math.Sqrt(2.0 / float64(size))
	for k := range matrix {
		matrix[k] = make([]float64, size)
		for n := 0; n < size; n++ {
			matrix[k][n] = scale * math.Cos(math.Pi*(float64(n)+0.5)*float64(k)/float64(size))
		}
		if k == 0 {
			for n := range matrix[k] {
				matrix[k][n] /= math.Sqrt2
			}
		}
	}
	return matrix
}
