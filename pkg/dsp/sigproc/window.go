package sigproc

import "math"

// WindowFunc maps a frame length to a weight vector of that length.
// Window weights are applied multiplicatively to each analysis frame.
type WindowFunc func(n int) []float64

// Rectangular returns the all-ones window. This is the default analysis
// window; it leaves frames untouched.
func Rectangular(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1.0
	}
	return w
}

// Hamming returns the Hamming window of length n.
func Hamming(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1.0
		return w
	}
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

// Hann returns the Hann window of length n.
func Hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1.0
		return w
	}
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}

// WindowByName resolves a window name from configuration to a WindowFunc.
// Unknown names resolve to the rectangular window.
func WindowByName(name string) WindowFunc {
	switch name {
	case "hamming":
		return Hamming
	case "hann":
		return Hann
	default:
		return Rectangular
	}
}
