package sigproc

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// logPowerFloor is the smallest power value admitted into a decibel
// conversion; anything at or below it is clamped so the log stays finite.
const logPowerFloor = 1e-30

// machineEpsilon replaces exact-zero energies before a logarithm
var machineEpsilon = math.Nextafter(1, 2) - 1

// MagnitudeSpectrum computes the per-frame magnitude spectrum over the
// non-redundant half of an nfft-point real FFT. Frames shorter than nfft
// are zero-padded on the right. Frames longer than nfft are truncated to
// nfft samples, which discards the trailing part of the frame; pick an
// nfft of at least the frame length to keep the whole frame.
// Output shape is (len(frames), nfft/2+1).
func MagnitudeSpectrum(frames [][]float64, nfft int) [][]float64 {
	bins := nfft/2 + 1
	out := make([][]float64, len(frames))
	buf := make([]float64, nfft)

	for i, frame := range frames {
		n := copy(buf, frame)
		for j := n; j < nfft; j++ {
			buf[j] = 0
		}
		spectrum := fft.FFTReal(buf)

		out[i] = make([]float64, bins)
		for j := 0; j < bins; j++ {
			out[i][j] = cmplx.Abs(spectrum[j])
		}
	}
	return out
}

// PowerSpectrum computes the per-frame power spectrum: squared magnitude
// scaled by 1/nfft. Values are always non-negative.
func PowerSpectrum(frames [][]float64, nfft int) [][]float64 {
	mag := MagnitudeSpectrum(frames, nfft)
	scale := 1.0 / float64(nfft)
	for _, row := range mag {
		for j, m := range row {
			row[j] = scale * m * m
		}
	}
	return mag
}

// LogPowerSpectrum computes the per-frame power spectrum in decibels,
// flooring powers at 1e-30 so an all-zero frame stays finite. When
// normalize is set, the global maximum across the matrix is subtracted so
// the peak sits at 0 dB.
func LogPowerSpectrum(frames [][]float64, nfft int, normalize bool) [][]float64 {
	ps := PowerSpectrum(frames, nfft)
	for _, row := range ps {
		for j, p := range row {
			if p <= logPowerFloor {
				p = logPowerFloor
			}
			row[j] = 10 * math.Log10(p)
		}
	}

	if normalize && len(ps) > 0 {
		max := floats.Max(ps[0])
		for _, row := range ps[1:] {
			if m := floats.Max(row); m > max {
				max = m
			}
		}
		for _, row := range ps {
			for j := range row {
				row[j] -= max
			}
		}
	}
	return ps
}

// FrameEnergies sums each row of a power spectrum matrix into a total
// per-frame energy, flooring exact zeros to machine epsilon so a
// following logarithm stays finite.
func FrameEnergies(powerSpectrum [][]float64) []float64 {
	energies := make([]float64, len(powerSpectrum))
	for i, row := range powerSpectrum {
		e := floats.Sum(row)
		if e == 0 {
			e = machineEpsilon
		}
		energies[i] = e
	}
	return energies
}
