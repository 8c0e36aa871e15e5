package sigproc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sineFrames(t *testing.T, freq float64, sampleRate, frameLen, frameStep, total int) [][]float64 {
	t.Helper()
	signal := make([]float64, total)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	frames, err := Frame(signal, frameLen, frameStep, nil)
	require.NoError(t, err)
	return frames
}

func TestMagnitudeSpectrumShape(t *testing.T) {
	frames := sineFrames(t, 1000, 16000, 400, 160, 16000)
	mag := MagnitudeSpectrum(frames, 512)

	require.Len(t, mag, len(frames))
	for _, row := range mag {
		assert.Len(t, row, 257)
	}
}

func TestPowerSpectrumNonNegative(t *testing.T) {
	frames := sineFrames(t, 440, 8000, 200, 80, 4000)
	ps := PowerSpectrum(frames, 256)

	for i, row := range ps {
		for j, v := range row {
			assert.GreaterOrEqual(t, v, 0.0, "frame %d bin %d", i, j)
		}
	}
}

func TestPowerSpectrumPeakAtSineFrequency(t *testing.T) {
	// 1 kHz at 16 kHz with a 512-point FFT puts the peak at bin 32
	frames := sineFrames(t, 1000, 16000, 512, 512, 16000)
	ps := PowerSpectrum(frames, 512)

	peak := 0
	for j, v := range ps[0] {
		if v > ps[0][peak] {
			peak = j
		}
	}
	assert.Equal(t, 32, peak)
}

func TestLogPowerSpectrumFiniteForSilence(t *testing.T) {
	frames := [][]float64{make([]float64, 400), make([]float64, 400)}
	lps := LogPowerSpectrum(frames, 512, false)

	for _, row := range lps {
		for _, v := range row {
			require.False(t, math.IsInf(v, 0) || math.IsNaN(v))
			assert.InDelta(t, -300, v, 1e-9) // 10*log10(1e-30)
		}
	}
}

func TestLogPowerSpectrumNormalizePutsPeakAtZero(t *testing.T) {
	frames := sineFrames(t, 1000, 16000, 400, 160, 8000)
	lps := LogPowerSpectrum(frames, 512, true)

	max := math.Inf(-1)
	for _, row := range lps {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	assert.InDelta(t, 0.0, max, 1e-12)
}

func TestFrameEnergiesFloorsZeros(t *testing.T) {
	ps := [][]float64{
		{0, 0, 0},
		{1, 2, 3},
	}
	energies := FrameEnergies(ps)

	require.Len(t, energies, 2)
	assert.Equal(t, machineEpsilon, energies[0])
	assert.Equal(t, 6.0, energies[1])
	assert.False(t, math.IsInf(math.Log(energies[0]), -1))
}

func TestPreemphasize(t *testing.T) {
	signal := []float64{1, 2, 3, 4}
	out, err := Preemphasize(signal, 0.97)
	require.NoError(t, err)

	require.Len(t, out, 4)
	assert.Equal(t, 1.0, out[0])
	assert.InDelta(t, 2-0.97*1, out[1], 1e-12)
	assert.InDelta(t, 3-0.97*2, out[2], 1e-12)
	assert.InDelta(t, 4-0.97*3, out[3], 1e-12)

	// input untouched
	assert.Equal(t, []float64{1, 2, 3, 4}, signal)
}

func TestPreemphasizeDisabled(t *testing.T) {
	signal := []float64{1, -1, 0.5}
	out, err := Preemphasize(signal, 0)
	require.NoError(t, err)
	assert.Equal(t, signal, out)
}

func TestPreemphasizeRejectsBadCoefficients(t *testing.T) {
	for _, coeff := range []float64{math.NaN(), math.Inf(1), -0.1, 1.0, 1.5} {
		_, err := Preemphasize([]float64{1}, coeff)
		assert.ErrorIs(t, err, ErrInvalidPreemphasis, "coeff=%v", coeff)
	}
}

func TestWindowShapes(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 1}, Rectangular(3))

	hamming := Hamming(5)
	require.Len(t, hamming, 5)
	assert.InDelta(t, 0.08, hamming[0], 1e-12)
	assert.InDelta(t, 1.0, hamming[2], 1e-12)
	assert.InDelta(t, hamming[0], hamming[4], 1e-12)

	hann := Hann(5)
	assert.InDelta(t, 0.0, hann[0], 1e-12)
	assert.InDelta(t, 1.0, hann[2], 1e-12)

	assert.Equal(t, []float64{1}, Hamming(1))
	assert.Equal(t, []float64{1}, Hann(1))
}

func TestWindowByName(t *testing.T) {
	assert.InDeltaSlice(t, Hamming(8), WindowByName("hamming")(8), 1e-12)
	assert.InDeltaSlice(t, Hann(8), WindowByName("hann")(8), 1e-12)
	assert.Equal(t, Rectangular(8), WindowByName("anything")(8))
}
