package sigproc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameCount(t *testing.T) {
	tests := []struct {
		name      string
		sigLen    int
		frameLen  int
		frameStep int
		expected  int
	}{
		{"shorter than one frame", 100, 400, 160, 1},
		{"exactly one frame", 400, 400, 160, 1},
		{"one second at 16kHz, 25ms/10ms", 16000, 400, 160, 99},
		{"one extra sample", 401, 400, 160, 2},
		{"non-overlapping", 1000, 100, 100, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FrameCount(tt.sigLen, tt.frameLen, tt.frameStep))
		})
	}
}

func TestFrameShortSignalSingleFrame(t *testing.T) {
	signal := []float64{1, 2, 3}
	frames, err := Frame(signal, 8, 4, nil)
	require.NoError(t, err)

	require.Len(t, frames, 1)
	assert.Equal(t, []float64{1, 2, 3, 0, 0, 0, 0, 0}, frames[0])
}

func TestFrameOverlap(t *testing.T) {
	signal := make([]float64, 10)
	for i := range signal {
		signal[i] = float64(i)
	}

	frames, err := Frame(signal, 4, 2, nil)
	require.NoError(t, err)

	require.Len(t, frames, 4)
	assert.Equal(t, []float64{0, 1, 2, 3}, frames[0])
	assert.Equal(t, []float64{2, 3, 4, 5}, frames[1])
	assert.Equal(t, []float64{6, 7, 8, 9}, frames[3])
}

func TestFrameAppliesWindow(t *testing.T) {
	signal := []float64{1, 1, 1, 1}
	frames, err := Frame(signal, 4, 4, Hamming)
	require.NoError(t, err)

	require.Len(t, frames, 1)
	assert.InDeltaSlice(t, Hamming(4), frames[0], 1e-12)
}

func TestFrameInvalidGeometry(t *testing.T) {
	_, err := Frame([]float64{1, 2, 3}, 0, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidFrameGeometry)

	_, err = Frame([]float64{1, 2, 3}, 4, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidFrameGeometry)
}

func TestDeframeShapeMismatch(t *testing.T) {
	frames := [][]float64{{1, 2, 3}, {4, 5}}
	_, err := Deframe(frames, 3, 1, 0, nil)
	assert.ErrorIs(t, err, ErrFrameShapeMismatch)
}

func TestFrameDeframeRoundTrip(t *testing.T) {
	windows := map[string]WindowFunc{
		"rectangular": Rectangular,
		"hamming":     Hamming,
	}

	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 50 * float64(i) / 8000)
	}

	for name, win := range windows {
		t.Run(name, func(t *testing.T) {
			frames, err := Frame(signal, 200, 80, win)
			require.NoError(t, err)

			rec, err := Deframe(frames, 200, 80, len(signal), win)
			require.NoError(t, err)

			require.Len(t, rec, len(signal))
			for i := range signal {
				assert.InDelta(t, signal[i], rec[i], 1e-6, "sample %d", i)
			}
		})
	}
}

func TestDeframeTruncatesAndPads(t *testing.T) {
	frames := [][]float64{{1, 2, 3, 4}, {3, 4, 5, 6}}

	short, err := Deframe(frames, 4, 2, 3, nil)
	require.NoError(t, err)
	assert.Len(t, short, 3)

	long, err := Deframe(frames, 4, 2, 10, nil)
	require.NoError(t, err)
	assert.Len(t, long, 10)
	assert.Equal(t, 0.0, long[9])
}

func TestDeframeWrappedErrorsExposeSentinels(t *testing.T) {
	_, err := Deframe(nil, 0, 1, 0, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFrameGeometry))
}

func TestSamplesFromDuration(t *testing.T) {
	assert.Equal(t, 400, SamplesFromDuration(0.025, 16000))
	assert.Equal(t, 160, SamplesFromDuration(0.010, 16000))
	assert.Equal(t, 0, SamplesFromDuration(0.00001, 16000))
}
