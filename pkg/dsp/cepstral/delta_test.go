package cepstral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeltaConstantFeaturesAreFlat(t *testing.T) {
	features := make([][]float64, 10)
	for i := range features {
		features[i] = []float64{3.5, -1.25, 0}
	}

	delta, err := Delta(features, 2)
	require.NoError(t, err)

	require.Len(t, delta, 10)
	for _, row := range delta {
		assert.Equal(t, []float64{0, 0, 0}, row)
	}
}

func TestDeltaLinearRampHasUnitSlope(t *testing.T) {
	// c[t] = t for every coefficient: slope is exactly 1 everywhere,
	// including the boundary frames where the window shrinks
	features := make([][]float64, 8)
	for i := range features {
		features[i] = []float64{float64(i), float64(i)}
	}

	delta, err := Delta(features, 2)
	require.NoError(t, err)

	for i, row := range delta {
		for _, v := range row {
			assert.InDelta(t, 1.0, v, 1e-12, "frame %d", i)
		}
	}
}

func TestDeltaSingleFrame(t *testing.T) {
	delta, err := Delta([][]float64{{1, 2, 3}}, 2)
	require.NoError(t, err)
	require.Len(t, delta, 1)
	assert.Equal(t, []float64{0, 0, 0}, delta[0])
}

func TestDeltaInvalidSpread(t *testing.T) {
	_, err := Delta([][]float64{{1}}, 0)
	assert.ErrorIs(t, err, ErrInvalidDerivatives)
}

func TestLifterScalesCoefficients(t *testing.T) {
	cepstra := [][]float64{{1, 1, 1, 1}}
	out := Lifter(cepstra, 22)

	require.Len(t, out, 1)
	// coefficient 0 has lifter weight exactly 1
	assert.InDelta(t, 1.0, out[0][0], 1e-12)
	// higher coefficients are scaled up
	for n := 1; n < 4; n++ {
		assert.Greater(t, out[0][n], 1.0, "coefficient %d", n)
	}
}

func TestLifterDisabled(t *testing.T) {
	cepstra := [][]float64{{1, 2, 3}}
	assert.Equal(t, cepstra, Lifter(cepstra, 0))
	assert.Equal(t, cepstra, Lifter(cepstra, -5))
}
