package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *Result {
	return &Result{
		Feature:    "mfcc",
		SampleRate: 16000,
		Frames:     2,
		Width:      3,
		Matrix:     [][]float64{{1.5, -2.25, 0}, {0.125, 4, -8}},
		Energies:   []float64{10, 20},
		Parameters: map[string]any{"num_cepstra": 3},
	}
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	data, err := (&JSONFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	var decoded Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "mfcc", decoded.Feature)
	assert.Equal(t, sampleResult().Matrix, decoded.Matrix)
	assert.Equal(t, sampleResult().Energies, decoded.Energies)
}

func TestYAMLFormatterRoundTrips(t *testing.T) {
	data, err := (&YAMLFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	var decoded Result
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, 16000, decoded.SampleRate)
	assert.Equal(t, sampleResult().Matrix, decoded.Matrix)
}

func TestCSVFormatterMatrixOnly(t *testing.T) {
	data, err := (&CSVFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, []string{"1.5", "-2.25", "0"}, records[0])
	assert.Len(t, records[1], 3)
}

func TestForName(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, ForName("json"))
	assert.IsType(t, &YAMLFormatter{}, ForName("yaml"))
	assert.IsType(t, &CSVFormatter{}, ForName("csv"))
	assert.IsType(t, &JSONFormatter{}, ForName("unknown"))
}
