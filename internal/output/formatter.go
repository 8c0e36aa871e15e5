// Package output renders feature matrices and metadata in the formats
// the CLI exposes.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Result is the serializable outcome of one extraction run.
type Result struct {
	Feature    string         `json:"feature" yaml:"feature"`
	SampleRate int            `json:"sample_rate" yaml:"sample_rate"`
	Frames     int            `json:"frames" yaml:"frames"`
	Width      int            `json:"width" yaml:"width"`
	Matrix     [][]float64    `json:"matrix" yaml:"matrix"`
	Energies   []float64      `json:"energies,omitempty" yaml:"energies,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Formatter renders a Result into bytes.
type Formatter interface {
	Format(result *Result) ([]byte, error)
}

// ForName returns the formatter for an output format name. Unknown names
// fall back to JSON.
func ForName(name string) Formatter {
	switch name {
	case "yaml":
		return &YAMLFormatter{}
	case "csv":
		return &CSVFormatter{}
	default:
		return &JSONFormatter{}
	}
}

// JSONFormatter renders indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(result *Result) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON output: %w", err)
	}
	return append(data, '\n'), nil
}

// YAMLFormatter renders YAML.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(result *Result) ([]byte, error) {
	data, err := yaml.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML output: %w", err)
	}
	return data, nil
}

// CSVFormatter renders the matrix alone, one frame per row. Metadata and
// the energy vector are dropped; use JSON or YAML to keep them.
type CSVFormatter struct{}

func (f *CSVFormatter) Format(result *Result) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	record := make([]string, 0, result.Width)
	for _, row := range result.Matrix {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV output: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write CSV output: %w", err)
	}
	return buf.Bytes(), nil
}
