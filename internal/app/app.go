// Package app orchestrates one extraction run for the CLI: load the
// signal, run the requested pipeline, format and write the result.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/audiomath/melfeat/configs"
	"github.com/audiomath/melfeat/internal/output"
	"github.com/audiomath/melfeat/internal/pcm"
	"github.com/audiomath/melfeat/pkg/dsp/cepstral"
	"github.com/audiomath/melfeat/pkg/dsp/mel"
	"github.com/audiomath/melfeat/pkg/dsp/sigproc"
	"github.com/audiomath/melfeat/pkg/logging"
)

// Feature identifies which pipeline a run computes.
type Feature string

const (
	FeatureMFCC       Feature = "mfcc"
	FeatureFbank      Feature = "fbank"
	FeatureLogFbank   Feature = "logfbank"
	FeatureSSC        Feature = "ssc"
	FeatureFilterbank Feature = "filterbank"
)

// Context holds the resolved inputs of one CLI invocation.
type Context struct {
	InputFile    string
	OutputFile   string
	OutputFormat string
	Verbose      bool

	Logger logging.Logger
	Config *configs.Config
}

// App runs feature extractions for the CLI.
type App struct {
	ctx    *Context
	cache  *mel.FilterbankCache
	logger logging.Logger
}

// New creates an application from CLI context, loading and validating
// configuration.
func New(ctx *Context) (*App, error) {
	logger := ctx.Logger
	if logger == nil {
		level := "info"
		if ctx.Verbose {
			level = "debug"
		}
		logger = logging.NewLoggerWithLevel(level)
		ctx.Logger = logger
	}

	if ctx.Config == nil {
		config, err := configs.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := configs.ValidateConfig(config); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		ctx.Config = config
	}
	if ctx.OutputFormat == "" {
		ctx.OutputFormat = ctx.Config.OutputFormat
	}

	return &App{
		ctx:    ctx,
		cache:  mel.NewFilterbankCache(),
		logger: logger.WithFields(logging.Fields{"component": "app"}),
	}, nil
}

// extractorConfig maps file/flag configuration onto the pipeline config.
func (a *App) extractorConfig() cepstral.Config {
	f := a.ctx.Config.Feature
	return cepstral.Config{
		SampleRate:       f.SampleRate,
		WindowDuration:   f.WindowDuration,
		StepDuration:     f.StepDuration,
		NumCepstra:       f.NumCepstra,
		NumFilters:       f.NumFilters,
		FFTSize:          f.FFTSize,
		MinFreq:          f.MinFreq,
		MaxFreq:          f.MaxFreq,
		Preemphasis:      f.Preemphasis,
		LifterCoeff:      f.LifterCoeff,
		UseEnergy:        f.UseEnergy,
		NumDerivatives:   f.NumDerivatives,
		DerivativeSpread: f.DerivativeSpread,
		Window:           sigproc.WindowByName(f.WindowFunction),
		Cache:            a.cache,
		Logger:           a.ctx.Logger,
	}
}

// Run computes the requested feature and writes the formatted result.
func (a *App) Run(feature Feature) error {
	result, err := a.compute(feature)
	if err != nil {
		return err
	}

	formatted, err := output.ForName(a.ctx.OutputFormat).Format(result)
	if err != nil {
		return err
	}
	return a.write(formatted)
}

func (a *App) compute(feature Feature) (*output.Result, error) {
	f := a.ctx.Config.Feature

	if feature == FeatureFilterbank {
		// pure function of configuration, no signal involved
		bank, err := a.cache.Get(mel.FilterbankConfig{
			NumFilters: f.NumFilters,
			FFTSize:    f.FFTSize,
			SampleRate: f.SampleRate,
			MinFreq:    f.MinFreq,
			MaxFreq:    f.MaxFreq,
		})
		if err != nil {
			return nil, err
		}
		return a.result(feature, bank, nil), nil
	}

	signal, err := pcm.ReadFile(a.ctx.InputFile, f.SampleRate)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded input signal", logging.Fields{
		"input":       a.ctx.InputFile,
		"samples":     len(signal.Samples),
		"duration_ms": signal.Duration.Milliseconds(),
	})

	extractor, err := cepstral.New(a.extractorConfig())
	if err != nil {
		return nil, err
	}

	switch feature {
	case FeatureMFCC:
		matrix, err := extractor.MFCC(signal.Samples)
		if err != nil {
			return nil, err
		}
		return a.result(feature, matrix, nil), nil
	case FeatureFbank:
		matrix, energies, err := extractor.FilterbankEnergies(signal.Samples)
		if err != nil {
			return nil, err
		}
		return a.result(feature, matrix, energies), nil
	case FeatureLogFbank:
		matrix, err := extractor.LogFilterbankEnergies(signal.Samples)
		if err != nil {
			return nil, err
		}
		return a.result(feature, matrix, nil), nil
	case FeatureSSC:
		matrix, err := extractor.SSC(signal.Samples)
		if err != nil {
			return nil, err
		}
		return a.result(feature, matrix, nil), nil
	default:
		return nil, fmt.Errorf("unknown feature: %s", feature)
	}
}

func (a *App) result(feature Feature, matrix [][]float64, energies []float64) *output.Result {
	f := a.ctx.Config.Feature
	width := 0
	if len(matrix) > 0 {
		width = len(matrix[0])
	}
	return &output.Result{
		Feature:    string(feature),
		SampleRate: f.SampleRate,
		Frames:     len(matrix),
		Width:      width,
		Matrix:     matrix,
		Energies:   energies,
		Parameters: map[string]any{
			"window_duration_ms": f.WindowDuration.Milliseconds(),
			"step_duration_ms":   f.StepDuration.Milliseconds(),
			"num_cepstra":        f.NumCepstra,
			"num_filters":        f.NumFilters,
			"fft_size":           f.FFTSize,
			"preemphasis":        f.Preemphasis,
			"window_function":    f.WindowFunction,
		},
	}
}

func (a *App) write(data []byte) error {
	if a.ctx.OutputFile == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	dir := filepath.Dir(a.ctx.OutputFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(a.ctx.OutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	a.logger.Info("results written to file", logging.Fields{
		"output_file": a.ctx.OutputFile,
		"size_bytes":  len(data),
	})
	return nil
}
