package cepstral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/audiomath/melfeat/pkg/dsp/mel"
	"github.com/audiomath/melfeat/pkg/dsp/sigproc"
	"github.com/audiomath/melfeat/pkg/logging"
)

// machineEpsilon replaces exact-zero filterbank energies before a
// logarithm, keeping the pipeline total for any finite input
var machineEpsilon = math.Nextafter(1, 2) - 1

// Extractor runs the feature pipeline for one fixed configuration. It
// holds only immutable derived state (filterbank, DCT basis, lifter
// weights), so a single Extractor is safe for concurrent use on
// disjoint signals.
type Extractor struct {
	cfg        Config
	frameLen   int
	frameStep  int
	filterbank [][]float64
	dct        [][]float64
	lifter     []float64
	logger     logging.Logger
}

// New validates the configuration, resolves derived defaults, and builds
// the filterbank and DCT basis up front so every later call is a pure
// numeric pass.
func New(cfg Config) (*Extractor, error) {
	if cfg.Window == nil {
		cfg.Window = sigproc.Rectangular
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNoopLogger()
	}

	frameLen, frameStep, err := cfg.frameGeometry()
	if err != nil {
		return nil, err
	}
	if cfg.NumCepstra < 1 {
		return nil, fmt.Errorf("invalid cepstral count: %d", cfg.NumCepstra)
	}
	if cfg.NumCepstra > cfg.NumFilters {
		return nil, fmt.Errorf("%w: requested %d cepstra from %d filters",
			ErrTooManyCepstra, cfg.NumCepstra, cfg.NumFilters)
	}
	if cfg.NumDerivatives < 0 {
		return nil, fmt.Errorf("%w: num_derivatives=%d", ErrInvalidDerivatives, cfg.NumDerivatives)
	}
	if cfg.NumDerivatives > 0 && cfg.DerivativeSpread < 1 {
		return nil, fmt.Errorf("%w: derivative_spread=%d", ErrInvalidDerivatives, cfg.DerivativeSpread)
	}
	if math.IsNaN(cfg.Preemphasis) || math.IsInf(cfg.Preemphasis, 0) ||
		cfg.Preemphasis < 0 || cfg.Preemphasis >= 1 {
		return nil, fmt.Errorf("%w: %v", sigproc.ErrInvalidPreemphasis, cfg.Preemphasis)
	}

	fbConfig := cfg.filterbankConfig()
	var filterbank [][]float64
	if cfg.Cache != nil {
		filterbank, err = cfg.Cache.Get(fbConfig)
	} else {
		filterbank, err = mel.Filterbank(fbConfig)
	}
	if err != nil {
		return nil, err
	}

	return &Extractor{
		cfg:        cfg,
		frameLen:   frameLen,
		frameStep:  frameStep,
		filterbank: filterbank,
		dct:        dctMatrix(cfg.NumCepstra, cfg.NumFilters),
		lifter:     lifterWeights(cfg.LifterCoeff, cfg.NumCepstra),
		logger: cfg.Logger.WithFields(logging.Fields{
			"component":   "cepstral_extractor",
			"sample_rate": cfg.SampleRate,
		}),
	}, nil
}

// Config returns the resolved configuration of the extractor.
func (e *Extractor) Config() Config { return e.cfg }

// FrameLength returns the analysis window length in samples.
func (e *Extractor) FrameLength() int { return e.frameLen }

// FrameStep returns the hop between successive frames in samples.
func (e *Extractor) FrameStep() int { return e.frameStep }

// Filterbank returns the triangular Mel filterbank matrix. The matrix is
// shared derived state and must not be modified.
func (e *Extractor) Filterbank() [][]float64 { return e.filterbank }

// powerSpectra runs the front half of the pipeline: pre-emphasis,
// framing, and the per-frame power spectrum.
func (e *Extractor) powerSpectra(signal []float64) ([][]float64, error) {
	emphasized, err := sigproc.Preemphasize(signal, e.cfg.Preemphasis)
	if err != nil {
		return nil, err
	}
	frames, err := sigproc.Frame(emphasized, e.frameLen, e.frameStep, e.cfg.Window)
	if err != nil {
		return nil, err
	}
	return sigproc.PowerSpectrum(frames, e.cfg.FFTSize), nil
}

// FilterbankEnergies projects the power spectrum of each frame through
// the Mel filterbank. It returns the (frames x filters) energy matrix
// and the total raw power-spectrum energy per frame, both with exact
// zeros floored to machine epsilon.
func (e *Extractor) FilterbankEnergies(signal []float64) ([][]float64, []float64, error) {
	pspec, err := e.powerSpectra(signal)
	if err != nil {
		return nil, nil, err
	}

	energies := sigproc.FrameEnergies(pspec)

	feat := make([][]float64, len(pspec))
	for i, row := range pspec {
		feat[i] = make([]float64, len(e.filterbank))
		for j, filter := range e.filterbank {
			v := floats.Dot(row, filter)
			if v == 0 {
				v = machineEpsilon
			}
			feat[i][j] = v
		}
	}

	e.logger.Debug("computed filterbank energies", logging.Fields{
		"frames":  len(feat),
		"filters": len(e.filterbank),
	})
	return feat, energies, nil
}

// LogFilterbankEnergies returns the natural log of the filterbank energy
// matrix. The epsilon flooring in FilterbankEnergies keeps every entry
// finite even for an all-zero signal.
func (e *Extractor) LogFilterbankEnergies(signal []float64) ([][]float64, error) {
	feat, _, err := e.FilterbankEnergies(signal)
	if err != nil {
		return nil, err
	}
	for _, row := range feat {
		for j, v := range row {
			row[j] = math.Log(v)
		}
	}
	return feat, nil
}

// MFCC computes the Mel-frequency cepstral coefficient matrix. Each row
// is one frame; the width is NumCepstra*(1+NumDerivatives). When
// UseEnergy is set, coefficient 0 carries log(frame energy) in place of
// the liftered DCT coefficient.
func (e *Extractor) MFCC(signal []float64) ([][]float64, error) {
	feat, energies, err := e.FilterbankEnergies(signal)
	if err != nil {
		return nil, err
	}

	coeffs := make([][]float64, len(feat))
	logFeat := make([]float64, e.cfg.NumFilters)
	for i, row := range feat {
		for j, v := range row {
			logFeat[j] = math.Log(v)
		}
		coeffs[i] = make([]float64, e.cfg.NumCepstra)
		for k, basis := range e.dct {
			c := floats.Dot(basis, logFeat)
			if e.lifter != nil {
				c *= e.lifter[k]
			}
			coeffs[i][k] = c
		}
		if e.cfg.UseEnergy {
			coeffs[i][0] = math.Log(energies[i])
		}
	}

	if e.cfg.NumDerivatives == 0 {
		return coeffs, nil
	}

	blocks := [][][]float64{coeffs}
	target := coeffs
	for d := 0; d < e.cfg.NumDerivatives; d++ {
		target, err = Delta(target, e.cfg.DerivativeSpread)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, target)
	}

	width := e.cfg.NumCepstra * (1 + e.cfg.NumDerivatives)
	out := make([][]float64, len(coeffs))
	for i := range out {
		out[i] = make([]float64, 0, width)
		for _, block := range blocks {
			out[i] = append(out[i], block[i]...)
		}
	}

	e.logger.Debug("computed MFCC matrix", logging.Fields{
		"frames": len(out),
		"width":  width,
	})
	return out, nil
}

// SSC computes the spectral subband centroid matrix: the power-weighted
// centroid frequency of each Mel band per frame. It shares the
// filterbank and power spectrum with MFCC but skips the log/DCT stage.
func (e *Extractor) SSC(signal []float64) ([][]float64, error) {
	pspec, err := e.powerSpectra(signal)
	if err != nil {
		return nil, err
	}
	for _, row := range pspec {
		for j, v := range row {
			if v == 0 {
				row[j] = machineEpsilon
			}
		}
	}

	if len(pspec) == 0 {
		return [][]float64{}, nil
	}

	// frequency ramp from 1 Hz to Nyquist across the spectrum bins
	ramp := make([]float64, len(pspec[0]))
	floats.Span(ramp, 1, float64(e.cfg.SampleRate)/2.0)

	weighted := make([]float64, len(ramp))
	out := make([][]float64, len(pspec))
	for i, row := range pspec {
		for j, v := range row {
			weighted[j] = v * ramp[j]
		}
		out[i] = make([]float64, len(e.filterbank))
		for j, filter := range e.filterbank {
			out[i][j] = floats.Dot(weighted, filter) / floats.Dot(row, filter)
		}
	}
	return out, nil
}
