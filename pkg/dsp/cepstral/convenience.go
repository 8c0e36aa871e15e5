package cepstral

// MFCC is a one-shot convenience wrapper around New + (*Extractor).MFCC.
// Build an Extractor directly when processing many signals with the same
// configuration, so the filterbank and DCT basis are reused.
func MFCC(signal []float64, cfg Config) ([][]float64, error) {
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return e.MFCC(signal)
}

// FilterbankEnergies is a one-shot wrapper around New +
// (*Extractor).FilterbankEnergies.
func FilterbankEnergies(signal []float64, cfg Config) ([][]float64, []float64, error) {
	e, err := New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return e.FilterbankEnergies(signal)
}

// LogFilterbankEnergies is a one-shot wrapper around New +
// (*Extractor).LogFilterbankEnergies.
func LogFilterbankEnergies(signal []float64, cfg Config) ([][]float64, error) {
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return e.LogFilterbankEnergies(signal)
}

// SSC is a one-shot wrapper around New + (*Extractor).SSC.
func SSC(signal []float64, cfg Config) ([][]float64, error) {
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return e.SSC(signal)
}
