package sigproc

import (
	"fmt"
	"math"
)

// overlapEpsilon biases the window-weight accumulator in Deframe so the
// elementwise division never hits an exact zero. This matches the original
// overlap-add formulation; the approximation error grows only if every
// overlapping frame contributes an exactly-zero window weight at the same
// sample, which rectangular and standard analysis windows avoid.
const overlapEpsilon = 1e-15

// FrameCount returns the number of analysis frames produced by Frame for
// a signal of sigLen samples: one frame if the signal fits inside a single
// frame, otherwise 1 + ceil((sigLen-frameLen)/frameStep).
func FrameCount(sigLen, frameLen, frameStep int) int {
	if sigLen <= frameLen {
		return 1
	}
	return 1 + int(math.Ceil(float64(sigLen-frameLen)/float64(frameStep)))
}

// SamplesFromDuration rounds a duration in seconds at the given sample
// rate to the nearest integer sample count.
func SamplesFromDuration(seconds float64, sampleRate int) int {
	return int(math.Round(seconds * float64(sampleRate)))
}

// Frame splits a signal into overlapping frames of frameLen samples,
// frameStep samples apart, each multiplied by the window. The signal is
// zero-padded on the right so the last frame is fully covered. A nil
// window means rectangular.
func Frame(signal []float64, frameLen, frameStep int, win WindowFunc) ([][]float64, error) {
	if frameLen < 1 || frameStep < 1 {
		return nil, fmt.Errorf("%w: frame_len=%d frame_step=%d (both must be >= 1 sample)",
			ErrInvalidFrameGeometry, frameLen, frameStep)
	}
	if win == nil {
		win = Rectangular
	}

	numFrames := FrameCount(len(signal), frameLen, frameStep)
	padLen := (numFrames-1)*frameStep + frameLen

	padded := make([]float64, padLen)
	copy(padded, signal)

	weights := win(frameLen)
	if len(weights) != frameLen {
		return nil, fmt.Errorf("%w: window produced %d weights for frame length %d",
			ErrFrameShapeMismatch, len(weights), frameLen)
	}

	frames := make([][]float64, numFrames)
	for i := range frames {
		frames[i] = make([]float64, frameLen)
		offset := i * frameStep
		for j := 0; j < frameLen; j++ {
			frames[i][j] = padded[offset+j] * weights[j]
		}
	}
	return frames, nil
}

// Deframe reconstructs a signal from overlapping frames by overlap-add,
// normalizing by the accumulated window weights, and truncates or
// zero-pads the result to targetLen. A targetLen of 0 keeps the full
// padded length. The window must match the one used for framing and must
// never have an all-zero overlap sum at any sample.
func Deframe(frames [][]float64, frameLen, frameStep, targetLen int, win WindowFunc) ([]float64, error) {
	if frameLen < 1 || frameStep < 1 {
		return nil, fmt.Errorf("%w: frame_len=%d frame_step=%d (both must be >= 1 sample)",
			ErrInvalidFrameGeometry, frameLen, frameStep)
	}
	if win == nil {
		win = Rectangular
	}

	for i, frame := range frames {
		if len(frame) != frameLen {
			return nil, fmt.Errorf("%w: frame %d has %d samples, expected %d",
				ErrFrameShapeMismatch, i, len(frame), frameLen)
		}
	}

	numFrames := len(frames)
	padLen := frameLen
	if numFrames > 0 {
		padLen = (numFrames-1)*frameStep + frameLen
	}

	weights := win(frameLen)
	if len(weights) != frameLen {
		return nil, fmt.Errorf("%w: window produced %d weights for frame length %d",
			ErrFrameShapeMismatch, len(weights), frameLen)
	}

	signal := make([]float64, padLen)
	correction := make([]float64, padLen)
	for i, frame := range frames {
		offset := i * frameStep
		for j := 0; j < frameLen; j++ {
			signal[offset+j] += frame[j]
			correction[offset+j] += weights[j] + overlapEpsilon
		}
	}
	for i := range signal {
		if correction[i] != 0 {
			signal[i] /= correction[i]
		}
	}

	if targetLen <= 0 || targetLen == padLen {
		return signal, nil
	}
	out := make([]float64, targetLen)
	copy(out, signal)
	return out, nil
}
