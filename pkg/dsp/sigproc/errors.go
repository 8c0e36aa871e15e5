package sigproc

import "errors"

// Precondition violations surfaced before any heavy computation. All of
// them indicate a caller-side misconfiguration; none are retried or
// recovered internally.
var (
	// ErrInvalidFrameGeometry indicates a frame length or step that
	// rounded to less than one sample.
	ErrInvalidFrameGeometry = errors.New("invalid frame geometry")

	// ErrFrameShapeMismatch indicates deframing input whose row width
	// disagrees with the stated frame length.
	ErrFrameShapeMismatch = errors.New("frame shape mismatch")

	// ErrInvalidPreemphasis indicates a non-finite or out-of-range
	// pre-emphasis coefficient.
	ErrInvalidPreemphasis = errors.New("invalid pre-emphasis coefficient")
)
