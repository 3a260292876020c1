package gte

import "errors"

// Sentinel errors returned by the encode/enforce surface. Following
// lvlath/tsp and lvlath/builder convention: sentinels are
// never wrapped with a formatted string at definition site; call sites
// wrap with fmt.Errorf("gte: ...: %w", ErrXxx) to attach context, and
// callers branch with errors.Is.
var (
	// ErrInvalidLimits indicates a caller-supplied min > max window.
	// Caller-recoverable: reissue the call with a valid window.
	ErrInvalidLimits = errors.New("gte: invalid bound limits (min > max)")

	// ErrNotEncoded indicates the requested bound refers to outputs the
	// current encoding window does not cover — either the tree was never
	// extended that far, or a buffered-but-too-heavy literal makes the
	// assumption set ill-defined. Signals "encode a wider window first".
	ErrNotEncoded = errors.New("gte: bound not covered by current encoding")

	// ErrUnsat indicates, for inverted (lower-bound) enforcement, that the
	// requested lower bound is at or above the total input weight, so no
	// positive internal upper bound W - lb exists. Returned by EnforceLB;
	// EncodeLB clamps such a bound instead. Terminal for that constraint;
	// the caller should short-circuit rather than retry.
	ErrUnsat = errors.New("gte: lower bound exceeds total weight")
)
