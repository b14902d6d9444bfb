// Package errs collects the core's fatal error kinds (spec.md §7): typed
// sentinels surfaced to the caller, never retried and never logged
// internally — diagnostics are the caller's concern.
package errs

import "errors"

var (
	// ErrConfigOutOfRange is returned when a BeaconConfig field falls
	// outside its defined range (spec.md §3). The caller must reject the
	// invocation and prompt for corrected inputs; the core does not clamp
	// silently, except for the fields spec.md names as saturating.
	ErrConfigOutOfRange = errors.New("t018: beacon config field out of range")

	// ErrBchInvariantBroken is returned when a freshly built frame fails
	// its own BCH self-check (spec.md §7). This indicates an encoder bug,
	// not a caller error; it is checked on every FrameBuilder.Build.
	ErrBchInvariantBroken = errors.New("t018: bch_verify failed on a freshly built frame")

	// ErrBufferTooSmall is returned when a caller-supplied sample buffer
	// cannot hold 38400*sps samples (spec.md §7). Checked before any
	// writes.
	ErrBufferTooSmall = errors.New("t018: sample buffer too small")
)
