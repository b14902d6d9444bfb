// Package corestate holds the one piece of state T.018 burst generation
// carries between calls: the monotonic burst counter the G008 rotating
// field uses to seed its test-mode filler (spec.md §9 Design Notes:
// "lift these into an explicit CoreState owned by the caller ... no hidden
// globals").
//
// The struct is plain and caller-owned, following pkg/gnssgo/rtcm's
// RTCMParser: state a protocol codec needs across calls lives on a struct
// the caller constructs and threads through, never in a package-level var.
package corestate

import (
	"github.com/google/uuid"
)

// State is the explicit, caller-owned state a burst sequence carries
// across calls. A single core process creates one State at startup and
// passes it to every build_frame invocation; nothing in this package ever
// reads or writes a package-level variable.
type State struct {
	// BurstCounter increments once per produced frame. It seeds the G008
	// rotating field's test-mode filler LFSR (spec.md §4.5) and has no
	// other effect on the waveform.
	BurstCounter uint32
}

// NewState returns a State with the burst counter at zero.
func NewState() *State {
	return &State{}
}

// NextBurst increments the burst counter and returns a fresh correlation
// ID for the burst about to be built (grounded in pkg/caster's per-request
// uuid.New().String() correlation ID). FrameBuilder.Build attaches it to
// its log lines; the modulator's log lines do not carry it.
func (s *State) NextBurst() (burstCounter uint32, correlationID string) {
	s.BurstCounter++
	return s.BurstCounter, uuid.New().String()
}
