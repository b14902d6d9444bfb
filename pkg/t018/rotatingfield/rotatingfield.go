// Package rotatingfield fills the 48-bit rotating-field slot (T.018 frame
// bits 155–202, spec.md §4.5) for whichever of the four variants a beacon's
// configuration selects.
package rotatingfield

import (
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/bitfield"
)

// Kind selects which rotating-field variant occupies the slot.
type Kind int

const (
	KindG008 Kind = iota
	KindELTDT
	KindRLS
	KindCancel
)

// code returns the 4-bit kind code written at frame bits 155–158.
func (k Kind) code() uint64 {
	return uint64(k)
}

const (
	// totalBits is the rotating-field slot width: 4-bit kind code plus
	// 44-bit payload (spec.md §4.5, GLOSSARY "Rotating field").
	totalBits   = 48
	kindBits    = 4
	payloadBits = 44
)

// G008Input carries the inputs the G008 variant needs.
type G008Input struct {
	ElapsedActivationHours int   // saturates at 63
	MinutesSinceLastFix    int   // saturates at 2046
	AltitudeCode           int   // 0..1022, from the position package
	TestMode               bool  // when true, the 17-bit filler is LFSR noise, not zero
	BurstCounter           uint32
}

// ELTDTInput carries the inputs the ELT-DT variant needs.
type ELTDTInput struct {
	Day, Hour, Minute int
	AltitudeCode      int
}

// RLSInput carries the inputs the RLS variant needs.
type RLSInput struct {
	ProviderID uint8  // 8 bits
	Payload    uint64 // 36 bits
}

// CancelInput carries the inputs the CANCEL variant needs.
type CancelInput struct {
	DeactivationMethod uint8 // 2 bits
}

// EncodeG008 fills the 48-bit slot for the G008 variant (spec.md §4.5):
// 6 bits elapsed activation hours (saturating), 11 bits minutes since the
// last GPS fix (saturating), 10 bits altitude code, and 17 bits that are
// either zero or LFSR noise seeded by the burst counter when test_mode is
// Test.
func EncodeG008(in G008Input) bitfield.Bits {
	b := make(bitfield.Bits, totalBits)
	bitfield.SetUint(b, 0, kindBits, KindG008.code())

	pos := kindBits
	hours := bitfield.Saturate(int64(in.ElapsedActivationHours), 0, 63)
	bitfield.SetUint(b, pos, 6, uint64(hours))
	pos += 6

	minutes := bitfield.Saturate(int64(in.MinutesSinceLastFix), 0, 2046)
	bitfield.SetUint(b, pos, 11, uint64(minutes))
	pos += 11

	altitude := bitfield.Saturate(int64(in.AltitudeCode), 0, 1022)
	bitfield.SetUint(b, pos, 10, uint64(altitude))
	pos += 10

	var filler uint32
	if in.TestMode {
		filler = testFiller(in.BurstCounter, 17)
	}
	bitfield.SetUint(b, pos, 17, uint64(filler))

	return b
}

// EncodeELTDT fills the 48-bit slot for the ELT-DT variant (spec.md §4.5):
// a 16-bit packed UTC day/hour/minute, 10 bits altitude code, 18 zero bits.
func EncodeELTDT(in ELTDTInput) bitfield.Bits {
	b := make(bitfield.Bits, totalBits)
	bitfield.SetUint(b, 0, kindBits, KindELTDT.code())

	packed := (uint64(in.Day)&0x1F)<<11 | (uint64(in.Hour)&0x1F)<<6 | (uint64(in.Minute) & 0x3F)
	pos := kindBits
	bitfield.SetUint(b, pos, 16, packed)
	pos += 16

	altitude := bitfield.Saturate(int64(in.AltitudeCode), 0, 1022)
	bitfield.SetUint(b, pos, 10, uint64(altitude))
	// remaining 18 bits are already zero.

	return b
}

// EncodeRLS fills the 48-bit slot for the RLS variant (spec.md §4.5):
// an 8-bit provider ID and a 36-bit payload.
func EncodeRLS(in RLSInput) bitfield.Bits {
	b := make(bitfield.Bits, totalBits)
	bitfield.SetUint(b, 0, kindBits, KindRLS.code())

	pos := kindBits
	bitfield.SetUint(b, pos, 8, uint64(in.ProviderID))
	pos += 8
	bitfield.SetUint(b, pos, 36, in.Payload)

	return b
}

// EncodeCancel fills the 48-bit slot for the CANCEL variant (spec.md §4.5):
// a 2-bit deactivation method followed by 42 all-one bits.
func EncodeCancel(in CancelInput) bitfield.Bits {
	b := make(bitfield.Bits, totalBits)
	bitfield.SetUint(b, 0, kindBits, KindCancel.code())

	pos := kindBits
	bitfield.SetUint(b, pos, 2, uint64(in.DeactivationMethod))
	pos += 2
	bitfield.SetAllOnes(b, pos, 42)

	return b
}

// testFiller produces n bits (n <= 17) from the 8-bit test-mode LFSR,
// polynomial x^8+x^4+x^3+x^2+1, taps on bits 0/2/3/4 (spec.md §4.5),
// seeded by the burst counter. The shift-right / feedback-into-top-stage
// convention follows the prn package's 23-bit LFSR.
func testFiller(burstCounter uint32, n int) uint32 {
	seed := uint8(burstCounter)
	if seed == 0 {
		// A zero seed would lock the LFSR at all-zero forever, defeating
		// the point of the test-mode randomization.
		seed = 1
	}

	state := seed
	var out uint32
	for i := 0; i < n; i++ {
		bit := state & 1
		out = (out << 1) | uint32(bit)

		feedback := (state & 1) ^ ((state >> 2) & 1) ^ ((state >> 3) & 1) ^ ((state >> 4) & 1)
		state = (state >> 1) | (feedback << 7)
	}
	return out
}

// FormatUTC renders the ELT-DT day/hour/minute triple for diagnostic log
// lines, following samoyed/src/xmit.go's strftime.Format(...) timestamp
// formatting convention (the T.018 field itself is the packed integer;
// this exists purely so callers can log a readable value alongside it).
func FormatUTC(day, hour, minute int) string {
	t := time.Date(2000, time.January, day, hour, minute, 0, 0, time.UTC)
	formatted, err := strftime.Format("%d %H:%M UTC", t)
	if err != nil {
		return t.Format("02 15:04 UTC")
	}
	return formatted
}
