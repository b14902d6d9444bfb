// Package bitfield provides MSB-first integer packing into a one-bit-per-byte
// array, the representation the T.018 frame layout (spec.md §3, §4.4) is
// defined over.
//
// The access pattern mirrors gnssgo's RTCM helpers (GetBitU/SetBitU over a
// packed byte buffer, see pkg/gnssgo/rtcm/rtcm.go and ephemeris_test.go)
// adapted to an unpacked array so frame positions line up 1:1 with the
// T.018 bit numbering used throughout the spec.
package bitfield

import "fmt"

// Bits is a bit array, one bit per byte (0 or 1), indexed MSB-first within
// each field written to it.
type Bits []byte

// SetUint writes the low `width` bits of value, MSB-first, starting at pos.
// It panics if the field would run past the end of b or width exceeds 64 —
// both are programmer errors (a fixed, spec-defined layout), not runtime
// conditions a caller recovers from.
func SetUint(b Bits, pos, width int, value uint64) {
	if width <= 0 || width > 64 {
		panic(fmt.Sprintf("bitfield: invalid width %d", width))
	}
	if pos < 0 || pos+width > len(b) {
		panic(fmt.Sprintf("bitfield: field [%d,%d) out of range for %d bits", pos, pos+width, len(b)))
	}
	for i := 0; i < width; i++ {
		shift := uint(width - 1 - i)
		if (value>>shift)&1 != 0 {
			b[pos+i] = 1
		} else {
			b[pos+i] = 0
		}
	}
}

// GetUint reads width bits starting at pos, MSB-first, as an unsigned value.
func GetUint(b Bits, pos, width int) uint64 {
	if width <= 0 || width > 64 {
		panic(fmt.Sprintf("bitfield: invalid width %d", width))
	}
	if pos < 0 || pos+width > len(b) {
		panic(fmt.Sprintf("bitfield: field [%d,%d) out of range for %d bits", pos, pos+width, len(b)))
	}
	var v uint64
	for i := 0; i < width; i++ {
		v = (v << 1) | uint64(b[pos+i]&1)
	}
	return v
}

// SetAllOnes fills b[pos:pos+width] with 1 bits, used for the spare field
// (spec.md §3) and the CANCEL rotating-field payload (spec.md §4.5).
func SetAllOnes(b Bits, pos, width int) {
	if pos < 0 || width < 0 || pos+width > len(b) {
		panic(fmt.Sprintf("bitfield: range [%d,%d) out of range for %d bits", pos, pos+width, len(b)))
	}
	for i := pos; i < pos+width; i++ {
		b[i] = 1
	}
}

// AllOnes reports whether every bit in b[pos:pos+width] is 1.
func AllOnes(b Bits, pos, width int) bool {
	if pos < 0 || width < 0 || pos+width > len(b) {
		panic(fmt.Sprintf("bitfield: range [%d,%d) out of range for %d bits", pos, pos+width, len(b)))
	}
	for i := pos; i < pos+width; i++ {
		if b[i] != 1 {
			return false
		}
	}
	return true
}

// Saturate clamps v to [lo, hi]. Used by the spec's saturating fields
// (altitude, elapsed hours, minutes-since-fix) which must never wrap or
// error — see spec.md §7 ("do not clamp silently except altitude and
// elapsed hours/minutes, which are saturating fields by spec").
func Saturate(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
