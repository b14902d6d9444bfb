package rotatingfield

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/bitfield"
)

// TestELTDTScenario reproduces spec.md §8 scenario 3: day 3, 14:07 UTC,
// altitude 1500 m.
func TestELTDTScenario(t *testing.T) {
	b := EncodeELTDT(ELTDTInput{Day: 3, Hour: 14, Minute: 7, AltitudeCode: 119})

	assert.Equal(t, uint64(KindELTDT), bitfield.GetUint(b, 0, kindBits))

	packed := bitfield.GetUint(b, kindBits, 16)
	assert.Equal(t, uint64(7047), packed)

	altitude := bitfield.GetUint(b, kindBits+16, 10)
	assert.Equal(t, uint64(119), altitude)

	// Remaining 18 bits are zero.
	assert.True(t, allZero(b[kindBits+16+10:]))
}

// TestCancelScenario reproduces spec.md §8 scenario 4: manual deactivation
// (code 0); bits 161..202 (the 42-bit trailer) are all 1.
func TestCancelScenario(t *testing.T) {
	b := EncodeCancel(CancelInput{DeactivationMethod: 0})

	assert.Equal(t, uint64(KindCancel), bitfield.GetUint(b, 0, kindBits))
	assert.Equal(t, uint64(0), bitfield.GetUint(b, kindBits, 2))
	assert.True(t, bitfield.AllOnes(b, kindBits+2, 42))
}

func TestG008SaturatesHoursAndMinutes(t *testing.T) {
	b := EncodeG008(G008Input{
		ElapsedActivationHours: 999,
		MinutesSinceLastFix:    99999,
		AltitudeCode:           0,
	})

	hours := bitfield.GetUint(b, kindBits, 6)
	minutes := bitfield.GetUint(b, kindBits+6, 11)

	assert.Equal(t, uint64(63), hours)
	assert.Equal(t, uint64(2046), minutes)
}

func TestG008FillerZeroOutsideTestMode(t *testing.T) {
	b := EncodeG008(G008Input{TestMode: false, BurstCounter: 42})
	filler := bitfield.GetUint(b, kindBits+6+11+10, 17)
	assert.Equal(t, uint64(0), filler)
}

func TestG008FillerNonZeroInTestMode(t *testing.T) {
	b := EncodeG008(G008Input{TestMode: true, BurstCounter: 42})
	filler := bitfield.GetUint(b, kindBits+6+11+10, 17)
	assert.NotEqual(t, uint64(0), filler)
}

func TestG008FillerNeverLocksOnZeroCounter(t *testing.T) {
	b := EncodeG008(G008Input{TestMode: true, BurstCounter: 0})
	filler := bitfield.GetUint(b, kindBits+6+11+10, 17)
	assert.NotEqual(t, uint64(0), filler)
}

func TestRLSFields(t *testing.T) {
	b := EncodeRLS(RLSInput{ProviderID: 0xAB, Payload: 0x0123456789})

	assert.Equal(t, uint64(KindRLS), bitfield.GetUint(b, 0, kindBits))
	assert.Equal(t, uint64(0xAB), bitfield.GetUint(b, kindBits, 8))
	assert.Equal(t, uint64(0x0123456789), bitfield.GetUint(b, kindBits+8, 36))
}

func TestFormatUTC(t *testing.T) {
	assert.Equal(t, "03 14:07 UTC", FormatUTC(3, 14, 7))
}

func allZero(b bitfield.Bits) bool {
	for _, bit := range b {
		if bit != 0 {
			return false
		}
	}
	return true
}
