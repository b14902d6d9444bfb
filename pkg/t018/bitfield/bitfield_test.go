package bitfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSetGetUintRoundTrip(t *testing.T) {
	b := make(Bits, 16)
	SetUint(b, 2, 10, 227)
	assert.Equal(t, uint64(227), GetUint(b, 2, 10))
}

func TestSetUintMSBFirst(t *testing.T) {
	// 0b0011100011 (227, 10 bits) written MSB-first at position 0.
	b := make(Bits, 10)
	SetUint(b, 0, 10, 227)
	assert.Equal(t, Bits{0, 0, 1, 1, 1, 0, 0, 0, 1, 1}, b)
}

func TestAllOnes(t *testing.T) {
	b := make(Bits, 20)
	SetAllOnes(b, 4, 14)
	assert.True(t, AllOnes(b, 4, 14))
	b[10] = 0
	assert.False(t, AllOnes(b, 4, 14))
}

func TestSaturate(t *testing.T) {
	assert.Equal(t, int64(0), Saturate(-5, 0, 1022))
	assert.Equal(t, int64(1022), Saturate(5000, 0, 1022))
	assert.Equal(t, int64(500), Saturate(500, 0, 1022))
}

func TestRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 32).Draw(t, "width")
		value := rapid.Uint64Range(0, (uint64(1)<<uint(width))-1).Draw(t, "value")

		b := make(Bits, width+8)
		pos := rapid.IntRange(0, 8).Draw(t, "pos")
		SetUint(b, pos, width, value)

		assert.Equal(t, value, GetUint(b, pos, width))
	})
}
