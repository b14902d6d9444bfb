package prn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSelfCheckPasses(t *testing.T) {
	assert.NoError(t, SelfCheck())
}

func TestTable22Vector(t *testing.T) {
	g := NewGenerator(ModeNormal, ChannelI)
	chips := g.Generate(64)

	var packed uint64
	for _, c := range chips {
		packed <<= 1
		if c == -1 {
			packed |= 1
		}
	}

	assert.Equal(t, uint64(0x80000108421284A1), packed)
}

func TestGenerateContinuesAcrossCalls(t *testing.T) {
	g1 := NewGenerator(ModeNormal, ChannelI)
	oneShot := g1.Generate(128)

	g2 := NewGenerator(ModeNormal, ChannelI)
	firstHalf := g2.Generate(64)
	secondHalf := g2.Generate(64)

	assert.Equal(t, oneShot[:64], firstHalf)
	assert.Equal(t, oneShot[64:], secondHalf)
}

func TestNormalQDiffersFromNormalI(t *testing.T) {
	i := NewGenerator(ModeNormal, ChannelI).Generate(64)
	q := NewGenerator(ModeNormal, ChannelQ).Generate(64)
	assert.NotEqual(t, i, q)
}

func TestSelfTestConstantsDistinct(t *testing.T) {
	i := NewGenerator(ModeSelfTest, ChannelI).Generate(32)
	q := NewGenerator(ModeSelfTest, ChannelQ).Generate(32)
	assert.NotEqual(t, i, q)
}

func TestChipsAreAlwaysPlusOrMinusOneProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mode := Mode(rapid.IntRange(0, 1).Draw(t, "mode"))
		channel := Channel(rapid.IntRange(0, 1).Draw(t, "channel"))
		count := rapid.IntRange(0, 512).Draw(t, "count")

		chips := NewGenerator(mode, channel).Generate(count)
		assert.Len(t, chips, count)
		for _, c := range chips {
			assert.True(t, c == 1 || c == -1)
		}
	})
}
