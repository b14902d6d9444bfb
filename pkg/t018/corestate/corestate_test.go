package corestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextBurstIncrements(t *testing.T) {
	s := NewState()
	c1, id1 := s.NextBurst()
	c2, id2 := s.NextBurst()

	assert.Equal(t, uint32(1), c1)
	assert.Equal(t, uint32(2), c2)
	assert.NotEqual(t, id1, id2)
	assert.NotEmpty(t, id1)
}

func TestNewStateStartsAtZero(t *testing.T) {
	s := NewState()
	assert.Equal(t, uint32(0), s.BurstCounter)
}
