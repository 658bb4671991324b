package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
	}
}

func TestFillBernoulliExtremes(t *testing.T) {
	buf := make([]bool, 64)

	FillBernoulli(NewRNG(1), buf, 0)
	assert.NotContains(t, buf, true)

	FillBernoulli(NewRNG(1), buf, 1)
	assert.NotContains(t, buf, false)
}

func TestFillBernoulliHalf(t *testing.T) {
	buf := make([]bool, 4000)
	FillBernoulli(NewRNG(3), buf, 0.5)

	alive := 0
	for _, c := range buf {
		if c {
			alive++
		}
	}
	assert.InDelta(t, 2000, alive, 200)
}
