package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCadenceDefaults(t *testing.T) {
	c := NewCadence(nil, DefaultSpeed)
	assert.Equal(t, 120*time.Millisecond, c.Interval())
	assert.Equal(t, "3 / 7", c.Label())
	assert.Equal(t, 7, c.Levels())
}

func TestCadenceClampsAtBothEnds(t *testing.T) {
	c := NewCadence(nil, DefaultSpeed)
	for i := 0; i < 20; i++ {
		c.SpeedUp()
	}
	assert.Equal(t, 6, c.Index())
	assert.Equal(t, 7*time.Millisecond, c.Interval())
	assert.Equal(t, "7 / 7", c.Label())

	for i := 0; i < 20; i++ {
		c.SpeedDown()
	}
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 480*time.Millisecond, c.Interval())

	assert.Equal(t, 6, NewCadence(nil, 99).Index())
	assert.Equal(t, 0, NewCadence(nil, -4).Index())
}

func TestCadenceDue(t *testing.T) {
	c := NewCadence([]time.Duration{100 * time.Millisecond}, 0)
	start := time.Unix(1000, 0)

	assert.Zero(t, c.Due(start), "first call only primes the clock")
	assert.Zero(t, c.Due(start.Add(60*time.Millisecond)))
	assert.Equal(t, 1, c.Due(start.Add(110*time.Millisecond)))
	assert.Zero(t, c.Due(start.Add(150*time.Millisecond)))
	assert.Equal(t, 1, c.Due(start.Add(210*time.Millisecond)))
	assert.Equal(t, 2, c.Due(start.Add(410*time.Millisecond)))

	// A long stall is capped and the remainder dropped.
	assert.Equal(t, MaxCatchUp, c.Due(start.Add(5*time.Second)))
	assert.Zero(t, c.Due(start.Add(5*time.Second)))
	assert.Equal(t, 1, c.Due(start.Add(5*time.Second+100*time.Millisecond)))

	c.Reset()
	assert.Zero(t, c.Due(start.Add(6*time.Second)))
}

// ticksPerSecond feeds c one second of 60 Hz frames and counts the ticks.
func ticksPerSecond(c *Cadence) int {
	start := time.Unix(0, 0)
	total := 0
	for i := 0; i <= 60; i++ {
		total += c.Due(start.Add(time.Duration(i) * time.Second / 60))
	}
	return total
}

func TestCadenceFastLevelsOutpaceFrameRate(t *testing.T) {
	prev := 0
	for idx := 4; idx < len(DefaultIntervals); idx++ {
		c := NewCadence(nil, idx)
		got := ticksPerSecond(c)
		ideal := int(time.Second / c.Interval())
		assert.Greater(t, got, prev, "level %s", c.Label())
		assert.InDelta(t, ideal, got, 1, "level %s", c.Label())
		prev = got
	}
	assert.Greater(t, prev, 60, "fastest level must exceed one tick per frame")
}
