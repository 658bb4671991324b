package core

import (
	"fmt"
	"time"
)

// DefaultIntervals is the tick period table, slowest first.
var DefaultIntervals = []time.Duration{
	480 * time.Millisecond,
	240 * time.Millisecond,
	120 * time.Millisecond,
	60 * time.Millisecond,
	30 * time.Millisecond,
	15 * time.Millisecond,
	7 * time.Millisecond,
}

// DefaultSpeed is the index into DefaultIntervals used on start-up.
const DefaultSpeed = 2

// Cadence selects a tick period from a fixed table and helps frame-driven
// hosts run ticks at that period.
type Cadence struct {
	intervals   []time.Duration
	idx         int
	accumulator time.Duration
	last        time.Time
}

// NewCadence constructs a Cadence over intervals starting at index idx. An
// empty table falls back to DefaultIntervals; idx is clamped.
func NewCadence(intervals []time.Duration, idx int) *Cadence {
	if len(intervals) == 0 {
		intervals = DefaultIntervals
	}
	c := &Cadence{intervals: append([]time.Duration(nil), intervals...)}
	c.setIndex(idx)
	return c
}

func (c *Cadence) setIndex(idx int) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(c.intervals)-1 {
		idx = len(c.intervals) - 1
	}
	c.idx = idx
}

// SpeedUp moves one step towards the shortest interval.
func (c *Cadence) SpeedUp() { c.setIndex(c.idx + 1) }

// SpeedDown moves one step towards the longest interval.
func (c *Cadence) SpeedDown() { c.setIndex(c.idx - 1) }

// Index returns the current position in the interval table.
func (c *Cadence) Index() int { return c.idx }

// Levels returns the size of the interval table.
func (c *Cadence) Levels() int { return len(c.intervals) }

// Interval returns the current tick period.
func (c *Cadence) Interval() time.Duration { return c.intervals[c.idx] }

// Label renders the speed as "level / levels", 1-based.
func (c *Cadence) Label() string {
	return fmt.Sprintf("%d / %d", c.idx+1, len(c.intervals))
}

// MaxCatchUp bounds how many ticks Due reports for a single call. Time owed
// beyond that is dropped, so a stalled host does not burst afterwards.
const MaxCatchUp = 4

// Reset forgets accumulated time so the next Due starts a fresh period.
func (c *Cadence) Reset() {
	c.accumulator = 0
	c.last = time.Time{}
}

// Due returns how many ticks have elapsed by now. The first call after
// construction or Reset only primes the clock. Hosts whose frame period is
// longer than the interval receive several ticks per call, up to MaxCatchUp.
func (c *Cadence) Due(now time.Time) int {
	if c.last.IsZero() {
		c.last = now
	}
	delta := now.Sub(c.last)
	if delta < 0 {
		delta = 0
	}
	c.last = now
	c.accumulator += delta
	step := c.Interval()
	n := int(c.accumulator / step)
	if n > MaxCatchUp {
		c.accumulator = 0
		return MaxCatchUp
	}
	c.accumulator -= time.Duration(n) * step
	return n
}
