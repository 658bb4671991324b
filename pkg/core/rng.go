package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Float64er is any uniform source of values in [0, 1).
type Float64er interface {
	Float64() float64
}

// FillBernoulli sets each element of buf to true with probability p, drawing
// once per element in order.
func FillBernoulli(r Float64er, buf []bool, p float64) {
	for i := range buf {
		buf[i] = r.Float64() < p
	}
}
