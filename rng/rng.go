// Package rng is the seeded generator threaded through a simulation. Every
// AI roll and spawn-position roll draws from it so a match replays exactly
// from its seed.
package rng

import "math/rand/v2"

// streamSalt derives the PCG increment from the seed.
const streamSalt = 0x5DEECE66D

type RNG struct {
	seed uint64
	src  *rand.PCG
	r    *rand.Rand
}

func New(seed uint64) *RNG {
	src := rand.NewPCG(seed, seed^streamSalt)
	return &RNG{seed: seed, src: src, r: rand.New(src)}
}

// Reseed restarts the sequence from seed.
func (g *RNG) Reseed(seed uint64) {
	g.seed = seed
	g.src.Seed(seed, seed^streamSalt)
}

// SeedValue returns the seed the sequence was last started from.
func (g *RNG) SeedValue() uint64 {
	return g.seed
}

// Float64 returns a value in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// Range returns a value in [min, max).
func (g *RNG) Range(min, max float64) float64 {
	return min + g.r.Float64()*(max-min)
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (g *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.IntN(n)
}

// Chance reports true with probability p.
func (g *RNG) Chance(p float64) bool {
	return g.r.Float64() < p
}
