// Package randutil centralises how RNGs are constructed so that every
// shuffle, dealer draw and AI decision in a simulation can be replayed
// from a single int64 seed.
package randutil

import (
	"math/rand"
	"time"
)

// New returns a *rand.Rand seeded from the provided int64. Seeds are
// passed through a splitmix64-style finaliser so that adjacent seeds
// (seed, seed+1, ... as the simulator hands out per-round) do not
// produce correlated low bits.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(int64(mix(uint64(seed)))))
}

// NewFromTime returns a *rand.Rand seeded from the current time, for
// interactive play where reproducibility is not needed.
func NewFromTime() *rand.Rand {
	return New(time.Now().UnixNano())
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
