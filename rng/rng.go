// Package rng adapts the deterministic hash into a math/rand source, so the
// same seeds that drive noise sampling can also drive ordinary random
// draws.
package rng

import (
	"math/bits"
	"math/rand"

	"github.com/hupe1980/gonoise/white"
)

// Source is a math/rand Source64 backed by the 32-bit white hash. Each draw
// hashes an incrementing counter under the seed, so output is a pure
// function of seed and call index.
type Source struct {
	hash    white.White32
	counter uint32
}

var _ rand.Source64 = (*Source)(nil)

// NewSource builds a source for the given seed.
func NewSource(seed uint32) *Source {
	return &Source{hash: white.New32(seed)}
}

// Uint32 draws the next 32 random bits.
func (s *Source) Uint32() uint32 {
	v := s.hash.Hash(s.counter)
	s.counter++
	return v
}

// Uint64 draws the next 64 random bits from two consecutive 32-bit draws.
func (s *Source) Uint64() uint64 {
	hi := uint64(s.Uint32())
	return hi<<32 | uint64(s.Uint32())
}

// Int63 implements rand.Source.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed implements rand.Source, resetting the counter alongside the seed.
func (s *Source) Seed(seed int64) {
	s.hash = white.New32(uint32(seed))
	s.counter = 0
}

// BreakOff derives an independent child source from the next draw. The
// parent advances by one draw; the child's stream does not overlap the
// parent's because its seed passes through an extra rotation.
func (s *Source) BreakOff() *Source {
	return NewSource(bits.RotateLeft32(s.Uint32(), 12))
}
