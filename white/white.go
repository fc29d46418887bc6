// Package white implements seeded integer hashes ("white noise") at 8, 16, 32
// and 64-bit widths. The lane fold is FxHash-inspired: each lane is rotated
// into the accumulator, XOR-combined and multiplied by a width-specific large
// prime, followed by a xorshift-multiply to spread the multiplied entropy back
// down. Multiplication concentrates entropy in the high bits, so a final left
// rotation moves it toward the low bits.
//
// The fold is order-sensitive: hashing lanes [a, b] and [b, a] yields
// different results unless a == b. An empty lane list returns the rotated
// seed unchanged (identity fold). All arithmetic is integer-only, so results
// are identical on every platform.
package white

import "math/bits"

// Large primes with no small factors, one per hash width.
const (
	key8  uint8  = 97
	key16 uint16 = 1777
	key32 uint32 = 104395303
	key64 uint64 = 982451653
)

// Rotation and xorshift amounts, chosen empirically per width.
const (
	rot8, shift8   = 3, 5
	rot16, shift16 = 4, 9
	rot32, shift32 = 5, 17
	rot64, shift64 = 5, 33
)

// White32 is a seeded 32-bit hash. It is the default width for grid seeding
// and normalized-scalar generation.
type White32 struct {
	Seed uint32
}

// New32 returns a White32 with the given seed.
func New32(seed uint32) White32 { return White32{Seed: seed} }

// Hash folds the lanes into the seed and returns the mixed result.
// With no lanes it returns the rotated seed.
func (w White32) Hash(lanes ...uint32) uint32 {
	acc := w.Seed
	for _, v := range lanes {
		acc = mix32(acc, v)
	}
	return bits.RotateLeft32(acc, rot32)
}

// Hash2Wide folds two 64-bit lanes, each as its low 32 bits followed by its
// high 32 bits. Equivalent to Hash over the four split lanes, but with fixed
// arity so hot per-cell paths hash without building a lane slice.
func (w White32) Hash2Wide(a, b uint64) uint32 {
	acc := mixWide(mixWide(w.Seed, a), b)
	return bits.RotateLeft32(acc, rot32)
}

// Hash3Wide folds three 64-bit lanes. See Hash2Wide.
func (w White32) Hash3Wide(a, b, c uint64) uint32 {
	acc := mixWide(mixWide(mixWide(w.Seed, a), b), c)
	return bits.RotateLeft32(acc, rot32)
}

// Hash4Wide folds four 64-bit lanes. See Hash2Wide.
func (w White32) Hash4Wide(a, b, c, d uint64) uint32 {
	acc := mixWide(mixWide(mixWide(mixWide(w.Seed, a), b), c), d)
	return bits.RotateLeft32(acc, rot32)
}

func mix32(acc, v uint32) uint32 {
	acc = (bits.RotateLeft32(acc, rot32) ^ v) * key32
	return (acc ^ (acc >> shift32)) * key32
}

func mixWide(acc uint32, v uint64) uint32 {
	return mix32(mix32(acc, uint32(v)), uint32(v>>32))
}

// HashMaybe hashes a single optional lane. An absent lane degenerates to the
// identity fold.
func (w White32) HashMaybe(lane uint32, present bool) uint32 {
	if !present {
		return w.Hash()
	}
	return w.Hash(lane)
}

// White64 is a seeded 64-bit hash, used for 64-bit lattice coordinates and
// seed generation.
type White64 struct {
	Seed uint64
}

// New64 returns a White64 with the given seed.
func New64(seed uint64) White64 { return White64{Seed: seed} }

// Hash folds the lanes into the seed and returns the mixed result.
// With no lanes it returns the rotated seed.
func (w White64) Hash(lanes ...uint64) uint64 {
	acc := w.Seed
	for _, v := range lanes {
		acc = (bits.RotateLeft64(acc, rot64) ^ v) * key64
		acc = (acc ^ (acc >> shift64)) * key64
	}
	return bits.RotateLeft64(acc, rot64)
}

// HashMaybe hashes a single optional lane.
func (w White64) HashMaybe(lane uint64, present bool) uint64 {
	if !present {
		return w.Hash()
	}
	return w.Hash(lane)
}

// White16 is a seeded 16-bit hash.
type White16 struct {
	Seed uint16
}

// New16 returns a White16 with the given seed.
func New16(seed uint16) White16 { return White16{Seed: seed} }

// Hash folds the lanes into the seed and returns the mixed result.
func (w White16) Hash(lanes ...uint16) uint16 {
	acc := w.Seed
	for _, v := range lanes {
		acc = (rotl16(acc, rot16) ^ v) * key16
		acc = (acc ^ (acc >> shift16)) * key16
	}
	return rotl16(acc, rot16)
}

// White8 is a seeded 8-bit hash.
type White8 struct {
	Seed uint8
}

// New8 returns a White8 with the given seed.
func New8(seed uint8) White8 { return White8{Seed: seed} }

// Hash folds the lanes into the seed and returns the mixed result.
func (w White8) Hash(lanes ...uint8) uint8 {
	acc := w.Seed
	for _, v := range lanes {
		acc = (rotl8(acc, rot8) ^ v) * key8
		acc = (acc ^ (acc >> shift8)) * key8
	}
	return rotl8(acc, rot8)
}

func rotl16(v uint16, r uint) uint16 { return v<<r | v>>(16-r) }

func rotl8(v uint8, r uint) uint8 { return v<<r | v>>(8-r) }
