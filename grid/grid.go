// Package grid maps continuous space onto integer lattices. Each mapper
// splits coordinates into an unsigned cell base plus a fractional offset; the
// base feeds per-cell hashing while the offset drives interpolation inside
// the cell.
package grid

import (
	"math/bits"

	"github.com/hupe1980/gonoise/vek"
	"github.com/hupe1980/gonoise/white"
)

// Point2 is a position on a 2D lattice: the cell it falls in plus the offset
// inside that cell, each axis in [0, 1).
type Point2[F vek.Float, U vek.Unsigned] struct {
	Base   vek.UVec2[U]
	Offset vek.Vec2[F]
}

// Point3 is a position on a 3D lattice.
type Point3[F vek.Float, U vek.Unsigned] struct {
	Base   vek.UVec3[U]
	Offset vek.Vec3[F]
}

// Point4 is a position on a 4D lattice.
type Point4[F vek.Float, U vek.Unsigned] struct {
	Base   vek.UVec4[U]
	Offset vek.Vec4[F]
}

// Exchange converts a signed coordinate to an unsigned one by flipping the
// sign bit, preserving order: the most negative input maps to zero and the
// most positive to the unsigned maximum. Adjacent signed cells stay adjacent,
// which an unsigned cast would break around zero.
func Exchange[S vek.Signed, U vek.Unsigned](v S) U {
	var u U
	width := bits.OnesCount64(uint64(^u))
	return U(v) ^ (1 << (width - 1))
}

// Grid2 maps 2D space onto a lattice with float cell size.
type Grid2[F vek.Float, U vek.Unsigned] struct {
	freq F
}

// NewGrid2 builds a mapper whose cells are period wide. A zero period is
// replaced by one.
func NewGrid2[F vek.Float, U vek.Unsigned](period F) Grid2[F, U] {
	return Grid2[F, U]{freq: 1 / nonZero(period)}
}

// Map splits a position into cell base and intra-cell offset.
func (g Grid2[F, U]) Map(pos vek.Vec2[F]) Point2[F, U] {
	p := pos.Scale(g.freq)
	f := p.Floor()
	return Point2[F, U]{
		Base:   vek.UVec2[U]{X: exchangeFloat[F, U](f.X), Y: exchangeFloat[F, U](f.Y)},
		Offset: p.Sub(f),
	}
}

// Grid3 maps 3D space onto a lattice with float cell size.
type Grid3[F vek.Float, U vek.Unsigned] struct {
	freq F
}

// NewGrid3 builds a mapper whose cells are period wide.
func NewGrid3[F vek.Float, U vek.Unsigned](period F) Grid3[F, U] {
	return Grid3[F, U]{freq: 1 / nonZero(period)}
}

// Map splits a position into cell base and intra-cell offset.
func (g Grid3[F, U]) Map(pos vek.Vec3[F]) Point3[F, U] {
	p := pos.Scale(g.freq)
	f := p.Floor()
	return Point3[F, U]{
		Base: vek.UVec3[U]{
			X: exchangeFloat[F, U](f.X),
			Y: exchangeFloat[F, U](f.Y),
			Z: exchangeFloat[F, U](f.Z),
		},
		Offset: p.Sub(f),
	}
}

// Grid4 maps 4D space onto a lattice with float cell size.
type Grid4[F vek.Float, U vek.Unsigned] struct {
	freq F
}

// NewGrid4 builds a mapper whose cells are period wide.
func NewGrid4[F vek.Float, U vek.Unsigned](period F) Grid4[F, U] {
	return Grid4[F, U]{freq: 1 / nonZero(period)}
}

// Map splits a position into cell base and intra-cell offset.
func (g Grid4[F, U]) Map(pos vek.Vec4[F]) Point4[F, U] {
	p := pos.Scale(g.freq)
	f := p.Floor()
	return Point4[F, U]{
		Base: vek.UVec4[U]{
			X: exchangeFloat[F, U](f.X),
			Y: exchangeFloat[F, U](f.Y),
			Z: exchangeFloat[F, U](f.Z),
			W: exchangeFloat[F, U](f.W),
		},
		Offset: p.Sub(f),
	}
}

// IntGrid2 maps integer 2D coordinates onto a lattice with integer cell size.
// The offset is the remainder scaled onto [0, 1).
type IntGrid2[S vek.Signed, U vek.Unsigned] struct {
	period S
}

// NewIntGrid2 builds an integer mapper with the given cell size. A zero
// period is replaced by one.
func NewIntGrid2[S vek.Signed, U vek.Unsigned](period S) IntGrid2[S, U] {
	if period == 0 {
		period = 1
	}
	if period < 0 {
		period = -period
	}
	return IntGrid2[S, U]{period: period}
}

// Map splits an integer position into cell base and normalized offset.
func (g IntGrid2[S, U]) Map(x, y S) Point2[float32, U] {
	bx, ox := intDiv(x, g.period)
	by, oy := intDiv(y, g.period)
	return Point2[float32, U]{
		Base: vek.UVec2[U]{X: Exchange[S, U](bx), Y: Exchange[S, U](by)},
		Offset: vek.Vec2[float32]{
			X: float32(ox) / float32(g.period),
			Y: float32(oy) / float32(g.period),
		},
	}
}

// IntGrid3 maps integer 3D coordinates onto a lattice with integer cell size.
type IntGrid3[S vek.Signed, U vek.Unsigned] struct {
	period S
}

// NewIntGrid3 builds an integer mapper with the given cell size.
func NewIntGrid3[S vek.Signed, U vek.Unsigned](period S) IntGrid3[S, U] {
	g2 := NewIntGrid2[S, U](period)
	return IntGrid3[S, U]{period: g2.period}
}

// Map splits an integer position into cell base and normalized offset.
func (g IntGrid3[S, U]) Map(x, y, z S) Point3[float32, U] {
	bx, ox := intDiv(x, g.period)
	by, oy := intDiv(y, g.period)
	bz, oz := intDiv(z, g.period)
	return Point3[float32, U]{
		Base: vek.UVec3[U]{X: Exchange[S, U](bx), Y: Exchange[S, U](by), Z: Exchange[S, U](bz)},
		Offset: vek.Vec3[float32]{
			X: float32(ox) / float32(g.period),
			Y: float32(oy) / float32(g.period),
			Z: float32(oz) / float32(g.period),
		},
	}
}

// PowGrid2 maps integer 2D coordinates onto a lattice whose cell size is a
// power of two, using shifts and masks instead of division.
type PowGrid2[S vek.Signed, U vek.Unsigned] struct {
	shift uint
}

// NewPowGrid2 builds a mapper with cells 2^shift wide.
func NewPowGrid2[S vek.Signed, U vek.Unsigned](shift uint) PowGrid2[S, U] {
	return PowGrid2[S, U]{shift: shift}
}

// Map splits an integer position into cell base and normalized offset.
func (g PowGrid2[S, U]) Map(x, y S) Point2[float32, U] {
	mask := S(1)<<g.shift - 1
	inv := 1 / float32(uint64(1)<<g.shift)
	return Point2[float32, U]{
		Base: vek.UVec2[U]{X: Exchange[S, U](x >> g.shift), Y: Exchange[S, U](y >> g.shift)},
		Offset: vek.Vec2[float32]{
			X: float32(x&mask) * inv,
			Y: float32(y&mask) * inv,
		},
	}
}

// PowGrid3 maps integer 3D coordinates onto a power-of-two lattice.
type PowGrid3[S vek.Signed, U vek.Unsigned] struct {
	shift uint
}

// NewPowGrid3 builds a mapper with cells 2^shift wide.
func NewPowGrid3[S vek.Signed, U vek.Unsigned](shift uint) PowGrid3[S, U] {
	return PowGrid3[S, U]{shift: shift}
}

// Map splits an integer position into cell base and normalized offset.
func (g PowGrid3[S, U]) Map(x, y, z S) Point3[float32, U] {
	mask := S(1)<<g.shift - 1
	inv := 1 / float32(uint64(1)<<g.shift)
	return Point3[float32, U]{
		Base: vek.UVec3[U]{
			X: Exchange[S, U](x >> g.shift),
			Y: Exchange[S, U](y >> g.shift),
			Z: Exchange[S, U](z >> g.shift),
		},
		Offset: vek.Vec3[float32]{
			X: float32(x&mask) * inv,
			Y: float32(y&mask) * inv,
			Z: float32(z&mask) * inv,
		},
	}
}

// Pushed moves the point into the cell delta away, keeping the absolute
// position: the base advances by delta and the offset retreats by it.
func (p Point2[F, U]) Pushed(delta vek.UVec2[U]) Point2[F, U] {
	return Point2[F, U]{
		Base:   p.Base.Add(delta),
		Offset: p.Offset.Sub(vek.Vec2[F]{X: unsignedToF[F](delta.X), Y: unsignedToF[F](delta.Y)}),
	}
}

// Pushed moves the point into the cell delta away, keeping the absolute
// position.
func (p Point3[F, U]) Pushed(delta vek.UVec3[U]) Point3[F, U] {
	return Point3[F, U]{
		Base: p.Base.Add(delta),
		Offset: p.Offset.Sub(vek.Vec3[F]{
			X: unsignedToF[F](delta.X),
			Y: unsignedToF[F](delta.Y),
			Z: unsignedToF[F](delta.Z),
		}),
	}
}

// Pushed moves the point into the cell delta away, keeping the absolute
// position.
func (p Point4[F, U]) Pushed(delta vek.UVec4[U]) Point4[F, U] {
	return Point4[F, U]{
		Base: p.Base.Add(delta),
		Offset: p.Offset.Sub(vek.Vec4[F]{
			X: unsignedToF[F](delta.X),
			Y: unsignedToF[F](delta.Y),
			Z: unsignedToF[F](delta.Z),
			W: unsignedToF[F](delta.W),
		}),
	}
}

// Corners returns the four cells at this cell's corners, ordered (0,0),
// (1,0), (0,1), (1,1) so that pairwise interpolation can halve the list.
func (p Point2[F, U]) Corners() [4]vek.UVec2[U] {
	b := p.Base
	return [4]vek.UVec2[U]{
		b,
		b.Add(vek.UVec2[U]{X: 1}),
		b.Add(vek.UVec2[U]{Y: 1}),
		b.Add(vek.UVec2[U]{X: 1, Y: 1}),
	}
}

// Surroundings returns this cell and its eight neighbors. The center cell
// comes first.
func (p Point2[F, U]) Surroundings() [9]vek.UVec2[U] {
	var out [9]vek.UVec2[U]
	deltas := [3]U{0, 1, ^U(0)}
	i := 0
	for _, dy := range deltas {
		for _, dx := range deltas {
			out[i] = p.Base.Add(vek.UVec2[U]{X: dx, Y: dy})
			i++
		}
	}
	return out
}

// Corners returns the eight cells at this cell's corners in pairwise
// interpolation order.
func (p Point3[F, U]) Corners() [8]vek.UVec3[U] {
	var out [8]vek.UVec3[U]
	for i := range out {
		out[i] = p.Base.Add(vek.UVec3[U]{
			X: U(i & 1),
			Y: U(i >> 1 & 1),
			Z: U(i >> 2 & 1),
		})
	}
	return out
}

// Surroundings returns this cell and its 26 neighbors, center first.
func (p Point3[F, U]) Surroundings() [27]vek.UVec3[U] {
	var out [27]vek.UVec3[U]
	deltas := [3]U{0, 1, ^U(0)}
	i := 0
	for _, dz := range deltas {
		for _, dy := range deltas {
			for _, dx := range deltas {
				out[i] = p.Base.Add(vek.UVec3[U]{X: dx, Y: dy, Z: dz})
				i++
			}
		}
	}
	return out
}

// Corners returns the sixteen cells at this cell's corners in pairwise
// interpolation order.
func (p Point4[F, U]) Corners() [16]vek.UVec4[U] {
	var out [16]vek.UVec4[U]
	for i := range out {
		out[i] = p.Base.Add(vek.UVec4[U]{
			X: U(i & 1),
			Y: U(i >> 1 & 1),
			Z: U(i >> 2 & 1),
			W: U(i >> 3 & 1),
		})
	}
	return out
}

// Surroundings returns this cell and its 80 neighbors, center first.
func (p Point4[F, U]) Surroundings() [81]vek.UVec4[U] {
	var out [81]vek.UVec4[U]
	deltas := [3]U{0, 1, ^U(0)}
	i := 0
	for _, dw := range deltas {
		for _, dz := range deltas {
			for _, dy := range deltas {
				for _, dx := range deltas {
					out[i] = p.Base.Add(vek.UVec4[U]{X: dx, Y: dy, Z: dz, W: dw})
					i++
				}
			}
		}
	}
	return out
}

// CellSeed2 hashes a cell coordinate into a per-cell seed. Each lane is fed
// as its low 32 bits followed by any high bits, so narrow and wide coordinate
// types that hold the same value hash identically.
func CellSeed2[U vek.Unsigned](h white.White32, c vek.UVec2[U]) uint32 {
	return h.Hash2Wide(uint64(c.X), uint64(c.Y))
}

// CellSeed3 hashes a 3D cell coordinate into a per-cell seed.
func CellSeed3[U vek.Unsigned](h white.White32, c vek.UVec3[U]) uint32 {
	return h.Hash3Wide(uint64(c.X), uint64(c.Y), uint64(c.Z))
}

// CellSeed4 hashes a 4D cell coordinate into a per-cell seed.
func CellSeed4[U vek.Unsigned](h white.White32, c vek.UVec4[U]) uint32 {
	return h.Hash4Wide(uint64(c.X), uint64(c.Y), uint64(c.Z), uint64(c.W))
}

// unsignedToF reads a wrapped cell delta as a signed displacement.
func unsignedToF[F vek.Float, U vek.Unsigned](v U) F {
	var u U
	width := bits.OnesCount64(uint64(^u))
	shift := 64 - width
	return F(int64(uint64(v)<<shift) >> shift)
}

func exchangeFloat[F vek.Float, U vek.Unsigned](v F) U {
	return Exchange[int64, U](int64(v))
}

// nonZero substitutes a unit period for zero. The substitute's reciprocal
// must be finite, or Map would turn the frequency into Inf and the offset
// into NaN.
func nonZero[F vek.Float](v F) F {
	if v == 0 {
		return 1
	}
	return v
}

// intDiv is floor division with a non-negative remainder, so the mapping is
// continuous across zero.
func intDiv[S vek.Signed](v, period S) (S, S) {
	q := v / period
	r := v % period
	if r < 0 {
		q--
		r += period
	}
	return q, r
}
