package gonoise

import (
	"github.com/hupe1980/gonoise/grid"
	"github.com/hupe1980/gonoise/norm"
	"github.com/hupe1980/gonoise/vek"
	"github.com/hupe1980/gonoise/white"
)

// Sampler2 produces a noise value in [0, 1) for a 2D position.
type Sampler2 interface {
	Sample2(x, y float32) float32
}

// Sampler3 produces a noise value in [0, 1) for a 3D position.
type Sampler3 interface {
	Sample3(x, y, z float32) float32
}

// Sampler2Func adapts a plain function to a Sampler2.
type Sampler2Func func(x, y float32) float32

// Sample2 implements Sampler2.
func (f Sampler2Func) Sample2(x, y float32) float32 { return f(x, y) }

// Op2 adapts a Sampler2 to a pipeline op over positions.
func Op2(s Sampler2) Op[vek.Vec2[float32], float32] {
	return OpFunc[vek.Vec2[float32], float32](func(p vek.Vec2[float32]) float32 {
		return s.Sample2(p.X, p.Y)
	})
}

// Op3 adapts a Sampler3 to a pipeline op over positions.
func Op3(s Sampler3) Op[vek.Vec3[float32], float32] {
	return OpFunc[vek.Vec3[float32], float32](func(p vek.Vec3[float32]) float32 {
		return s.Sample3(p.X, p.Y, p.Z)
	})
}

// WhiteNoise samples uncorrelated per-cell randomness: every grid cell gets
// an independent value with no interpolation between cells.
type WhiteNoise struct {
	hash  white.White32
	grid2 grid.Grid2[float32, uint32]
	grid3 grid.Grid3[float32, uint32]
}

// Sample2 implements Sampler2.
func (n *WhiteNoise) Sample2(x, y float32) float32 {
	p := n.grid2.Map(vek.Vec2[float32]{X: x, Y: y})
	return norm.UNormFromBits(grid.CellSeed2(n.hash, p.Base)).Float32()
}

// Sample3 implements Sampler3.
func (n *WhiteNoise) Sample3(x, y, z float32) float32 {
	p := n.grid3.Map(vek.Vec3[float32]{X: x, Y: y, Z: z})
	return norm.UNormFromBits(grid.CellSeed3(n.hash, p.Base)).Float32()
}

// Reseed derives a copy sampling under a new seed.
func (n *WhiteNoise) Reseed(seed uint32) *WhiteNoise {
	c := *n
	c.hash = white.New32(seed)
	return &c
}
