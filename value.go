package gonoise

import (
	"github.com/hupe1980/gonoise/grid"
	"github.com/hupe1980/gonoise/mix"
	"github.com/hupe1980/gonoise/norm"
	"github.com/hupe1980/gonoise/vek"
	"github.com/hupe1980/gonoise/white"
)

// ValueNoise interpolates per-cell random values across cell interiors,
// producing smooth blotchy noise. The curve controls how values blend
// between corners.
type ValueNoise struct {
	hash  white.White32
	grid2 grid.Grid2[float32, uint32]
	grid3 grid.Grid3[float32, uint32]
	curve mix.Curve[float32]
}

// Sample2 implements Sampler2.
func (n *ValueNoise) Sample2(x, y float32) float32 {
	p := n.grid2.Map(vek.Vec2[float32]{X: x, Y: y})

	var vals [4]float32
	for i, c := range p.Corners() {
		vals[i] = norm.UNormFromBits(grid.CellSeed2(n.hash, c)).Float32()
	}

	return mix.Mix2(n.curve, vals, p.Offset)
}

// Sample3 implements Sampler3.
func (n *ValueNoise) Sample3(x, y, z float32) float32 {
	p := n.grid3.Map(vek.Vec3[float32]{X: x, Y: y, Z: z})

	var vals [8]float32
	for i, c := range p.Corners() {
		vals[i] = norm.UNormFromBits(grid.CellSeed3(n.hash, c)).Float32()
	}

	return mix.Mix3(n.curve, vals, p.Offset)
}

// Grad2 is the spatial gradient of the 2D sample at the given position, in
// noise units per input unit times the cell frequency.
func (n *ValueNoise) Grad2(x, y float32) vek.Vec2[float32] {
	p := n.grid2.Map(vek.Vec2[float32]{X: x, Y: y})

	var vals [4]float32
	for i, c := range p.Corners() {
		vals[i] = norm.UNormFromBits(grid.CellSeed2(n.hash, c)).Float32()
	}

	return mix.Grad2(n.curve, vals, p.Offset)
}

// Reseed derives a copy sampling under a new seed.
func (n *ValueNoise) Reseed(seed uint32) *ValueNoise {
	c := *n
	c.hash = white.New32(seed)
	return &c
}
