package gonoise

import (
	"github.com/hupe1980/gonoise/grid"
	"github.com/hupe1980/gonoise/mix"
	"github.com/hupe1980/gonoise/norm"
	"github.com/hupe1980/gonoise/vek"
	"github.com/hupe1980/gonoise/white"
)

// Normalization factors that bring the raw gradient-noise range back to
// roughly (-1, 1) before mapping onto (0, 1).
const (
	perlinNorm2 = 1.41421356 // sqrt(2)
	perlinNorm3 = 1.15470054 // 2/sqrt(3)
)

// PerlinNoise is gradient noise: each corner gets a pseudorandom gradient
// direction and the sample blends the corners' directional ramps with a
// quintic curve, giving smoother results than value noise at the same cell
// size.
type PerlinNoise struct {
	hash  white.White32
	grid2 grid.Grid2[float32, uint32]
	grid3 grid.Grid3[float32, uint32]
	curve mix.Curve[float32]
}

// Sample2 implements Sampler2.
func (n *PerlinNoise) Sample2(x, y float32) float32 {
	p := n.grid2.Map(vek.Vec2[float32]{X: x, Y: y})

	var vals [4]float32
	for i, c := range p.Corners() {
		dx := p.Offset.X - float32(i&1)
		dy := p.Offset.Y - float32(i>>1&1)
		vals[i] = gradDot2(grid.CellSeed2(n.hash, c), dx, dy)
	}

	raw := mix.Mix2(n.curve, vals, p.Offset) * perlinNorm2
	return norm.SNormClamped(raw).MapToUNorm().Float32()
}

// Sample3 implements Sampler3.
func (n *PerlinNoise) Sample3(x, y, z float32) float32 {
	p := n.grid3.Map(vek.Vec3[float32]{X: x, Y: y, Z: z})

	var vals [8]float32
	for i, c := range p.Corners() {
		dx := p.Offset.X - float32(i&1)
		dy := p.Offset.Y - float32(i>>1&1)
		dz := p.Offset.Z - float32(i>>2&1)
		vals[i] = gradDot3(grid.CellSeed3(n.hash, c), dx, dy, dz)
	}

	raw := mix.Mix3(n.curve, vals, p.Offset) * perlinNorm3
	return norm.SNormClamped(raw).MapToUNorm().Float32()
}

// Reseed derives a copy sampling under a new seed.
func (n *PerlinNoise) Reseed(seed uint32) *PerlinNoise {
	c := *n
	c.hash = white.New32(seed)
	return &c
}

// gradDot2 projects the offset onto one of eight gradient directions chosen
// by the low seed bits.
func gradDot2(seed uint32, x, y float32) float32 {
	switch seed & 7 {
	case 0:
		return x
	case 1:
		return -x
	case 2:
		return y
	case 3:
		return -y
	case 4:
		return x + y
	case 5:
		return x - y
	case 6:
		return -x + y
	default:
		return -x - y
	}
}

// gradDot3 projects the offset onto one of the twelve edge directions of a
// cube, folded into sixteen cases so the selector is a mask.
func gradDot3(seed uint32, x, y, z float32) float32 {
	h := seed & 15

	u := x
	if h >= 8 {
		u = y
	}

	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}

	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
