package gonoise

import (
	"math"

	"github.com/hupe1980/gonoise/cell"
	"github.com/hupe1980/gonoise/grid"
	"github.com/hupe1980/gonoise/norm"
	"github.com/hupe1980/gonoise/vek"
	"github.com/hupe1980/gonoise/white"
)

// WorleyNoise samples distance fields over scattered feature points: each
// cell holds one feature point and the sample combines the nearest two
// feature distances according to the mode.
type WorleyNoise struct {
	hash   white.White32
	grid2  grid.Grid2[float32, uint32]
	grid3  grid.Grid3[float32, uint32]
	nudge  cell.Nudge
	metric cell.Metric
	mode   cell.WorleyMode
}

// Sample2 implements Sampler2.
func (n *WorleyNoise) Sample2(x, y float32) float32 {
	p := n.grid2.Map(vek.Vec2[float32]{X: x, Y: y})

	f1 := float32(math.Inf(1))
	f2 := f1
	for _, c := range p.Surroundings() {
		feature := cell.Apply2(n.nudge, n.hash, c).Add(cellDelta2(c, p.Base))
		d := n.metric.Distance2(p.Offset, feature)
		if d < f1 {
			f1, f2 = d, f1
		} else if d < f2 {
			f2 = d
		}
	}

	inv := cell.InvMaxDistance(n.nudge, 2)
	return norm.UNormClamped(n.mode.Combine(f1*inv, f2*inv)).Float32()
}

// Sample3 implements Sampler3.
func (n *WorleyNoise) Sample3(x, y, z float32) float32 {
	p := n.grid3.Map(vek.Vec3[float32]{X: x, Y: y, Z: z})

	f1 := float32(math.Inf(1))
	f2 := f1
	for _, c := range p.Surroundings() {
		feature := cell.Apply3(n.nudge, n.hash, c).Add(cellDelta3(c, p.Base))
		d := n.metric.Distance3(p.Offset, feature)
		if d < f1 {
			f1, f2 = d, f1
		} else if d < f2 {
			f2 = d
		}
	}

	inv := cell.InvMaxDistance(n.nudge, 3)
	return norm.UNormClamped(n.mode.Combine(f1*inv, f2*inv)).Float32()
}

// Reseed derives a copy sampling under a new seed.
func (n *WorleyNoise) Reseed(seed uint32) *WorleyNoise {
	c := *n
	c.hash = white.New32(seed)
	return &c
}

// CellularNoise assigns each cell a random value and merges the values of
// the surrounding feature points at each sample, weighted by distance.
// With a Nearest merger this is classic cell noise; with a Weighted merger
// the cell borders blend smoothly.
type CellularNoise struct {
	hash   white.White32
	grid2  grid.Grid2[float32, uint32]
	grid3  grid.Grid3[float32, uint32]
	nudge  cell.Nudge
	metric cell.Metric
	merger cell.Merger[float32]
}

// Sample2 implements Sampler2.
func (n *CellularNoise) Sample2(x, y float32) float32 {
	p := n.grid2.Map(vek.Vec2[float32]{X: x, Y: y})

	cands := make([]cell.Candidate[float32], 0, 9)
	for _, c := range p.Surroundings() {
		feature := cell.Apply2(n.nudge, n.hash, c).Add(cellDelta2(c, p.Base))
		cands = append(cands, cell.Candidate[float32]{
			Distance: n.metric.Distance2(p.Offset, feature),
			Value:    norm.UNormFromBits(grid.CellSeed2(n.hash, c)).Float32(),
		})
	}

	return norm.UNormClamped(n.merger.Merge(cands)).Float32()
}

// Sample3 implements Sampler3.
func (n *CellularNoise) Sample3(x, y, z float32) float32 {
	p := n.grid3.Map(vek.Vec3[float32]{X: x, Y: y, Z: z})

	cands := make([]cell.Candidate[float32], 0, 27)
	for _, c := range p.Surroundings() {
		feature := cell.Apply3(n.nudge, n.hash, c).Add(cellDelta3(c, p.Base))
		cands = append(cands, cell.Candidate[float32]{
			Distance: n.metric.Distance3(p.Offset, feature),
			Value:    norm.UNormFromBits(grid.CellSeed3(n.hash, c)).Float32(),
		})
	}

	return norm.UNormClamped(n.merger.Merge(cands)).Float32()
}

// Reseed derives a copy sampling under a new seed.
func (n *CellularNoise) Reseed(seed uint32) *CellularNoise {
	c := *n
	c.hash = white.New32(seed)
	return &c
}

// cellDelta2 recovers the neighbor's offset from the center cell as a float
// vector. Neighbors differ by at most one cell per axis, so the wrapped
// unsigned difference is always -1, 0, or 1.
func cellDelta2(c, base vek.UVec2[uint32]) vek.Vec2[float32] {
	return vek.Vec2[float32]{
		X: float32(int32(c.X - base.X)),
		Y: float32(int32(c.Y - base.Y)),
	}
}

func cellDelta3(c, base vek.UVec3[uint32]) vek.Vec3[float32] {
	return vek.Vec3[float32]{
		X: float32(int32(c.X - base.X)),
		Y: float32(int32(c.Y - base.Y)),
		Z: float32(int32(c.Z - base.Z)),
	}
}
