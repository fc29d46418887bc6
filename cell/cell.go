// Package cell implements cellular noise building blocks: deterministic
// feature-point placement inside grid cells, distance metrics, and mergers
// that collapse per-cell candidates into one sample.
package cell

import (
	"math"

	"github.com/hupe1980/gonoise/grid"
	"github.com/hupe1980/gonoise/norm"
	"github.com/hupe1980/gonoise/vek"
	"github.com/hupe1980/gonoise/white"
)

// Nudge displaces each cell's feature point from the cell center by a
// deterministic per-cell offset. The displacement magnitude is bounded so
// feature points of neighboring cells cannot cross, which caps the search
// radius at one cell.
type Nudge struct {
	mult float32
}

// NewNudge builds a nudge with the given displacement range in cell units.
// The range is clamped to [0, 1]; a range of 1 lets feature points reach the
// cell boundary but never pass it.
func NewNudge(r float32) Nudge {
	if r < 0 || r != r {
		r = 0
	} else if r > 1 {
		r = 1
	}
	return Nudge{mult: r * 0.5}
}

// Max is the largest displacement along one axis, in cell units.
func (n Nudge) Max() float32 { return n.mult }

// Apply2 returns the feature point of a 2D cell, relative to the cell's own
// origin. Displacement sign alternates with cell parity so adjacent cells
// pull apart rather than drift together.
func Apply2[U vek.Unsigned](n Nudge, h white.White32, c vek.UVec2[U]) vek.Vec2[float32] {
	seed := white.New32(grid.CellSeed2(h, c))
	return vek.Vec2[float32]{
		X: 0.5 + axisNudge(n, seed, 0, uint64(c.X)),
		Y: 0.5 + axisNudge(n, seed, 1, uint64(c.Y)),
	}
}

// Apply3 returns the feature point of a 3D cell relative to its origin.
func Apply3[U vek.Unsigned](n Nudge, h white.White32, c vek.UVec3[U]) vek.Vec3[float32] {
	seed := white.New32(grid.CellSeed3(h, c))
	return vek.Vec3[float32]{
		X: 0.5 + axisNudge(n, seed, 0, uint64(c.X)),
		Y: 0.5 + axisNudge(n, seed, 1, uint64(c.Y)),
		Z: 0.5 + axisNudge(n, seed, 2, uint64(c.Z)),
	}
}

func axisNudge(n Nudge, seed white.White32, axis uint32, base uint64) float32 {
	s := norm.SNormFromBits(seed.Hash(axis))
	off := s.Scale(n.mult)
	if base&1 == 1 {
		off = -off
	}
	return off
}

// Candidate pairs a feature point's distance from the sample position with
// the value carried by its cell.
type Candidate[T any] struct {
	Distance float32
	Value    T
}

// Merger collapses the candidates gathered from a cell neighborhood into one
// value.
type Merger[T any] interface {
	Merge(cands []Candidate[T]) T
}

// Nearest picks the value of the closest candidate. Ties go to the earliest
// candidate; an empty neighborhood yields the zero value.
type Nearest[T any] struct{}

func (Nearest[T]) Merge(cands []Candidate[T]) T {
	var best T
	bestDist := float32(math.Inf(1))
	for _, c := range cands {
		if c.Distance < bestDist {
			bestDist = c.Distance
			best = c.Value
		}
	}
	return best
}

// Weighted blends all candidates, each weighted by a decay of its distance.
// Produces smooth transitions where Nearest would produce hard cell edges.
type Weighted struct {
	// HalfLife is the distance at which a candidate's weight drops to
	// one half.
	HalfLife float32
}

func (w Weighted) Merge(cands []Candidate[float32]) float32 {
	var sum, totalWeight float32
	for _, c := range cands {
		wt := norm.UNormDecay(c.Distance, w.HalfLife).Float32()
		sum += c.Value * wt
		totalWeight += wt
	}
	if totalWeight == 0 {
		return 0
	}
	return sum / totalWeight
}

// Metric measures the distance between a sample position and a feature
// point.
type Metric int

const (
	// Euclidean is straight-line distance. Produces round cell shapes.
	Euclidean Metric = iota
	// Manhattan sums per-axis distances. Produces diamond cell shapes.
	Manhattan
	// Chebyshev takes the largest per-axis distance. Produces square
	// cell shapes.
	Chebyshev
)

// String implements fmt.Stringer.
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Manhattan:
		return "manhattan"
	case Chebyshev:
		return "chebyshev"
	default:
		return "unknown"
	}
}

// Distance2 measures between two 2D positions.
func (m Metric) Distance2(a, b vek.Vec2[float32]) float32 {
	d := a.Sub(b).Abs()
	switch m {
	case Manhattan:
		return d.X + d.Y
	case Chebyshev:
		return max32(d.X, d.Y)
	default:
		return d.Length()
	}
}

// Distance3 measures between two 3D positions.
func (m Metric) Distance3(a, b vek.Vec3[float32]) float32 {
	d := a.Sub(b).Abs()
	switch m {
	case Manhattan:
		return d.X + d.Y + d.Z
	case Chebyshev:
		return max32(max32(d.X, d.Y), d.Z)
	default:
		return d.Length()
	}
}

// WorleyMode selects how the two nearest feature distances combine into the
// sample value.
type WorleyMode int

const (
	// F1 is the distance to the nearest feature point.
	F1 WorleyMode = iota
	// Difference is F2 - F1, highlighting cell boundaries.
	Difference
	// Average is (F1 + F2) / 2.
	Average
	// ProductMode is F1 * F2.
	ProductMode
	// Ratio is F1 / F2, constant inside a cell's interior.
	Ratio
)

// String implements fmt.Stringer.
func (m WorleyMode) String() string {
	switch m {
	case F1:
		return "f1"
	case Difference:
		return "difference"
	case Average:
		return "average"
	case ProductMode:
		return "product"
	case Ratio:
		return "ratio"
	default:
		return "unknown"
	}
}

// Combine folds the nearest (f1) and second-nearest (f2) distances into one
// value. Inputs must already be normalized to [0, 1].
func (m WorleyMode) Combine(f1, f2 float32) float32 {
	switch m {
	case Difference:
		return f2 - f1
	case Average:
		return (f1 + f2) * 0.5
	case ProductMode:
		return f1 * f2
	case Ratio:
		if f2 == 0 {
			return 0
		}
		return f1 / f2
	default:
		return f1
	}
}

// InvMaxDistance is the normalization factor that maps raw nearest-feature
// distances into [0, 1] for a nudge over dims axes: the farthest a feature
// point can sit from a sample that still selects it is maxNudge per axis plus
// the half cell, combined across dims.
func InvMaxDistance(n Nudge, dims int) float32 {
	reach := 0.5 + n.Max()
	return 1 / (reach * float32(math.Sqrt(float64(dims))))
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
