package cell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/gonoise/vek"
	"github.com/hupe1980/gonoise/white"
)

func TestNewNudge_ClampsRange(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{name: "zero", in: 0, want: 0},
		{name: "half", in: 0.5, want: 0.25},
		{name: "full", in: 1, want: 0.5},
		{name: "above one", in: 3, want: 0.5},
		{name: "negative", in: -1, want: 0},
		{name: "nan", in: float32(math.NaN()), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NewNudge(tt.in).Max(), 1e-6)
		})
	}
}

func TestApply2_StaysInCell(t *testing.T) {
	n := NewNudge(1)
	h := white.New32(42)

	for x := uint32(0); x < 50; x++ {
		for y := uint32(0); y < 50; y++ {
			f := Apply2(n, h, vek.UVec2[uint32]{X: x, Y: y})
			assert.GreaterOrEqual(t, f.X, float32(0), "cell %d,%d", x, y)
			assert.LessOrEqual(t, f.X, float32(1), "cell %d,%d", x, y)
			assert.GreaterOrEqual(t, f.Y, float32(0), "cell %d,%d", x, y)
			assert.LessOrEqual(t, f.Y, float32(1), "cell %d,%d", x, y)
		}
	}
}

func TestApply2_Deterministic(t *testing.T) {
	n := NewNudge(0.7)
	h := white.New32(42)
	c := vek.UVec2[uint32]{X: 10, Y: 20}

	assert.Equal(t, Apply2(n, h, c), Apply2(n, h, c))
}

func TestApply2_SeedChangesLayout(t *testing.T) {
	n := NewNudge(1)
	c := vek.UVec2[uint32]{X: 10, Y: 20}

	a := Apply2(n, white.New32(1), c)
	b := Apply2(n, white.New32(2), c)
	assert.NotEqual(t, a, b)
}

func TestApply2_ZeroRangeIsCenter(t *testing.T) {
	n := NewNudge(0)
	h := white.New32(42)

	f := Apply2(n, h, vek.UVec2[uint32]{X: 3, Y: 7})
	assert.InDelta(t, 0.5, f.X, 1e-6)
	assert.InDelta(t, 0.5, f.Y, 1e-6)
}

func TestApply3_StaysInCell(t *testing.T) {
	n := NewNudge(1)
	h := white.New32(7)

	for i := uint32(0); i < 200; i++ {
		f := Apply3(n, h, vek.UVec3[uint32]{X: i, Y: i * 3, Z: i * 7})
		for _, v := range f.Array() {
			assert.GreaterOrEqual(t, v, float32(0))
			assert.LessOrEqual(t, v, float32(1))
		}
	}
}

func TestNearest(t *testing.T) {
	m := Nearest[string]{}

	tests := []struct {
		name  string
		cands []Candidate[string]
		want  string
	}{
		{name: "empty yields zero value", cands: nil, want: ""},
		{name: "single", cands: []Candidate[string]{{Distance: 1, Value: "a"}}, want: "a"},
		{
			name: "closest wins",
			cands: []Candidate[string]{
				{Distance: 2, Value: "far"},
				{Distance: 0.5, Value: "near"},
				{Distance: 1, Value: "mid"},
			},
			want: "near",
		},
		{
			name: "tie goes to first",
			cands: []Candidate[string]{
				{Distance: 1, Value: "first"},
				{Distance: 1, Value: "second"},
			},
			want: "first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Merge(tt.cands))
		})
	}
}

func TestWeighted(t *testing.T) {
	m := Weighted{HalfLife: 1}

	// Empty neighborhoods are safe.
	assert.Zero(t, m.Merge(nil))

	// A single candidate is returned as is.
	assert.InDelta(t, 0.8, m.Merge([]Candidate[float32]{{Distance: 3, Value: 0.8}}), 1e-6)

	// Equidistant candidates average.
	avg := m.Merge([]Candidate[float32]{
		{Distance: 1, Value: 0.2},
		{Distance: 1, Value: 0.8},
	})
	assert.InDelta(t, 0.5, avg, 1e-6)

	// Closer candidates dominate.
	skew := m.Merge([]Candidate[float32]{
		{Distance: 0.1, Value: 1},
		{Distance: 10, Value: 0},
	})
	assert.Greater(t, skew, float32(0.8))
}

func TestMetric_Distance2(t *testing.T) {
	a := vek.Vec2[float32]{X: 1, Y: 2}
	b := vek.Vec2[float32]{X: 4, Y: 6}

	tests := []struct {
		name   string
		metric Metric
		want   float32
	}{
		{name: "euclidean", metric: Euclidean, want: 5},
		{name: "manhattan", metric: Manhattan, want: 7},
		{name: "chebyshev", metric: Chebyshev, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.metric.Distance2(a, b), 1e-6)
			assert.InDelta(t, tt.want, tt.metric.Distance2(b, a), 1e-6)
		})
	}
}

func TestMetric_Distance3(t *testing.T) {
	a := vek.Vec3[float32]{X: 0, Y: 0, Z: 0}
	b := vek.Vec3[float32]{X: 2, Y: 3, Z: 6}

	assert.InDelta(t, 7, Euclidean.Distance3(a, b), 1e-6)
	assert.InDelta(t, 11, Manhattan.Distance3(a, b), 1e-6)
	assert.InDelta(t, 6, Chebyshev.Distance3(a, b), 1e-6)
}

func TestMetric_String(t *testing.T) {
	assert.Equal(t, "euclidean", Euclidean.String())
	assert.Equal(t, "manhattan", Manhattan.String())
	assert.Equal(t, "chebyshev", Chebyshev.String())
	assert.Equal(t, "unknown", Metric(99).String())
}

func TestWorleyMode_Combine(t *testing.T) {
	tests := []struct {
		name string
		mode WorleyMode
		f1   float32
		f2   float32
		want float32
	}{
		{name: "f1", mode: F1, f1: 0.3, f2: 0.6, want: 0.3},
		{name: "difference", mode: Difference, f1: 0.3, f2: 0.6, want: 0.3},
		{name: "average", mode: Average, f1: 0.3, f2: 0.6, want: 0.45},
		{name: "product", mode: ProductMode, f1: 0.3, f2: 0.6, want: 0.18},
		{name: "ratio", mode: Ratio, f1: 0.3, f2: 0.6, want: 0.5},
		{name: "ratio zero denominator", mode: Ratio, f1: 0, f2: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.mode.Combine(tt.f1, tt.f2), 1e-6)
		})
	}
}

func TestWorleyMode_String(t *testing.T) {
	assert.Equal(t, "f1", F1.String())
	assert.Equal(t, "difference", Difference.String())
	assert.Equal(t, "average", Average.String())
	assert.Equal(t, "product", ProductMode.String())
	assert.Equal(t, "ratio", Ratio.String())
	assert.Equal(t, "unknown", WorleyMode(99).String())
}

func TestInvMaxDistance(t *testing.T) {
	// Full nudge in 2D: reach is 1 per axis, combined sqrt(2).
	inv := InvMaxDistance(NewNudge(1), 2)
	assert.InDelta(t, 1/float32(math.Sqrt2), inv, 1e-6)

	// No nudge: reach is the half cell.
	inv0 := InvMaxDistance(NewNudge(0), 2)
	assert.InDelta(t, 2/float32(math.Sqrt2), inv0, 1e-5)
}
