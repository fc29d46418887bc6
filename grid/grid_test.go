package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/gonoise/vek"
	"github.com/hupe1980/gonoise/white"
)

func TestExchange(t *testing.T) {
	tests := []struct {
		name string
		in   int32
		want uint32
	}{
		{name: "zero", in: 0, want: 0x80000000},
		{name: "positive", in: 3, want: 0x80000003},
		{name: "negative one", in: -1, want: 0x7FFFFFFF},
		{name: "most negative", in: -2147483648, want: 0},
		{name: "most positive", in: 2147483647, want: 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Exchange[int32, uint32](tt.in))
		})
	}
}

func TestExchange_PreservesOrder(t *testing.T) {
	prev := Exchange[int32, uint32](-5)
	for v := int32(-4); v <= 5; v++ {
		cur := Exchange[int32, uint32](v)
		assert.Equal(t, prev+1, cur, "v=%d", v)
		prev = cur
	}
}

func TestExchange_OtherWidths(t *testing.T) {
	assert.Equal(t, uint8(0x80), Exchange[int8, uint8](0))
	assert.Equal(t, uint16(0x7FFF), Exchange[int16, uint16](-1))
	assert.Equal(t, uint64(0x8000000000000002), Exchange[int64, uint64](2))
}

func TestGrid2_Map(t *testing.T) {
	g := NewGrid2[float32, uint32](1)

	p := g.Map(vek.Vec2[float32]{X: 3.7, Y: -1.25})
	assert.Equal(t, Exchange[int64, uint32](3), p.Base.X)
	assert.Equal(t, Exchange[int64, uint32](-2), p.Base.Y)
	assert.InDelta(t, 0.7, p.Offset.X, 1e-5)
	assert.InDelta(t, 0.75, p.Offset.Y, 1e-5)
}

func TestGrid2_Period(t *testing.T) {
	g := NewGrid2[float32, uint32](8)

	p := g.Map(vek.Vec2[float32]{X: 20, Y: -4})
	assert.Equal(t, Exchange[int64, uint32](2), p.Base.X)
	assert.Equal(t, Exchange[int64, uint32](-1), p.Base.Y)
	assert.InDelta(t, 0.5, p.Offset.X, 1e-6)
	assert.InDelta(t, 0.5, p.Offset.Y, 1e-6)
}

func TestGrid2_ZeroPeriodSafe(t *testing.T) {
	// A zero period falls back to a unit grid with a finite frequency.
	g := NewGrid2[float32, uint32](0)
	p := g.Map(vek.Vec2[float32]{X: 1.5, Y: -0.25})

	assert.False(t, math.IsNaN(float64(p.Offset.X)))
	assert.False(t, math.IsNaN(float64(p.Offset.Y)))
	assert.Equal(t, Exchange[int64, uint32](1), p.Base.X)
	assert.Equal(t, Exchange[int64, uint32](-1), p.Base.Y)
	assert.InDelta(t, 0.5, p.Offset.X, 1e-6)
	assert.InDelta(t, 0.75, p.Offset.Y, 1e-6)
}

func TestGrid3_ZeroPeriodSafe(t *testing.T) {
	g := NewGrid3[float32, uint32](0)
	p := g.Map(vek.Vec3[float32]{X: 2.5, Y: 0.5, Z: -1.5})

	for _, o := range p.Offset.Array() {
		assert.False(t, math.IsNaN(float64(o)))
		assert.GreaterOrEqual(t, o, float32(0))
		assert.Less(t, o, float32(1))
	}
	assert.Equal(t, Exchange[int64, uint32](2), p.Base.X)
	assert.Equal(t, Exchange[int64, uint32](-2), p.Base.Z)
}

func TestGrid3_Map(t *testing.T) {
	g := NewGrid3[float32, uint32](2)

	p := g.Map(vek.Vec3[float32]{X: 5, Y: -3, Z: 0.5})
	assert.Equal(t, Exchange[int64, uint32](2), p.Base.X)
	assert.Equal(t, Exchange[int64, uint32](-2), p.Base.Y)
	assert.Equal(t, Exchange[int64, uint32](0), p.Base.Z)
	assert.InDelta(t, 0.5, p.Offset.X, 1e-6)
	assert.InDelta(t, 0.5, p.Offset.Y, 1e-6)
	assert.InDelta(t, 0.25, p.Offset.Z, 1e-6)
}

func TestIntGrid2_Map(t *testing.T) {
	g := NewIntGrid2[int32, uint32](4)

	p := g.Map(9, -3)
	assert.Equal(t, Exchange[int32, uint32](2), p.Base.X)
	assert.Equal(t, Exchange[int32, uint32](-1), p.Base.Y)
	assert.InDelta(t, 0.25, p.Offset.X, 1e-6)
	assert.InDelta(t, 0.25, p.Offset.Y, 1e-6)
}

func TestIntGrid2_ContinuousAcrossZero(t *testing.T) {
	g := NewIntGrid2[int32, uint32](4)

	// Offsets must step uniformly through the boundary, with the base
	// dropping exactly once.
	prevBase := g.Map(-5, 0).Base.X
	bases := 0
	for x := int32(-4); x <= 3; x++ {
		p := g.Map(x, 0)
		if p.Base.X != prevBase {
			bases++
			prevBase = p.Base.X
		}
		assert.GreaterOrEqual(t, p.Offset.X, float32(0))
		assert.Less(t, p.Offset.X, float32(1))
	}
	assert.Equal(t, 2, bases)
}

func TestIntGrid2_ZeroPeriodSafe(t *testing.T) {
	g := NewIntGrid2[int32, uint32](0)
	p := g.Map(7, 7)
	assert.Equal(t, Exchange[int32, uint32](7), p.Base.X)
}

func TestPowGrid2_MatchesIntGrid(t *testing.T) {
	pow := NewPowGrid2[int32, uint32](3)
	plain := NewIntGrid2[int32, uint32](8)

	for _, v := range []int32{-17, -8, -1, 0, 1, 7, 8, 25} {
		a := pow.Map(v, -v)
		b := plain.Map(v, -v)
		assert.Equal(t, b.Base, a.Base, "v=%d", v)
		assert.InDelta(t, b.Offset.X, a.Offset.X, 1e-6, "v=%d", v)
		assert.InDelta(t, b.Offset.Y, a.Offset.Y, 1e-6, "v=%d", v)
	}
}

func TestPoint2_Corners(t *testing.T) {
	p := Point2[float32, uint32]{Base: vek.UVec2[uint32]{X: 10, Y: 20}}
	corners := p.Corners()

	assert.Equal(t, vek.UVec2[uint32]{X: 10, Y: 20}, corners[0])
	assert.Equal(t, vek.UVec2[uint32]{X: 11, Y: 20}, corners[1])
	assert.Equal(t, vek.UVec2[uint32]{X: 10, Y: 21}, corners[2])
	assert.Equal(t, vek.UVec2[uint32]{X: 11, Y: 21}, corners[3])
}

func TestPoint3_Corners(t *testing.T) {
	p := Point3[float32, uint32]{Base: vek.UVec3[uint32]{X: 1, Y: 2, Z: 3}}
	corners := p.Corners()

	assert.Equal(t, vek.UVec3[uint32]{X: 1, Y: 2, Z: 3}, corners[0])
	assert.Equal(t, vek.UVec3[uint32]{X: 2, Y: 2, Z: 3}, corners[1])
	assert.Equal(t, vek.UVec3[uint32]{X: 1, Y: 3, Z: 3}, corners[2])
	assert.Equal(t, vek.UVec3[uint32]{X: 2, Y: 3, Z: 4}, corners[7])
}

func TestPoint2_Surroundings(t *testing.T) {
	p := Point2[float32, uint32]{Base: vek.UVec2[uint32]{X: 5, Y: 5}}
	s := p.Surroundings()

	assert.Equal(t, p.Base, s[0])
	assert.Len(t, s, 9)

	seen := make(map[vek.UVec2[uint32]]struct{})
	for _, c := range s {
		seen[c] = struct{}{}
		assert.Contains(t, []uint32{4, 5, 6}, c.X)
		assert.Contains(t, []uint32{4, 5, 6}, c.Y)
	}
	assert.Len(t, seen, 9)
}

func TestPoint2_SurroundingsWrap(t *testing.T) {
	// Wrapping at the unsigned origin keeps all nine cells distinct.
	p := Point2[float32, uint32]{Base: vek.UVec2[uint32]{X: 0, Y: 0}}
	seen := make(map[vek.UVec2[uint32]]struct{})
	for _, c := range p.Surroundings() {
		seen[c] = struct{}{}
	}
	assert.Len(t, seen, 9)
}

func TestPoint3_Surroundings(t *testing.T) {
	p := Point3[float32, uint32]{Base: vek.UVec3[uint32]{X: 9, Y: 9, Z: 9}}
	s := p.Surroundings()

	assert.Equal(t, p.Base, s[0])
	seen := make(map[vek.UVec3[uint32]]struct{})
	for _, c := range s {
		seen[c] = struct{}{}
	}
	assert.Len(t, seen, 27)
}

func TestPoint2_Pushed(t *testing.T) {
	g := NewGrid2[float32, uint32](1)
	p := g.Map(vek.Vec2[float32]{X: 3.25, Y: -1.5})

	// Pushing keeps the absolute position: base moves forward, offset
	// moves back by the same amount.
	q := p.Pushed(vek.UVec2[uint32]{X: 1, Y: 0})
	assert.Equal(t, p.Base.X+1, q.Base.X)
	assert.InDelta(t, p.Offset.X-1, q.Offset.X, 1e-6)
	assert.InDelta(t, p.Offset.Y, q.Offset.Y, 1e-6)

	// Negative deltas arrive as wrapped unsigned values.
	r := p.Pushed(vek.UVec2[uint32]{X: ^uint32(0), Y: ^uint32(0)})
	assert.Equal(t, p.Base.X-1, r.Base.X)
	assert.InDelta(t, p.Offset.X+1, r.Offset.X, 1e-6)
}

func TestCellSeed_WidthAgnostic(t *testing.T) {
	h := white.New32(42)

	// The same coordinate value hashes identically regardless of the
	// unsigned type that carries it.
	narrow := CellSeed2(h, vek.UVec2[uint8]{X: 200, Y: 100})
	wide := CellSeed2(h, vek.UVec2[uint64]{X: 200, Y: 100})
	assert.Equal(t, narrow, wide)
}

func TestCellSeed_Distinct(t *testing.T) {
	h := white.New32(42)

	a := CellSeed2(h, vek.UVec2[uint32]{X: 1, Y: 2})
	b := CellSeed2(h, vek.UVec2[uint32]{X: 2, Y: 1})
	assert.NotEqual(t, a, b)

	c := CellSeed3(h, vek.UVec3[uint32]{X: 1, Y: 2, Z: 0})
	assert.NotEqual(t, a, c)
}
