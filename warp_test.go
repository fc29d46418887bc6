package gonoise

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/gonoise/vek"
)

func TestWarp(t *testing.T) {
	// Constant displacement of (1, 0), strength 2: positions shift by (2, 0).
	displace := OpFunc[vek.Vec2[float32], vek.Vec2[float32]](func(vek.Vec2[float32]) vek.Vec2[float32] {
		return vek.Vec2[float32]{X: 1}
	})
	probe := OpFunc[vek.Vec2[float32], vek.Vec2[float32]](func(p vek.Vec2[float32]) vek.Vec2[float32] {
		return p
	})

	warped := Warp[vek.Vec2[float32], vek.Vec2[float32]](displace, 2, probe)
	out := warped.Apply(vek.Vec2[float32]{X: 10, Y: 5})
	assert.InDelta(t, 12, out.X, 1e-6)
	assert.InDelta(t, 5, out.Y, 1e-6)
}

func TestWarp_ZeroStrengthIsIdentity(t *testing.T) {
	n := Perlin(42).Period(8).MustBuild()
	displace := OpFunc[vek.Vec2[float32], vek.Vec2[float32]](func(p vek.Vec2[float32]) vek.Vec2[float32] {
		return vek.Vec2[float32]{X: n.Sample2(p.X, p.Y), Y: n.Sample2(p.Y, p.X)}
	})

	warped := Warp[vek.Vec2[float32], float32](displace, 0, Op2(n))
	assert.Equal(t, n.Sample2(3.25, 4.5), warped.Apply(vek.Vec2[float32]{X: 3.25, Y: 4.5}))
}

func TestCompoundingWarp(t *testing.T) {
	// Each round shifts by x/2, so rounds compound multiplicatively.
	displace := OpFunc[vek.Vec2[float32], vek.Vec2[float32]](func(p vek.Vec2[float32]) vek.Vec2[float32] {
		return vek.Vec2[float32]{X: p.X}
	})
	probe := OpFunc[vek.Vec2[float32], float32](func(p vek.Vec2[float32]) float32 {
		return p.X
	})

	warped := CompoundingWarp[vek.Vec2[float32], float32](displace, 0.5, 3, probe)
	// 8 -> 12 -> 18 -> 27
	assert.InDelta(t, 27, warped.Apply(vek.Vec2[float32]{X: 8}), 1e-4)
}

func TestCompoundingWarp_OneRoundMatchesWarp(t *testing.T) {
	n := Value(7).Period(4).MustBuild()
	displace := OpFunc[vek.Vec2[float32], vek.Vec2[float32]](func(p vek.Vec2[float32]) vek.Vec2[float32] {
		return vek.Vec2[float32]{X: n.Sample2(p.X, p.Y), Y: n.Sample2(-p.X, -p.Y)}
	})

	single := Warp[vek.Vec2[float32], float32](displace, 1.5, Op2(n))
	compound := CompoundingWarp[vek.Vec2[float32], float32](displace, 1.5, 1, Op2(n))

	pos := vek.Vec2[float32]{X: 2.5, Y: -1.75}
	assert.Equal(t, single.Apply(pos), compound.Apply(pos))
}
