// Package mix provides interpolation primitives: linear blends, easing
// curves, and multi-corner mixers that collapse the corner values of a grid
// cell into one sample.
package mix

import "github.com/hupe1980/gonoise/vek"

// Lerp blends linearly from a to b as t goes 0 to 1.
func Lerp[F vek.Float](a, b, t F) F {
	return a + (b-a)*t
}

// LerpGradient is the rate of change of Lerp with respect to t.
func LerpGradient[F vek.Float](a, b F) F {
	return b - a
}

// LerpInverse recovers the t that would produce v. Undefined when a == b.
func LerpInverse[F vek.Float](a, b, v F) F {
	return (v - a) / (b - a)
}

// LerpRemap moves v from the range [fromA, fromB] to [toA, toB].
func LerpRemap[F vek.Float](fromA, fromB, toA, toB, v F) F {
	return Lerp(toA, toB, LerpInverse(fromA, fromB, v))
}

// Curve shapes the interpolation parameter before blending. Implementations
// must map 0 to 0 and 1 to 1 and be monotonic in between.
type Curve[F vek.Float] interface {
	// Mix blends a toward b with the eased parameter.
	Mix(a, b, t F) F
	// Derivative is the rate of change of the easing at t.
	Derivative(t F) F
}

// Linear applies no easing.
type Linear[F vek.Float] struct{}

func (Linear[F]) Mix(a, b, t F) F  { return Lerp(a, b, t) }
func (Linear[F]) Derivative(t F) F { return 1 }

// Cubic is the smoothstep curve 3t^2 - 2t^3. Its first derivative vanishes
// at both endpoints, removing visible cell boundaries in value noise.
type Cubic[F vek.Float] struct{}

func (Cubic[F]) Mix(a, b, t F) F {
	return Lerp(a, b, t*t*(3-2*t))
}

func (Cubic[F]) Derivative(t F) F {
	return 6 * t * (1 - t)
}

// Quintic is the smootherstep curve 6t^5 - 15t^4 + 10t^3. Both its first and
// second derivatives vanish at the endpoints, which keeps gradient noise
// derivatives continuous across cells.
type Quintic[F vek.Float] struct{}

func (Quintic[F]) Mix(a, b, t F) F {
	return Lerp(a, b, t*t*t*(t*(t*6-15)+10))
}

func (Quintic[F]) Derivative(t F) F {
	return 30 * t * t * (t*(t-2) + 1)
}

// Mix2 collapses the four corner values of a 2D cell, ordered (0,0), (1,0),
// (0,1), (1,1), into one value at the given intra-cell offset.
func Mix2[F vek.Float](c Curve[F], vals [4]F, off vek.Vec2[F]) F {
	return c.Mix(
		c.Mix(vals[0], vals[1], off.X),
		c.Mix(vals[2], vals[3], off.X),
		off.Y,
	)
}

// Mix3 collapses the eight corner values of a 3D cell into one value.
func Mix3[F vek.Float](c Curve[F], vals [8]F, off vek.Vec3[F]) F {
	return c.Mix(
		Mix2(c, [4]F{vals[0], vals[1], vals[2], vals[3]}, vek.Vec2[F]{X: off.X, Y: off.Y}),
		Mix2(c, [4]F{vals[4], vals[5], vals[6], vals[7]}, vek.Vec2[F]{X: off.X, Y: off.Y}),
		off.Z,
	)
}

// Mix4 collapses the sixteen corner values of a 4D cell into one value.
func Mix4[F vek.Float](c Curve[F], vals [16]F, off vek.Vec4[F]) F {
	var lo, hi [8]F
	copy(lo[:], vals[:8])
	copy(hi[:], vals[8:])
	o3 := vek.Vec3[F]{X: off.X, Y: off.Y, Z: off.Z}
	return c.Mix(Mix3(c, lo, o3), Mix3(c, hi, o3), off.W)
}

// Grad2 is the spatial gradient of Mix2 with respect to the offset, by the
// product rule over the eased axes.
func Grad2[F vek.Float](c Curve[F], vals [4]F, off vek.Vec2[F]) vek.Vec2[F] {
	return vek.Vec2[F]{
		X: Lerp(vals[1]-vals[0], vals[3]-vals[2], ease(c, off.Y)) * c.Derivative(off.X),
		Y: Lerp(vals[2]-vals[0], vals[3]-vals[1], ease(c, off.X)) * c.Derivative(off.Y),
	}
}

// Grad3 is the spatial gradient of Mix3 with respect to the offset.
func Grad3[F vek.Float](c Curve[F], vals [8]F, off vek.Vec3[F]) vek.Vec3[F] {
	ex, ey, ez := ease(c, off.X), ease(c, off.Y), ease(c, off.Z)

	dx := func(i int) F { return vals[i+1] - vals[i] }
	dy := func(i int) F { return vals[i+2] - vals[i] }
	dz := func(i int) F { return vals[i+4] - vals[i] }

	return vek.Vec3[F]{
		X: Lerp(Lerp(dx(0), dx(2), ey), Lerp(dx(4), dx(6), ey), ez) * c.Derivative(off.X),
		Y: Lerp(Lerp(dy(0), dy(1), ex), Lerp(dy(4), dy(5), ex), ez) * c.Derivative(off.Y),
		Z: Lerp(Lerp(dz(0), dz(1), ex), Lerp(dz(2), dz(3), ex), ey) * c.Derivative(off.Z),
	}
}

// ease recovers the eased parameter from a curve by mixing 0 toward 1.
func ease[F vek.Float](c Curve[F], t F) F {
	return c.Mix(0, 1, t)
}
