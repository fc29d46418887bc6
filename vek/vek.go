// Package vek provides small fixed-size vector types used as pipeline payloads.
// Vectors are generic over element width so that the 32-bit and 64-bit grid
// precisions share one implementation.
package vek

import "math"

// Float constrains vector elements to floating-point types.
type Float interface {
	~float32 | ~float64
}

// Unsigned constrains lattice coordinates to unsigned integer types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed constrains signed integer coordinate inputs.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Vec2 is a two-component float vector.
type Vec2[F Float] struct {
	X, Y F
}

// Vec3 is a three-component float vector.
type Vec3[F Float] struct {
	X, Y, Z F
}

// Vec4 is a four-component float vector.
type Vec4[F Float] struct {
	X, Y, Z, W F
}

// UVec2 is a two-component unsigned integer vector.
type UVec2[U Unsigned] struct {
	X, Y U
}

// UVec3 is a three-component unsigned integer vector.
type UVec3[U Unsigned] struct {
	X, Y, Z U
}

// UVec4 is a four-component unsigned integer vector.
type UVec4[U Unsigned] struct {
	X, Y, Z, W U
}

func floor[F Float](v F) F { return F(math.Floor(float64(v))) }

// Add returns v + o.
func (v Vec2[F]) Add(o Vec2[F]) Vec2[F] { return Vec2[F]{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2[F]) Sub(o Vec2[F]) Vec2[F] { return Vec2[F]{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2[F]) Scale(s F) Vec2[F] { return Vec2[F]{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2[F]) Dot(o Vec2[F]) F { return v.X*o.X + v.Y*o.Y }

// LengthSq returns the squared length of v.
func (v Vec2[F]) LengthSq() F { return v.Dot(v) }

// Length returns the length of v.
func (v Vec2[F]) Length() F { return F(math.Sqrt(float64(v.LengthSq()))) }

// Abs returns the component-wise absolute value of v.
func (v Vec2[F]) Abs() Vec2[F] {
	return Vec2[F]{F(math.Abs(float64(v.X))), F(math.Abs(float64(v.Y)))}
}

// Floor returns the component-wise floor of v.
func (v Vec2[F]) Floor() Vec2[F] { return Vec2[F]{floor(v.X), floor(v.Y)} }

// Fract returns v - floor(v); every component lies in [0, 1).
func (v Vec2[F]) Fract() Vec2[F] { return v.Sub(v.Floor()) }

// Array returns the components in axis order.
func (v Vec2[F]) Array() [2]F { return [2]F{v.X, v.Y} }

// Add returns v + o.
func (v Vec3[F]) Add(o Vec3[F]) Vec3[F] { return Vec3[F]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3[F]) Sub(o Vec3[F]) Vec3[F] { return Vec3[F]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vec3[F]) Scale(s F) Vec3[F] { return Vec3[F]{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3[F]) Dot(o Vec3[F]) F { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// LengthSq returns the squared length of v.
func (v Vec3[F]) LengthSq() F { return v.Dot(v) }

// Length returns the length of v.
func (v Vec3[F]) Length() F { return F(math.Sqrt(float64(v.LengthSq()))) }

// Abs returns the component-wise absolute value of v.
func (v Vec3[F]) Abs() Vec3[F] {
	return Vec3[F]{F(math.Abs(float64(v.X))), F(math.Abs(float64(v.Y))), F(math.Abs(float64(v.Z)))}
}

// Floor returns the component-wise floor of v.
func (v Vec3[F]) Floor() Vec3[F] { return Vec3[F]{floor(v.X), floor(v.Y), floor(v.Z)} }

// Fract returns v - floor(v); every component lies in [0, 1).
func (v Vec3[F]) Fract() Vec3[F] { return v.Sub(v.Floor()) }

// Array returns the components in axis order.
func (v Vec3[F]) Array() [3]F { return [3]F{v.X, v.Y, v.Z} }

// Add returns v + o.
func (v Vec4[F]) Add(o Vec4[F]) Vec4[F] {
	return Vec4[F]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns v - o.
func (v Vec4[F]) Sub(o Vec4[F]) Vec4[F] {
	return Vec4[F]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Scale returns v * s.
func (v Vec4[F]) Scale(s F) Vec4[F] { return Vec4[F]{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Dot returns the dot product of v and o.
func (v Vec4[F]) Dot(o Vec4[F]) F { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }

// LengthSq returns the squared length of v.
func (v Vec4[F]) LengthSq() F { return v.Dot(v) }

// Length returns the length of v.
func (v Vec4[F]) Length() F { return F(math.Sqrt(float64(v.LengthSq()))) }

// Floor returns the component-wise floor of v.
func (v Vec4[F]) Floor() Vec4[F] { return Vec4[F]{floor(v.X), floor(v.Y), floor(v.Z), floor(v.W)} }

// Fract returns v - floor(v); every component lies in [0, 1).
func (v Vec4[F]) Fract() Vec4[F] { return v.Sub(v.Floor()) }

// Array returns the components in axis order.
func (v Vec4[F]) Array() [4]F { return [4]F{v.X, v.Y, v.Z, v.W} }

// Add returns v + o with wrap-around on overflow.
func (v UVec2[U]) Add(o UVec2[U]) UVec2[U] { return UVec2[U]{v.X + o.X, v.Y + o.Y} }

// Array returns the components in axis order.
func (v UVec2[U]) Array() [2]U { return [2]U{v.X, v.Y} }

// Add returns v + o with wrap-around on overflow.
func (v UVec3[U]) Add(o UVec3[U]) UVec3[U] { return UVec3[U]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Array returns the components in axis order.
func (v UVec3[U]) Array() [3]U { return [3]U{v.X, v.Y, v.Z} }

// Add returns v + o with wrap-around on overflow.
func (v UVec4[U]) Add(o UVec4[U]) UVec4[U] {
	return UVec4[U]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Array returns the components in axis order.
func (v UVec4[U]) Array() [4]U { return [4]U{v.X, v.Y, v.Z, v.W} }
