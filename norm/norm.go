// Package norm provides normalized scalar types: SNorm for the open interval
// (-1, 1) and UNorm for (0, 1).
//
// Every value produced through a safe constructor stores a float32 whose bit
// pattern has its least-significant mantissa bit forced to 1. This keeps the
// value away from exact zero (and the interval endpoints) even when an
// otherwise valid floating operation lands precisely on a boundary, so the
// open-interval guarantee holds bit-exactly. The unchecked constructors skip
// this re-establishment and place the obligation on the caller.
package norm

import "math"

// Interval bounds as exact bit patterns. maxVal is 1 - 2^-24, the largest
// float32 below 1 with its least-significant bit set; minVal is the smallest
// positive normal float32 with its least-significant bit set.
var (
	maxVal = math.Float32frombits(0x3F7FFFFF)
	minVal = math.Float32frombits(0x00800001)
)

// SNorm is a float32 guaranteed to lie in the open interval (-1, 1) and to
// never be exactly zero.
type SNorm struct {
	v float32
}

// UNorm is a float32 guaranteed to lie in the open interval (0, 1).
type UNorm struct {
	v float32
}

// setLSB forces the least-significant bit of the stored pattern on. For any
// finite v with |v| < 1 the result stays strictly inside the same open
// interval, and an exact zero becomes the smallest positive subnormal.
func setLSB(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) | 1)
}

// takeSign transfers the sign bit of sign onto v.
func takeSign(v, sign float32) float32 {
	return math.Float32frombits(math.Float32bits(v) | (math.Float32bits(sign) & (1 << 31)))
}

// SNormFromBitsEntropy derives an arbitrary but valid SNorm from raw hash
// bits. The top 23 bits become the magnitude, bit 8 the sign, and the lowest
// 8 bits are returned unchanged as the leftover-entropy byte: they do not
// influence the value and may be reused by the caller for a second derived
// quantity.
func SNormFromBitsEntropy(b uint32) (SNorm, uint8) {
	entropy := uint8(b)
	// Map the top 23 bits onto [1, 2) and shift down to (0, 1]; the offset
	// 1 - 2^-24 keeps the result strictly positive.
	raw := math.Float32frombits(b>>9|0x3F800000) - maxVal
	rb := math.Float32bits(raw) | (b & (1 << 8) << 23)
	return SNorm{math.Float32frombits(rb | 1)}, entropy
}

// SNormFromBits derives an arbitrary but valid SNorm from raw hash bits,
// discarding the leftover-entropy byte.
func SNormFromBits(b uint32) SNorm {
	s, _ := SNormFromBitsEntropy(b)
	return s
}

// SNormClamped clamps v into a valid SNorm, preserving its sign.
func SNormClamped(v float32) SNorm {
	m := float32(math.Abs(float64(v)))
	if m > maxVal {
		m = maxVal
	} else if m < minVal || m != m {
		m = minVal
	}
	return SNorm{takeSign(setLSB(m), v)}
}

// SNormRolling reduces v into range by dropping its integer part, truncating
// toward zero, so the result keeps the sign of v. Positive inputs an integer
// apart map to the same value; a sign-straddling pair does not.
func SNormRolling(v float32) SNorm {
	f, _ := math.Modf(float64(v))
	return SNorm{setLSB(v - float32(f))}
}

// SNormDecay returns a value that approaches zero as |v| grows, with the sign
// of v. At v == halfLife the magnitude is exactly 0.5.
func SNormDecay(v, halfLife float32) SNorm {
	u := UNormDecay(v, halfLife)
	return SNorm{takeSign(u.v, v)}
}

// UncheckedSNorm wraps v without validation.
//
// The caller must guarantee v lies in (-1, 1), is not zero, and has its
// least-significant bit set. Prefer the safe constructors; this exists only
// for paths where the invariant is already proven.
func UncheckedSNorm(v float32) SNorm { return SNorm{v} }

// Float32 returns the stored value.
func (s SNorm) Float32() float32 { return s.v }

// Bits returns the stored bit pattern.
func (s SNorm) Bits() uint32 { return math.Float32bits(s.v) }

// Inverse returns -s.
func (s SNorm) Inverse() SNorm { return SNorm{-s.v} }

// Scale interprets the value on a new scale by multiplication.
func (s SNorm) Scale(scale float32) float32 { return s.v * scale }

// Remap passes the value through f and clamps the result back into range.
func (s SNorm) Remap(f func(float32) float32) SNorm { return SNormClamped(f(s.v)) }

// MapToUNorm smoothly maps (-1, 1) onto (0, 1) via x*0.5 + 0.5. The transform
// can round exactly onto either endpoint, so the result is clamped back into
// the open interval.
func (s SNorm) MapToUNorm() UNorm { return UNormClamped(s.v*0.5 + 0.5) }

// SplitToUNorm folds the value to its absolute value. The bit pattern is
// unchanged apart from the sign, so the invariant is preserved.
func (s SNorm) SplitToUNorm() UNorm {
	return UNorm{math.Float32frombits(s.Bits() &^ (1 << 31))}
}

// SplitEven creates a sharp mirrored division at 0.
func (s SNorm) SplitEven() SNorm { return s.SplitToUNorm().MapToSNorm() }

// Jump creates sharp discontinuities by scaling and taking the fraction.
func (s SNorm) Jump(jumps float32) SNorm {
	f, _ := math.Modf(float64(s.v * jumps))
	return SNormClamped(s.v*jumps - float32(f))
}

// UNormFromBitsEntropy derives an arbitrary but valid UNorm from raw hash
// bits, returning the leftover-entropy byte alongside. See
// SNormFromBitsEntropy for the bit layout.
func UNormFromBitsEntropy(b uint32) (UNorm, uint8) {
	s, entropy := SNormFromBitsEntropy(b)
	return s.SplitToUNorm(), entropy
}

// UNormFromBits derives an arbitrary but valid UNorm from raw hash bits.
func UNormFromBits(b uint32) UNorm {
	u, _ := UNormFromBitsEntropy(b)
	return u
}

// UNormClamped clamps v into a valid UNorm.
func UNormClamped(v float32) UNorm {
	if v > maxVal {
		v = maxVal
	} else if v < minVal || v != v {
		v = minVal
	}
	return UNorm{setLSB(v)}
}

// UNormRolling reduces v into range as v - floor(v).
func UNormRolling(v float32) UNorm {
	return UNorm{setLSB(v - float32(math.Floor(float64(v))))}
}

// UNormDecay returns halfLife/(|v| + halfLife): monotonically decreasing in
// |v| and exactly 0.5 at v == halfLife.
func UNormDecay(v, halfLife float32) UNorm {
	hl := float32(math.Abs(float64(halfLife)))
	if hl == 0 {
		return UNorm{minVal}
	}
	return UNormClamped(hl / (float32(math.Abs(float64(v))) + hl))
}

// UNormFromU8 maps a byte onto (0, 1) at its bucket center, so FillU8
// recovers it exactly.
func UNormFromU8(v uint8) UNorm {
	return UNormClamped((float32(v) + 0.5) / 256)
}

// UNormFromU16 maps a 16-bit value onto (0, 1) at its bucket center, so
// FillU16 recovers it exactly.
func UNormFromU16(v uint16) UNorm {
	return UNormClamped((float32(v) + 0.5) / 65536)
}

// UncheckedUNorm wraps v without validation.
//
// The caller must guarantee v lies in (0, 1) and has its least-significant
// bit set. Prefer the safe constructors.
func UncheckedUNorm(v float32) UNorm { return UNorm{v} }

// Float32 returns the stored value.
func (u UNorm) Float32() float32 { return u.v }

// Bits returns the stored bit pattern.
func (u UNorm) Bits() uint32 { return math.Float32bits(u.v) }

// Inverse returns 1 - u, re-clamped into range.
func (u UNorm) Inverse() UNorm { return UNormClamped(1 - u.v) }

// Scale interprets the value on a new scale by multiplication.
func (u UNorm) Scale(scale float32) float32 { return u.v * scale }

// Remap passes the value through f and clamps the result back into range.
func (u UNorm) Remap(f func(float32) float32) UNorm { return UNormClamped(f(u.v)) }

// MapToSNorm smoothly maps (0, 1) onto (-1, 1) via x*2 - 1. The transform can
// round exactly onto zero or either endpoint, so the result is clamped back
// into the open interval.
func (u UNorm) MapToSNorm() SNorm { return SNormClamped(u.v*2 - 1) }

// SplitEven creates a sharp mirrored division at 0.5. Inputs near the
// endpoints can round exactly onto 1, so the result is clamped back into the
// open interval.
func (u UNorm) SplitEven() UNorm {
	return UNormClamped(float32(math.Abs(float64(u.v-0.5))) * 2)
}

// Jump creates sharp discontinuities by scaling and taking the fraction.
func (u UNorm) Jump(jumps float32) UNorm {
	f, _ := math.Modf(float64(u.v * jumps))
	return UNormClamped(u.v*jumps - float32(f))
}

// FillU8 quantizes the value onto the full uint8 range.
func (u UNorm) FillU8() uint8 {
	return uint8(u.v * 256)
}

// FillU16 quantizes the value onto the full uint16 range.
func (u UNorm) FillU16() uint16 {
	return uint16(u.v * 65536)
}
