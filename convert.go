package gonoise

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/gonoise/norm"
)

// Conv converts between the value types of adjacent pipeline stages.
type Conv[A, B any] func(A) B

// Via2 composes two conversions into one.
func Via2[A, B, C any](ab Conv[A, B], bc Conv[B, C]) Conv[A, C] {
	return func(a A) C { return bc(ab(a)) }
}

// Via3 composes three conversions into one.
func Via3[A, B, C, D any](ab Conv[A, B], bc Conv[B, C], cd Conv[C, D]) Conv[A, D] {
	return Via2(Via2(ab, bc), cd)
}

// Via4 composes four conversions into one.
func Via4[A, B, C, D, E any](ab Conv[A, B], bc Conv[B, C], cd Conv[C, D], de Conv[D, E]) Conv[A, E] {
	return Via2(Via3(ab, bc, cd), de)
}

// Via5 composes five conversions into one.
func Via5[A, B, C, D, E, F any](ab Conv[A, B], bc Conv[B, C], cd Conv[C, D], de Conv[D, E], ef Conv[E, F]) Conv[A, F] {
	return Via2(Via4(ab, bc, cd, de), ef)
}

// Via6 composes six conversions into one.
func Via6[A, B, C, D, E, F, G any](ab Conv[A, B], bc Conv[B, C], cd Conv[C, D], de Conv[D, E], ef Conv[E, F], fg Conv[F, G]) Conv[A, G] {
	return Via2(Via5(ab, bc, cd, de, ef), fg)
}

// Via7 composes seven conversions into one.
func Via7[A, B, C, D, E, F, G, H any](ab Conv[A, B], bc Conv[B, C], cd Conv[C, D], de Conv[D, E], ef Conv[E, F], fg Conv[F, G], gh Conv[G, H]) Conv[A, H] {
	return Via2(Via6(ab, bc, cd, de, ef, fg), gh)
}

// Adapter wraps an op whose input type differs from the pipeline's by
// converting on the way in and out.
func Adapter[I, M1, M2, O any](pre Conv[I, M1], op Op[M1, M2], post Conv[M2, O]) Op[I, O] {
	return OpFunc[I, O](func(in I) O {
		return post(op.Apply(pre(in)))
	})
}

// AdaptIn wraps an op by converting only its input.
func AdaptIn[I, M, O any](pre Conv[I, M], op Op[M, O]) Op[I, O] {
	return OpFunc[I, O](func(in I) O {
		return op.Apply(pre(in))
	})
}

// AdaptOut wraps an op by converting only its output.
func AdaptOut[I, M, O any](op Op[I, M], post Conv[M, O]) Op[I, O] {
	return OpFunc[I, O](func(in I) O {
		return post(op.Apply(in))
	})
}

// ConversionRegistry records which conversion applies between each pair of
// value types. Registration fails as soon as a second conversion claims an
// already-claimed pair, so ambiguity surfaces when a pipeline is built, not
// when it is sampled.
type ConversionRegistry struct {
	convs map[convKey]any
}

type convKey struct {
	from reflect.Type
	to   reflect.Type
}

// NewConversionRegistry creates an empty registry.
func NewConversionRegistry() *ConversionRegistry {
	return &ConversionRegistry{convs: make(map[convKey]any)}
}

// RegisterConversion records c as the conversion from A to B.
func RegisterConversion[A, B any](r *ConversionRegistry, c Conv[A, B]) error {
	key := convKey{
		from: reflect.TypeOf((*A)(nil)).Elem(),
		to:   reflect.TypeOf((*B)(nil)).Elem(),
	}
	if _, ok := r.convs[key]; ok {
		return &ErrAmbiguousConversion{From: key.from.String(), To: key.to.String()}
	}
	r.convs[key] = c
	return nil
}

// MustRegisterConversion records c, panicking on ambiguity. Intended for
// registry construction at package init time.
func MustRegisterConversion[A, B any](r *ConversionRegistry, c Conv[A, B]) {
	if err := RegisterConversion(r, c); err != nil {
		panic(err)
	}
}

// LookupConversion returns the registered conversion from A to B.
func LookupConversion[A, B any](r *ConversionRegistry) (Conv[A, B], error) {
	key := convKey{
		from: reflect.TypeOf((*A)(nil)).Elem(),
		to:   reflect.TypeOf((*B)(nil)).Elem(),
	}
	c, ok := r.convs[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s to %s", ErrNoConversion, key.from, key.to)
	}
	return c.(Conv[A, B]), nil
}

// DefaultConversions builds a registry preloaded with the conversions
// between the normalized scalar types and float32.
func DefaultConversions() *ConversionRegistry {
	r := NewConversionRegistry()
	MustRegisterConversion(r, Conv[norm.SNorm, norm.UNorm](norm.SNorm.MapToUNorm))
	MustRegisterConversion(r, Conv[norm.UNorm, norm.SNorm](norm.UNorm.MapToSNorm))
	MustRegisterConversion(r, Conv[norm.SNorm, float32](norm.SNorm.Float32))
	MustRegisterConversion(r, Conv[norm.UNorm, float32](norm.UNorm.Float32))
	MustRegisterConversion(r, Conv[float32, norm.SNorm](norm.SNormClamped))
	MustRegisterConversion(r, Conv[float32, norm.UNorm](norm.UNormClamped))
	MustRegisterConversion(r, Conv[uint32, norm.SNorm](norm.SNormFromBits))
	MustRegisterConversion(r, Conv[uint32, norm.UNorm](norm.UNormFromBits))
	return r
}
