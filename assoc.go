package gonoise

// Seeded pairs a value with the seed it should be (or was) generated under.
// Carrying the seed alongside lets later stages derive further randomness
// without threading a second channel through the pipeline.
type Seeded[T any] struct {
	Seed  uint32
	Value T
}

// NewSeeded pairs value with seed.
func NewSeeded[T any](seed uint32, value T) Seeded[T] {
	return Seeded[T]{Seed: seed, Value: value}
}

// SeedOf extracts the carried seed. Usable as a Conv.
func SeedOf[T any](s Seeded[T]) uint32 { return s.Seed }

// ValueOf extracts the carried value. Usable as a Conv.
func ValueOf[T any](s Seeded[T]) T { return s.Value }

// MapSeeded lifts an op over the value of a Seeded, leaving the seed
// untouched.
func MapSeeded[A, B any](op Op[A, B]) Op[Seeded[A], Seeded[B]] {
	return OpFunc[Seeded[A], Seeded[B]](func(in Seeded[A]) Seeded[B] {
		return Seeded[B]{Seed: in.Seed, Value: op.Apply(in.Value)}
	})
}

// Seedable is implemented by values that can derive a copy under a new
// seed.
type Seedable[T any] interface {
	Reseed(seed uint32) T
}

// Seeding consumes a carried seed by reseeding the value with it.
func Seeding[T Seedable[T]]() Op[Seeded[T], T] {
	return OpFunc[Seeded[T], T](func(in Seeded[T]) T {
		return in.Value.Reseed(in.Seed)
	})
}

// Associated pairs a value with metadata that rides along the pipeline
// without being transformed, such as the position a sample was taken at.
type Associated[T, M any] struct {
	Value T
	Meta  M
}

// NewAssociated pairs value with meta.
func NewAssociated[T, M any](value T, meta M) Associated[T, M] {
	return Associated[T, M]{Value: value, Meta: meta}
}

// MetaOf extracts the carried metadata. Usable as a Conv.
func MetaOf[T, M any](a Associated[T, M]) M { return a.Meta }

// MapValue lifts an op over the value of an Associated, leaving the
// metadata untouched.
func MapValue[A, B, M any](op Op[A, B]) Op[Associated[A, M], Associated[B, M]] {
	return OpFunc[Associated[A, M], Associated[B, M]](func(in Associated[A, M]) Associated[B, M] {
		return Associated[B, M]{Value: op.Apply(in.Value), Meta: in.Meta}
	})
}

// MapMeta lifts an op over the metadata of an Associated, leaving the value
// untouched.
func MapMeta[T, M, N any](op Op[M, N]) Op[Associated[T, M], Associated[T, N]] {
	return OpFunc[Associated[T, M], Associated[T, N]](func(in Associated[T, M]) Associated[T, N] {
		return Associated[T, N]{Value: in.Value, Meta: op.Apply(in.Meta)}
	})
}
