package gonoise

// Op is a single noise pipeline stage transforming an input into an output.
// Implementations must be pure: the same input always yields the same
// output, and calls must be safe from multiple goroutines.
type Op[I, O any] interface {
	Apply(in I) O
}

// OpFunc adapts a plain function to an Op.
type OpFunc[I, O any] func(in I) O

// Apply implements Op.
func (f OpFunc[I, O]) Apply(in I) O { return f(in) }

// Identity returns an op that passes its input through unchanged.
func Identity[T any]() Op[T, T] {
	return OpFunc[T, T](func(in T) T { return in })
}

// Chain composes two ops into one, feeding the first's output to the
// second. Chains nest, so pipelines of any length reduce to one Op.
func Chain[I, M, O any](first Op[I, M], second Op[M, O]) Op[I, O] {
	return OpFunc[I, O](func(in I) O {
		return second.Apply(first.Apply(in))
	})
}

// Chain3 composes three ops into one.
func Chain3[I, M1, M2, O any](a Op[I, M1], b Op[M1, M2], c Op[M2, O]) Op[I, O] {
	return Chain(Chain(a, b), c)
}
