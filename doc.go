// Package gonoise provides composable procedural noise generation.
//
// Noise is modeled as a pipeline of operations: each Op transforms an input
// into an output, and Chain glues ops together with automatic type
// conversion between stages. The building blocks live in subpackages (white
// for hashing, norm for normalized scalars, grid for lattice mapping, mix
// for interpolation, cell for cellular noise, fbm for fractal layering);
// this package supplies the composition layer, ready-made samplers, and
// fluent builders.
//
// All sampling is deterministic: the same seed and position always produce
// the same value, with no shared mutable state, so samplers are safe for
// concurrent use.
package gonoise
