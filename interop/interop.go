// Package interop adapts third-party noise implementations to the sampler
// interfaces, so pipelines can mix them freely with the native samplers.
package interop

import (
	perlin "github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// OpenSimplex samples simplex-style gradient noise, which avoids the axial
// artifacts of square-lattice gradient noise.
type OpenSimplex struct {
	noise opensimplex.Noise
	freq  float64
}

// NewOpenSimplex builds a sampler for the given seed with features period
// input units wide.
func NewOpenSimplex(seed int64, period float64) *OpenSimplex {
	if period == 0 {
		period = 1
	}
	return &OpenSimplex{
		noise: opensimplex.NewNormalized(seed),
		freq:  1 / period,
	}
}

// Sample2 returns a value in [0, 1).
func (s *OpenSimplex) Sample2(x, y float32) float32 {
	return float32(s.noise.Eval2(float64(x)*s.freq, float64(y)*s.freq))
}

// Sample3 returns a value in [0, 1).
func (s *OpenSimplex) Sample3(x, y, z float32) float32 {
	return float32(s.noise.Eval3(float64(x)*s.freq, float64(y)*s.freq, float64(z)*s.freq))
}

// GoPerlin samples classic Perlin noise via the go-perlin reference
// implementation, remapped from (-1, 1) onto (0, 1).
type GoPerlin struct {
	noise *perlin.Perlin
	freq  float64
}

// NewGoPerlin builds a sampler. alpha is the weight falloff between
// octaves (typically 2), beta the frequency ratio (typically 2), and n the
// octave count.
func NewGoPerlin(alpha, beta float64, n int32, seed int64, period float64) *GoPerlin {
	if period == 0 {
		period = 1
	}
	return &GoPerlin{
		noise: perlin.NewPerlin(alpha, beta, n, seed),
		freq:  1 / period,
	}
}

// Sample2 returns a value in [0, 1).
func (s *GoPerlin) Sample2(x, y float32) float32 {
	return float32(s.noise.Noise2D(float64(x)*s.freq, float64(y)*s.freq))*0.5 + 0.5
}

// Sample3 returns a value in [0, 1).
func (s *GoPerlin) Sample3(x, y, z float32) float32 {
	return float32(s.noise.Noise3D(float64(x)*s.freq, float64(y)*s.freq, float64(z)*s.freq))*0.5 + 0.5
}
