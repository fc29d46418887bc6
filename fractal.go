package gonoise

import (
	"github.com/hupe1980/gonoise/fbm"
	"github.com/hupe1980/gonoise/norm"
)

// octaveSampler is a noise source that can serve as a fractal layer.
type octaveSampler interface {
	Sampler2
	Sampler3
}

// fractalLayer is one octave: a sampler already scaled to its period, plus
// its normalized weight.
type fractalLayer struct {
	sampler octaveSampler
	weight  float32
}

// FractalNoise layers the same base noise at progressively finer periods
// and smaller weights. Weights are normalized at construction so the
// combined sample stays in [0, 1).
type FractalNoise struct {
	layers  []fractalLayer
	product bool
}

// Sample2 implements Sampler2.
func (n *FractalNoise) Sample2(x, y float32) float32 {
	return n.accumulate(func(l fractalLayer) float32 {
		return l.sampler.Sample2(x, y)
	})
}

// Sample3 implements Sampler3.
func (n *FractalNoise) Sample3(x, y, z float32) float32 {
	return n.accumulate(func(l fractalLayer) float32 {
		return l.sampler.Sample3(x, y, z)
	})
}

func (n *FractalNoise) accumulate(sample func(fractalLayer) float32) float32 {
	if n.product {
		var acc fbm.Product
		for _, l := range n.layers {
			acc.Add(fbm.Contribution{Weight: l.weight}, sample(l))
		}
		return norm.UNormClamped(acc.Finish()).Float32()
	}

	var acc fbm.Sum
	for _, l := range n.layers {
		acc.Add(fbm.Contribution{Weight: l.weight}, sample(l))
	}
	return norm.UNormClamped(acc.Finish()).Float32()
}
