// Package fbm implements fractal layering: the same noise sampled at
// progressively finer periods and smaller weights, summed into one value.
//
// Octave construction runs as a two-phase protocol so that weights can be
// normalized without knowing the octave count up front. Settings advance
// through Progress as octaves are taken; each Octave reports its weight back
// through PostConstruction; Finalize then divides every octave's weight by
// the running total.
package fbm

// Settings carries the per-octave state of a fractal stack. Period and
// Weight describe the next octave to be constructed; the scale factors
// advance them between octaves.
type Settings struct {
	// Period is the feature size of the next octave.
	Period float32
	// Weight is the unnormalized contribution of the next octave.
	Weight float32
	// PeriodScale multiplies Period between octaves. A value of 0.5
	// doubles the frequency every octave.
	PeriodScale float32
	// WeightScale multiplies Weight between octaves. Often called
	// persistence.
	WeightScale float32

	totalWeight float32
}

// DefaultSettings is a conventional starting point: each octave at half the
// period and half the weight of the one before.
func DefaultSettings(period float32) Settings {
	return Settings{
		Period:      period,
		Weight:      1,
		PeriodScale: 0.5,
		WeightScale: 0.5,
	}
}

// Progress advances to the next octave's period and weight.
func (s *Settings) Progress() {
	s.Period *= s.PeriodScale
	s.Weight *= s.WeightScale
}

// NewOctave snapshots the current period and weight into an octave and
// registers its contribution. The caller advances s with Progress between
// octaves.
func (s *Settings) NewOctave() Octave {
	o := Octave{Period: s.Period, weight: s.Weight}
	o.PostConstruction(s)
	return o
}

// Finalize normalizes every octave's weight so the contributions sum to one.
// With no recorded octaves the contributions are left untouched.
func (s *Settings) Finalize(octaves []Octave) []Contribution {
	out := make([]Contribution, len(octaves))
	for i, o := range octaves {
		w := o.weight
		if s.totalWeight > 0 {
			w /= s.totalWeight
		}
		out[i] = Contribution{Period: o.Period, Weight: w}
	}
	return out
}

// Octave is one layer of a fractal stack before normalization.
type Octave struct {
	// Period is the feature size this octave samples at.
	Period float32

	weight float32
}

// PostConstruction tallies this octave's weight into the settings' running
// total. NewOctave calls it automatically; call it directly only when
// building octaves by hand.
func (o Octave) PostConstruction(s *Settings) {
	s.totalWeight += o.weight
}

// Contribution is one layer of a finalized fractal stack. Weights across a
// stack sum to one, so the combined sample stays in the source range.
type Contribution struct {
	Period float32
	Weight float32
}

// Plan builds a normalized stack of n octaves from s in one call.
func Plan(s Settings, n int) []Contribution {
	octaves := make([]Octave, 0, n)
	for i := 0; i < n; i++ {
		octaves = append(octaves, s.NewOctave())
		s.Progress()
	}
	return s.Finalize(octaves)
}

// Sum accumulates octave samples as a weighted sum. The zero value is ready
// to use.
type Sum struct {
	total float32
}

// Add folds in one octave's raw sample.
func (a *Sum) Add(c Contribution, sample float32) {
	a.total += sample * c.Weight
}

// Finish returns the combined value.
func (a *Sum) Finish() float32 { return a.total }

// Product accumulates octave samples multiplicatively: each octave scales
// the running product by 1 + weight*sample, and Finish re-centers the result
// at zero. Useful for ridged or turbulent composites where octaves should
// modulate rather than add.
type Product struct {
	total float32
	init  bool
}

// Add folds in one octave's raw sample.
func (a *Product) Add(c Contribution, sample float32) {
	if !a.init {
		a.total = 1
		a.init = true
	}
	a.total *= 1 + sample*c.Weight
}

// Finish returns the combined value.
func (a *Product) Finish() float32 {
	if !a.init {
		return 0
	}
	return a.total - 1
}
