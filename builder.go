// Package gonoise provides composable procedural noise generation.
//
// This file implements sampler-specific fluent builder APIs for creating and
// configuring noise samplers. Builders are immutable - each method returns a
// new builder with the updated configuration.
package gonoise

import (
	"github.com/hupe1980/gonoise/cell"
	"github.com/hupe1980/gonoise/fbm"
	"github.com/hupe1980/gonoise/grid"
	"github.com/hupe1980/gonoise/mix"
	"github.com/hupe1980/gonoise/white"
)

// =============================================================================
// Value Noise Builder (Immutable)
// =============================================================================

// Value creates a new value noise builder with the specified seed.
// Value noise interpolates per-cell random values, producing smooth blotchy
// patterns.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	n, err := gonoise.Value(42).
//	    Period(16).
//	    Quintic().
//	    Build()
func Value(seed uint32) ValueBuilder {
	return ValueBuilder{
		seed:   seed,
		period: 1,
		curve:  mix.Cubic[float32]{},
	}
}

// ValueBuilder is an immutable fluent builder for value noise samplers.
// Each method returns a new builder with the updated configuration.
type ValueBuilder struct {
	seed   uint32
	period float32
	curve  mix.Curve[float32]
	logger *Logger
}

// Period sets the feature size in input units.
// Default: 1.
func (b ValueBuilder) Period(p float32) ValueBuilder {
	b.period = p
	return b
}

// Linear disables easing between cells. Cell boundaries stay visible.
func (b ValueBuilder) Linear() ValueBuilder {
	b.curve = mix.Linear[float32]{}
	return b
}

// Cubic sets smoothstep easing between cells.
// Default.
func (b ValueBuilder) Cubic() ValueBuilder {
	b.curve = mix.Cubic[float32]{}
	return b
}

// Quintic sets smootherstep easing, keeping derivatives continuous across
// cells.
func (b ValueBuilder) Quintic() ValueBuilder {
	b.curve = mix.Quintic[float32]{}
	return b
}

// Logger sets the structured logger for construction tracing.
func (b ValueBuilder) Logger(l *Logger) ValueBuilder {
	b.logger = l
	return b
}

// Build creates the value noise sampler.
func (b ValueBuilder) Build() (*ValueNoise, error) {
	if b.period <= 0 {
		logBuild(b.logger, "value", ErrInvalidPeriod)
		return nil, ErrInvalidPeriod
	}

	n := &ValueNoise{
		hash:  white.New32(b.seed),
		grid2: grid.NewGrid2[float32, uint32](b.period),
		grid3: grid.NewGrid3[float32, uint32](b.period),
		curve: b.curve,
	}
	logBuild(b.logger, "value", nil)
	return n, nil
}

// MustBuild creates the sampler, panicking on error.
func (b ValueBuilder) MustBuild() *ValueNoise {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

// =============================================================================
// Perlin Noise Builder (Immutable)
// =============================================================================

// Perlin creates a new gradient noise builder with the specified seed.
// Gradient noise is smoother than value noise at the same cell size and has
// zero mean.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	n, err := gonoise.Perlin(42).
//	    Period(32).
//	    Build()
func Perlin(seed uint32) PerlinBuilder {
	return PerlinBuilder{
		seed:   seed,
		period: 1,
		curve:  mix.Quintic[float32]{},
	}
}

// PerlinBuilder is an immutable fluent builder for gradient noise samplers.
// Each method returns a new builder with the updated configuration.
type PerlinBuilder struct {
	seed   uint32
	period float32
	curve  mix.Curve[float32]
	logger *Logger
}

// Period sets the feature size in input units.
// Default: 1.
func (b PerlinBuilder) Period(p float32) PerlinBuilder {
	b.period = p
	return b
}

// Cubic sets smoothstep easing. Cheaper than quintic but gradient
// discontinuities can show at cell boundaries.
func (b PerlinBuilder) Cubic() PerlinBuilder {
	b.curve = mix.Cubic[float32]{}
	return b
}

// Quintic sets smootherstep easing.
// Default.
func (b PerlinBuilder) Quintic() PerlinBuilder {
	b.curve = mix.Quintic[float32]{}
	return b
}

// Logger sets the structured logger for construction tracing.
func (b PerlinBuilder) Logger(l *Logger) PerlinBuilder {
	b.logger = l
	return b
}

// Build creates the gradient noise sampler.
func (b PerlinBuilder) Build() (*PerlinNoise, error) {
	if b.period <= 0 {
		logBuild(b.logger, "perlin", ErrInvalidPeriod)
		return nil, ErrInvalidPeriod
	}

	n := &PerlinNoise{
		hash:  white.New32(b.seed),
		grid2: grid.NewGrid2[float32, uint32](b.period),
		grid3: grid.NewGrid3[float32, uint32](b.period),
		curve: b.curve,
	}
	logBuild(b.logger, "perlin", nil)
	return n, nil
}

// MustBuild creates the sampler, panicking on error.
func (b PerlinBuilder) MustBuild() *PerlinNoise {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

// =============================================================================
// Worley Noise Builder (Immutable)
// =============================================================================

// Worley creates a new Worley (distance field) noise builder with the
// specified seed.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	n, err := gonoise.Worley(42).
//	    Period(24).
//	    Nudge(0.8).
//	    Manhattan().
//	    Difference().
//	    Build()
func Worley(seed uint32) WorleyBuilder {
	return WorleyBuilder{
		seed:       seed,
		period:     1,
		nudgeRange: 1,
		metric:     cell.Euclidean,
		mode:       cell.F1,
	}
}

// WorleyBuilder is an immutable fluent builder for Worley noise samplers.
// Each method returns a new builder with the updated configuration.
type WorleyBuilder struct {
	seed       uint32
	period     float32
	nudgeRange float32
	metric     cell.Metric
	mode       cell.WorleyMode
	logger     *Logger
}

// Period sets the feature size in input units.
// Default: 1.
func (b WorleyBuilder) Period(p float32) WorleyBuilder {
	b.period = p
	return b
}

// Nudge sets how far feature points may stray from their cell centers, in
// cell units. Must be in [0, 1]; 0 produces a perfectly regular lattice.
// Default: 1.
func (b WorleyBuilder) Nudge(r float32) WorleyBuilder {
	b.nudgeRange = r
	return b
}

// Euclidean sets straight-line distance. Produces round cell shapes.
// Default.
func (b WorleyBuilder) Euclidean() WorleyBuilder {
	b.metric = cell.Euclidean
	return b
}

// Manhattan sets per-axis summed distance. Produces diamond cell shapes.
func (b WorleyBuilder) Manhattan() WorleyBuilder {
	b.metric = cell.Manhattan
	return b
}

// Chebyshev sets largest per-axis distance. Produces square cell shapes.
func (b WorleyBuilder) Chebyshev() WorleyBuilder {
	b.metric = cell.Chebyshev
	return b
}

// F1 samples the distance to the nearest feature point.
// Default.
func (b WorleyBuilder) F1() WorleyBuilder {
	b.mode = cell.F1
	return b
}

// Difference samples F2 - F1, highlighting cell boundaries.
func (b WorleyBuilder) Difference() WorleyBuilder {
	b.mode = cell.Difference
	return b
}

// Average samples (F1 + F2) / 2.
func (b WorleyBuilder) Average() WorleyBuilder {
	b.mode = cell.Average
	return b
}

// Product samples F1 * F2.
func (b WorleyBuilder) Product() WorleyBuilder {
	b.mode = cell.ProductMode
	return b
}

// Ratio samples F1 / F2.
func (b WorleyBuilder) Ratio() WorleyBuilder {
	b.mode = cell.Ratio
	return b
}

// Logger sets the structured logger for construction tracing.
func (b WorleyBuilder) Logger(l *Logger) WorleyBuilder {
	b.logger = l
	return b
}

// Build creates the Worley noise sampler.
func (b WorleyBuilder) Build() (*WorleyNoise, error) {
	if b.period <= 0 {
		logBuild(b.logger, "worley", ErrInvalidPeriod)
		return nil, ErrInvalidPeriod
	}
	if b.nudgeRange < 0 || b.nudgeRange > 1 {
		err := &ErrInvalidNudge{Range: b.nudgeRange}
		logBuild(b.logger, "worley", err)
		return nil, err
	}

	n := &WorleyNoise{
		hash:   white.New32(b.seed),
		grid2:  grid.NewGrid2[float32, uint32](b.period),
		grid3:  grid.NewGrid3[float32, uint32](b.period),
		nudge:  cell.NewNudge(b.nudgeRange),
		metric: b.metric,
		mode:   b.mode,
	}
	logBuild(b.logger, "worley", nil)
	return n, nil
}

// MustBuild creates the sampler, panicking on error.
func (b WorleyBuilder) MustBuild() *WorleyNoise {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

// =============================================================================
// Cellular Noise Builder (Immutable)
// =============================================================================

// Cellular creates a new cellular noise builder with the specified seed.
// Cellular noise assigns each cell a random value and merges the values of
// nearby feature points at each sample.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	n, err := gonoise.Cellular(42).
//	    Period(24).
//	    Weighted(0.3).
//	    Build()
func Cellular(seed uint32) CellularBuilder {
	return CellularBuilder{
		seed:       seed,
		period:     1,
		nudgeRange: 1,
		metric:     cell.Euclidean,
		merger:     cell.Nearest[float32]{},
	}
}

// CellularBuilder is an immutable fluent builder for cellular noise
// samplers. Each method returns a new builder with the updated
// configuration.
type CellularBuilder struct {
	seed       uint32
	period     float32
	nudgeRange float32
	metric     cell.Metric
	merger     cell.Merger[float32]
	logger     *Logger
}

// Period sets the feature size in input units.
// Default: 1.
func (b CellularBuilder) Period(p float32) CellularBuilder {
	b.period = p
	return b
}

// Nudge sets how far feature points may stray from their cell centers, in
// cell units. Must be in [0, 1].
// Default: 1.
func (b CellularBuilder) Nudge(r float32) CellularBuilder {
	b.nudgeRange = r
	return b
}

// Euclidean sets straight-line distance.
// Default.
func (b CellularBuilder) Euclidean() CellularBuilder {
	b.metric = cell.Euclidean
	return b
}

// Manhattan sets per-axis summed distance.
func (b CellularBuilder) Manhattan() CellularBuilder {
	b.metric = cell.Manhattan
	return b
}

// Chebyshev sets largest per-axis distance.
func (b CellularBuilder) Chebyshev() CellularBuilder {
	b.metric = cell.Chebyshev
	return b
}

// Nearest picks the value of the closest feature point, producing hard cell
// edges.
// Default.
func (b CellularBuilder) Nearest() CellularBuilder {
	b.merger = cell.Nearest[float32]{}
	return b
}

// Weighted blends all nearby feature values with distance decay, producing
// smooth cell transitions. halfLife is the distance, in cell units, at
// which a feature's influence halves.
func (b CellularBuilder) Weighted(halfLife float32) CellularBuilder {
	b.merger = cell.Weighted{HalfLife: halfLife}
	return b
}

// Logger sets the structured logger for construction tracing.
func (b CellularBuilder) Logger(l *Logger) CellularBuilder {
	b.logger = l
	return b
}

// Build creates the cellular noise sampler.
func (b CellularBuilder) Build() (*CellularNoise, error) {
	if b.period <= 0 {
		logBuild(b.logger, "cellular", ErrInvalidPeriod)
		return nil, ErrInvalidPeriod
	}
	if b.nudgeRange < 0 || b.nudgeRange > 1 {
		err := &ErrInvalidNudge{Range: b.nudgeRange}
		logBuild(b.logger, "cellular", err)
		return nil, err
	}

	n := &CellularNoise{
		hash:   white.New32(b.seed),
		grid2:  grid.NewGrid2[float32, uint32](b.period),
		grid3:  grid.NewGrid3[float32, uint32](b.period),
		nudge:  cell.NewNudge(b.nudgeRange),
		metric: b.metric,
		merger: b.merger,
	}
	logBuild(b.logger, "cellular", nil)
	return n, nil
}

// MustBuild creates the sampler, panicking on error.
func (b CellularBuilder) MustBuild() *CellularNoise {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

// =============================================================================
// Fractal Noise Builder (Immutable)
// =============================================================================

// FBM creates a new fractal noise builder with the specified seed.
// Fractal noise layers a base noise at progressively finer periods and
// smaller weights; weights are normalized so the result stays in range.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	n, err := gonoise.FBM(42).
//	    Period(64).
//	    Octaves(5).
//	    Persistence(0.5).
//	    PerlinBase().
//	    Build()
func FBM(seed uint32) FBMBuilder {
	return FBMBuilder{
		seed:        seed,
		period:      1,
		octaves:     4,
		weightScale: 0.5,
		periodScale: 0.5,
		base:        fbmBaseValue,
	}
}

type fbmBase int

const (
	fbmBaseValue fbmBase = iota
	fbmBasePerlin
)

// FBMBuilder is an immutable fluent builder for fractal noise samplers.
// Each method returns a new builder with the updated configuration.
type FBMBuilder struct {
	seed        uint32
	period      float32
	octaves     int
	weightScale float32
	periodScale float32
	base        fbmBase
	product     bool
	logger      *Logger
}

// Period sets the feature size of the first octave in input units.
// Default: 1.
func (b FBMBuilder) Period(p float32) FBMBuilder {
	b.period = p
	return b
}

// Octaves sets the number of layers.
// Default: 4.
func (b FBMBuilder) Octaves(n int) FBMBuilder {
	b.octaves = n
	return b
}

// Persistence sets the weight ratio between consecutive octaves.
// Default: 0.5.
func (b FBMBuilder) Persistence(w float32) FBMBuilder {
	b.weightScale = w
	return b
}

// Lacunarity sets the period ratio between consecutive octaves. A value of
// 0.5 doubles the frequency every octave.
// Default: 0.5.
func (b FBMBuilder) Lacunarity(p float32) FBMBuilder {
	b.periodScale = p
	return b
}

// ValueBase layers value noise.
// Default.
func (b FBMBuilder) ValueBase() FBMBuilder {
	b.base = fbmBaseValue
	return b
}

// PerlinBase layers gradient noise.
func (b FBMBuilder) PerlinBase() FBMBuilder {
	b.base = fbmBasePerlin
	return b
}

// Multiplicative combines octaves as a product instead of a weighted sum,
// so finer octaves modulate coarser ones.
func (b FBMBuilder) Multiplicative() FBMBuilder {
	b.product = true
	return b
}

// Logger sets the structured logger for construction tracing.
func (b FBMBuilder) Logger(l *Logger) FBMBuilder {
	b.logger = l
	return b
}

// Build creates the fractal noise sampler.
func (b FBMBuilder) Build() (*FractalNoise, error) {
	if b.period <= 0 {
		logBuild(b.logger, "fbm", ErrInvalidPeriod)
		return nil, ErrInvalidPeriod
	}
	if b.octaves <= 0 {
		logBuild(b.logger, "fbm", ErrInvalidOctaves)
		return nil, ErrInvalidOctaves
	}

	settings := fbm.Settings{
		Period:      b.period,
		Weight:      1,
		PeriodScale: b.periodScale,
		WeightScale: b.weightScale,
	}

	seeds := white.New32(b.seed)
	layers := make([]fractalLayer, 0, b.octaves)
	for i, c := range fbm.Plan(settings, b.octaves) {
		octaveSeed := seeds.Hash(uint32(i))

		var s octaveSampler
		var err error
		switch b.base {
		case fbmBasePerlin:
			s, err = Perlin(octaveSeed).Period(c.Period).Build()
		default:
			s, err = Value(octaveSeed).Period(c.Period).Build()
		}
		if err != nil {
			logBuild(b.logger, "fbm", err)
			return nil, err
		}

		layers = append(layers, fractalLayer{sampler: s, weight: c.Weight})
	}

	n := &FractalNoise{layers: layers, product: b.product}
	logBuild(b.logger, "fbm", nil)
	return n, nil
}

// MustBuild creates the sampler, panicking on error.
func (b FBMBuilder) MustBuild() *FractalNoise {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

// =============================================================================
// White Noise Builder (Immutable)
// =============================================================================

// White creates a new white noise builder with the specified seed.
// White noise has no spatial correlation at all.
//
// Example:
//
//	n, err := gonoise.White(42).Build()
func White(seed uint32) WhiteBuilder {
	return WhiteBuilder{
		seed:   seed,
		period: 1,
	}
}

// WhiteBuilder is an immutable fluent builder for white noise samplers.
// Each method returns a new builder with the updated configuration.
type WhiteBuilder struct {
	seed   uint32
	period float32
	logger *Logger
}

// Period sets the cell size in input units.
// Default: 1.
func (b WhiteBuilder) Period(p float32) WhiteBuilder {
	b.period = p
	return b
}

// Logger sets the structured logger for construction tracing.
func (b WhiteBuilder) Logger(l *Logger) WhiteBuilder {
	b.logger = l
	return b
}

// Build creates the white noise sampler.
func (b WhiteBuilder) Build() (*WhiteNoise, error) {
	if b.period <= 0 {
		logBuild(b.logger, "white", ErrInvalidPeriod)
		return nil, ErrInvalidPeriod
	}

	n := &WhiteNoise{
		hash:  white.New32(b.seed),
		grid2: grid.NewGrid2[float32, uint32](b.period),
		grid3: grid.NewGrid3[float32, uint32](b.period),
	}
	logBuild(b.logger, "white", nil)
	return n, nil
}

// MustBuild creates the sampler, panicking on error.
func (b WhiteBuilder) MustBuild() *WhiteNoise {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

func logBuild(l *Logger, kind string, err error) {
	if l == nil {
		return
	}
	l.LogBuild(kind, err)
}
