// Command noiseview renders a noise sampler to a PNG image, mapping values
// through a color gradient. Useful for eyeballing how a set of parameters
// behaves.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"runtime"

	"github.com/mazznoer/colorgrad"

	"github.com/hupe1980/gonoise"
	"github.com/hupe1980/gonoise/interop"
	"github.com/hupe1980/gonoise/vek"
)

func main() {
	var (
		kind    = flag.String("kind", "fbm", "sampler kind: value, perlin, worley, cellular, fbm, white, opensimplex, goperlin")
		seed    = flag.Uint("seed", 42, "noise seed")
		period  = flag.Float64("period", 64, "feature size in pixels")
		octaves = flag.Int("octaves", 5, "octave count (fbm only)")
		size    = flag.Int("size", 512, "image width and height in pixels")
		workers = flag.Int("workers", runtime.NumCPU(), "parallel sampling workers")
		out     = flag.String("out", "noise.png", "output PNG path")
		preset  = flag.String("gradient", "viridis", "color gradient: viridis, rainbow, terrain, gray")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *kind, uint32(*seed), float32(*period), *octaves, *size, *workers, *out, *preset); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, kind string, seed uint32, period float32, octaves, size, workers int, out, preset string) error {
	sampler, err := buildSampler(kind, seed, period, octaves)
	if err != nil {
		return fmt.Errorf("build sampler: %w", err)
	}

	grad, err := buildGradient(preset)
	if err != nil {
		return fmt.Errorf("build gradient: %w", err)
	}

	logger.Info("sampling",
		"kind", kind,
		"seed", seed,
		"period", period,
		"size", size,
		"workers", workers,
	)

	vals, err := gonoise.SampleRegion(context.Background(), sampler, vek.Vec2[float32]{}, 1, size, size, workers)
	if err != nil {
		return fmt.Errorf("sample region: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, grad.At(float64(vals[y*size+x])))
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	logger.Info("image written", "path", out)
	return nil
}

func buildSampler(kind string, seed uint32, period float32, octaves int) (gonoise.Sampler2, error) {
	switch kind {
	case "value":
		return gonoise.Value(seed).Period(period).Quintic().Build()
	case "perlin":
		return gonoise.Perlin(seed).Period(period).Build()
	case "worley":
		return gonoise.Worley(seed).Period(period).Build()
	case "cellular":
		return gonoise.Cellular(seed).Period(period).Weighted(0.2).Build()
	case "fbm":
		return gonoise.FBM(seed).Period(period).Octaves(octaves).PerlinBase().Build()
	case "white":
		return gonoise.White(seed).Period(period).Build()
	case "opensimplex":
		return interop.NewOpenSimplex(int64(seed), float64(period)), nil
	case "goperlin":
		return interop.NewGoPerlin(2, 2, int32(octaves), int64(seed), float64(period)), nil
	default:
		return nil, fmt.Errorf("unknown sampler kind %q", kind)
	}
}

func buildGradient(preset string) (colorgrad.Gradient, error) {
	switch preset {
	case "viridis":
		return colorgrad.Viridis(), nil
	case "rainbow":
		return colorgrad.Rainbow(), nil
	case "terrain":
		return colorgrad.NewGradient().
			HtmlColors("#000080", "#0080ff", "#f0e68c", "#00a000", "#808080", "#ffffff").
			Build()
	case "gray":
		return colorgrad.NewGradient().
			HtmlColors("#000000", "#ffffff").
			Build()
	default:
		return colorgrad.Gradient{}, fmt.Errorf("unknown gradient %q", preset)
	}
}
