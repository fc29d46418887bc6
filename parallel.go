package gonoise

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/gonoise/vek"
)

// ParallelApply runs op over every element of in, at most workers at a
// time, and returns the outputs in input order. Ops are pure, so chunks can
// run on any goroutine; the context cancels remaining chunks early.
func ParallelApply[I, O any](ctx context.Context, op Op[I, O], in []I, workers int) ([]O, error) {
	if workers <= 0 {
		return nil, ErrInvalidWorkers
	}

	out := make([]O, len(in))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunk := (len(in) + workers - 1) / workers
	if chunk == 0 {
		chunk = 1
	}

	for start := 0; start < len(in); start += chunk {
		end := start + chunk
		if end > len(in) {
			end = len(in)
		}

		start := start
		g.Go(func() error {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				out[i] = op.Apply(in[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// SampleRegion samples a width x height region of s concurrently into a
// row-major buffer. Pixel (px, py) is sampled at origin + (px, py)*step.
func SampleRegion(ctx context.Context, s Sampler2, origin vek.Vec2[float32], step float32, width, height, workers int) ([]float32, error) {
	if workers <= 0 {
		return nil, ErrInvalidWorkers
	}

	out := make([]float32, width*height)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for py := 0; py < height; py++ {
		py := py
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			y := origin.Y + float32(py)*step
			row := out[py*width:]
			for px := 0; px < width; px++ {
				row[px] = s.Sample2(origin.X+float32(px)*step, y)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
