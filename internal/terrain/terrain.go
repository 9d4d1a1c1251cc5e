// Package terrain builds normalized fractal height fields from seeded noise.
package terrain

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chewxy/math32"
	"golang.org/x/sync/errgroup"

	"github.com/lox/terrainnoise/internal/vector"
)

// ErrInvalidArgument is returned for unusable generation parameters. It is
// the same sentinel used by the vector package.
var ErrInvalidArgument = vector.ErrInvalidArgument

const (
	// MinScale replaces any non-positive scale.
	MinScale = float32(0.0001)

	// FlatValue fills every cell of a field whose raw values are all equal.
	FlatValue = float32(0.5)
)

// Params describes one height field.
type Params struct {
	Width       int
	Height      int
	Seed        int64
	Scale       float32
	Octaves     int
	Persistence float32
	Lacunarity  float32
	// Offset shifts the sampled region. A zero Vector means no shift.
	Offset vector.Vector
}

// DefaultParams returns the parameters of the reference 1024x1024 map.
func DefaultParams() Params {
	return Params{
		Width:       1024,
		Height:      1024,
		Seed:        42,
		Scale:       1024,
		Octaves:     5,
		Persistence: 0.5,
		Lacunarity:  2,
		Offset:      vector.New(0, 0),
	}
}

// ProgressFunc receives the percentage of rows completed, 0-100. Calls are
// serialized and never decrease.
type ProgressFunc func(percent int)

type options struct {
	logger   *log.Logger
	workers  int
	progress ProgressFunc
	kernel   Kernel
	sampler  Sampler
}

// Option configures Generate.
type Option func(*options)

// WithLogger sets the logger used for generation events.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithWorkers sets the number of rows evaluated concurrently. Values below
// one fall back to GOMAXPROCS. The result does not depend on this setting.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) { o.progress = fn }
}

// WithKernel selects the noise kernel by name.
func WithKernel(k Kernel) Option {
	return func(o *options) { o.kernel = k }
}

// WithSampler evaluates octaves with s instead of a kernel built from the seed.
func WithSampler(s Sampler) Option {
	return func(o *options) { o.sampler = s }
}

// GenerateNoiseMap builds a width x height field with the OpenSimplex kernel.
func GenerateNoiseMap(width, height int, seed int64, scale float32, octaves int, persistence, lacunarity float32, offset vector.Vector) (Field, error) {
	return Generate(context.Background(), Params{
		Width:       width,
		Height:      height,
		Seed:        seed,
		Scale:       scale,
		Octaves:     octaves,
		Persistence: persistence,
		Lacunarity:  lacunarity,
		Offset:      offset,
	})
}

// Generate evaluates every cell of the field described by p and normalizes
// the result into [0,1]. A field whose raw values are all equal is filled
// with FlatValue.
func Generate(ctx context.Context, p Params, opts ...Option) (Field, error) {
	o := options{
		kernel: KernelOpenSimplex,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	raw, minHeight, maxHeight, err := accumulate(ctx, p, &o)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("Raw height range", "min", minHeight, "max", maxHeight)
	if math32.IsInf(minHeight-maxHeight, 0) {
		return nil, fmt.Errorf("%w: height range [%g, %g] overflows float32", ErrInvalidArgument, minHeight, maxHeight)
	}

	if err := normalize(ctx, raw, minHeight, maxHeight, o.workerCount(p.Height)); err != nil {
		return nil, err
	}

	if o.logger.GetLevel() <= log.DebugLevel {
		lo, hi := raw.Bounds()
		o.logger.Debug("Normalized", "min", lo, "max", hi)
	}
	return raw, nil
}

func (o *options) workerCount(rows int) int {
	n := o.workers
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > rows {
		n = rows
	}
	return n
}

// accumulate fills a field with the amplitude-weighted octave sums and
// returns the global minimum and maximum sum.
func accumulate(ctx context.Context, p Params, o *options) (Field, float32, float32, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, 0, 0, fmt.Errorf("%w: field size %dx%d", ErrInvalidArgument, p.Width, p.Height)
	}

	offset := p.Offset
	if offset.Dimension() == 0 {
		offset = vector.New(0, 0)
	}
	offsets, err := OctaveOffsets(p.Seed, p.Octaves, offset)
	if err != nil {
		return nil, 0, 0, err
	}

	sampler := o.sampler
	if sampler == nil {
		sampler, err = NewSampler(o.kernel, p.Seed)
		if err != nil {
			return nil, 0, 0, err
		}
	}

	scale := p.Scale
	if scale <= 0 {
		scale = MinScale
	}

	o.logger.Info("Generating noise map",
		"width", p.Width,
		"height", p.Height,
		"scale", scale,
		"octaves", p.Octaves,
		"kernel", o.kernel)
	start := time.Now()

	offX := make([]float32, len(offsets))
	offY := make([]float32, len(offsets))
	for i, off := range offsets {
		offX[i] = off.X()
		offY[i] = off.Y()
	}

	halfWidth := float32(p.Width) / 2
	halfHeight := float32(p.Height) / 2

	field := NewField(p.Width, p.Height)
	rowMin := make([]float32, p.Height)
	rowMax := make([]float32, p.Height)
	report := o.reporter(p.Height)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workerCount(p.Height))
	for y := 0; y < p.Height; y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dy := float32(y) - halfHeight
			for x := 0; x < p.Width; x++ {
				dx := float32(x) - halfWidth
				amplitude := float32(1)
				frequency := float32(1)
				var noiseHeight float32
				for i := range offX {
					sampleX := dx/scale*frequency + offX[i]
					sampleY := dy/scale*frequency + offY[i]
					noiseHeight += sampler.Eval(sampleX, sampleY) * amplitude
					amplitude *= p.Persistence
					frequency *= p.Lacunarity
				}
				if math32.IsNaN(noiseHeight) || math32.IsInf(noiseHeight, 0) {
					return fmt.Errorf("%w: height at (%d, %d) overflows float32", ErrInvalidArgument, x, y)
				}
				field[x][y] = noiseHeight

				if x == 0 || noiseHeight < rowMin[y] {
					rowMin[y] = noiseHeight
				}
				if x == 0 || noiseHeight > rowMax[y] {
					rowMax[y] = noiseHeight
				}
			}
			report()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, 0, err
	}

	minHeight, maxHeight := rowMin[0], rowMax[0]
	for y := 1; y < p.Height; y++ {
		minHeight = min(minHeight, rowMin[y])
		maxHeight = max(maxHeight, rowMax[y])
	}

	o.logger.Info("Done", "elapsed", time.Since(start).Round(time.Millisecond))
	return field, minHeight, maxHeight, nil
}

// reporter returns a function to call once per finished row. It converts row
// completions into ordered, de-duplicated percentages.
func (o *options) reporter(rows int) func() {
	if o.progress == nil {
		return func() {}
	}
	var (
		done atomic.Int64
		mu   sync.Mutex
		last = -1
	)
	return func() {
		n := done.Add(1)
		pct := int(n * 100 / int64(rows))
		mu.Lock()
		defer mu.Unlock()
		if pct > last {
			last = pct
			o.progress(pct)
		}
	}
}

// normalize maps every cell into [0,1] with an inverse lerp between
// minHeight and maxHeight, in place.
func normalize(ctx context.Context, field Field, minHeight, maxHeight float32, workers int) error {
	if minHeight == maxHeight {
		field.Fill(FlatValue)
		return nil
	}

	span := minHeight - maxHeight
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for x := range field {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			col := field[x]
			for y, v := range col {
				col[y] = (minHeight - v) / span
			}
			return nil
		})
	}
	return g.Wait()
}
