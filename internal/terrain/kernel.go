package terrain

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	opensimplexref "github.com/ojrac/opensimplex-go"

	"github.com/lox/terrainnoise/internal/opensimplex"
)

// ErrUnknownKernel is returned by NewSampler for an unrecognised kernel name.
var ErrUnknownKernel = errors.New("unknown kernel")

// Sampler evaluates a single octave of 2D noise.
type Sampler interface {
	Eval(x, y float32) float32
}

// Kernel names a noise implementation.
type Kernel string

const (
	// KernelOpenSimplex is the lookup-table OpenSimplex kernel. It is the
	// only kernel whose output is covered by the regression fixtures.
	KernelOpenSimplex Kernel = "opensimplex"
	// KernelReference evaluates the same noise in float64 using
	// github.com/ojrac/opensimplex-go, rescaled to match KernelOpenSimplex.
	KernelReference Kernel = "reference"
	// KernelPerlin is classic Perlin noise from github.com/aquilax/go-perlin.
	KernelPerlin Kernel = "perlin"
)

// Kernels lists every supported kernel name.
func Kernels() []Kernel {
	return []Kernel{KernelOpenSimplex, KernelReference, KernelPerlin}
}

// NewSampler builds the sampler for kernel k seeded with seed. An empty
// kernel name selects KernelOpenSimplex.
func NewSampler(k Kernel, seed int64) (Sampler, error) {
	switch k {
	case KernelOpenSimplex, "":
		return opensimplex.New(seed), nil
	case KernelReference:
		return referenceSampler{noise: opensimplexref.New(seed)}, nil
	case KernelPerlin:
		return perlinSampler{p: perlin.NewPerlin(perlinAlpha, perlinBeta, 1, seed)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, string(k))
	}
}

type referenceSampler struct {
	noise opensimplexref.Noise
}

func (s referenceSampler) Eval(x, y float32) float32 {
	return float32(s.noise.Eval2(float64(x), float64(y)) * 2 / 1.732)
}

const (
	perlinAlpha = 2
	perlinBeta  = 2
)

type perlinSampler struct {
	p *perlin.Perlin
}

func (s perlinSampler) Eval(x, y float32) float32 {
	return float32(s.p.Noise2D(float64(x), float64(y)))
}
