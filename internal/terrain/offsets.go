package terrain

import (
	"fmt"

	"github.com/lox/terrainnoise/internal/randutil"
	"github.com/lox/terrainnoise/internal/vector"
)

// OffsetRange bounds the random per-octave perturbation on each axis.
const OffsetRange = 100000

// OctaveOffsets returns one 2D sampling offset per octave: base plus a
// uniform integer perturbation in [-OffsetRange, OffsetRange] on each axis.
// The perturbations come from randutil.New(seed), drawn x then y per octave.
func OctaveOffsets(seed int64, octaves int, base vector.Vector) ([]vector.Vector, error) {
	if base.Dimension() != 2 {
		return nil, fmt.Errorf("%w: offset must be 2D, got %d components", ErrInvalidArgument, base.Dimension())
	}
	if octaves < 1 {
		return nil, nil
	}

	rng := randutil.New(seed)
	offsets := make([]vector.Vector, octaves)
	for i := range offsets {
		ox := float32(randutil.Symmetric(rng, OffsetRange)) + base.X()
		oy := float32(randutil.Symmetric(rng, OffsetRange)) + base.Y()
		offsets[i] = vector.New(ox, oy)
	}
	return offsets, nil
}
