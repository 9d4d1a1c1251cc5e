// Package opensimplex implements seeded 2D OpenSimplex gradient noise
// (algorithm by Kurt Spencer) in float32.
//
// The permutation tables are derived from a 64-bit seed with a fixed
// linear congruential generator, so a given seed produces the same noise on
// every platform and in every port that follows the same construction.
package opensimplex

import "github.com/chewxy/math32"

const (
	stretch2D = -0.211324865405187 // (1/sqrt(2+1)-1)/2
	squish2D  = 0.366025403784439  // (sqrt(2+1)-1)/2
	norm2D    = float32(1.0 / 47.0)

	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

// Noise is a seeded 2D noise source. It is read-only after New returns and
// may be shared by any number of goroutines.
type Noise struct {
	perm   [256]uint8
	perm2D [256]uint8
}

// New builds the permutation tables for seed. Every seed is valid.
func New(seed int64) *Noise {
	n := &Noise{}

	var source [256]uint8
	for i := range source {
		source[i] = uint8(i)
	}

	seed = seed*lcgMultiplier + lcgIncrement
	seed = seed*lcgMultiplier + lcgIncrement
	seed = seed*lcgMultiplier + lcgIncrement
	for i := int64(255); i >= 0; i-- {
		seed = seed*lcgMultiplier + lcgIncrement
		r := (seed + 31) % (i + 1)
		if r < 0 {
			r += i + 1
		}
		n.perm[i] = source[r]
		n.perm2D[i] = n.perm[i] & 0x0E
		source[r] = source[i]
	}

	return n
}

// Perm returns a copy of the permutation table.
func (n *Noise) Perm() [256]uint8 { return n.perm }

// Perm2D returns a copy of the gradient index table.
func (n *Noise) Perm2D() [256]uint8 { return n.perm2D }

// Eval returns the noise value at (x, y), roughly in [-1, 1]. Any finite
// coordinate is valid; non-finite coordinates evaluate to 0.
func (n *Noise) Eval(x, y float32) float32 {
	// Place input coordinates onto the stretched grid.
	stretchOffset := (x + y) * stretch2D
	xs := x + stretchOffset
	ys := y + stretchOffset
	if !finite(xs) || !finite(ys) {
		return 0
	}

	// Lattice origin of the cell, kept in float32 so that it cannot overflow.
	// Only its value modulo 256 indexes the permutation.
	fxs := math32.Floor(xs)
	fys := math32.Floor(ys)
	xsb := latticeIndex(fxs)
	ysb := latticeIndex(fys)

	// Skew back out to get the cell origin in input space.
	squishOffset := (fxs + fys) * squish2D
	dx0 := x - (fxs + squishOffset)
	dy0 := y - (fys + squishOffset)

	xins := xs - fxs
	yins := ys - fys
	inSum := xins + yins

	hash := int32(xins-yins+1) |
		int32(inSum)<<1 |
		int32(inSum+yins)<<2 |
		int32(inSum+xins)<<4

	ch := &lookup2D[hash]

	var value float32
	for i := range ch.c {
		c := &ch.c[i]
		dx := dx0 + c.dx
		dy := dy0 + c.dy
		attn := 2 - dx*dx - dy*dy
		if attn <= 0 {
			continue
		}
		px := xsb + c.xsb
		py := ysb + c.ysb
		gi := n.perm2D[(int32(n.perm[px&0xFF])+py)&0xFF]
		valuePart := gradients2D[gi]*dx + gradients2D[gi+1]*dy

		attn *= attn
		value += attn * attn * valuePart
	}
	return value * norm2D / 1.732 * 2
}

// latticeIndex reduces an integral lattice coordinate to [0, 256).
func latticeIndex(f float32) int32 {
	m := math32.Mod(f, 256)
	if m < 0 {
		m += 256
	}
	return int32(m)
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
