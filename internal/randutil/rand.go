// Package randutil derives the general-purpose random streams used alongside
// the noise kernel. These streams are independent of the kernel's own
// permutation LCG: changing one never shifts the other.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG state words are derived from the one seed so every call site gets
// the same reproducible sequence.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Symmetric returns a uniform integer in [-bound, bound].
func Symmetric(r *rand.Rand, bound int) int {
	if bound <= 0 {
		return 0
	}
	return r.IntN(2*bound+1) - bound
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
