package opensimplex

// chainLen is the number of lattice contributions evaluated for every
// position inside a stretched cell: three from the base set and one extra.
const chainLen = 4

// contribution is one lattice point whose gradient may contribute to a
// sample, stored relative to the cell origin.
type contribution struct {
	dx, dy   float32
	xsb, ysb int32
}

func newContribution(multiplier float32, xsb, ysb int32) contribution {
	return contribution{
		dx:  -float32(xsb) - multiplier*squish2D,
		dy:  -float32(ysb) - multiplier*squish2D,
		xsb: xsb,
		ysb: ysb,
	}
}

// chain is the ordered set of contributions for one lookup slot. Slots that
// no stretched position hashes to keep the zero chain.
type chain struct {
	c [chainLen]contribution
}

var (
	// (multiplier, xsb, ysb) triples.
	base2D = [2][9]int32{
		{1, 1, 0, 1, 0, 1, 0, 0, 0},
		{1, 1, 0, 1, 0, 1, 2, 1, 1},
	}

	// (base set, multiplier, xsb, ysb) per chain.
	p2D = [24]int32{0, 0, 1, -1, 0, 0, -1, 1, 0, 2, 1, 1, 1, 2, 2, 0, 1, 2, 0, 2, 1, 0, 0, 0}

	// (hash, chain) pairs.
	lookupPairs2D = [24]int32{0, 1, 1, 0, 4, 1, 17, 0, 20, 2, 21, 2, 22, 5, 23, 5, 26, 4, 39, 3, 42, 4, 43, 3}

	// gradients2D holds 8 gradients as consecutive (x, y) pairs. perm2D
	// values are even so they index the x component directly.
	gradients2D = [16]float32{
		5, 2, 2, 5,
		-5, 2, -2, 5,
		5, -2, 2, -5,
		-5, -2, -2, -5,
	}

	lookup2D = buildLookup2D()
)

func buildLookup2D() [64]chain {
	var chains [len(p2D) / 4]chain
	for i := 0; i < len(p2D); i += 4 {
		base := base2D[p2D[i]]
		ch := &chains[i/4]
		n := 0
		for k := 0; k < len(base); k += 3 {
			ch.c[n] = newContribution(float32(base[k]), base[k+1], base[k+2])
			n++
		}
		ch.c[n] = newContribution(float32(p2D[i+1]), p2D[i+2], p2D[i+3])
	}

	var table [64]chain
	for i := 0; i < len(lookupPairs2D); i += 2 {
		table[lookupPairs2D[i]] = chains[lookupPairs2D[i+1]]
	}
	return table
}
