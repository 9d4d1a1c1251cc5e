package terrain

// Field is a dense height field addressed as field[x][y].
type Field [][]float32

// NewField allocates a zeroed width x height field backed by one slice.
func NewField(width, height int) Field {
	cells := make([]float32, width*height)
	f := make(Field, width)
	for x := range f {
		f[x] = cells[x*height : (x+1)*height : (x+1)*height]
	}
	return f
}

// Width returns the number of columns.
func (f Field) Width() int { return len(f) }

// Height returns the number of rows.
func (f Field) Height() int {
	if len(f) == 0 {
		return 0
	}
	return len(f[0])
}

// At returns the value at (x, y).
func (f Field) At(x, y int) float32 { return f[x][y] }

// Fill sets every cell to v.
func (f Field) Fill(v float32) {
	for _, col := range f {
		for y := range col {
			col[y] = v
		}
	}
}

// Bounds returns the smallest and largest cell values. An empty field
// returns zeros.
func (f Field) Bounds() (lo, hi float32) {
	first := true
	for _, col := range f {
		for _, v := range col {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return lo, hi
}
