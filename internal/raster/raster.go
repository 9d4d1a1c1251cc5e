// Package raster turns height fields into images.
package raster

import (
	"image"

	"github.com/lox/terrainnoise/internal/terrain"
)

// Render colors every cell of field with ramp. Pixel (x, y) of the result
// corresponds to field[x][y].
func Render(field terrain.Field, ramp Ramp) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, field.Width(), field.Height()))
	for x, col := range field {
		for y, v := range col {
			img.SetRGBA(x, y, ramp.At(v))
		}
	}
	return img
}

// Downsample averages field into a cols x rows grid, for previews smaller
// than the field. Sizes larger than the field are clamped to it.
func Downsample(field terrain.Field, cols, rows int) terrain.Field {
	w, h := field.Width(), field.Height()
	cols = max(1, min(cols, w))
	rows = max(1, min(rows, h))

	out := terrain.NewField(cols, rows)
	for cx := 0; cx < cols; cx++ {
		x0, x1 := cx*w/cols, (cx+1)*w/cols
		for cy := 0; cy < rows; cy++ {
			y0, y1 := cy*h/rows, (cy+1)*h/rows
			var sum float32
			for x := x0; x < x1; x++ {
				for y := y0; y < y1; y++ {
					sum += field[x][y]
				}
			}
			out[cx][cy] = sum / float32((x1-x0)*(y1-y0))
		}
	}
	return out
}
