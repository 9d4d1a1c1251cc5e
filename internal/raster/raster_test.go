package raster

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/terrainnoise/internal/terrain"
)

func TestGradientRamp(t *testing.T) {
	ramp, err := RampByName("green")
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{0, 0, 0, 255}, ramp.At(0))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, ramp.At(1))
	// Channels truncate rather than round.
	assert.Equal(t, color.RGBA{0, 127, 0, 255}, ramp.At(0.5))
	assert.Equal(t, color.RGBA{0, 63, 0, 255}, ramp.At(0.25))

	// Out-of-range heights are clamped.
	assert.Equal(t, ramp.At(0), ramp.At(-3))
	assert.Equal(t, ramp.At(1), ramp.At(7))
}

func TestBandsRamp(t *testing.T) {
	ramp, err := RampByName("terrain")
	require.NoError(t, err)

	tests := []struct {
		name string
		t    float32
		want color.RGBA
	}{
		{"deep water", 0.1, color.RGBA{0, 0, 178, 255}},
		{"water", 0.25, color.RGBA{0, 0, 255, 255}},
		{"shallow water", 0.40, color.RGBA{0, 0, 255, 255}},
		{"sand", 0.48, color.RGBA{255, 255, 0, 255}},
		{"grass", 0.55, color.RGBA{0, 178, 0, 255}},
		{"forest", 0.70, color.RGBA{0, 124, 0, 255}},
		{"rock", 0.85, color.RGBA{128, 128, 128, 255}},
		{"snow", 0.99, color.RGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ramp.At(tt.t))
		})
	}
}

func TestShadeSteps(t *testing.T) {
	tests := []struct {
		name string
		got  colorful.Color
		want color.RGBA
	}{
		{"darker blue", darker(blue), color.RGBA{0, 0, 178, 255}},
		{"darker twice", darker(darker(green)), color.RGBA{0, 124, 0, 255}},
		{"brighter saturated", brighter(blue), color.RGBA{0, 0, 255, 255}},
		{"brighter black", brighter(black), color.RGBA{3, 3, 3, 255}},
		{"brighter dim", brighter(rgb255(1, 100, 0)), color.RGBA{4, 142, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.got.RGB255()
			assert.Equal(t, tt.want, color.RGBA{r, g, b, 255})
		})
	}
}

func TestRampByNameUnknown(t *testing.T) {
	_, err := RampByName("sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "green")
	assert.Equal(t, []string{"gray", "green", "terrain"}, RampNames())
}

func TestRender(t *testing.T) {
	field := terrain.NewField(2, 3)
	field[1][2] = 1

	ramp, err := RampByName("gray")
	require.NoError(t, err)
	img := Render(field, ramp)

	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(1, 2))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 2))
}

func TestDownsample(t *testing.T) {
	field := terrain.NewField(4, 4)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if x >= 2 {
				field[x][y] = 1
			}
		}
	}

	small := Downsample(field, 2, 2)
	assert.Equal(t, 2, small.Width())
	assert.Equal(t, 2, small.Height())
	assert.Equal(t, float32(0), small.At(0, 0))
	assert.Equal(t, float32(1), small.At(1, 1))

	same := Downsample(field, 10, 10)
	assert.Equal(t, field, same)
}
