package raster

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Ramp maps a normalized height in [0,1] to a color.
type Ramp interface {
	At(t float32) color.RGBA
}

// Gradient blends linearly in 8-bit RGB between two colors. Channels are
// interpolated in float32 and truncated.
type Gradient struct {
	From, To colorful.Color
}

// At implements Ramp.
func (g Gradient) At(t float32) color.RGBA {
	t = clamp01(t)
	r0, g0, b0 := g.From.Clamped().RGB255()
	r1, g1, b1 := g.To.Clamped().RGB255()
	return color.RGBA{
		R: uint8(lerp(float32(r0), float32(r1), t)),
		G: uint8(lerp(float32(g0), float32(g1), t)),
		B: uint8(lerp(float32(b0), float32(b1), t)),
		A: 0xff,
	}
}

// Band is one step of a Bands ramp: heights below Limit (0-100) use Color.
type Band struct {
	Limit int
	Color colorful.Color
}

// Bands picks a flat color per height band. Heights at or above the last
// limit use Top.
type Bands struct {
	Steps []Band
	Top   colorful.Color
}

// At implements Ramp.
func (b Bands) At(t float32) color.RGBA {
	n := int(lerp(0, 100, clamp01(t)))
	i := sort.Search(len(b.Steps), func(i int) bool { return n < b.Steps[i].Limit })
	c := b.Top
	if i < len(b.Steps) {
		c = b.Steps[i].Color
	}
	r, g, bl := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
	green = colorful.Color{R: 0, G: 1, B: 0}

	blue   = mustHex("#0000ff")
	yellow = mustHex("#ffff00")
	gray   = mustHex("#808080")
)

const (
	// shadeFactor is the per-step channel scale used by darker and brighter.
	shadeFactor = 0.7
	// brightenMin is the smallest channel value brighter can grow,
	// 1/(1-shadeFactor) truncated.
	brightenMin = 3
)

// darker scales every 8-bit channel by shadeFactor, truncating.
func darker(c colorful.Color) colorful.Color {
	r, g, b := c.Clamped().RGB255()
	return rgb255(
		int(float64(r)*shadeFactor),
		int(float64(g)*shadeFactor),
		int(float64(b)*shadeFactor),
	)
}

// brighter divides every 8-bit channel by shadeFactor, capped at 255.
// Channels that are non-zero but too small to grow are first raised to 3,
// and black becomes (3, 3, 3).
func brighter(c colorful.Color) colorful.Color {
	r, g, b := c.Clamped().RGB255()
	if r == 0 && g == 0 && b == 0 {
		return rgb255(brightenMin, brightenMin, brightenMin)
	}
	grow := func(v uint8) int {
		n := int(v)
		if n > 0 && n < brightenMin {
			n = brightenMin
		}
		return min(int(float64(n)/shadeFactor), 255)
	}
	return rgb255(grow(r), grow(g), grow(b))
}

func rgb255(r, g, b int) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Named ramps.
var ramps = map[string]Ramp{
	"green": Gradient{From: black, To: green},
	"gray":  Gradient{From: black, To: white},
	"terrain": Bands{
		Steps: []Band{
			{Limit: 20, Color: darker(blue)},
			{Limit: 30, Color: blue},
			{Limit: 45, Color: brighter(blue)},
			{Limit: 51, Color: yellow},
			{Limit: 62, Color: darker(green)},
			{Limit: 79, Color: darker(darker(green))},
			{Limit: 92, Color: gray},
		},
		Top: white,
	},
}

// RampNames returns the registered ramp names, sorted.
func RampNames() []string {
	names := make([]string, 0, len(ramps))
	for name := range ramps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RampByName looks up a named ramp.
func RampByName(name string) (Ramp, error) {
	r, ok := ramps[name]
	if !ok {
		return nil, fmt.Errorf("unknown ramp %q (available: %v)", name, RampNames())
	}
	return r, nil
}

func clamp01(t float32) float32 {
	return min(max(t, 0), 1)
}

func lerp(a, b, t float32) float32 {
	return (1-t)*a + t*b
}
