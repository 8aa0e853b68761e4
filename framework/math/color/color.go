package color

import (
	"fmt"
	"strings"

	"github.com/Givikap120/lazer-go/framework/math/mutils"
	"github.com/lucasb-eyer/go-colorful"
)

type Color struct {
	R, G, B, A float32
}

func NewRGBA(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

func NewRGB(r, g, b float32) Color {
	return Color{r, g, b, 1}
}

// NewRGBA8 creates a colour from 0-255 channel values.
func NewRGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// NewL creates an opaque gray colour.
func NewL(l float32) Color {
	return Color{l, l, l, 1}
}

// FromHex parses "#rrggbb" or "#rgb" colours, leading hash is optional.
func FromHex(hex string) (Color, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}

	return Color{float32(c.R), float32(c.G), float32(c.B), 1}, nil
}

func MustHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}

	return c
}

func (c Color) MultiplyAlpha(alpha float32) Color {
	c.A *= alpha
	return c
}

func (c Color) Lerp(c1 Color, t float32) Color {
	t = mutils.Clamp(t, 0, 1)

	return Color{
		R: mutils.Lerp(c.R, c1.R, t),
		G: mutils.Lerp(c.G, c1.G, t),
		B: mutils.Lerp(c.B, c1.B, t),
		A: mutils.Lerp(c.A, c1.A, t),
	}
}

func (c Color) RGBA8() (r, g, b, a uint8) {
	cv := func(v float32) uint8 {
		return uint8(mutils.Clamp(v, 0, 1)*255 + 0.5)
	}

	return cv(c.R), cv(c.G), cv(c.B), cv(c.A)
}

func (c Color) Hex() string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().Hex()
}

func (c Color) String() string {
	return fmt.Sprintf("%s (%.2f)", c.Hex(), c.A)
}
