// Package palette holds the brand colors of the background and the hex-to-hex
// blend used to shade glyphs near a highlight.
package palette

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color that reads and writes as "#rrggbb".
type Color struct {
	colorful.Color
}

// ParseHex parses a "#rrggbb" (or "#rgb") color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("palette: parse %q: %w", s, err)
	}
	return Color{c}, nil
}

// MustHex is ParseHex for compile-time constants.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// RGBA8 returns the color as a non-premultiplied 8-bit color with the given
// opacity in [0,1].
func (c Color) RGBA8(alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

// Lerp blends a toward b by t, channel by channel, rounding each channel in
// 8-bit space with halves rounded up. t is clamped to [0,1].
func Lerp(a, b Color, t float64) Color {
	t = clamp01(t)
	ar, ag, ab := a.Clamped().RGB255()
	br, bg, bb := b.Clamped().RGB255()
	return Color{colorful.Color{
		R: float64(lerpChannel(ar, br, t)) / 255,
		G: float64(lerpChannel(ag, bg, t)) / 255,
		B: float64(lerpChannel(ab, bb, t)) / 255,
	}}
}

// lerpChannel blends two 8-bit channels, rounding halves up.
func lerpChannel(x, y uint8, t float64) uint8 {
	v := math.Floor(float64(x) + t*(float64(y)-float64(x)) + 0.5)
	return uint8(math.Max(0, math.Min(255, v)))
}

// LerpHex is Lerp over hex strings.
func LerpHex(a, b string, t float64) (string, error) {
	ca, err := ParseHex(a)
	if err != nil {
		return "", err
	}
	cb, err := ParseHex(b)
	if err != nil {
		return "", err
	}
	return Lerp(ca, cb, t).Hex(), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
