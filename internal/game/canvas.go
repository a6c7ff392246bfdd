package game

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/tokenlistooor-pattern/internal/animated"
	"github.com/iburimskiy/tokenlistooor-pattern/internal/palette"
)

// Canvas is an animated.Canvas backed by an offscreen ebiten image.
type Canvas struct {
	img   *ebiten.Image
	scale float64
	src   *text.GoTextFaceSource
	face  *text.GoTextFace
	glows map[string]*ebiten.Image
}

func newCanvas(src *text.GoTextFaceSource) *Canvas {
	return &Canvas{
		scale: 1,
		src:   src,
		face:  &text.GoTextFace{Source: src, Size: 16},
		glows: make(map[string]*ebiten.Image),
	}
}

func (c *Canvas) Resize(width, height int) {
	if c.img != nil {
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(max(width, 1), max(height, 1))
	c.scale = 1
}

func (c *Canvas) Scale(factor float64) { c.scale = factor }

func (c *Canvas) Clear() { c.img.Clear() }

func (c *Canvas) FillRect(x, y, w, h float64, col palette.Color) {
	s := c.scale
	vector.DrawFilledRect(c.img, float32(x*s), float32(y*s), float32(w*s), float32(h*s), col.RGBA8(1), false)
}

func (c *Canvas) FillRadialGlow(cx, cy, radius float64, col palette.Color, stops []animated.GlowStop) {
	r := radius * c.scale
	sprite := c.glow(r, col, stops)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx*c.scale-r, cy*c.scale-r)
	c.img.DrawImage(sprite, op)
}

// glow returns the cached sprite for a glow of radius r device pixels.
func (c *Canvas) glow(r float64, col palette.Color, stops []animated.GlowStop) *ebiten.Image {
	key := fmt.Sprintf("%.1f/%s/%v", r, col.Hex(), stops)
	if img, ok := c.glows[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(glowSprite(r, col, stops))
	c.glows[key] = img
	return img
}

// glowSprite rasterizes a radial gradient of radius r centered in a 2r square.
func glowSprite(r float64, col palette.Color, stops []animated.GlowStop) image.Image {
	d := int(math.Ceil(2 * r))
	if d < 1 {
		d = 1
	}
	dc := gg.NewContext(d, d)
	grad := gg.NewRadialGradient(r, r, 0, r, r, r)
	for _, st := range stops {
		grad.AddColorStop(st.Offset, col.RGBA8(st.Alpha))
	}
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(d), float64(d))
	dc.Fill()
	return dc.Image()
}

func (c *Canvas) SetFontSize(size float64) {
	c.face = &text.GoTextFace{Source: c.src, Size: size}
}

func (c *Canvas) MeasureText(s string) float64 {
	return text.Advance(s, c.face)
}

func (c *Canvas) FillText(s string, x, y float64, col palette.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(c.scale, c.scale)
	op.GeoM.Translate(x*c.scale, y*c.scale)
	op.ColorScale.ScaleWithColor(col.RGBA8(1))
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(c.img, s, c.face, op)
}
