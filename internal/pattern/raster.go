package pattern

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

var (
	monoOnce sync.Once
	monoFont *opentype.Font
	monoErr  error
)

// MonoFace returns a Go Mono face of the given size in pixels.
func MonoFace(size float64) (font.Face, error) {
	monoOnce.Do(func() {
		monoFont, monoErr = opentype.Parse(gomono.TTF)
	})
	if monoErr != nil {
		return nil, fmt.Errorf("pattern: parse mono font: %w", monoErr)
	}
	return opentype.NewFace(monoFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Image rasterizes the background at its native size. It draws the same glyph
// list SVG does, for hosts that cannot display SVG.
func (s *Static) Image() (image.Image, error) {
	face, err := MonoFace(s.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	dc := gg.NewContext(s.Width, s.Height)
	dc.SetColor(s.Background.RGBA8(1))
	dc.Clear()
	dc.SetFontFace(face)
	for _, g := range s.Glyphs {
		dc.SetRGBA(g.Color.R, g.Color.G, g.Color.B, g.Opacity)
		dc.DrawString(g.Glyph.String(), float64(g.X), float64(g.Y))
	}
	return dc.Image(), nil
}

// PNG writes the rasterized background to w.
func (s *Static) PNG(w io.Writer) error {
	img, err := s.Image()
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	return dc.EncodePNG(w)
}
