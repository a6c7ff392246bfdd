package pattern

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// SVG renders the background as an SVG document: a filled rectangle and one
// text element per glyph.
func (s *Static) SVG() []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(s.Width, s.Height, 0, 0, s.Width, s.Height)
	canvas.Rect(0, 0, s.Width, s.Height, fmt.Sprintf(`fill="%s"`, s.Background.Hex()))
	font := fmt.Sprintf(`font-family="monospace" font-size="%spx" letter-spacing="1px"`, formatFloat(s.FontSize))
	for _, g := range s.Glyphs {
		canvas.Text(g.X, g.Y, g.Glyph.String(), font,
			fmt.Sprintf(`fill="%s" opacity="%s"`, g.Color.Hex(), formatFloat(g.Opacity)))
	}
	canvas.End()
	return buf.Bytes()
}

// DataURI is the SVG encoded for use in a CSS url().
func (s *Static) DataURI() string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(s.SVG())
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
