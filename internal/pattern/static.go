package pattern

import (
	"github.com/iburimskiy/tokenlistooor-pattern/internal/palette"
)

// Options describes one static rendition of the background.
type Options struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	CellWidth  int            `json:"cell_width"`
	CellHeight int            `json:"cell_height"`
	FontSize   float64        `json:"font_size"`
	Spots      []Spot         `json:"spots"`
	Policy     Policy         `json:"policy"`
	Ramp       Ramp           `json:"ramp"`
	Colors     palette.Scheme `json:"-"`
}

// DefaultOptions is a 1200×800 image, large enough to cover most screens
// without repeating, with three fixed highlight spots.
func DefaultOptions() Options {
	return Options{
		Width:      1200,
		Height:     800,
		CellWidth:  20,
		CellHeight: 20,
		FontSize:   20,
		Spots: []Spot{
			{X: 0.3, Y: 0.1, Radius: 0.2},
			{X: 0.75, Y: 0.35, Radius: 0.2},
			{X: 0.65, Y: 0.8, Radius: 0.12},
		},
		Policy: StaticPolicy(),
		Ramp:   Ramp{Idle: 0.3, Floor: 0.4, Gain: 0.6},
		Colors: palette.Brand(),
	}
}

// Placed is a glyph positioned on the static image. Y is the text baseline.
type Placed struct {
	Cell
	X, Y      int
	Intensity float64
	Color     palette.Color
	Opacity   float64
}

// Static is a generated background. It is immutable once built.
type Static struct {
	Width, Height int
	FontSize      float64
	Background    palette.Color
	Glyphs        []Placed
}

// Generate lays out and shades a static background.
func Generate(opts Options, rnd Source) *Static {
	grid := GridFor(float64(opts.Width), float64(opts.Height), float64(opts.CellWidth), float64(opts.CellHeight))
	spots := resolve(opts.Spots, float64(opts.Width), float64(opts.Height))

	cells := Place(grid, opts.Policy, rnd)
	st := &Static{
		Width:      opts.Width,
		Height:     opts.Height,
		FontSize:   opts.FontSize,
		Background: opts.Colors.Background,
		Glyphs:     make([]Placed, 0, len(cells)),
	}
	for _, c := range cells {
		x, top := c.Col*opts.CellWidth, c.Row*opts.CellHeight
		in := intensity(float64(x), float64(top), spots)
		col, op := Shade(opts.Colors, opts.Ramp, in)
		st.Glyphs = append(st.Glyphs, Placed{
			Cell:      c,
			X:         x,
			Y:         top + opts.CellHeight,
			Intensity: in,
			Color:     col,
			Opacity:   op,
		})
	}
	return st
}
