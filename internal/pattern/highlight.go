package pattern

import (
	"math"

	"github.com/iburimskiy/tokenlistooor-pattern/internal/palette"
)

// Spot is a radial highlight. X and Radius are fractions of the surface width,
// Y is a fraction of its height.
type Spot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// spot is a Spot resolved to surface units.
type spot struct {
	x, y, r float64
}

func resolve(spots []Spot, width, height float64) []spot {
	out := make([]spot, 0, len(spots))
	for _, s := range spots {
		out = append(out, spot{x: s.X * width, y: s.Y * height, r: s.Radius * width})
	}
	return out
}

// Falloff is the quadratic intensity of a point at distance d from the center
// of a highlight of radius r. It is 0 at and beyond r.
func Falloff(d, r float64) float64 {
	if r <= 0 || d >= r {
		return 0
	}
	f := 1 - d/r
	return f * f
}

// Intensity is the strongest Falloff over all spots for the point (x, y).
func Intensity(x, y float64, spots []Spot, width, height float64) float64 {
	return intensity(x, y, resolve(spots, width, height))
}

func intensity(x, y float64, spots []spot) float64 {
	var best float64
	for _, s := range spots {
		if v := Falloff(math.Hypot(x-s.x, y-s.y), s.r); v > best {
			best = v
		}
	}
	return best
}

// Ramp maps a highlight intensity to an opacity: Idle when there is no
// highlight, otherwise Floor+intensity*Gain capped at 1.
type Ramp struct {
	Idle  float64 `json:"idle"`
	Floor float64 `json:"floor"`
	Gain  float64 `json:"gain"`
}

func (r Ramp) Opacity(intensity float64) float64 {
	if intensity <= 0 {
		return r.Idle
	}
	return math.Min(1, r.Floor+intensity*r.Gain)
}

// Shade returns the color and opacity of a glyph at the given intensity.
func Shade(s palette.Scheme, r Ramp, intensity float64) (palette.Color, float64) {
	if intensity <= 0 {
		return s.Base, r.Idle
	}
	return palette.Lerp(s.Base, s.Highlight, intensity), r.Opacity(intensity)
}
