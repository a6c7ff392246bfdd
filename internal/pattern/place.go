// Package pattern lays out the "MOM" glyph grid behind the Tokenlistooor pages
// and renders the static version of it.
package pattern

import "math"

// Glyph is one of the two characters the background is made of.
type Glyph rune

const (
	Primary   Glyph = 'M'
	Secondary Glyph = '0'
)

func (g Glyph) String() string { return string(rune(g)) }

// motif is the three-glyph run placed by a triplet.
var motif = [3]Glyph{Primary, Secondary, Primary}

// Kind tells how a cell was claimed.
type Kind int

const (
	Single Kind = iota
	Horizontal
	Vertical
)

// Grid is the character grid covering a surface.
type Grid struct {
	Rows, Cols int
}

// GridFor returns the grid of cellW×cellH cells needed to cover width×height.
func GridFor(width, height, cellW, cellH float64) Grid {
	if cellW <= 0 || cellH <= 0 || width <= 0 || height <= 0 {
		return Grid{}
	}
	return Grid{
		Rows: int(math.Ceil(height / cellH)),
		Cols: int(math.Ceil(width / cellW)),
	}
}

// Cells is the number of positions in the grid.
func (g Grid) Cells() int { return g.Rows * g.Cols }

// Cell is one claimed grid position.
type Cell struct {
	Row, Col int
	Glyph    Glyph
	Kind     Kind
}

// Region is a rectangle of the grid in fractions of rows and columns. Bounds
// are exclusive on every side, so a region meant to start at the top edge uses
// a negative minimum.
type Region struct {
	RowMin float64 `json:"row_min"`
	RowMax float64 `json:"row_max"`
	ColMin float64 `json:"col_min"`
	ColMax float64 `json:"col_max"`
}

// Contains reports whether (row, col) lies inside r on grid g.
func (r Region) Contains(row, col int, g Grid) bool {
	fr, fc := float64(row), float64(col)
	rows, cols := float64(g.Rows), float64(g.Cols)
	return fr > r.RowMin*rows && fr < r.RowMax*rows &&
		fc > r.ColMin*cols && fc < r.ColMax*cols
}

// Policy holds the placement probabilities. Horizontal and Vertical are the
// per-cell chances of attempting a triplet; a single glyph is Primary with
// probability Primary, or ClusterPrimary inside any of Clusters.
type Policy struct {
	Horizontal     float64  `json:"horizontal"`
	Vertical       float64  `json:"vertical"`
	Primary        float64  `json:"primary"`
	Clusters       []Region `json:"clusters,omitempty"`
	ClusterPrimary float64  `json:"cluster_primary,omitempty"`
}

// StaticPolicy is the tuning of the pre-rendered background.
func StaticPolicy() Policy {
	return Policy{Horizontal: 0.15, Vertical: 0.15, Primary: 0.3}
}

// AnimatedPolicy is the tuning of the pointer-reactive background: fewer
// triplets, and Ms gathered in the top-left corner and along the right side.
func AnimatedPolicy() Policy {
	return Policy{
		Horizontal: 0.1,
		Vertical:   0.1,
		Primary:    0.2,
		Clusters: []Region{
			{RowMin: -1, RowMax: 0.25, ColMin: -1, ColMax: 0.25},
			{RowMin: 0.3, RowMax: 0.8, ColMin: 0.7, ColMax: 2},
		},
		ClusterPrimary: 0.6,
	}
}

func (p Policy) primaryChance(row, col int, g Grid) float64 {
	for _, r := range p.Clusters {
		if r.Contains(row, col, g) {
			return p.ClusterPrimary
		}
	}
	return p.Primary
}

// Source is the randomness Place draws from.
type Source interface {
	Float64() float64
}

// Place fills every cell of g exactly once, walking row-major. At each free
// cell it tries a horizontal triplet, then a vertical one, then falls back to
// a single glyph. A triplet is placed only when its three cells are in the
// grid and still free.
func Place(g Grid, p Policy, rnd Source) []Cell {
	if g.Rows <= 0 || g.Cols <= 0 {
		return nil
	}
	claimed := make([]bool, g.Cells())
	free := func(row, col int) bool {
		return row < g.Rows && col < g.Cols && !claimed[row*g.Cols+col]
	}
	cells := make([]Cell, 0, g.Cells())
	claim := func(row, col int, glyph Glyph, kind Kind) {
		claimed[row*g.Cols+col] = true
		cells = append(cells, Cell{Row: row, Col: col, Glyph: glyph, Kind: kind})
	}

	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			if !free(i, j) {
				continue
			}
			if rnd.Float64() < p.Horizontal && j+2 < g.Cols && free(i, j+1) && free(i, j+2) {
				for k, glyph := range motif {
					claim(i, j+k, glyph, Horizontal)
				}
				j += 2
				continue
			}
			if rnd.Float64() < p.Vertical && i+2 < g.Rows && free(i+1, j) && free(i+2, j) {
				for k, glyph := range motif {
					claim(i+k, j, glyph, Vertical)
				}
				continue
			}
			glyph := Secondary
			if rnd.Float64() < p.primaryChance(i, j, g) {
				glyph = Primary
			}
			claim(i, j, glyph, Single)
		}
	}
	return cells
}
