package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constSource always returns the same value.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func claimCounts(t *testing.T, g Grid, cells []Cell) map[[2]int]int {
	t.Helper()
	seen := make(map[[2]int]int, len(cells))
	for _, c := range cells {
		require.True(t, c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols,
			"cell (%d,%d) outside %dx%d", c.Row, c.Col, g.Rows, g.Cols)
		seen[[2]int{c.Row, c.Col}]++
	}
	return seen
}

func TestGridFor(t *testing.T) {
	assert.Equal(t, Grid{Rows: 40, Cols: 60}, GridFor(1200, 800, 20, 20))
	assert.Equal(t, Grid{Rows: 3, Cols: 2}, GridFor(21, 41, 20, 20))
	assert.Equal(t, Grid{}, GridFor(0, 800, 20, 20))
	assert.Equal(t, Grid{}, GridFor(100, 100, 0, 20))
}

func TestPlaceCoversEveryCellOnce(t *testing.T) {
	for _, policy := range []Policy{StaticPolicy(), AnimatedPolicy(), {Horizontal: 1, Vertical: 1, Primary: 0.5}} {
		for seed := int64(1); seed <= 20; seed++ {
			g := Grid{Rows: 17, Cols: 23}
			cells := Place(g, policy, NewSource(seed))

			seen := claimCounts(t, g, cells)
			assert.Len(t, seen, g.Cells())
			assert.Len(t, cells, g.Cells())
			for pos, n := range seen {
				assert.Equal(t, 1, n, "cell %v claimed %d times", pos, n)
			}
		}
	}
}

func TestPlaceTripletsStayInBounds(t *testing.T) {
	always := Policy{Horizontal: 1, Vertical: 1, Primary: 1}
	for rows := 1; rows <= 4; rows++ {
		for cols := 1; cols <= 4; cols++ {
			g := Grid{Rows: rows, Cols: cols}
			cells := Place(g, always, constSource(0))
			seen := claimCounts(t, g, cells)
			assert.Len(t, seen, g.Cells())

			for _, c := range cells {
				switch c.Kind {
				case Horizontal:
					assert.GreaterOrEqual(t, cols, 3, "horizontal triplet in %dx%d", rows, cols)
				case Vertical:
					assert.GreaterOrEqual(t, rows, 3, "vertical triplet in %dx%d", rows, cols)
				}
			}
		}
	}
}

func TestPlaceTwoByTwoIsAllSingles(t *testing.T) {
	cells := Place(Grid{Rows: 2, Cols: 2}, Policy{Horizontal: 1, Vertical: 1, Primary: 1}, constSource(0))
	require.Len(t, cells, 4)
	for _, c := range cells {
		assert.Equal(t, Single, c.Kind)
		assert.Equal(t, Primary, c.Glyph)
	}
}

func TestPlaceHorizontalMotifAndSkipAhead(t *testing.T) {
	cells := Place(Grid{Rows: 1, Cols: 6}, Policy{Horizontal: 1}, constSource(0))
	require.Len(t, cells, 6)
	for i, want := range []Glyph{Primary, Secondary, Primary, Primary, Secondary, Primary} {
		assert.Equal(t, 0, cells[i].Row)
		assert.Equal(t, i, cells[i].Col)
		assert.Equal(t, want, cells[i].Glyph)
		assert.Equal(t, Horizontal, cells[i].Kind)
	}
}

func TestPlaceVerticalMotif(t *testing.T) {
	cells := Place(Grid{Rows: 3, Cols: 1}, Policy{Vertical: 1}, constSource(0))
	require.Len(t, cells, 3)
	for i, want := range []Glyph{Primary, Secondary, Primary} {
		assert.Equal(t, i, cells[i].Row)
		assert.Equal(t, want, cells[i].Glyph)
		assert.Equal(t, Vertical, cells[i].Kind)
	}
}

func TestPlaceVerticalTripletsAreSkippedLater(t *testing.T) {
	// Every free cell starts a vertical run; rows 1-2 are already claimed by
	// row 0, so the next runs start at row 3.
	cells := Place(Grid{Rows: 6, Cols: 2}, Policy{Vertical: 1}, constSource(0))
	seen := claimCounts(t, Grid{Rows: 6, Cols: 2}, cells)
	assert.Len(t, seen, 12)
	for _, c := range cells {
		assert.Equal(t, Vertical, c.Kind)
		assert.Equal(t, motif[c.Row%3], c.Glyph)
	}
}

func TestPlaceSingleGlyphBias(t *testing.T) {
	cells := Place(Grid{Rows: 2, Cols: 2}, Policy{Primary: 0.3}, constSource(0.5))
	for _, c := range cells {
		assert.Equal(t, Secondary, c.Glyph)
	}
	cells = Place(Grid{Rows: 2, Cols: 2}, Policy{Primary: 0.3}, constSource(0.1))
	for _, c := range cells {
		assert.Equal(t, Primary, c.Glyph)
	}
}

func TestAnimatedPolicyClusters(t *testing.T) {
	p := AnimatedPolicy()
	g := Grid{Rows: 20, Cols: 20}

	assert.Equal(t, 0.6, p.primaryChance(0, 0, g))
	assert.Equal(t, 0.6, p.primaryChance(4, 4, g))
	assert.Equal(t, 0.2, p.primaryChance(5, 4, g))
	assert.Equal(t, 0.6, p.primaryChance(10, 15, g))
	assert.Equal(t, 0.6, p.primaryChance(10, 19, g))
	assert.Equal(t, 0.2, p.primaryChance(4, 15, g))
	assert.Equal(t, 0.2, p.primaryChance(17, 15, g))
	assert.Equal(t, 0.2, p.primaryChance(10, 13, g))
}

func TestPlaceEmptyGrid(t *testing.T) {
	assert.Empty(t, Place(Grid{}, StaticPolicy(), NewSource(1)))
}
