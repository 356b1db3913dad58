package grid

const (
	// Dim is the side length of the square ground grid, in cells.
	Dim = 16
	// MaxHeight is the tallest a column may grow.
	MaxHeight = 20
)

// Column is the per-cell state: how many unit cubes are stacked there and which palette entry paints them.
type Column struct {
	Height int
	Colour int
}

// Grid is a fixed Dim×Dim field of columns addressed by (x, z). Every cell always holds a valid Column.
// Coordinates are not range-checked; callers keep 0 <= x, z < Dim.
type Grid struct {
	cells [Dim][Dim]Column
}

// New returns a grid with every column at height 0, colour 0.
func New() *Grid {
	return &Grid{}
}

// Height returns the column height at (x, z).
func (g *Grid) Height(x, z int) int {
	return g.cells[x][z].Height
}

// Colour returns the palette index stored at (x, z).
func (g *Grid) Colour(x, z int) int {
	return g.cells[x][z].Colour
}

// Column returns the whole column at (x, z).
func (g *Grid) Column(x, z int) Column {
	return g.cells[x][z]
}

// SetHeight stores h at (x, z), clamped to [0, MaxHeight].
func (g *Grid) SetHeight(x, z, h int) {
	g.cells[x][z].Height = ClampHeight(h)
}

// SetColour stores c at (x, z). The palette keeps c in range.
func (g *Grid) SetColour(x, z, c int) {
	g.cells[x][z].Colour = c
}

// SetColumn overwrites the column at (x, z); the height is clamped like SetHeight.
func (g *Grid) SetColumn(x, z int, col Column) {
	g.SetHeight(x, z, col.Height)
	g.SetColour(x, z, col.Colour)
}

// Reset returns every column to height 0, colour 0.
func (g *Grid) Reset() {
	g.cells = [Dim][Dim]Column{}
}

// Filled returns the number of unit cubes currently standing on the grid.
func (g *Grid) Filled() int {
	n := 0
	for x := range g.cells {
		for z := range g.cells[x] {
			n += g.cells[x][z].Height
		}
	}
	return n
}

// ClampHeight limits h to [0, MaxHeight].
func ClampHeight(h int) int {
	return min(max(h, 0), MaxHeight)
}

// ClampCoord limits a cell coordinate to [0, Dim-1].
func ClampCoord(v int) int {
	return min(max(v, 0), Dim-1)
}
