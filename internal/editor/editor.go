package editor

import (
	"voxed/internal/grid"
	"voxed/internal/input"
	"voxed/internal/palette"
)

// Cursor is the active cell. Both coordinates stay in [0, grid.Dim-1].
type Cursor struct {
	X, Z int
}

// ViewResetter restores the camera's default orbit and zoom.
type ViewResetter interface {
	Reset()
}

// Controller turns key presses and UI requests into grid, palette and cursor mutations.
type Controller struct {
	grid     *grid.Grid
	palette  *palette.Palette
	cursor   *Cursor
	view     ViewResetter
	bindings Bindings

	// OnQuit is called when quit is requested; the window layer decides how to stop.
	OnQuit func()
	// OnReset, if set, is called after a reset has been applied.
	OnReset func()
}

// New returns a controller mutating g, p and c. view may be nil.
func New(g *grid.Grid, p *palette.Palette, c *Cursor, view ViewResetter, b Bindings) *Controller {
	if b == nil {
		b = DefaultBindings()
	}
	return &Controller{grid: g, palette: p, cursor: c, view: view, bindings: b}
}

// Cursor returns the active cell.
func (c *Controller) Cursor() Cursor {
	return *c.cursor
}

// HandleKey applies a key event. Only presses of bound keys do anything; those are always consumed.
func (c *Controller) HandleKey(ev input.KeyEvent) bool {
	if ev.Action != input.Press {
		return false
	}
	cmd, ok := c.bindings[ev.Key]
	if !ok {
		return false
	}
	carry := ev.Mods&input.ModShift != 0
	switch cmd {
	case CmdQuit:
		c.RequestQuit()
	case CmdReset:
		c.RequestReset()
	case CmdShrink:
		c.shrink()
	case CmdGrow:
		c.grow()
	case CmdUp:
		c.move(0, -1, carry)
	case CmdDown:
		c.move(0, 1, carry)
	case CmdLeft:
		c.move(-1, 0, carry)
	case CmdRight:
		c.move(1, 0, carry)
	default:
		return false
	}
	return true
}

// RequestQuit signals the window layer; nothing in the editor changes.
func (c *Controller) RequestQuit() {
	if c.OnQuit != nil {
		c.OnQuit()
	}
}

// RequestReset clears the grid, restores the palette, homes the cursor and resets the camera.
func (c *Controller) RequestReset() {
	c.grid.Reset()
	c.palette.Reset()
	*c.cursor = Cursor{}
	if c.view != nil {
		c.view.Reset()
	}
	if c.OnReset != nil {
		c.OnReset()
	}
}

// SelectColour makes i the current colour and repaints the active cell with it.
func (c *Controller) SelectColour(i int) {
	c.palette.Select(i)
	c.grid.SetColour(c.cursor.X, c.cursor.Z, c.palette.Current())
}

// shrink lowers the active column; its colour is kept even at height 0.
func (c *Controller) shrink() {
	h := c.grid.Height(c.cursor.X, c.cursor.Z)
	c.grid.SetHeight(c.cursor.X, c.cursor.Z, grid.ClampHeight(h-1))
}

// grow raises the active column and stamps it with the current colour.
func (c *Controller) grow() {
	h := c.grid.Height(c.cursor.X, c.cursor.Z)
	c.grid.SetHeight(c.cursor.X, c.cursor.Z, grid.ClampHeight(h+1))
	c.grid.SetColour(c.cursor.X, c.cursor.Z, c.palette.Current())
}

// move steps the cursor one cell, clamped to the grid. With carry set and a real step,
// the old column is copied onto the new cell first; the old cell keeps its values.
func (c *Controller) move(dx, dz int, carry bool) {
	nx := grid.ClampCoord(c.cursor.X + dx)
	nz := grid.ClampCoord(c.cursor.Z + dz)
	if nx == c.cursor.X && nz == c.cursor.Z {
		return
	}
	if carry {
		c.grid.SetColumn(nx, nz, c.grid.Column(c.cursor.X, c.cursor.Z))
	}
	c.cursor.X, c.cursor.Z = nx, nz
}

// Stamp overwrites every column from hm, heights clamped. Colours outside the palette
// are folded into range.
func (c *Controller) Stamp(hm *[grid.Dim][grid.Dim]grid.Column) {
	for x := range hm {
		for z := range hm[x] {
			col := hm[x][z]
			col.Colour = min(max(col.Colour, 0), palette.NumColour-1)
			c.grid.SetColumn(x, z, col)
		}
	}
}
