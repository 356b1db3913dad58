package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxed/internal/camera"
	"voxed/internal/editor"
	"voxed/internal/grid"
	"voxed/internal/palette"
)

// MeshKind selects which static mesh an instruction draws.
type MeshKind int

const (
	MeshGrid MeshKind = iota
	MeshCube
)

func (k MeshKind) String() string {
	if k == MeshGrid {
		return "grid"
	}
	return "cube"
}

// Instruction is one draw call for the rendering backend. Cube transforms place a unit
// cube spanning [0,1]³ in its cell; Cell is the (x, y, z) slot the cube occupies.
type Instruction struct {
	Mesh      MeshKind
	Transform mgl32.Mat4
	Colour    palette.RGB
	Wireframe bool
	DepthTest bool
	Cell      [3]int
}

// Frame is everything the backend needs for one frame, in draw order.
type Frame struct {
	Clear        palette.RGB
	View         mgl32.Mat4
	Projection   mgl32.Mat4
	Instructions []Instruction
}

var (
	// ClearColour is the sky-blue background.
	ClearColour    = palette.RGB{R: 0.3, G: 0.5, B: 0.7}
	gridColour     = palette.White
	highlightColor = palette.Black
)

// Composer reads the editor state and builds the per-frame draw list.
type Composer struct {
	grid    *grid.Grid
	palette *palette.Palette
	cursor  *editor.Cursor
	rig     *camera.Rig
	buf     []Instruction
}

// NewComposer returns a composer over the given state. It never mutates any of it.
func NewComposer(g *grid.Grid, p *palette.Palette, c *editor.Cursor, rig *camera.Rig) *Composer {
	return &Composer{grid: g, palette: p, cursor: c, rig: rig}
}

// Compose builds the frame: the ground grid, then every non-active column with depth testing,
// then the active column with depth testing off so its outline always shows. The active column
// gets one extra outline cube on top where the next grow will land.
// Frame.Instructions is reused by the next Compose call.
func (c *Composer) Compose() Frame {
	model := c.rig.Model()
	out := c.buf[:0]
	out = append(out, Instruction{
		Mesh:      MeshGrid,
		Transform: model,
		Colour:    gridColour,
		DepthTest: true,
	})

	ax, az := c.cursor.X, c.cursor.Z
	for x := 0; x < grid.Dim; x++ {
		for z := 0; z < grid.Dim; z++ {
			if x == ax && z == az {
				continue
			}
			col := c.grid.Column(x, z)
			colour := c.palette.At(col.Colour)
			for y := 0; y < col.Height; y++ {
				out = append(out, cube(model, x, y, z, colour, false, true))
			}
		}
	}

	active := c.grid.Column(ax, az)
	colour := c.palette.At(active.Colour)
	for y := 0; y <= active.Height; y++ {
		if y < active.Height {
			out = append(out, cube(model, ax, y, az, colour, false, false))
		}
		out = append(out, cube(model, ax, y, az, highlightColor, true, false))
	}

	c.buf = out
	return Frame{
		Clear:        ClearColour,
		View:         c.rig.View(),
		Projection:   c.rig.Projection(),
		Instructions: out,
	}
}

func cube(model mgl32.Mat4, x, y, z int, colour palette.RGB, wire, depth bool) Instruction {
	return Instruction{
		Mesh:      MeshCube,
		Transform: model.Mul4(mgl32.Translate3D(float32(x), float32(y), float32(z))),
		Colour:    colour,
		Wireframe: wire,
		DepthTest: depth,
		Cell:      [3]int{x, y, z},
	}
}

// Line is a segment of the ground grid in grid space.
type Line struct {
	From, To mgl32.Vec3
}

// GridLines returns the ground grid: Dim+3 lines along each axis on y = 0, spanning one cell
// of margin around the grid ([-1, Dim+1]).
func GridLines() []Line {
	lo, hi := float32(-1), float32(grid.Dim+1)
	lines := make([]Line, 0, 2*(grid.Dim+3))
	for i := 0; i < grid.Dim+3; i++ {
		v := float32(i - 1)
		lines = append(lines,
			Line{From: mgl32.Vec3{lo, 0, v}, To: mgl32.Vec3{hi, 0, v}},
			Line{From: mgl32.Vec3{v, 0, lo}, To: mgl32.Vec3{v, 0, hi}},
		)
	}
	return lines
}
