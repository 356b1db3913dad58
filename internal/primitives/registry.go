// Package primitives executes composed frames with raylib. It owns the GPU-side cube mesh
// and materials; everything it draws comes from a scene.Frame.
package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"voxed/internal/palette"
	"voxed/internal/scene"
)

// cached holds a mesh and its material. Created lazily on first draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry maps mesh kinds to mesh+material. Meshes are created on first use so that GPU
// resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache map[scene.MeshKind]cached
	lines []scene.Line
}

// NewRegistry returns a registry with nothing loaded.
func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[scene.MeshKind]cached),
		lines: scene.GridLines(),
	}
}

// raylib's cube is centred on the origin; scene cubes span [0,1]³.
var cubeOffset = mgl32.Translate3D(0.5, 0.5, 0.5)

func (r *Registry) ensureCube() cached {
	if c, ok := r.cache[scene.MeshCube]; ok {
		return c
	}
	c := cached{mesh: rl.GenMeshCube(1, 1, 1), mtl: rl.LoadMaterialDefault()}
	r.cache[scene.MeshCube] = c
	return c
}

// Unload frees the GPU resources. Call before the window closes.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		rl.UnloadMaterial(c.mtl)
		delete(r.cache, k)
	}
}

// DrawFrame clears to the frame's colour and draws every instruction in order with the
// frame's view and projection. Must be called between BeginDrawing and EndDrawing; it opens
// and closes its own 3D mode.
func (r *Registry) DrawFrame(fr scene.Frame) {
	rl.ClearBackground(toColor(fr.Clear))
	rl.BeginMode3D(rl.Camera3D{Up: rl.NewVector3(0, 1, 0), Fovy: 45, Projection: rl.CameraPerspective})
	rl.SetMatrixProjection(toMatrix(fr.Projection))
	rl.SetMatrixModelview(toMatrix(fr.View))

	depth := true
	for _, in := range fr.Instructions {
		if in.DepthTest != depth {
			rl.DrawRenderBatchActive()
			if in.DepthTest {
				rl.EnableDepthTest()
			} else {
				rl.DisableDepthTest()
			}
			depth = in.DepthTest
		}
		switch in.Mesh {
		case scene.MeshGrid:
			r.drawGrid(in)
		case scene.MeshCube:
			r.drawCube(in)
		}
	}
	rl.DrawRenderBatchActive()
	rl.EnableDepthTest()
	rl.EndMode3D()
}

func (r *Registry) drawCube(in scene.Instruction) {
	c := r.ensureCube()
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = toColor(in.Colour)
	}
	if in.Wireframe {
		rl.EnableWireMode()
		defer rl.DisableWireMode()
	}
	rl.DrawMesh(c.mesh, c.mtl, toMatrix(in.Transform.Mul4(cubeOffset)))
}

// drawGrid transforms the line endpoints on the CPU; line batches are drawn with the
// view-projection only.
func (r *Registry) drawGrid(in scene.Instruction) {
	col := toColor(in.Colour)
	for _, l := range r.lines {
		a := mgl32.TransformCoordinate(l.From, in.Transform)
		b := mgl32.TransformCoordinate(l.To, in.Transform)
		rl.DrawLine3D(rl.NewVector3(a[0], a[1], a[2]), rl.NewVector3(b[0], b[1], b[2]), col)
	}
}

// toMatrix copies a column-major mgl32 matrix into raylib's layout.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toColor(c palette.RGB) rl.Color {
	c = c.Clamped()
	return rl.NewColor(uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5), 255)
}
