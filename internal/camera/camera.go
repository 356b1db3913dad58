package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"voxed/internal/grid"
	"voxed/internal/input"
)

const (
	// Sensitivity divides horizontal pointer travel (pixels) into radians of orbit.
	Sensitivity = 100
	// ZoomStep is the scale change per scroll unit on either axis.
	ZoomStep = 0.5
	MinScale = float32(0.2)
	MaxScale = float32(5.0)

	fovyDegrees = 45
	nearPlane   = 1
	farPlane    = 1000
)

// State is the orbit camera's mutable state. Angle accumulates without bound.
type State struct {
	Angle       float32
	Scale       float32
	Dragging    bool
	LastX       float32
	LastY       float32
	DragOriginX float32
}

// DefaultState returns an unrotated camera at unit scale.
func DefaultState() State {
	return State{Scale: 1}
}

// Rig turns pointer and scroll input into the model transform. View and projection are fixed
// once built; only SetAspect rebuilds the projection.
type Rig struct {
	state  *State
	view   mgl32.Mat4
	proj   mgl32.Mat4
	overUI func() bool
}

// NewRig returns a rig driving state. aspect is framebuffer width / height.
func NewRig(state *State, aspect float32) *Rig {
	r := &Rig{state: state}
	// Eye sits above and to the +Z side of the grid, 2*Dim away from its centre at 45 degrees.
	d := float32(grid.Dim) * 2 * math32.Sqrt(0.5)
	r.view = mgl32.LookAtV(mgl32.Vec3{0, d, d}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	r.SetAspect(aspect)
	return r
}

// SetPointerOverUI installs the check used to ignore pointer input while the UI layer has the pointer.
func (r *Rig) SetPointerOverUI(fn func() bool) {
	r.overUI = fn
}

// SetAspect rebuilds the projection for a new framebuffer aspect ratio. Non-positive values are ignored.
func (r *Rig) SetAspect(aspect float32) {
	if aspect <= 0 || math32.IsNaN(aspect) || math32.IsInf(aspect, 0) {
		if r.proj != (mgl32.Mat4{}) {
			return
		}
		aspect = 1
	}
	r.proj = mgl32.Perspective(mgl32.DegToRad(fovyDegrees), aspect, nearPlane, farPlane)
}

func (r *Rig) pointerOverUI() bool {
	return r.overUI != nil && r.overUI()
}

// OnPointerMove rotates the camera while dragging and records the pointer position.
func (r *Rig) OnPointerMove(x, y float32) bool {
	if r.pointerOverUI() {
		return false
	}
	if r.state.Dragging {
		r.state.Angle += (x - r.state.LastX) / Sensitivity
	}
	r.state.LastX = x
	r.state.LastY = y
	return true
}

// OnButton starts a drag on primary press and ends it on primary release. Other buttons are not consumed.
func (r *Rig) OnButton(b input.Button, pressed bool) bool {
	if r.pointerOverUI() || b != input.ButtonLeft {
		return false
	}
	if pressed {
		r.state.Dragging = true
		r.state.DragOriginX = r.state.LastX
	} else {
		r.state.Dragging = false
	}
	return true
}

// OnScroll zooms by ZoomStep per unit on both axes, clamped to [MinScale, MaxScale].
func (r *Rig) OnScroll(dx, dy float32) bool {
	s := r.state.Scale + dy*ZoomStep + dx*ZoomStep
	r.state.Scale = math32.Min(math32.Max(s, MinScale), MaxScale)
	return true
}

// Reset restores the unrotated, unit-scale view. An active drag is left alone; it still ends on release.
func (r *Rig) Reset() {
	r.state.Angle = 0
	r.state.Scale = 1
}

// Model returns RotateY(angle) * Scale(scale) * Translate(-Dim/2, 0, -Dim/2).
// A grid vertex is re-centred on the origin first, then scaled, then orbited.
func (r *Rig) Model() mgl32.Mat4 {
	half := float32(grid.Dim) / 2
	s := r.state.Scale
	return mgl32.HomogRotate3DY(r.state.Angle).
		Mul4(mgl32.Scale3D(s, s, s)).
		Mul4(mgl32.Translate3D(-half, 0, -half))
}

func (r *Rig) View() mgl32.Mat4 {
	return r.view
}

func (r *Rig) Projection() mgl32.Mat4 {
	return r.proj
}

// State returns a copy of the camera state.
func (r *Rig) State() State {
	return *r.state
}
