// Package debug draws the runtime overlays: FPS, heap and the editor readout.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"voxed/internal/session"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the overlay state. FPS and memory are toggled from session.UIState; the
// editor readout (cursor, column, camera) is drawn with the palette panel.
type Debug struct {
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
	lastSnap     session.Snapshot
	readout      string
	font         rl.Font // optional; when set, Draw uses DrawTextEx
}

// New returns a Debug system with nothing cached.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the overlay font. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Draw renders the overlays enabled in ui. FPS and memory go top-right in green; the
// readout goes bottom-left when the panel is shown. Text is rebuilt only when it changes
// or every updateInterval frames.
func (d *Debug) Draw(ui session.UIState, snap session.Snapshot) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if ui.ShowFPS {
		if update || d.lastFpsText == "" {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.lastFpsText, screenW, y)
		y += lineHeight
	}

	if ui.ShowMemAlloc {
		if update || d.lastMemText == "" {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.drawRight(d.lastMemText, screenW, y)
	}

	if ui.ShowPanel && !ui.ConsoleOpen {
		if d.readout == "" || snap != d.lastSnap {
			d.readout = Readout(snap)
			d.lastSnap = snap
		}
		d.draw(d.readout, padding, int32(rl.GetScreenHeight())-lineHeight-padding, rl.RayWhite)
	}
}

// Readout formats the cursor, active column and camera for display.
func Readout(s session.Snapshot) string {
	return fmt.Sprintf("cell %d,%d  height %d  colour %d  |  angle %.0f°  zoom %.1fx  |  %d cubes",
		s.Cursor.X, s.Cursor.Z, s.Column.Height, s.Column.Colour,
		mgl32.RadToDeg(s.Camera.Angle), s.Camera.Scale, s.Cubes)
}

func (d *Debug) drawRight(text string, screenW, y int32) {
	var w int32
	if d.font.Texture.ID != 0 {
		w = int32(rl.MeasureTextEx(d.font, text, fontSize, 1).X)
	} else {
		w = rl.MeasureText(text, fontSize)
	}
	d.draw(text, screenW-w-padding, y, rl.Green)
}

func (d *Debug) draw(text string, x, y int32, col rl.Color) {
	if d.font.Texture.ID != 0 {
		rl.DrawTextEx(d.font, text, rl.NewVector2(float32(x), float32(y)), fontSize, 1, col)
		return
	}
	rl.DrawText(text, x, y, fontSize, col)
}
