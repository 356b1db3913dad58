// Package graphics owns the raylib window and main loop and translates raylib's polled
// input into input events.
package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voxed/internal/config"
	"voxed/internal/input"
)

// Callbacks connect the loop to the editor. Any of them may be nil.
type Callbacks struct {
	// Init runs once the GL context exists; allocate GPU resources here.
	Init func()
	// Update runs first each frame, before events are dispatched (console, overlays).
	Update func()
	// Dispatch receives each polled event in order.
	Dispatch func(ev input.Event) bool
	// Resize receives the framebuffer aspect ratio on the first frame and after every resize.
	Resize func(aspect float32)
	// Draw runs between BeginDrawing and EndDrawing; it clears and draws the frame.
	Draw func()
	// Done ends the loop when it returns true.
	Done func() bool
	// Close runs before the window is destroyed.
	Close func()
}

// Run opens the window described by win and runs the loop until the window is closed or
// Done reports true. ESC belongs to the console, so it never closes the window.
func Run(win config.Window, cb Callbacks) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if win.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(win.TargetFPS)

	if cb.Init != nil {
		cb.Init()
	}
	if cb.Close != nil {
		defer cb.Close()
	}

	var p poller
	var events []input.Event
	first := true
	for !rl.WindowShouldClose() {
		if cb.Resize != nil && (first || rl.IsWindowResized()) {
			cb.Resize(aspect())
			first = false
		}
		if cb.Update != nil {
			cb.Update()
		}
		events = p.poll(events[:0])
		if cb.Dispatch != nil {
			for _, ev := range events {
				cb.Dispatch(ev)
			}
		}
		if cb.Done != nil && cb.Done() {
			break
		}

		rl.BeginDrawing()
		if cb.Draw != nil {
			cb.Draw()
		}
		rl.EndDrawing()
	}
}

func aspect() float32 {
	w, h := rl.GetRenderWidth(), rl.GetRenderHeight()
	if w <= 0 || h <= 0 {
		return 0
	}
	return float32(w) / float32(h)
}
