// Package session owns one editor's state and routes window events to the controller and camera.
package session

import (
	"voxed/internal/camera"
	"voxed/internal/editor"
	"voxed/internal/grid"
	"voxed/internal/input"
	"voxed/internal/logger"
	"voxed/internal/palette"
	"voxed/internal/scene"
)

// UIState holds the window-layer flags. Each session has its own; nothing here is global.
type UIState struct {
	ShowPanel    bool
	ShowFPS      bool
	ShowMemAlloc bool
	// ConsoleOpen routes keys to the console instead of the editor.
	ConsoleOpen bool
	// PointerOverUI is set every frame by the window layer from panel hit-testing.
	PointerOverUI bool
}

// Options configures a new session.
type Options struct {
	// Aspect is the framebuffer width / height.
	Aspect   float32
	Palette  [palette.NumColour]palette.RGB
	Bindings editor.Bindings
	Log      *logger.Logger
	UI       UIState
}

// Session exclusively owns the grid, palette, cursor and camera state. The controller and
// rig mutate them through pointers; the composer only reads.
type Session struct {
	grid    grid.Grid
	palette *palette.Palette
	cursor  editor.Cursor
	camera  camera.State

	ctl  *editor.Controller
	rig  *camera.Rig
	comp *scene.Composer
	log  *logger.Logger

	UI   UIState
	quit bool

	// OnUIChange, if set, is called after a console command changes a UI flag.
	OnUIChange func(UIState)
}

// New builds a session with an empty grid, the cursor at (0,0) and the default camera.
func New(opts Options) *Session {
	s := &Session{
		palette: palette.New(opts.Palette),
		camera:  camera.DefaultState(),
		log:     opts.Log,
		UI:      opts.UI,
	}
	if s.log == nil {
		s.log = logger.New("")
	}
	s.rig = camera.NewRig(&s.camera, opts.Aspect)
	s.rig.SetPointerOverUI(func() bool { return s.UI.PointerOverUI })
	s.ctl = editor.New(&s.grid, s.palette, &s.cursor, s.rig, opts.Bindings)
	s.ctl.OnQuit = func() {
		if !s.quit {
			s.log.Log("quit requested")
		}
		s.quit = true
	}
	s.ctl.OnReset = func() {
		s.log.Log("editor reset")
	}
	s.comp = scene.NewComposer(&s.grid, s.palette, &s.cursor, s.rig)
	return s
}

// Dispatch hands one event to the controller or the camera and reports whether it was consumed.
func (s *Session) Dispatch(ev input.Event) bool {
	switch ev := ev.(type) {
	case input.KeyEvent:
		if s.UI.ConsoleOpen {
			return false
		}
		return s.ctl.HandleKey(ev)
	case input.PointerMoveEvent:
		return s.rig.OnPointerMove(ev.X, ev.Y)
	case input.ButtonEvent:
		if ev.Action == input.Repeat {
			return false
		}
		return s.rig.OnButton(ev.Button, ev.Action == input.Press)
	case input.ScrollEvent:
		return s.rig.OnScroll(ev.DX, ev.DY)
	}
	return false
}

// SetPointerOverUI records whether the UI layer has the pointer this frame.
func (s *Session) SetPointerOverUI(over bool) {
	s.UI.PointerOverUI = over
}

// SetConsoleOpen routes keys away from the editor while the console has focus.
func (s *Session) SetConsoleOpen(open bool) {
	s.UI.ConsoleOpen = open
}

// SelectColour is the UI's colour pick: it selects i and repaints the active cell.
func (s *Session) SelectColour(i int) {
	s.ctl.SelectColour(i)
	s.log.Logf("colour %d selected", s.palette.Current())
}

// SetColour replaces palette entry i, as the UI colour picker does.
func (s *Session) SetColour(i int, c palette.RGB) bool {
	return s.palette.Set(i, c)
}

func (s *Session) RequestReset() {
	s.ctl.RequestReset()
}

func (s *Session) RequestQuit() {
	s.ctl.RequestQuit()
}

// QuitRequested reports whether quit was asked for by key, UI or console.
func (s *Session) QuitRequested() bool {
	return s.quit
}

// SetAspect forwards a framebuffer resize to the camera.
func (s *Session) SetAspect(aspect float32) {
	s.rig.SetAspect(aspect)
}

// Frame composes this frame's draw list. Its instruction slice is reused by the next call.
func (s *Session) Frame() scene.Frame {
	return s.comp.Compose()
}

// Palette returns a copy of the palette entries and the current index.
func (s *Session) Palette() ([palette.NumColour]palette.RGB, int) {
	return s.palette.Colours(), s.palette.Current()
}

// Snapshot is a read-only view of the session for overlays.
type Snapshot struct {
	Cursor  editor.Cursor
	Column  grid.Column
	Current int
	Camera  camera.State
	Cubes   int
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Cursor:  s.cursor,
		Column:  s.grid.Column(s.cursor.X, s.cursor.Z),
		Current: s.palette.Current(),
		Camera:  s.camera,
		Cubes:   s.grid.Filled(),
	}
}

// Column returns the column at (x, z).
func (s *Session) Column(x, z int) grid.Column {
	return s.grid.Column(x, z)
}

// Log returns the session logger.
func (s *Session) Log() *logger.Logger {
	return s.log
}
