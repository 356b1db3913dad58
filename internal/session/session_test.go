package session

import (
	"strings"
	"testing"

	"voxed/internal/commands"
	"voxed/internal/editor"
	"voxed/internal/grid"
	"voxed/internal/input"
	"voxed/internal/palette"
	"voxed/internal/scene"
)

func newSession() *Session {
	return New(Options{Aspect: 4.0 / 3.0, Palette: palette.Default(), UI: UIState{ShowPanel: true}})
}

func key(k input.Key, mods input.Mod) input.KeyEvent {
	return input.KeyEvent{Key: k, Action: input.Press, Mods: mods}
}

func dispatchAll(t *testing.T, s *Session, evs ...input.Event) {
	t.Helper()
	for _, ev := range evs {
		if !s.Dispatch(ev) {
			t.Fatalf("%#v not consumed", ev)
		}
	}
}

func TestEditingThroughDispatch(t *testing.T) {
	s := newSession()
	s.SelectColour(1)
	dispatchAll(t, s,
		key(input.KeyRight, 0), key(input.KeyRight, 0),
		key(input.KeyDown, 0), key(input.KeyDown, 0),
		key(input.KeySpace, 0), key(input.KeySpace, 0), key(input.KeySpace, 0),
		key(input.KeyRight, input.ModShift),
	)
	snap := s.Snapshot()
	if snap.Cursor != (editor.Cursor{X: 3, Z: 2}) {
		t.Fatalf("cursor = %+v", snap.Cursor)
	}
	want := grid.Column{Height: 3, Colour: 1}
	if s.Column(3, 2) != want || s.Column(2, 2) != want {
		t.Errorf("(3,2) = %+v, (2,2) = %+v, want both %+v", s.Column(3, 2), s.Column(2, 2), want)
	}
	if snap.Cubes != 6 {
		t.Errorf("Cubes = %d, want 6", snap.Cubes)
	}
}

func TestResetRestoresEverything(t *testing.T) {
	s := newSession()
	s.SetColour(3, palette.White)
	s.SelectColour(3)
	dispatchAll(t, s,
		key(input.KeyDown, 0), key(input.KeySpace, 0),
		input.PointerMoveEvent{X: 10, Y: 10},
		input.ButtonEvent{Button: input.ButtonLeft, Action: input.Press},
		input.PointerMoveEvent{X: 210, Y: 10},
		input.ButtonEvent{Button: input.ButtonLeft, Action: input.Release},
		input.ScrollEvent{DY: 2},
	)
	if snap := s.Snapshot(); snap.Camera.Angle == 0 || snap.Camera.Scale == 1 {
		t.Fatalf("camera did not move: %+v", snap.Camera)
	}
	dispatchAll(t, s, key(input.KeyR, 0))

	for x := 0; x < grid.Dim; x++ {
		for z := 0; z < grid.Dim; z++ {
			if c := s.Column(x, z); c != (grid.Column{}) {
				t.Fatalf("(%d,%d) = %+v after reset", x, z, c)
			}
		}
	}
	snap := s.Snapshot()
	if snap.Cursor != (editor.Cursor{}) || snap.Camera.Angle != 0 || snap.Camera.Scale != 1 || snap.Current != 0 {
		t.Errorf("after reset: %+v", snap)
	}
	if cols, _ := s.Palette(); cols != palette.Default() {
		t.Errorf("palette = %+v", cols)
	}
}

func TestScrollFloor(t *testing.T) {
	s := newSession()
	dispatchAll(t, s, input.ScrollEvent{DY: -1})
	if got := s.Snapshot().Camera.Scale; got != 0.5 {
		t.Fatalf("Scale = %v, want 0.5", got)
	}
	dispatchAll(t, s, input.ScrollEvent{DY: -10})
	if got := s.Snapshot().Camera.Scale; got != 0.2 {
		t.Errorf("Scale = %v, want 0.2", got)
	}
}

func TestConsoleOpenSwallowsNoKeys(t *testing.T) {
	s := newSession()
	s.SetConsoleOpen(true)
	if s.Dispatch(key(input.KeySpace, 0)) {
		t.Error("key consumed while console open")
	}
	if s.Column(0, 0).Height != 0 {
		t.Error("editor acted on a console keystroke")
	}
	if !s.Dispatch(input.ScrollEvent{DY: 1}) {
		t.Error("scroll blocked by console")
	}
}

func TestPointerOverUI(t *testing.T) {
	s := newSession()
	s.SetPointerOverUI(true)
	if s.Dispatch(input.ButtonEvent{Button: input.ButtonLeft, Action: input.Press}) {
		t.Error("press consumed over UI")
	}
	if s.Dispatch(input.PointerMoveEvent{X: 5, Y: 5}) {
		t.Error("move consumed over UI")
	}
	if s.Snapshot().Camera.Dragging {
		t.Error("drag started over UI")
	}
	if !s.Dispatch(key(input.KeySpace, 0)) {
		t.Error("keys must not depend on pointer focus")
	}
}

func TestButtonRepeatIgnored(t *testing.T) {
	s := newSession()
	if s.Dispatch(input.ButtonEvent{Button: input.ButtonLeft, Action: input.Repeat}) {
		t.Error("repeat consumed")
	}
}

func TestQuit(t *testing.T) {
	s := newSession()
	dispatchAll(t, s, key(input.KeyQ, 0))
	if !s.QuitRequested() {
		t.Error("QuitRequested() = false")
	}
}

func TestFrameForEmptyGrid(t *testing.T) {
	s := newSession()
	fr := s.Frame()
	if len(fr.Instructions) != 2 || fr.Instructions[0].Mesh != scene.MeshGrid || !fr.Instructions[1].Wireframe {
		t.Errorf("instructions = %+v", fr.Instructions)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a, b := newSession(), newSession()
	dispatchAll(t, a, key(input.KeySpace, 0))
	a.UI.ShowFPS = true
	if b.Column(0, 0).Height != 0 || b.UI.ShowFPS {
		t.Error("sessions share state")
	}
}

func TestCustomBindings(t *testing.T) {
	b := editor.DefaultBindings()
	if err := b.Rebind(map[string]string{"grow": "w"}); err != nil {
		t.Fatal(err)
	}
	s := New(Options{Aspect: 1, Palette: palette.Default(), Bindings: b})
	if s.Dispatch(key(input.KeySpace, 0)) {
		t.Error("old binding still active")
	}
	dispatchAll(t, s, key(input.KeyW, 0))
	if s.Column(0, 0).Height != 1 {
		t.Error("rebound key did not grow")
	}
}

func newRegistry(s *Session) *commands.Registry {
	reg := commands.NewRegistry()
	s.RegisterCommands(reg)
	return reg
}

func run(t *testing.T, reg *commands.Registry, line string) error {
	t.Helper()
	args, ok := commands.Parse(line)
	if !ok {
		t.Fatalf("%q is not a command line", line)
	}
	return reg.Execute(args)
}

func TestColourAndPaletteCommands(t *testing.T) {
	s := newSession()
	reg := newRegistry(s)
	dispatchAll(t, s, key(input.KeySpace, 0))
	if err := run(t, reg, "cmd colour 5"); err != nil {
		t.Fatal(err)
	}
	if s.Column(0, 0).Colour != 5 || s.Snapshot().Current != 5 {
		t.Errorf("colour command: %+v", s.Snapshot())
	}
	if err := run(t, reg, "cmd palette 5 #102030"); err != nil {
		t.Fatal(err)
	}
	cols, _ := s.Palette()
	if cols[5].Hex() != "#102030" {
		t.Errorf("palette[5] = %s", cols[5].Hex())
	}
	for _, bad := range []string{"cmd colour", "cmd colour 8", "cmd colour x", "cmd palette 1", "cmd palette 1 blue"} {
		if err := run(t, reg, bad); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}

func TestResetAndQuitCommands(t *testing.T) {
	s := newSession()
	reg := newRegistry(s)
	dispatchAll(t, s, key(input.KeySpace, 0))
	if err := run(t, reg, "cmd reset"); err != nil {
		t.Fatal(err)
	}
	if s.Snapshot().Cubes != 0 {
		t.Error("reset command left cubes")
	}
	if err := run(t, reg, "cmd quit"); err != nil || !s.QuitRequested() {
		t.Errorf("quit command: err=%v quit=%v", err, s.QuitRequested())
	}
}

func TestTerrainCommand(t *testing.T) {
	s := newSession()
	reg := newRegistry(s)
	if err := run(t, reg, "cmd terrain --seed 11 --max 6"); err != nil {
		t.Fatal(err)
	}
	first := s.Snapshot().Cubes
	if first == 0 {
		t.Fatal("terrain produced an empty grid")
	}
	for x := 0; x < grid.Dim; x++ {
		for z := 0; z < grid.Dim; z++ {
			if h := s.Column(x, z).Height; h > 6 {
				t.Fatalf("(%d,%d) height %d > 6", x, z, h)
			}
		}
	}
	if err := run(t, reg, "cmd terrain --seed 11 --max 6"); err != nil {
		t.Fatal(err)
	}
	if s.Snapshot().Cubes != first {
		t.Error("same seed gave different terrain")
	}
}

func TestToggleCommands(t *testing.T) {
	s := newSession()
	reg := newRegistry(s)
	var changes []UIState
	s.OnUIChange = func(u UIState) { changes = append(changes, u) }

	if err := run(t, reg, "cmd fps --show"); err != nil {
		t.Fatal(err)
	}
	if err := run(t, reg, "cmd panel --hide"); err != nil {
		t.Fatal(err)
	}
	if err := run(t, reg, "cmd memalloc --show"); err != nil {
		t.Fatal(err)
	}
	if !s.UI.ShowFPS || s.UI.ShowPanel || !s.UI.ShowMemAlloc {
		t.Errorf("UI = %+v", s.UI)
	}
	if len(changes) != 3 {
		t.Errorf("OnUIChange called %d times", len(changes))
	}
	if err := run(t, reg, "cmd fps"); err == nil {
		t.Error("toggle without flag accepted")
	}
	if err := run(t, reg, "cmd fps --hide"); err != nil || s.UI.ShowFPS {
		t.Errorf("fps --hide: err=%v show=%v", err, s.UI.ShowFPS)
	}
}

func TestHelpLogsCommands(t *testing.T) {
	s := newSession()
	reg := newRegistry(s)
	if err := run(t, reg, "cmd help"); err != nil {
		t.Fatal(err)
	}
	joined := strings.Join(s.Log().Lines(), "\n")
	for _, name := range []string{"colour", "palette", "terrain", "reset"} {
		if !strings.Contains(joined, name+" - ") {
			t.Errorf("help missing %q", name)
		}
	}
}
