package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voxed/internal/input"
)

// keyMap lists every raylib key the editor can be bound to, in polling order.
var keyMap = []struct {
	rl int32
	in input.Key
}{
	{rl.KeyQ, input.KeyQ},
	{rl.KeyR, input.KeyR},
	{rl.KeyBackspace, input.KeyBackspace},
	{rl.KeySpace, input.KeySpace},
	{rl.KeyUp, input.KeyUp},
	{rl.KeyDown, input.KeyDown},
	{rl.KeyLeft, input.KeyLeft},
	{rl.KeyRight, input.KeyRight},
	{rl.KeyEscape, input.KeyEscape},
	{rl.KeyW, input.KeyW},
	{rl.KeyA, input.KeyA},
	{rl.KeyS, input.KeyS},
	{rl.KeyD, input.KeyD},
	{rl.KeyEnter, input.KeyEnter},
	{rl.KeyDelete, input.KeyDelete},
}

var buttonMap = []struct {
	rl rl.MouseButton
	in input.Button
}{
	{rl.MouseButtonLeft, input.ButtonLeft},
	{rl.MouseButtonRight, input.ButtonRight},
	{rl.MouseButtonMiddle, input.ButtonMiddle},
}

// poller turns raylib's per-frame input state into discrete events.
type poller struct {
	lastX, lastY float32
	seen         bool
}

func (p *poller) poll(dst []input.Event) []input.Event {
	mods := currentMods()
	for _, k := range keyMap {
		switch {
		case rl.IsKeyPressed(k.rl):
			dst = append(dst, input.KeyEvent{Key: k.in, Action: input.Press, Mods: mods})
		case rl.IsKeyPressedRepeat(k.rl):
			dst = append(dst, input.KeyEvent{Key: k.in, Action: input.Repeat, Mods: mods})
		case rl.IsKeyReleased(k.rl):
			dst = append(dst, input.KeyEvent{Key: k.in, Action: input.Release, Mods: mods})
		}
	}

	pos := rl.GetMousePosition()
	if !p.seen || pos.X != p.lastX || pos.Y != p.lastY {
		dst = append(dst, input.PointerMoveEvent{X: pos.X, Y: pos.Y})
		p.lastX, p.lastY, p.seen = pos.X, pos.Y, true
	}

	for _, b := range buttonMap {
		if rl.IsMouseButtonPressed(b.rl) {
			dst = append(dst, input.ButtonEvent{Button: b.in, Action: input.Press})
		}
		if rl.IsMouseButtonReleased(b.rl) {
			dst = append(dst, input.ButtonEvent{Button: b.in, Action: input.Release})
		}
	}

	if wheel := rl.GetMouseWheelMoveV(); wheel.X != 0 || wheel.Y != 0 {
		dst = append(dst, input.ScrollEvent{DX: wheel.X, DY: wheel.Y})
	}
	return dst
}

func currentMods() input.Mod {
	var m input.Mod
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		m |= input.ModShift
	}
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		m |= input.ModControl
	}
	if rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt) {
		m |= input.ModAlt
	}
	return m
}
