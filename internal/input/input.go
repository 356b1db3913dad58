// Package input defines the discrete events the window layer delivers to the editor.
// Events carry no raylib types so the editor core can be driven from tests.
package input

import (
	"fmt"
	"strings"
)

// Key identifies a physical key the editor can bind.
type Key int

const (
	KeyUnknown Key = iota
	KeyQ
	KeyR
	KeyBackspace
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEnter
	KeyDelete
)

var keyNames = map[Key]string{
	KeyQ:         "q",
	KeyR:         "r",
	KeyBackspace: "backspace",
	KeySpace:     "space",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEscape:    "escape",
	KeyW:         "w",
	KeyA:         "a",
	KeyS:         "s",
	KeyD:         "d",
	KeyEnter:     "enter",
	KeyDelete:    "delete",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "unknown"
}

// Keys returns every bindable key.
func Keys() []Key {
	out := make([]Key, 0, len(keyNames))
	for k := KeyQ; k <= KeyDelete; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKey maps a key name (case-insensitive, as written in config files) to a Key.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("input: unknown key %q", name)
}

// Action is what happened to a key or button.
type Action int

const (
	Press Action = iota
	Release
	Repeat
)

// Mod is a bit set of held modifier keys.
type Mod int

const (
	ModShift Mod = 1 << iota
	ModControl
	ModAlt
)

// Button is a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Event is one of KeyEvent, PointerMoveEvent, ButtonEvent or ScrollEvent.
type Event interface {
	event()
}

type KeyEvent struct {
	Key    Key
	Action Action
	Mods   Mod
}

type PointerMoveEvent struct {
	X, Y float32
}

type ButtonEvent struct {
	Button Button
	Action Action
}

type ScrollEvent struct {
	DX, DY float32
}

func (KeyEvent) event()         {}
func (PointerMoveEvent) event() {}
func (ButtonEvent) event()      {}
func (ScrollEvent) event()      {}
