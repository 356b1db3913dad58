package editor

import (
	"fmt"

	"voxed/internal/input"
)

// Command is an editor action a key can be bound to.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdReset
	CmdShrink
	CmdGrow
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
)

var commandNames = map[Command]string{
	CmdQuit:   "quit",
	CmdReset:  "reset",
	CmdShrink: "shrink",
	CmdGrow:   "grow",
	CmdUp:     "up",
	CmdDown:   "down",
	CmdLeft:   "left",
	CmdRight:  "right",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "none"
}

// ParseCommand maps a command name (as used in config files) to a Command.
func ParseCommand(name string) (Command, error) {
	for c, n := range commandNames {
		if n == name {
			return c, nil
		}
	}
	return CmdNone, fmt.Errorf("editor: unknown command %q", name)
}

// Bindings maps keys to editor commands.
type Bindings map[input.Key]Command

// DefaultBindings returns Q quit, R reset, Backspace shrink, Space grow and the arrow keys.
func DefaultBindings() Bindings {
	return Bindings{
		input.KeyQ:         CmdQuit,
		input.KeyR:         CmdReset,
		input.KeyBackspace: CmdShrink,
		input.KeySpace:     CmdGrow,
		input.KeyUp:        CmdUp,
		input.KeyDown:      CmdDown,
		input.KeyLeft:      CmdLeft,
		input.KeyRight:     CmdRight,
	}
}

// Rebind applies overrides given as command name -> key name on top of b.
// Any key previously bound to an overridden command is released.
func (b Bindings) Rebind(overrides map[string]string) error {
	for cmdName, keyName := range overrides {
		cmd, err := ParseCommand(cmdName)
		if err != nil {
			return err
		}
		key, err := input.ParseKey(keyName)
		if err != nil {
			return fmt.Errorf("editor: binding %s: %w", cmdName, err)
		}
		for k, c := range b {
			if c == cmd {
				delete(b, k)
			}
		}
		b[key] = cmd
	}
	return nil
}
