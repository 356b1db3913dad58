// Package terminal is the in-window console: ESC opens a bar at the bottom of the window,
// lines starting with "cmd " run through the command registry, and the log tail is shown above.
package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxed/internal/commands"
	"voxed/internal/logger"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
	maxLineChars     = 200
	maxHistory       = 50
)

var (
	// Reused every frame to avoid per-frame colour allocations.
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 220)
)

// Terminal is the console bar. While open it owns the keyboard; the editor receives no keys.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	history  []string
	recall   int
	font     rl.Font // optional; when set, Draw uses DrawTextEx

	// OnToggle, if set, is called whenever ESC opens or closes the console.
	OnToggle func(open bool)
}

// New returns a closed terminal that logs submitted lines and runs "cmd ..." through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing keys.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the font used to draw the console. Zero texture ID = use raylib default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Update handles ESC (toggle) and, when open, typing, paste, history, backspace and enter.
// Call once per frame before editor input is dispatched.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
		t.recall = len(t.history)
		if t.OnToggle != nil {
			t.OnToggle(t.open)
		}
	}
	if !t.open {
		return
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if ctrl && rl.IsKeyPressed(rl.KeyV) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.inputBuf += string(rune(c))
		}
	}
	if (rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace)) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if rl.IsKeyPressed(rl.KeyUp) && t.recall > 0 {
		t.recall--
		t.inputBuf = t.history[t.recall]
	}
	if rl.IsKeyPressed(rl.KeyDown) && t.recall < len(t.history) {
		t.recall++
		t.inputBuf = ""
		if t.recall < len(t.history) {
			t.inputBuf = t.history[t.recall]
		}
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// Submit logs line and, if it is a "cmd ..." line, executes it. Errors go to the log.
func (t *Terminal) Submit(line string) {
	t.log.Log(prompt + line)
	t.history = append(t.history, line)
	if len(t.history) > maxHistory {
		t.history = t.history[len(t.history)-maxHistory:]
	}
	t.recall = len(t.history)

	args, isCmd := commands.Parse(line)
	if !isCmd {
		t.log.Log(`commands start with "cmd ", try "cmd help"`)
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// Draw draws the input bar at the bottom when open, and the recent log lines above it.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := rl.GetScreenWidth()
	screenH := rl.GetScreenHeight()
	barY := screenH - BarHeight

	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), int32(screenW), int32(chatHeight), termChatBgColor)
	}
	lines := t.log.Lines()
	start := max(len(lines)-maxLinesOnScreen, 0)
	for i := start; i < len(lines); i++ {
		y := chatY + (i-start)*lineHeight + padding
		line := lines[i]
		if len(line) > maxLineChars {
			line = line[:maxLineChars-3] + "..."
		}
		t.text(line, padding, y, rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), BarHeight, termBarColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, termLineColor)
	t.text(prompt+t.inputBuf+"|", padding, barY+padding, rl.White)
}

func (t *Terminal) text(s string, x, y int, col rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, col)
		return
	}
	rl.DrawText(s, int32(x), int32(y), fontSize, col)
}
