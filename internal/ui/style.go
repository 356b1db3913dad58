package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxed/internal/palette"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".panel" or "#menu"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle holds resolved values used for drawing.
// LeftPct/TopPct are 0-100 for percentage positioning within the parent; -1 means Left/Top are pixels.
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32 // text offset from the node's top-left
}

// DefaultComputedStyle returns a minimal style (transparent background, white text, no border, zero size).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Color:   rl.White,
		Border:  rl.Black,
		LeftPct: -1,
		TopPct:  -1,
		Padding: 4,
	}
}

// ParseHexColor parses #RGB or #RRGGBB into an opaque rl.Color. Returns rl.Black and false on parse error.
func ParseHexColor(s string) (rl.Color, bool) {
	c, err := palette.ParseHex(s)
	if err != nil {
		return rl.Black, false
	}
	return ColorOf(c), true
}

// ColorOf converts a palette colour to an opaque raylib colour.
func ColorOf(c palette.RGB) rl.Color {
	c = c.Clamped()
	return rl.NewColor(uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5), 255)
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" to int32 (0–100). Used for left/top percentage positioning.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps builds a ComputedStyle from a merged property map (e.g. from matching rules).
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background":
			if v == "none" || v == "transparent" {
				out.Background = rl.Color{}
			} else if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if v == "none" {
				out.HasBorder = false
			} else if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		}
	}
	return out
}
