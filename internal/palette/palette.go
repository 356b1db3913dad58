package palette

import (
	"fmt"
	"strings"
)

// NumColour is the number of selectable colours.
const NumColour = 8

// RGB is a colour with components in [0, 1].
type RGB struct {
	R, G, B float32
}

// Clamped returns c with every component limited to [0, 1].
func (c RGB) Clamped() RGB {
	return RGB{R: unit(c.R), G: unit(c.G), B: unit(c.B)}
}

// Hex formats c as #rrggbb.
func (c RGB) Hex() string {
	c = c.Clamped()
	return fmt.Sprintf("#%02x%02x%02x", uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5))
}

func unit(v float32) float32 {
	return min(max(v, 0), 1)
}

var (
	White = RGB{1, 1, 1}
	Black = RGB{0, 0, 0}
)

// defaults is the stock palette: four blues/purples, then yellow and warm tones.
var defaults = [NumColour]RGB{
	{0.0, 0.0, 1.0},
	{0.0, 0.4, 1.0},
	{0.4, 0.2, 1.0},
	{0.6, 0.0, 1.0},
	{1.0, 1.0, 0.0},
	{1.0, 0.8, 0.6},
	{1.0, 0.6, 0.2},
	{1.0, 0.4, 1.0},
}

// Default returns the stock palette.
func Default() [NumColour]RGB {
	return defaults
}

// Palette owns NumColour colour entries and the currently selected index.
// The current index is always in [0, NumColour-1].
type Palette struct {
	colours  [NumColour]RGB
	defaults [NumColour]RGB
	current  int
}

// New returns a palette initialised from defs; Reset restores these same entries.
func New(defs [NumColour]RGB) *Palette {
	for i := range defs {
		defs[i] = defs[i].Clamped()
	}
	p := &Palette{defaults: defs}
	p.Reset()
	return p
}

// Reset restores the default entries and selects index 0.
func (p *Palette) Reset() {
	p.colours = p.defaults
	p.current = 0
}

// Current returns the selected index.
func (p *Palette) Current() int {
	return p.current
}

// Select makes i the current index, clamped into range.
func (p *Palette) Select(i int) {
	p.current = min(max(i, 0), NumColour-1)
}

// At returns entry i. Indexing outside [0, NumColour-1] panics.
func (p *Palette) At(i int) RGB {
	return p.colours[i]
}

// Set replaces entry i (components clamped to [0, 1]). It reports false and changes nothing when i is out of range.
func (p *Palette) Set(i int, c RGB) bool {
	if i < 0 || i >= NumColour {
		return false
	}
	p.colours[i] = c.Clamped()
	return true
}

// Colours returns a copy of all entries.
func (p *Palette) Colours() [NumColour]RGB {
	return p.colours
}

// ParseHex parses #RGB or #RRGGBB.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return RGB{}, fmt.Errorf("palette: %q is not a #rgb or #rrggbb colour", s)
	}
	hex := s[1:]
	var r, g, b uint8
	switch len(hex) {
	case 3:
		r, g, b = hexNibble(hex[0])*17, hexNibble(hex[1])*17, hexNibble(hex[2])*17
	case 6:
		r = hexNibble(hex[0])<<4 + hexNibble(hex[1])
		g = hexNibble(hex[2])<<4 + hexNibble(hex[3])
		b = hexNibble(hex[4])<<4 + hexNibble(hex[5])
	default:
		return RGB{}, fmt.Errorf("palette: %q is not a #rgb or #rrggbb colour", s)
	}
	for i := 0; i < len(hex); i++ {
		if !isHex(hex[i]) {
			return RGB{}, fmt.Errorf("palette: bad hex digit %q in %q", hex[i], s)
		}
	}
	return RGB{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255}, nil
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
