package ui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxed/internal/palette"
)

// swatchStep is the horizontal distance between swatch origins.
const swatchStep = 34

// ActionKind is what a click on the panel asks for.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSelect
	ActionReset
	ActionQuit
)

// Action is a panel click resolved to an editor request. Index is set for ActionSelect.
type Action struct {
	Kind  ActionKind
	Index int
}

// Panel is the palette window: one swatch per palette entry, a marker on the current one,
// and Reset and Quit buttons. Styled by .palette, .swatch, .swatch-marker and .button.
type Panel struct {
	frame    *Node
	title    *Node
	swatches [palette.NumColour]*Node
	marker   *Node
	reset    *Node
	quit     *Node
}

// NewPanel creates the panel nodes.
func NewPanel() *Panel {
	p := &Panel{
		frame: NewNode("panel", "palette", "palette", ""),
		title: NewNode("label", "palette-title", "", "Palette"),
	}
	p.title.Parent = p.frame
	for i := range p.swatches {
		sw := NewNode("swatch", "swatch", "swatch-"+strconv.Itoa(i), strconv.Itoa(i))
		sw.Parent = p.frame
		sw.Offset.X = float32(i * swatchStep)
		sw.HasFill = true
		p.swatches[i] = sw
	}
	p.marker = NewNode("marker", "swatch-marker", "", "")
	p.marker.Parent = p.frame
	p.reset = NewNode("button", "button", "reset", "Reset")
	p.reset.Parent = p.frame
	p.quit = NewNode("button", "button", "quit", "Quit")
	p.quit.Parent = p.frame
	return p
}

// AppendNodes appends the panel's nodes to dst when visible, after updating swatch fills and
// the marker from colours and current. When visible is false, dst is returned unchanged.
func (p *Panel) AppendNodes(dst []*Node, visible bool, colours [palette.NumColour]palette.RGB, current int) []*Node {
	if !visible {
		return dst
	}
	for i, sw := range p.swatches {
		sw.Fill = ColorOf(colours[i])
		sw.HasInk = true
		sw.Ink = rl.Black
		if luminance(colours[i]) < 0.4 {
			sw.Ink = rl.White
		}
	}
	p.marker.Offset.X = float32(current * swatchStep)
	dst = append(dst, p.frame, p.title)
	dst = append(dst, p.swatches[:]...)
	return append(dst, p.marker, p.reset, p.quit)
}

// ActionFor maps a hit node to the request it stands for.
func (p *Panel) ActionFor(n *Node) Action {
	if n == nil {
		return Action{}
	}
	switch n {
	case p.reset:
		return Action{Kind: ActionReset}
	case p.quit:
		return Action{Kind: ActionQuit}
	}
	for i, sw := range p.swatches {
		if n == sw {
			return Action{Kind: ActionSelect, Index: i}
		}
	}
	return Action{}
}

// Click returns the action under (x, y), using the layout from the last Draw.
func (p *Panel) Click(e *Engine, x, y float32) Action {
	return p.ActionFor(e.HitTest(x, y))
}

func luminance(c palette.RGB) float32 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}
