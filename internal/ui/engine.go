// Package ui draws CSS-styled 2D nodes over the 3D view and hit-tests them against the pointer.
package ui

import (
	_ "embed"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

//go:embed default.css
var defaultCSS string

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached and only recomputed when the sheet or the node list changes.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
	font         rl.Font // optional; zero texture ID draws with raylib's default font
}

// New creates an engine styled with the built-in stylesheet and no nodes.
func New() *Engine {
	sheet, _ := ParseCSS(defaultCSS)
	return &Engine{sheet: sheet}
}

// LoadCSS loads and parses a CSS file from path and appends its rules to the current
// stylesheet, so a user sheet only needs the properties it changes.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	if e.sheet == nil {
		e.sheet = &Stylesheet{}
	}
	e.sheet.Rules = append(e.sheet.Rules, sheet.Rules...)
	e.cacheValid = false
	return nil
}

// SetFont sets the font used for node text. Zero texture ID = use raylib default.
func (e *Engine) SetFont(font rl.Font) {
	e.font = font
}

// SetStylesheet replaces the stylesheet.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// SetNodes replaces all nodes. The style cache survives when the list is unchanged, so
// callers can rebuild the list every frame.
func (e *Engine) SetNodes(nodes []*Node) {
	if e.cacheValid && sameNodes(e.nodes, nodes) {
		return
	}
	e.nodes = append(e.nodes[:0], nodes...)
	e.cacheValid = false
}

func sameNodes(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// resolveProps returns merged properties for a node (class and id matched; last wins).
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		if len(sel) < 2 {
			continue
		}
		switch sel[0] {
		case '.':
			if n.Class != sel[1:] {
				continue
			}
		case '#':
			if n.ID != sel[1:] {
				continue
			}
		default:
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}

// resolveBounds sets n.Bounds from style (left, top, width, height). Zero sizes leave Bounds unchanged.
func resolveBounds(n *Node, style ComputedStyle) {
	if style.Width > 0 {
		n.Bounds.Width = float32(style.Width)
	}
	if style.Height > 0 {
		n.Bounds.Height = float32(style.Height)
	}
	n.Bounds.X = float32(style.Left)
	n.Bounds.Y = float32(style.Top)
}

func (e *Engine) refresh() {
	if e.cacheValid {
		return
	}
	e.cachedStyles = e.cachedStyles[:0]
	for _, n := range e.nodes {
		style := ResolveProps(e.resolveProps(n))
		resolveBounds(n, style)
		e.cachedStyles = append(e.cachedStyles, style)
	}
	e.cacheValid = true
}

// layout computes every node's screen rectangle for a screenW x screenH surface.
// A zero width or height stretches to the parent (or screen) edge.
func (e *Engine) layout(screenW, screenH float32) {
	e.refresh()
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		originX, originY, areaW, areaH := float32(0), float32(0), screenW, screenH
		if n.Parent != nil {
			originX, originY = n.Parent.Screen.X, n.Parent.Screen.Y
			areaW, areaH = n.Parent.Screen.Width, n.Parent.Screen.Height
		}
		w, h := n.Bounds.Width, n.Bounds.Height
		if w <= 0 {
			w = areaW - n.Bounds.X
		}
		if h <= 0 {
			h = areaH - n.Bounds.Y
		}
		x, y := originX+n.Bounds.X, originY+n.Bounds.Y
		if style.LeftPct >= 0 {
			x = originX + (areaW-w)*float32(style.LeftPct)/100
		}
		if style.TopPct >= 0 {
			y = originY + (areaH-h)*float32(style.TopPct)/100
		}
		n.Screen = rl.NewRectangle(x+n.Offset.X, y+n.Offset.Y, w, h)
	}
}

// Draw lays out and draws all nodes: background, border, then text.
func (e *Engine) Draw() {
	e.layout(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		r := n.Screen
		x, y, w, h := int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height)

		bg := style.Background
		if n.HasFill {
			bg = n.Fill
		}
		if bg.A > 0 {
			rl.DrawRectangle(x, y, w, h, bg)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text != "" {
			ink := style.Color
			if n.HasInk {
				ink = n.Ink
			}
			if e.font.Texture.ID != 0 {
				pos := rl.NewVector2(float32(x+style.Padding), float32(y+style.Padding))
				rl.DrawTextEx(e.font, n.Text, pos, defaultFontSize, 1, ink)
			} else {
				rl.DrawText(n.Text, x+style.Padding, y+style.Padding, defaultFontSize, ink)
			}
		}
	}
}

// HitTest returns the topmost node with an ID under (x, y), or nil. It uses the rectangles
// from the last Draw.
func (e *Engine) HitTest(x, y float32) *Node {
	p := rl.NewVector2(x, y)
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if n.ID != "" && rl.CheckCollisionPointRec(p, n.Screen) {
			return n
		}
	}
	return nil
}

// Contains reports whether (x, y) is over any node drawn last frame.
func (e *Engine) Contains(x, y float32) bool {
	p := rl.NewVector2(x, y)
	for _, n := range e.nodes {
		if rl.CheckCollisionPointRec(p, n.Screen) {
			return true
		}
	}
	return false
}

// HasStylesheet returns whether any CSS rules are loaded.
func (e *Engine) HasStylesheet() bool {
	return e.sheet != nil && len(e.sheet.Rules) > 0
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}
