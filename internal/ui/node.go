package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label, swatch or button. Class and ID are used for CSS
// matching; ID also names the node for hit-testing.
type Node struct {
	Type  string // "panel", "label", "swatch", "button"
	Class string // e.g. "palette" for .palette
	ID    string // e.g. "quit" for #quit
	Text  string

	// Parent, if set, makes the CSS left/top relative to the parent's drawn position.
	// Parents must come before their children in the node list.
	Parent *Node
	// Offset is added to the resolved position every frame without restyling.
	Offset rl.Vector2
	// Fill overrides the CSS background when HasFill is set.
	Fill    rl.Color
	HasFill bool
	// Ink overrides the CSS text colour when HasInk is set.
	Ink    rl.Color
	HasInk bool

	// Bounds is the styled size and position; Screen is where the node was last drawn.
	Bounds rl.Rectangle
	Screen rl.Rectangle
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}
