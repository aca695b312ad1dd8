package state

import (
	"fmt"
	"image/color"
)

// Point is a position in canvas space.
type Point struct{ X, Y float32 }

// ToolKind selects which command a pointer-down starts.
type ToolKind int

const (
	ToolMarker ToolKind = iota
	ToolSticker
)

func (k ToolKind) String() string {
	switch k {
	case ToolMarker:
		return "marker"
	case ToolSticker:
		return "sticker"
	default:
		return "unknown"
	}
}

// Tool is the currently selected drawing tool.
type Tool struct {
	Kind  ToolKind
	Width float32     // marker line width
	Color color.Color // marker colour
	Emoji string      // sticker glyph
	Size  float32     // sticker text size
}

// Describe returns a short label for status bars and logs.
func (t Tool) Describe() string {
	if t.Kind == ToolSticker {
		return "sticker " + t.Emoji
	}
	return fmt.Sprintf("marker %gpx", t.Width)
}
