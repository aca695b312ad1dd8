package state

import (
	"image/color"
)

// ToolPreview is an uncommitted rendering of the current tool at the cursor.
type ToolPreview interface {
	Render(s Surface)
}

// previewAlpha is applied to sticker previews so they read as not yet placed.
const previewAlpha = 0x80

// MarkerPreview outlines the marker tip.
type MarkerPreview struct {
	At    Point
	Width float32
	Color color.Color
}

func (m MarkerPreview) Render(s Surface) {
	s.Ring(m.At, m.Width, m.Color)
}

// StickerPreview shows the sticker that a click would place.
type StickerPreview struct {
	Emoji string
	At    Point
	Size  float32
}

func (sp StickerPreview) Render(s Surface) {
	s.Text(sp.Emoji, sp.At, sp.Size, color.NRGBA{A: previewAlpha})
}

// previewFor builds the preview of tool t at p.
func previewFor(t Tool, p Point) ToolPreview {
	if t.Kind == ToolSticker {
		return StickerPreview{Emoji: t.Emoji, At: p, Size: t.Size}
	}
	return MarkerPreview{At: p, Width: t.Width, Color: t.Color}
}
