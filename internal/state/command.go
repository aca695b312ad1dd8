package state

import (
	"image/color"
)

// DisplayCommand is a committed, renderable drawing action.
type DisplayCommand interface {
	ID() string
	// Render draws the command onto s.
	Render(s Surface)
	// Drag extends or moves the command while the pointer is held down.
	Drag(p Point)
	// Bounds is the canvas area the command covers when rendered.
	Bounds() Area
}

var (
	_ DisplayCommand = (*MarkerLine)(nil)
	_ DisplayCommand = (*Sticker)(nil)
)

// MarkerLine is a freehand stroke.
type MarkerLine struct {
	id     string
	Points []Point
	Width  float32
	Color  color.Color
}

// NewMarkerLine starts a line with a single point.
func NewMarkerLine(start Point, width float32, c color.Color) *MarkerLine {
	if c == nil {
		c = color.Black
	}
	return &MarkerLine{
		id:     newID("line"),
		Points: []Point{start},
		Width:  width,
		Color:  c,
	}
}

func (l *MarkerLine) ID() string { return l.id }

// Drag appends p to the line.
func (l *MarkerLine) Drag(p Point) {
	l.Points = append(l.Points, p)
}

// Render draws the line as one connected polyline, or as a dot when the
// pointer was released without moving.
func (l *MarkerLine) Render(s Surface) {
	switch len(l.Points) {
	case 0:
		return
	case 1:
		s.Dot(l.Points[0], l.Width, l.Color)
	default:
		s.Polyline(l.Points, l.Width, l.Color)
	}
}

func (l *MarkerLine) Bounds() Area {
	return BoundsOf(l.Points).Inset(l.Width / 2)
}

// Sticker is an emoji placed on the canvas.
type Sticker struct {
	id    string
	Emoji string
	At    Point
	Size  float32
}

func NewSticker(emoji string, at Point, size float32) *Sticker {
	return &Sticker{
		id:    newID("sticker"),
		Emoji: emoji,
		At:    at,
		Size:  size,
	}
}

func (st *Sticker) ID() string { return st.id }

// Drag moves the sticker to p.
func (st *Sticker) Drag(p Point) {
	st.At = p
}

func (st *Sticker) Render(s Surface) {
	s.Text(st.Emoji, st.At, st.Size, color.Black)
}

func (st *Sticker) Bounds() Area {
	half := st.Size / 2
	return Area{X: st.At.X - half, Y: st.At.Y - half, Width: st.Size, Height: st.Size}
}
