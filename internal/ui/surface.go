package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"LetsPaint/internal/state"
)

// objectSurface turns a render pass into Fyne canvas objects.
type objectSurface struct {
	objects []fyne.CanvasObject
}

var _ state.Surface = (*objectSurface)(nil)

func pos(p state.Point) fyne.Position {
	return fyne.NewPos(p.X, p.Y)
}

func (s *objectSurface) Clear() {
	// The renderer may still hold the previous slice, so start a new one.
	s.objects = nil
}

// Polyline draws one canvas.Line per segment. Thick lines get a dot on each
// inner vertex so the joints stay round.
func (s *objectSurface) Polyline(points []state.Point, width float32, c color.Color) {
	for i := 0; i < len(points)-1; i++ {
		segment := canvas.NewLine(c)
		segment.StrokeWidth = width
		segment.Position1 = pos(points[i])
		segment.Position2 = pos(points[i+1])
		s.objects = append(s.objects, segment)
	}
	if width <= 2 || len(points) < 3 {
		return
	}
	for _, p := range points[1 : len(points)-1] {
		s.Dot(p, width, c)
	}
}

func (s *objectSurface) Dot(center state.Point, diameter float32, c color.Color) {
	dot := canvas.NewCircle(c)
	r := diameter / 2
	dot.Position1 = fyne.NewPos(center.X-r, center.Y-r)
	dot.Position2 = fyne.NewPos(center.X+r, center.Y+r)
	s.objects = append(s.objects, dot)
}

func (s *objectSurface) Ring(center state.Point, diameter float32, c color.Color) {
	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeColor = c
	ring.StrokeWidth = 1
	r := diameter / 2
	if r < 1 {
		r = 1
	}
	ring.Position1 = fyne.NewPos(center.X-r, center.Y-r)
	ring.Position2 = fyne.NewPos(center.X+r, center.Y+r)
	s.objects = append(s.objects, ring)
}

func (s *objectSurface) Text(str string, center state.Point, size float32, c color.Color) {
	text := canvas.NewText(str, c)
	text.TextSize = size
	bounds := fyne.MeasureText(str, size, text.TextStyle)
	text.Resize(bounds)
	text.Move(fyne.NewPos(center.X-bounds.Width/2, center.Y-bounds.Height/2))
	s.objects = append(s.objects, text)
}
