package state

import "image/color"

// Surface is a retained 2D drawing target. A render pass calls Clear once and
// then draws back to front.
type Surface interface {
	Clear()
	Polyline(points []Point, width float32, c color.Color)
	Dot(center Point, diameter float32, c color.Color)
	Ring(center Point, diameter float32, c color.Color)
	Text(s string, center Point, size float32, c color.Color)
}

// Render clears s, replays every committed command in z-order and then draws
// the tool preview if the pad is idle with the cursor on the canvas.
func Render(pad *Sketchpad, s Surface) {
	s.Clear()
	for _, cmd := range pad.history.displayList {
		if !cmd.Bounds().Overlaps(pad.area) {
			continue
		}
		cmd.Render(s)
	}
	if p := pad.Preview(); p != nil {
		p.Render(s)
	}
}
