package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LetsPaint/internal/state"
)

// BoardWidget is the drawing canvas. It forwards pointer input to a Sketchpad
// and redraws whenever the pad reports a change.
type BoardWidget struct {
	widget.BaseWidget
	pad *state.Sketchpad
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(pad *state.Sketchpad) *BoardWidget {
	b := &BoardWidget{pad: pad}
	b.ExtendBaseWidget(b)
	pad.Subscribe(func(state.Event) {
		b.Refresh()
	})
	return b
}

// Pad returns the sketchpad behind the widget.
func (b *BoardWidget) Pad() *state.Sketchpad {
	return b.pad
}

func point(p fyne.Position) state.Point {
	return state.Point{X: p.X, Y: p.Y}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pad.PointerDown(point(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pad.PointerUp()
	}
}

func (b *BoardWidget) MouseIn(e *desktop.MouseEvent) {
	b.MouseMoved(e)
}

// MouseMoved only drives the preview. While a button is held Fyne also sends
// Dragged for the same motion, which extends the stroke.
func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if !b.pad.Drawing() {
		b.pad.PointerMove(point(e.Position))
	}
}

func (b *BoardWidget) MouseOut() {
	b.pad.PointerLeave()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.pad.Drawing() {
		b.pad.PointerMove(point(e.Position))
	}
}

// DragEnd covers a release outside the window, where MouseUp never arrives.
func (b *BoardWidget) DragEnd() {
	b.pad.PointerUp()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.background.StrokeColor = color.Gray{Y: 150}
	r.background.StrokeWidth = 1
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	surface    objectSurface
	objects    []fyne.CanvasObject
}

// rebuild replays the pad into a fresh object list.
func (r *boardWidgetRenderer) rebuild() {
	state.Render(r.board.pad, &r.surface)
	objects := make([]fyne.CanvasObject, 0, len(r.surface.objects)+1)
	objects = append(objects, r.background)
	r.objects = append(objects, r.surface.objects...)
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	a := r.board.pad.Area()
	return fyne.NewSize(a.Width, a.Height)
}

func (r *boardWidgetRenderer) Destroy() {}
