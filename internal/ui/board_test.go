package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LetsPaint/internal/config"
	"LetsPaint/internal/state"
)

func mouse(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func countObjects[T fyne.CanvasObject](objects []fyne.CanvasObject) int {
	n := 0
	for _, o := range objects {
		if _, ok := o.(T); ok {
			n++
		}
	}
	return n
}

func newTestBoard(t *testing.T) *BoardWidget {
	test.NewTempApp(t)
	return NewBoardWidget(NewSketchpad(config.Default()))
}

func TestBoardDrawsConnectedLine(t *testing.T) {
	b := newTestBoard(t)
	r := test.WidgetRenderer(b)

	b.MouseIn(mouse(10, 10))
	b.MouseDown(mouse(10, 10))
	b.MouseMoved(mouse(99, 99)) // hover motion is ignored while drawing
	b.Dragged(drag(20, 20))
	b.Dragged(drag(30, 10))
	b.Dragged(drag(40, 20))
	b.MouseUp(mouse(40, 20))
	b.DragEnd()

	cmds := b.Pad().Commands()
	require.Len(t, cmds, 1)
	line := cmds[0].(*state.MarkerLine)
	assert.Equal(t, []state.Point{{10, 10}, {20, 20}, {30, 10}, {40, 20}}, line.Points)

	objects := r.Objects()
	assert.Equal(t, 3, countObjects[*canvas.Line](objects))
	assert.Equal(t, 1, countObjects[*canvas.Circle](objects), "marker preview ring")
}

func TestBoardPreviewHiddenAfterMouseOut(t *testing.T) {
	b := newTestBoard(t)
	r := test.WidgetRenderer(b)

	b.MouseMoved(mouse(50, 50))
	assert.Equal(t, 1, countObjects[*canvas.Circle](r.Objects()))

	b.MouseOut()
	assert.Equal(t, 0, countObjects[*canvas.Circle](r.Objects()))
	assert.Len(t, r.Objects(), 1, "only the background is left")
}

func TestBoardStickerRendersText(t *testing.T) {
	b := newTestBoard(t)
	r := test.WidgetRenderer(b)
	require.NoError(t, b.Pad().SelectSticker("🎃"))

	b.MouseDown(mouse(100, 100))
	b.Dragged(drag(120, 110))
	b.MouseUp(mouse(120, 110))
	b.MouseOut()

	objects := r.Objects()
	require.Equal(t, 1, countObjects[*canvas.Text](objects))
	for _, o := range objects {
		if text, ok := o.(*canvas.Text); ok {
			assert.Equal(t, "🎃", text.Text)
			center := text.Position().Add(fyne.NewPos(text.Size().Width/2, text.Size().Height/2))
			assert.InDelta(t, 120, center.X, 0.01)
			assert.InDelta(t, 110, center.Y, 0.01)
		}
	}
}

func TestBoardMinSizeIsCanvas(t *testing.T) {
	b := newTestBoard(t)
	assert.Equal(t, fyne.NewSize(256, 256), b.MinSize())
}

func TestBoardIgnoresSecondaryButton(t *testing.T) {
	b := newTestBoard(t)
	e := mouse(10, 10)
	e.Button = desktop.MouseButtonSecondary
	b.MouseDown(e)
	assert.False(t, b.Pad().Drawing())
	assert.Empty(t, b.Pad().Commands())
}

func TestBoardThickLineHasRoundJoints(t *testing.T) {
	b := newTestBoard(t)
	r := test.WidgetRenderer(b)
	require.NoError(t, b.Pad().SelectMarker(6))

	b.MouseDown(mouse(10, 10))
	b.Dragged(drag(50, 10))
	b.Dragged(drag(50, 50))
	b.MouseUp(mouse(50, 50))
	b.MouseOut()

	objects := r.Objects()
	assert.Equal(t, 2, countObjects[*canvas.Line](objects))
	assert.Equal(t, 1, countObjects[*canvas.Circle](objects))
}
