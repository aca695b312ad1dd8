package state

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawLine presses at the first point, drags through the rest and releases.
func drawLine(pad *Sketchpad, points ...Point) {
	pad.PointerDown(points[0])
	for _, p := range points[1:] {
		pad.PointerMove(p)
	}
	pad.PointerUp()
}

func recordEvents(pad *Sketchpad) *[]EventType {
	var got []EventType
	pad.Subscribe(func(e Event) { got = append(got, e.Type) })
	return &got
}

func TestDrawingNPointsMakesNPointLine(t *testing.T) {
	pad := NewSketchpad(256, 256, 2)
	pts := []Point{{1, 1}, {2, 3}, {5, 8}, {13, 21}, {34, 55}}
	drawLine(pad, pts...)

	cmds := pad.Commands()
	require.Len(t, cmds, 1)
	l, ok := cmds[0].(*MarkerLine)
	require.True(t, ok)
	assert.Equal(t, pts, l.Points)

	r := &recorder{}
	Render(pad, r)
	require.Len(t, r.lines, 1)
	assert.Equal(t, pts, r.lines[0])
}

func TestUndoThenRedoRestoresDisplayList(t *testing.T) {
	pad := NewSketchpad(256, 256, 2)
	drawLine(pad, Point{1, 1}, Point{2, 2})
	drawLine(pad, Point{3, 3}, Point{4, 4})
	before := pad.Commands()

	require.True(t, pad.Undo())
	assert.Len(t, pad.Commands(), 1)
	require.True(t, pad.Redo())
	assert.Equal(t, before, pad.Commands())
}

func TestNewStrokeAfterUndoDiscardsRedo(t *testing.T) {
	pad := NewSketchpad(256, 256, 2)
	drawLine(pad, Point{1, 1}, Point{2, 2})
	drawLine(pad, Point{3, 3}, Point{4, 4})
	pad.Undo()
	require.True(t, pad.CanRedo())

	pad.PointerDown(Point{9, 9})
	assert.False(t, pad.CanRedo())
	assert.Empty(t, pad.RedoCommands())
	pad.PointerUp()
	assert.False(t, pad.Redo())
}

func TestClearEmptiesBothStacks(t *testing.T) {
	pad := NewSketchpad(256, 256, 2)
	drawLine(pad, Point{1, 1}, Point{2, 2})
	drawLine(pad, Point{3, 3}, Point{4, 4})
	pad.Undo()

	pad.Clear()
	assert.Empty(t, pad.Commands())
	assert.Empty(t, pad.RedoCommands())
	assert.False(t, pad.CanUndo())
	assert.False(t, pad.CanRedo())
}

func TestUndoRedoOnEmptyFireNothing(t *testing.T) {
	pad := NewSketchpad(256, 256, 2)
	events := recordEvents(pad)

	assert.False(t, pad.Undo())
	assert.False(t, pad.Redo())
	assert.Empty(t, *events)
}

func TestEventsPerOperation(t *testing.T) {
	pad := NewSketchpad(256, 256, 2)
	events := recordEvents(pad)

	pad.PointerMove(Point{10, 10})
	pad.PointerDown(Point{10, 10})
	pad.PointerMove(Point{11, 11})
	pad.PointerUp()
	pad.Undo()
	pad.Redo()
	pad.PointerLeave()

	assert.Equal(t, []EventType{
		EventToolMoved,
		EventDrawingChanged,
		EventDrawingChanged,
		EventDrawingChanged,
		EventDrawingChanged,
		EventDrawingChanged,
		EventToolMoved,
	}, *events)
}

func TestPointerUpWhenIdleIsNoop(t *testing.T) {
	pad := NewSketchpad(256, 256, 2)
	events := recordEvents(pad)
	pad.PointerUp()
	assert.Empty(t, *events)
}

func TestPreviewFollowsCursor(t *testing.T) {
	pad := NewSketchpad(256, 256, 3)
	assert.Nil(t, pad.Preview(), "no preview before the cursor enters")

	pad.PointerMove(Point{20, 30})
	assert.Equal(t, MarkerPreview{At: Point{20, 30}, Width: 3, Color: color.Black}, pad.Preview())

	pad.PointerDown(Point{20, 30})
	assert.Nil(t, pad.Preview(), "no preview while drawing")

	pad.PointerUp()
	assert.NotNil(t, pad.Preview())

	pad.PointerLeave()
	assert.Nil(t, pad.Preview(), "no preview off canvas")
}

func TestStickerPreviewAndDrag(t *testing.T) {
	pad := NewSketchpad(256, 256, 2)
	require.NoError(t, pad.SelectSticker("👻"))

	pad.PointerMove(Point{5, 5})
	assert.Equal(t, StickerPreview{Emoji: "👻", At: Point{5, 5}, Size: DefaultStickerSize}, pad.Preview())

	pad.PointerDown(Point{10, 10})
	pad.PointerMove(Point{40, 50})
	pad.PointerMove(Point{60, 70})
	pad.PointerUp()

	cmds := pad.Commands()
	require.Len(t, cmds, 1)
	st, ok := cmds[0].(*Sticker)
	require.True(t, ok)
	assert.Equal(t, "👻", st.Emoji)
	assert.Equal(t, Point{60, 70}, st.At)

	r := &recorder{}
	Render(pad, r)
	assert.Equal(t, "text 👻 (60,70) s=24", r.ops[0])
}

func TestLeavingCanvasEndsStroke(t *testing.T) {
	pad := NewSketchpad(100, 100, 2)
	pad.PointerDown(Point{50, 50})
	pad.PointerMove(Point{60, 60})
	pad.PointerMove(Point{150, 60})
	assert.False(t, pad.Drawing())

	// Moves after re-entering hover instead of extending the old line.
	pad.PointerMove(Point{70, 70})
	l := pad.Commands()[0].(*MarkerLine)
	assert.Len(t, l.Points, 2)
	assert.NotNil(t, pad.Preview())
}

func TestPointerDownOutsideCanvasIgnored(t *testing.T) {
	pad := NewSketchpad(100, 100, 2)
	pad.PointerDown(Point{-1, 10})
	assert.False(t, pad.Drawing())
	assert.Empty(t, pad.Commands())
}

func TestUndoWhileDrawingEndsAndRemovesStroke(t *testing.T) {
	pad := NewSketchpad(256, 256, 2)
	pad.PointerDown(Point{1, 1})
	pad.PointerMove(Point{2, 2})

	require.True(t, pad.Undo())
	assert.False(t, pad.Drawing())
	assert.Empty(t, pad.Commands())
	assert.Len(t, pad.RedoCommands(), 1)

	// Further moves must not touch the undone line.
	pad.PointerMove(Point{3, 3})
	l := pad.RedoCommands()[0].(*MarkerLine)
	assert.Len(t, l.Points, 2)
}

func TestSelectToolValidation(t *testing.T) {
	pad := NewSketchpad(256, 256, 2)

	err := pad.SelectMarker(0)
	assert.True(t, errors.Is(err, ErrInvalidWidth))
	assert.Equal(t, float32(2), pad.Tool().Width)

	assert.ErrorIs(t, pad.SelectSticker(""), ErrEmptySticker)
	assert.Equal(t, ToolMarker, pad.Tool().Kind)

	require.NoError(t, pad.SelectMarker(8))
	drawLine(pad, Point{1, 1}, Point{2, 2})
	assert.Equal(t, float32(8), pad.Commands()[0].(*MarkerLine).Width)
}

func TestSetMarkerColor(t *testing.T) {
	pad := NewSketchpad(256, 256, 2)
	red := color.NRGBA{R: 255, A: 255}
	pad.SetMarkerColor(red)
	drawLine(pad, Point{1, 1}, Point{2, 2})
	assert.Equal(t, red, pad.Commands()[0].(*MarkerLine).Color)

	pad.SetMarkerColor(nil)
	assert.Equal(t, color.Black, pad.Tool().Color)
}

func TestUnsubscribe(t *testing.T) {
	pad := NewSketchpad(256, 256, 2)
	n := 0
	stop := pad.Subscribe(func(Event) { n++ })
	pad.PointerMove(Point{1, 1})
	stop()
	pad.PointerMove(Point{2, 2})
	assert.Equal(t, 1, n)
}

func TestCommandIDsAreUnique(t *testing.T) {
	pad := NewSketchpad(256, 256, 2)
	drawLine(pad, Point{1, 1})
	require.NoError(t, pad.SelectSticker("🍬"))
	drawLine(pad, Point{1, 1})

	cmds := pad.Commands()
	require.Len(t, cmds, 2)
	assert.NotEqual(t, cmds[0].ID(), cmds[1].ID())
	assert.Regexp(t, `^line-`, cmds[0].ID())
	assert.Regexp(t, `^sticker-`, cmds[1].ID())
}
