package state

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	ErrInvalidWidth = errors.New("marker width must be positive")
	ErrEmptySticker = errors.New("sticker must not be empty")
)

// DefaultStickerSize is the text size of stickers placed by a tool that does
// not set one.
const DefaultStickerSize = 24

// Sketchpad tracks pointer input, the current tool and the drawing history of
// one canvas. It is driven from a single UI goroutine and does no locking.
type Sketchpad struct {
	area    Area
	tool    Tool
	history *History

	active   DisplayCommand
	cursor   Point
	onCanvas bool

	listeners listeners
}

// NewSketchpad creates an empty pad for a width×height canvas with a marker of
// the given width selected.
func NewSketchpad(width, height, markerWidth float32) *Sketchpad {
	return &Sketchpad{
		area:    CanvasArea(width, height),
		tool:    Tool{Kind: ToolMarker, Width: markerWidth, Color: color.Black, Size: DefaultStickerSize},
		history: NewHistory(),
	}
}

// Subscribe registers fn for change events and returns a func that removes it.
func (sp *Sketchpad) Subscribe(fn func(Event)) func() {
	return sp.listeners.add(fn)
}

func (sp *Sketchpad) emit(t EventType, cmd DisplayCommand) {
	sp.listeners.emit(Event{Type: t, Command: cmd})
}

func (sp *Sketchpad) Area() Area { return sp.area }

func (sp *Sketchpad) Tool() Tool { return sp.tool }

// Drawing reports whether a command is being dragged out.
func (sp *Sketchpad) Drawing() bool { return sp.active != nil }

// Active returns the command being drawn, or nil.
func (sp *Sketchpad) Active() DisplayCommand { return sp.active }

func (sp *Sketchpad) CanUndo() bool { return sp.history.CanUndo() }

func (sp *Sketchpad) CanRedo() bool { return sp.history.CanRedo() }

// Len returns the number of committed commands.
func (sp *Sketchpad) Len() int { return sp.history.Len() }

// Commands returns the committed commands in z-order.
func (sp *Sketchpad) Commands() []DisplayCommand { return sp.history.Commands() }

// RedoCommands returns the undone commands, bottom of the stack first.
func (sp *Sketchpad) RedoCommands() []DisplayCommand { return sp.history.RedoCommands() }

// Preview returns the tool preview at the cursor, or nil while drawing or when
// the cursor is off the canvas.
func (sp *Sketchpad) Preview() ToolPreview {
	if sp.active != nil || !sp.onCanvas {
		return nil
	}
	return previewFor(sp.tool, sp.cursor)
}

// PointerDown starts a new command for the current tool at p and discards the
// redo stack.
func (sp *Sketchpad) PointerDown(p Point) {
	if !sp.area.Contains(p) {
		return
	}
	sp.endActive()
	sp.cursor, sp.onCanvas = p, true

	var cmd DisplayCommand
	switch sp.tool.Kind {
	case ToolSticker:
		cmd = NewSticker(sp.tool.Emoji, p, sp.tool.Size)
	default:
		cmd = NewMarkerLine(p, sp.tool.Width, sp.tool.Color)
	}
	sp.history.Push(cmd)
	sp.active = cmd
	debugf("start %s at (%.1f, %.1f)", cmd.ID(), p.X, p.Y)
	sp.emit(EventDrawingChanged, cmd)
}

// PointerMove extends the active command while drawing and moves the preview
// otherwise. Leaving the canvas while drawing ends the command.
func (sp *Sketchpad) PointerMove(p Point) {
	if !sp.area.Contains(p) {
		sp.PointerLeave()
		return
	}
	sp.cursor, sp.onCanvas = p, true
	if sp.active != nil {
		sp.active.Drag(p)
		sp.emit(EventDrawingChanged, sp.active)
		return
	}
	sp.emit(EventToolMoved, nil)
}

// PointerUp ends the active command, which stays committed.
func (sp *Sketchpad) PointerUp() {
	if cmd := sp.endActive(); cmd != nil {
		sp.emit(EventDrawingChanged, cmd)
	}
}

// PointerLeave ends the active command and hides the preview.
func (sp *Sketchpad) PointerLeave() {
	cmd := sp.endActive()
	wasOn := sp.onCanvas
	sp.onCanvas = false
	if cmd != nil {
		sp.emit(EventDrawingChanged, cmd)
	} else if wasOn {
		sp.emit(EventToolMoved, nil)
	}
}

func (sp *Sketchpad) endActive() DisplayCommand {
	cmd := sp.active
	if cmd == nil {
		return nil
	}
	sp.active = nil
	debugf("end %s", cmd.ID())
	return cmd
}

// SelectMarker switches to a marker of the given width.
func (sp *Sketchpad) SelectMarker(width float32) error {
	if width <= 0 {
		return fmt.Errorf("select marker %g: %w", width, ErrInvalidWidth)
	}
	sp.tool.Kind = ToolMarker
	sp.tool.Width = width
	sp.emit(EventToolMoved, nil)
	return nil
}

// SetMarkerColor sets the colour used by subsequent marker lines.
func (sp *Sketchpad) SetMarkerColor(c color.Color) {
	if c == nil {
		c = color.Black
	}
	sp.tool.Color = c
	sp.emit(EventToolMoved, nil)
}

// SelectSticker switches to placing emoji.
func (sp *Sketchpad) SelectSticker(emoji string) error {
	if emoji == "" {
		return ErrEmptySticker
	}
	sp.tool.Kind = ToolSticker
	sp.tool.Emoji = emoji
	sp.emit(EventToolMoved, nil)
	return nil
}

// SetStickerSize sets the text size of subsequently placed stickers.
func (sp *Sketchpad) SetStickerSize(size float32) {
	if size <= 0 {
		size = DefaultStickerSize
	}
	sp.tool.Size = size
}

// Undo moves the newest command to the redo stack. A command still being
// drawn is ended first. It reports whether anything changed.
func (sp *Sketchpad) Undo() bool {
	sp.endActive()
	cmd, ok := sp.history.Undo()
	if !ok {
		return false
	}
	debugf("undo %s", cmd.ID())
	sp.emit(EventDrawingChanged, cmd)
	return true
}

// Redo restores the most recently undone command. It reports whether anything
// changed.
func (sp *Sketchpad) Redo() bool {
	cmd, ok := sp.history.Redo()
	if !ok {
		return false
	}
	debugf("redo %s", cmd.ID())
	sp.emit(EventDrawingChanged, cmd)
	return true
}

// Clear empties the display list and the redo stack.
func (sp *Sketchpad) Clear() {
	sp.endActive()
	sp.history.Clear()
	debugf("clear")
	sp.emit(EventDrawingChanged, nil)
}
