package ui

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"LetsPaint/internal/config"
	"LetsPaint/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the buttons that act on a sketchpad.
type Toolbar struct {
	pad    *state.Sketchpad
	cfg    config.Config
	window fyne.Window

	ClearButton  *widget.Button
	UndoButton   *widget.Button
	RedoButton   *widget.Button
	ThinButton   *widget.Button
	ThickButton  *widget.Button
	CustomButton *widget.Button
	Status       *widget.Label

	stickers *fyne.Container
	object   fyne.CanvasObject
}

// NewToolbar builds the toolbar for pad. window is used to show the custom
// sticker form and may be nil.
func NewToolbar(pad *state.Sketchpad, cfg config.Config, window fyne.Window) *Toolbar {
	tb := &Toolbar{
		pad:      pad,
		cfg:      cfg,
		window:   window,
		Status:   widget.NewLabel("Ready"),
		stickers: container.NewHBox(),
	}

	tb.ClearButton = widget.NewButton("clear", pad.Clear)
	tb.UndoButton = widget.NewButton("undo", func() { pad.Undo() })
	tb.RedoButton = widget.NewButton("redo", func() { pad.Redo() })
	tb.ThinButton = widget.NewButton("thin", func() { tb.selectMarker(cfg.Marker.Thin) })
	tb.ThickButton = widget.NewButton("thick", func() { tb.selectMarker(cfg.Marker.Thick) })
	tb.CustomButton = widget.NewButton("custom sticker", tb.promptSticker)

	for _, s := range cfg.Stickers.Set {
		if err := tb.AddSticker(s); err != nil {
			log.Printf("[UI] Skipping sticker %q: %v", s, err)
		}
	}

	onColorTapped := func(c color.Color) {
		pad.SetMarkerColor(c)
		if pad.Tool().Kind != state.ToolMarker {
			tb.selectMarker(pad.Tool().Width)
		}
	}
	colorBox := container.NewHBox(
		newColorSwatch(cfg.MarkerColor(), onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped), // Red
		newColorSwatch(color.NRGBA{G: 160, A: 255}, onColorTapped), // Green
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped), // Blue
	)

	tb.object = container.NewVBox(
		container.NewHBox(tb.ClearButton, tb.UndoButton, tb.RedoButton, widget.NewSeparator(),
			tb.ThinButton, tb.ThickButton, widget.NewSeparator(), colorBox, layout.NewSpacer()),
		container.NewHBox(tb.stickers, tb.CustomButton, layout.NewSpacer()),
	)

	pad.Subscribe(func(state.Event) { tb.update() })
	tb.update()
	return tb
}

// Object returns the toolbar's canvas object for layout.
func (tb *Toolbar) Object() fyne.CanvasObject {
	return tb.object
}

func (tb *Toolbar) selectMarker(width float32) {
	if err := tb.pad.SelectMarker(width); err != nil {
		log.Printf("[UI] %v", err)
	}
}

// AddSticker adds a button that selects emoji as the sticker tool.
func (tb *Toolbar) AddSticker(emoji string) error {
	emoji = strings.TrimSpace(emoji)
	if emoji == "" {
		return state.ErrEmptySticker
	}
	tb.stickers.Add(widget.NewButton(emoji, func() {
		if err := tb.pad.SelectSticker(emoji); err != nil {
			log.Printf("[UI] %v", err)
		}
	}))
	return nil
}

// StickerCount returns the number of sticker buttons.
func (tb *Toolbar) StickerCount() int {
	return len(tb.stickers.Objects)
}

func (tb *Toolbar) promptSticker() {
	if tb.window == nil {
		return
	}
	entry := widget.NewEntry()
	entry.SetPlaceHolder("🌟")
	items := []*widget.FormItem{widget.NewFormItem("Sticker", entry)}
	dialog.ShowForm("Custom sticker", "Add", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		if err := tb.AddCustomSticker(entry.Text); err != nil {
			dialog.ShowError(err, tb.window)
		}
	}, tb.window)
}

// AddCustomSticker adds a sticker button for text and selects it.
func (tb *Toolbar) AddCustomSticker(text string) error {
	if err := tb.AddSticker(text); err != nil {
		return err
	}
	return tb.pad.SelectSticker(strings.TrimSpace(text))
}

// update syncs button state and the status line with the pad.
func (tb *Toolbar) update() {
	if tb.pad.CanUndo() {
		tb.UndoButton.Enable()
	} else {
		tb.UndoButton.Disable()
	}
	if tb.pad.CanRedo() {
		tb.RedoButton.Enable()
	} else {
		tb.RedoButton.Disable()
	}

	tool := tb.pad.Tool()
	if tool.Kind == state.ToolMarker && tool.Width == tb.cfg.Marker.Thin {
		tb.ThinButton.Importance = widget.HighImportance
	} else {
		tb.ThinButton.Importance = widget.MediumImportance
	}
	if tool.Kind == state.ToolMarker && tool.Width == tb.cfg.Marker.Thick {
		tb.ThickButton.Importance = widget.HighImportance
	} else {
		tb.ThickButton.Importance = widget.MediumImportance
	}
	tb.ThinButton.Refresh()
	tb.ThickButton.Refresh()

	tb.Status.SetText(fmt.Sprintf("%s | %d on canvas | %d to redo",
		tool.Describe(), tb.pad.Len(), len(tb.pad.RedoCommands())))
}
