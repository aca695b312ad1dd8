package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LetsPaint/internal/config"
	"LetsPaint/internal/state"
)

// NewSketchpad creates a pad configured from cfg.
func NewSketchpad(cfg config.Config) *state.Sketchpad {
	pad := state.NewSketchpad(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Marker.Thin)
	pad.SetMarkerColor(cfg.MarkerColor())
	pad.SetStickerSize(cfg.Stickers.Size)
	return pad
}

// RunApp opens the paint window and blocks until it is closed.
func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Title)

	pad := NewSketchpad(cfg)
	board := NewBoardWidget(pad)
	toolbar := NewToolbar(pad, cfg, myWindow)

	title := widget.NewLabelWithStyle(cfg.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	top := container.NewVBox(title, toolbar.Object())
	content := container.NewBorder(top, toolbar.Status, nil, nil, container.NewCenter(board))

	addShortcuts(myWindow.Canvas(), pad)

	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(cfg.Canvas.Width+200, cfg.Canvas.Height+200))
	log.Printf("[UI] Canvas %gx%g ready", cfg.Canvas.Width, cfg.Canvas.Height)
	myWindow.ShowAndRun()
}

// addShortcuts binds Ctrl/Cmd+Z to undo and Ctrl/Cmd+Shift+Z or +Y to redo.
func addShortcuts(c fyne.Canvas, pad *state.Sketchpad) {
	undo := func(fyne.Shortcut) { pad.Undo() }
	redo := func(fyne.Shortcut) { pad.Redo() }
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}, undo)
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}, redo)
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}, redo)
}
