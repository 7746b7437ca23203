package gui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"zoomview/pkg/geom"
	"zoomview/pkg/viewport"
)

// Toolbar provides file and zoom controls.
type Toolbar struct {
	container *fyne.Container

	// Callbacks
	OnOpen    func()
	OnReset   func()
	OnPreset  func()
	OnZoomIn  func()
	OnZoomOut func()

	presetBtn *widget.Button
	buttons   []*widget.Button
}

// NewToolbar creates a new toolbar.
func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.build()
	return t
}

func call(fn *func()) func() {
	return func() {
		if *fn != nil {
			(*fn)()
		}
	}
}

func (t *Toolbar) build() {
	openBtn := widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), call(&t.OnOpen))

	resetBtn := widget.NewButtonWithIcon("", theme.ViewRestoreIcon(), call(&t.OnReset))
	t.presetBtn = widget.NewButtonWithIcon("Fit", theme.ViewFullScreenIcon(), call(&t.OnPreset))
	zoomOutBtn := widget.NewButtonWithIcon("", theme.ZoomOutIcon(), call(&t.OnZoomOut))
	zoomInBtn := widget.NewButtonWithIcon("", theme.ZoomInIcon(), call(&t.OnZoomIn))

	t.buttons = []*widget.Button{resetBtn, t.presetBtn, zoomOutBtn, zoomInBtn}

	t.container = container.NewHBox(
		openBtn,
		widget.NewSeparator(),
		resetBtn,
		t.presetBtn,
		widget.NewSeparator(),
		zoomOutBtn,
		zoomInBtn,
	)
}

// Container returns the toolbar container.
func (t *Toolbar) Container() *fyne.Container {
	return t.container
}

// SetPreset labels the preset button with the preset the next double tap
// applies.
func (t *Toolbar) SetPreset(p viewport.Preset) {
	t.presetBtn.SetText(presetLabel(p))
}

func presetLabel(p viewport.Preset) string {
	switch p {
	case viewport.Max:
		return "Max"
	case viewport.Min:
		return "Min"
	}
	return "Fit"
}

// Enable enables the view controls.
func (t *Toolbar) Enable() {
	for _, b := range t.buttons {
		b.Enable()
	}
}

// Disable disables the view controls.
func (t *Toolbar) Disable() {
	for _, b := range t.buttons {
		b.Disable()
	}
}

// StatusBar provides status information.
type StatusBar struct {
	container  *fyne.Container
	label      *widget.Label
	zoomLabel  *widget.Label
	pixelLabel *widget.Label
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		label:      widget.NewLabel("Ready"),
		zoomLabel:  widget.NewLabel("100%"),
		pixelLabel: widget.NewLabel(""),
	}

	s.container = container.NewHBox(
		s.label,
		widget.NewSeparator(),
		s.zoomLabel,
		widget.NewSeparator(),
		s.pixelLabel,
	)

	return s
}

// Container returns the status bar container.
func (s *StatusBar) Container() *fyne.Container {
	return s.container
}

// SetStatus sets the status message.
func (s *StatusBar) SetStatus(msg string) {
	s.label.SetText(msg)
}

// SetTransform shows the zoom percentage and pan offset.
func (s *StatusBar) SetTransform(t viewport.Transform) {
	text := strconv.Itoa(int(t.Scale*100+0.5)) + "%"
	if t.Offset.X != 0 || t.Offset.Y != 0 {
		text += fmt.Sprintf("  %+d,%+d", t.Offset.X, t.Offset.Y)
	}
	s.zoomLabel.SetText(text)
}

// SetPixel shows the image pixel under the pointer, or clears it.
func (s *StatusBar) SetPixel(p geom.Point, ok bool) {
	if !ok {
		s.pixelLabel.SetText("")
		return
	}
	s.pixelLabel.SetText(fmt.Sprintf("x=%d y=%d", int(p.X), int(p.Y)))
}
