// Package gui provides a native desktop image viewer with pan and zoom
// gestures using Fyne.
package gui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"go.uber.org/zap"

	"zoomview/pkg/api"
	"zoomview/pkg/geom"
)

const (
	zoomStep = 0.25
	panStep  = 20
)

// imageExtensions are the files the open dialog offers.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// App represents the image viewer application.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	opts       []api.Option
	log        *zap.Logger

	// UI components
	viewer    *ZoomView
	toolbar   *Toolbar
	statusBar *StatusBar
}

// NewApp creates a new viewer application. opts configure every view the
// application opens.
func NewApp(log *zap.Logger, opts ...api.Option) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	empty, err := api.New(nil, opts...)
	if err != nil {
		return nil, err
	}

	a := &App{
		fyneApp: app.New(),
		opts:    opts,
		log:     log,
	}

	a.fyneApp.Settings().SetTheme(theme.DarkTheme())
	a.mainWindow = a.fyneApp.NewWindow("ZoomView")
	a.mainWindow.Resize(fyne.NewSize(900, 700))

	a.viewer = NewZoomView(empty)
	return a, nil
}

// Run starts the application.
func (a *App) Run() {
	a.buildUI()
	a.updateControls()
	a.mainWindow.ShowAndRun()
}

// RunWithFile starts the application with an image already loaded.
func (a *App) RunWithFile(path string) {
	a.buildUI()
	if err := a.loadFile(path); err != nil {
		a.log.Error("failed to load image", zap.String("path", path), zap.Error(err))
		dialog.ShowError(err, a.mainWindow)
	}
	a.updateControls()
	a.mainWindow.ShowAndRun()
}

// buildUI constructs the user interface.
func (a *App) buildUI() {
	a.toolbar = NewToolbar()
	a.toolbar.OnOpen = a.openFile
	a.toolbar.OnReset = a.reset
	a.toolbar.OnPreset = a.applyPreset
	a.toolbar.OnZoomIn = func() { a.zoom(zoomStep) }
	a.toolbar.OnZoomOut = func() { a.zoom(-zoomStep) }

	a.statusBar = NewStatusBar()

	a.viewer.OnChanged = a.updateControls
	a.viewer.OnHover = a.statusBar.SetPixel

	content := container.NewBorder(
		container.NewPadded(a.toolbar.Container()), // Top
		a.statusBar.Container(),                    // Bottom
		nil,                                        // Left
		nil,                                        // Right
		a.viewer,                                   // Center
	)

	a.mainWindow.SetContent(content)
	a.mainWindow.Canvas().SetOnTypedKey(a.handleKey)
}

// handleKey handles keyboard shortcuts.
func (a *App) handleKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyLeft:
		a.pan(-panStep, 0)
	case fyne.KeyRight:
		a.pan(panStep, 0)
	case fyne.KeyUp:
		a.pan(0, -panStep)
	case fyne.KeyDown:
		a.pan(0, panStep)
	case fyne.KeyPlus, fyne.KeyEqual:
		a.zoom(zoomStep)
	case fyne.KeyMinus:
		a.zoom(-zoomStep)
	case fyne.KeySpace:
		a.applyPreset()
	case fyne.KeyHome, fyne.Key0:
		a.reset()
	}
}

// openFile shows a file dialog and loads the selected image.
func (a *App) openFile() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if reader == nil {
			return // Cancelled
		}
		defer reader.Close()

		path := reader.URI().Path()
		if err := a.loadFile(path); err != nil {
			a.log.Error("failed to load image", zap.String("path", path), zap.Error(err))
			dialog.ShowError(err, a.mainWindow)
		}
	}, a.mainWindow)
	d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	d.Show()
}

// loadFile decodes an image and replaces the current view.
func (a *App) loadFile(path string) error {
	v, err := api.Open(path, a.opts...)
	if err != nil {
		return err
	}
	a.log.Info("opened image", zap.String("path", path),
		zap.Int("width", v.ImageSize().X), zap.Int("height", v.ImageSize().Y))

	a.mainWindow.SetTitle(fmt.Sprintf("ZoomView - %s", filepath.Base(path)))
	a.statusBar.SetStatus(fmt.Sprintf("%d × %d", v.ImageSize().X, v.ImageSize().Y))
	a.viewer.SetView(v)
	return nil
}

func (a *App) view() *api.View {
	return a.viewer.View()
}

func (a *App) reset() {
	a.view().Reset()
	a.viewer.changed()
}

func (a *App) applyPreset() {
	a.view().DoubleTap()
	a.viewer.changed()
}

func (a *App) zoom(delta float64) {
	a.view().Zoom(delta)
	a.viewer.changed()
}

func (a *App) pan(dx, dy float64) {
	a.view().Pan(dx, dy)
	a.viewer.changed()
}

// updateControls syncs the toolbar and status bar with the view.
func (a *App) updateControls() {
	if a.toolbar == nil {
		return
	}
	v := a.view()
	if v.Image() == nil {
		a.toolbar.Disable()
		a.statusBar.SetStatus("No image loaded")
		a.statusBar.SetPixel(geom.Point{}, false)
	} else {
		a.toolbar.Enable()
	}
	t := v.Transform()
	a.toolbar.SetPreset(t.Preset)
	a.statusBar.SetTransform(t)
}
