// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"
	"path/filepath"

	"circuit-sketch/internal/app"
	"circuit-sketch/internal/sketch"
	"circuit-sketch/internal/version"
	"circuit-sketch/pkg/colorutil"
	"circuit-sketch/ui/canvas"
	"circuit-sketch/ui/dialogs"
	"circuit-sketch/ui/panels"
	"circuit-sketch/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	appTitle      = "Circuit Sketch"
	defaultWidth  = 1100
	defaultHeight = 720
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app    fyne.App
	editor *app.Editor
	prefs  *prefs.Prefs

	canvas     *canvas.SceneCanvas
	sidebar    *panels.Sidebar
	statusBar  *widget.Label
	modeLabel  *widget.Label
	textPrompt *dialogs.TextPrompt
}

// New creates a new main window.
func New(fyneApp fyne.App, editor *app.Editor, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		editor: editor,
		prefs:  p,
	}

	mw.restoreWireColor()
	mw.setupUI()
	mw.setupMenus()
	mw.setupKeys()
	mw.setupEventHandlers()

	mw.Resize(fyne.NewSize(
		float32(p.FloatWithFallback(prefs.KeyWindowWidth, defaultWidth)),
		float32(p.FloatWithFallback(prefs.KeyWindowHeight, defaultHeight)),
	))
	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewSceneCanvas(mw.editor.Scene(), mw.editor.Renderer())
	mw.canvas.OnWheel(mw.editor.ZoomIn, mw.editor.ZoomOut)
	mw.canvas.SetZoom(mw.editor.Zoom())

	mw.sidebar = panels.NewSidebar(mw.editor)
	mw.sidebar.SetWindow(mw.Window)

	mw.textPrompt = dialogs.NewTextPrompt(mw.Window)
	mw.editor.SetTextPrompt(mw.textPrompt.Prompt)
	mw.editor.OnExportRequest(mw.onExport)

	mw.statusBar = widget.NewLabel("Ready")
	mw.modeLabel = widget.NewLabel("")
	mw.showMode(mw.editor.Mode())

	status := container.NewBorder(nil, nil, nil, mw.modeLabel, mw.statusBar)

	// Sidebar | canvas, with the status bar at the bottom
	content := container.NewBorder(
		nil,
		container.NewPadded(status),
		container.NewVScroll(container.NewPadded(mw.sidebar.Container())),
		nil,
		mw.canvas.Container(),
	)

	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export PNG...", mw.editor.RequestExport),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset Circuit", mw.editor.Reset),
	)

	editMenu := fyne.NewMenu("Edit",
		mw.actionItem("Delete", app.ActionDeleteSelected),
		mw.actionItem("Rotate", app.ActionRotateSelected),
		mw.actionItem("Mirror", app.ActionMirrorSelected),
		mw.actionItem("Toggle Transistor Image", app.ActionToggleTransistorImage),
		fyne.NewMenuItemSeparator(),
		mw.actionItem("Wire Mode", app.ActionToggleWireMode),
		mw.actionItem("Text Mode", app.ActionToggleTextMode),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.editor.ZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.editor.ZoomOut),
		fyne.NewMenuItem("Actual Size", func() { mw.editor.SetZoom(1.0) }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Keyboard Shortcuts", mw.onShortcuts),
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu))
}

func (mw *MainWindow) actionItem(label string, a app.Action) *fyne.MenuItem {
	return fyne.NewMenuItem(label, func() { mw.editor.Do(a) })
}

// setupKeys routes unhandled key presses to the shortcut table. Keys typed
// into a focused entry never reach it.
func (mw *MainWindow) setupKeys() {
	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		mw.handleKey(ev.Name)
	})
}

func (mw *MainWindow) handleKey(key fyne.KeyName) {
	a, ok := app.Shortcuts[key]
	if !ok {
		return
	}
	mw.editor.HandleKey(key)
	mw.updateStatus(a.String())
}

// setupEventHandlers registers for editor events.
func (mw *MainWindow) setupEventHandlers() {
	mw.editor.On(app.EventSceneChanged, func(interface{}) {
		mw.canvas.Refresh()
	})

	mw.editor.On(app.EventModeChanged, func(data interface{}) {
		if m, ok := data.(sketch.Mode); ok {
			mw.showMode(m)
		}
	})

	mw.editor.On(app.EventZoomChanged, func(data interface{}) {
		if z, ok := data.(float64); ok {
			mw.canvas.SetZoom(z)
			mw.canvas.Refresh()
		}
	})

	mw.editor.On(app.EventWireColorChanged, func(interface{}) {
		mw.prefs.SetString(prefs.KeyWireColor, colorutil.Hex(mw.editor.WireColor()))
		mw.updateStatus("Wire colour changed")
	})

	mw.editor.On(app.EventExported, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.prefs.SetString(prefs.KeyExportDir, filepath.Dir(path))
			mw.updateStatus("Exported " + path)
		}
	})
}

// restoreWireColor applies the wire colour saved by a previous session.
func (mw *MainWindow) restoreWireColor() {
	saved := mw.prefs.String(prefs.KeyWireColor)
	if saved == "" {
		return
	}
	c, err := colorutil.ParseHex(saved)
	if err != nil {
		log.Printf("Ignoring saved wire colour: %v", err)
		return
	}
	mw.editor.SetWireColor(c)
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) showMode(m sketch.Mode) {
	mw.modeLabel.SetText("Mode: " + m.String())
}

// onExport asks for a file and writes the export there.
func (mw *MainWindow) onExport() {
	dialogs.ShowExportDialog(mw.Window, mw.prefs.String(prefs.KeyExportDir), app.DefaultExportPath, mw.exportTo)
}

func (mw *MainWindow) exportTo(path string) {
	if err := mw.editor.Export(path); err != nil {
		log.Printf("Export failed: %v", err)
		dialog.ShowError(err, mw.Window)
	}
}

// SavePreferences stores the window size and writes the preferences file.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
		mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
	}
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

// SavePreferencesIfChanged saves only when something changed since the last save.
func (mw *MainWindow) SavePreferencesIfChanged() {
	size := mw.Canvas().Size()
	w := mw.prefs.FloatWithFallback(prefs.KeyWindowWidth, 0)
	h := mw.prefs.FloatWithFallback(prefs.KeyWindowHeight, 0)
	if mw.prefs.Dirty() || float64(size.Width) != w || float64(size.Height) != h {
		mw.SavePreferences()
	}
}

func (mw *MainWindow) onShortcuts() {
	text := ""
	for _, key := range shortcutOrder {
		text += fmt.Sprintf("%-8s %s\n", key, app.Shortcuts[key])
	}
	dialog.ShowInformation("Keyboard Shortcuts", text, mw.Window)
}

// shortcutOrder lists the bound keys in help order.
var shortcutOrder = []fyne.KeyName{
	fyne.KeyDelete, fyne.KeyR, fyne.KeyM, fyne.KeyE, fyne.KeyT, fyne.KeyW, fyne.KeyS,
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+appTitle,
		fmt.Sprintf("%s v%s\n\n"+
			"Sketch circuits from component icons, wires and labels,\n"+
			"then export a region to PNG.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			appTitle, version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
