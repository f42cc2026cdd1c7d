// Package main provides the entry point for the Circuit Sketch application.
package main

import (
	"log"
	"time"

	"circuit-sketch/internal/app"
	"circuit-sketch/internal/component"
	"circuit-sketch/internal/version"
	"circuit-sketch/ui/mainwindow"
	"circuit-sketch/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

const appID = "io.github.circuitsketch"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting Circuit Sketch %s", version.String())

	a := fyneapp.NewWithID(appID)
	a.Settings().SetTheme(&app.SketchTheme{})

	resDir := component.ResourceDir()
	log.Printf("Component icons from %s", resDir)

	editor, err := app.NewEditor(component.OpenLibrary(resDir))
	if err != nil {
		log.Fatalf("Failed to start editor: %v", err)
	}

	appPrefs := prefs.Load()
	win := mainwindow.New(a, editor, appPrefs)
	win.SetMaster()
	win.SetCloseIntercept(func() {
		win.SavePreferences()
		win.Close()
	})

	setupHotReload(win)

	win.ShowAndRun()
}

// setupHotReload configures automatic restart detection when the binary is recompiled.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	log.Printf("Hot reload: watching %s (modified %s)",
		reloader.ExecPath(), reloader.StartupTime().Format("15:04:05"))

	reloader.OnTick(func() {
		win.SavePreferencesIfChanged()
	})

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if !restart {
					reloader.ResetBaseline()
					reloader.Start()
					return
				}
				log.Println("Hot reload: saving preferences before restart...")
				win.SavePreferences()
				log.Println("Hot reload: restarting...")
				if err := reloader.Restart(); err != nil {
					log.Printf("Hot reload: restart failed: %v", err)
					dialog.ShowError(err, win.Window)
				}
			}, win.Window)
	})

	reloader.Start()
}
