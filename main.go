// Package main provides the entry point for the SitePin application.
package main

import (
	"log"
	"time"

	"sitepin/internal/app"
	"sitepin/internal/config"
	"sitepin/internal/store"
	"sitepin/internal/version"
	"sitepin/ui/mainwindow"
	"sitepin/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting SitePin v%s", version.Version)

	cfg := config.Load()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Opening store at %s: %v", cfg.DBPath, err)
	}
	defer st.Close()

	fyneApp := fyneapp.NewWithID("sitepin")
	fyneApp.Settings().SetTheme(&app.SitePinTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, st, cfg, appPrefs)

	if cfg.Environment == "development" {
		setupHotReload(win)
	}

	go win.LoadProject()

	win.ShowAndRun()
}

// setupHotReload offers a restart when the binary is recompiled.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	log.Printf("Hot reload: watching %s", reloader.ExecPath())

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(confirmed bool) {
				if confirmed {
					log.Println("Hot reload: restarting...")
					if err := reloader.Restart(); err != nil {
						log.Printf("Hot reload: restart failed: %v", err)
					}
					return
				}
				reloader.ResetBaseline()
				reloader.Start()
			}, win.Window)
	})

	reloader.Start()
}
