package main

import (
	"flag"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/markbook/bookmarks-browser/internal/config"
	"github.com/markbook/bookmarks-browser/internal/dispatch"
	"github.com/markbook/bookmarks-browser/internal/gist"
	"github.com/markbook/bookmarks-browser/internal/logging"
	"github.com/markbook/bookmarks-browser/internal/platform"
	"github.com/markbook/bookmarks-browser/internal/store"
	syncsvc "github.com/markbook/bookmarks-browser/internal/sync"
	"github.com/markbook/bookmarks-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.markbook.bookmarks-browser"
	AppName = "Bookmarks Browser"

	WindowWidth  = 1200
	WindowHeight = 800
)

func main() {
	verbosity := flag.Int("v", 1, "log verbosity (0=warn, 1=info, 2=debug)")
	flag.Parse()

	// A .env file may carry the sync token so settings.json stays clean
	_ = godotenv.Load()

	logging.Setup(*verbosity)
	log := logging.GetLogger("main")
	log.Info().Str("version", version).Msg("starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewSidebarTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	if err := platform.CreateDirectoryIfNotExists(platform.ConfigDir()); err != nil {
		log.Warn().Err(err).Msg("failed to ensure config dir")
	}

	// Initialize services
	settings := config.Open(platform.SettingsPath(), logging.GetLogger("config"))
	bookmarks := store.Open(platform.BookmarksPath(), logging.GetLogger("store"))

	// Materialize the file on first launch
	if err := bookmarks.Save(); err != nil {
		log.Warn().Err(err).Msg("could not save bookmarks")
	}

	coordinator := syncsvc.New(bookmarks, settings, gist.NewClient(), logging.GetLogger("sync"))
	dispatcher := dispatch.New(bookmarks, coordinator, logging.GetLogger("dispatch"))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, settings, dispatcher, coordinator)

	// Show and run
	myWindow.ShowAndRun()
}
