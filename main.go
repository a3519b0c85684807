package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/kaanaksulu/heic-flip/internal/archive"
	"github.com/kaanaksulu/heic-flip/internal/codec"
	"github.com/kaanaksulu/heic-flip/internal/config"
	"github.com/kaanaksulu/heic-flip/internal/convert"
	"github.com/kaanaksulu/heic-flip/internal/platform"
	"github.com/kaanaksulu/heic-flip/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.kaanaksulu.heic-flip"
	AppName = "HEIC Flip"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	if logo, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(logo)
	}

	// Initialize services
	settings := config.NewSettings(myApp)
	engine := convert.NewService(codec.New())
	saver := platform.NewDirectorySaver(settings.GetDownloadDirectory)
	packager := archive.NewService(saver)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, engine, packager)

	// Show and run
	myWindow.ShowAndRun()
}
