package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"github.com/kaanaksulu/heic-flip/internal/archive"
	"github.com/kaanaksulu/heic-flip/internal/config"
	"github.com/kaanaksulu/heic-flip/internal/convert"
	"github.com/kaanaksulu/heic-flip/internal/flow"
	"github.com/kaanaksulu/heic-flip/internal/platform"
)

// RootUI represents the main UI structure: one tab per conversion flow plus
// the About tab.
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	views    []*FlowView
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, engine convert.BatchConverter, packager archive.Packager) *RootUI {
	settings := config.NewSettings(app)

	// Ensure the downloads directory exists before anything tries to save
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Printf("Failed to ensure downloads dir %s: %v", downloadsDir, err)
	}

	ui := &RootUI{
		window:   window,
		settings: settings,
	}

	for _, f := range flow.All() {
		ui.views = append(ui.views, NewFlowView(window, f, settings, engine, packager))
	}

	ui.setupUI()
	log.Printf("RootUI initialized with %d flows", len(ui.views))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	tabs := container.NewAppTabs()
	for i, f := range flow.All() {
		tabs.Append(container.NewTabItem(f.Title, ui.views[i].Container()))
	}
	tabs.Append(container.NewTabItem("About", NewAboutContent()))

	ui.window.SetContent(tabs)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	dirItem := fyne.NewMenuItem("Downloads Folder...", ui.onChooseDownloadDir)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", dirItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// onChooseDownloadDir lets the user pick where converted files are saved
func (ui *RootUI) onChooseDownloadDir() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.settings.SetDownloadDirectory(uri.Path())
		log.Printf("Downloads directory set to %s", uri.Path())
	}, ui.window)
}
