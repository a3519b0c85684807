package ui

import (
	"context"
	"io"
	"log"
	"mime"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/kaanaksulu/heic-flip/internal/archive"
	"github.com/kaanaksulu/heic-flip/internal/config"
	"github.com/kaanaksulu/heic-flip/internal/convert"
	"github.com/kaanaksulu/heic-flip/internal/flow"
	"github.com/kaanaksulu/heic-flip/internal/model"
	"github.com/kaanaksulu/heic-flip/internal/platform"
	"github.com/kaanaksulu/heic-flip/internal/validate"
)

// FlowView is one conversion tab: file picker, pending list, settings,
// convert action with progress, and the result list with save actions.
type FlowView struct {
	window   fyne.Window
	flow     flow.Flow
	engine   convert.BatchConverter
	packager archive.Packager
	panel    *SettingsPanel

	state  *model.BatchState
	cancel context.CancelFunc

	// UI components
	addBtn         *widget.Button
	pendingList    *widget.List
	convertBtn     *widget.Button
	cancelBtn      *widget.Button
	progressBar    *widget.ProgressBar
	stageLabel     *widget.Label
	resultList     *widget.List
	downloadAllBtn *widget.Button
	warningLabel   *widget.Label

	container *fyne.Container
}

// NewFlowView creates the view for one conversion flow.
func NewFlowView(window fyne.Window, f flow.Flow, settings *config.Settings, engine convert.BatchConverter, packager archive.Packager) *FlowView {
	fv := &FlowView{
		window:   window,
		flow:     f,
		engine:   engine,
		packager: packager,
		panel:    NewSettingsPanel(f, settings),
		state:    model.NewBatchState(),
	}
	fv.createUI()
	return fv
}

// Container returns the root container of the view.
func (fv *FlowView) Container() *fyne.Container {
	return fv.container
}

// createUI creates and arranges the view's components
func (fv *FlowView) createUI() {
	tagline := widget.NewLabel(fv.flow.Tagline)
	tagline.Wrapping = fyne.TextWrapWord

	fv.addBtn = widget.NewButton("Add Files "+IconFolder, fv.onAddFiles)
	fv.addBtn.Importance = widget.HighImportance

	fv.pendingList = widget.NewList(
		func() int { return len(fv.state.Pending) },
		func() fyne.CanvasObject { return fv.createPendingItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { fv.updatePendingItem(id, obj) },
	)

	fv.convertBtn = widget.NewButton("Convert", fv.onConvertClick)
	fv.convertBtn.Importance = widget.HighImportance

	fv.cancelBtn = widget.NewButton("Cancel", fv.onCancelClick)
	fv.cancelBtn.Hide()

	fv.progressBar = widget.NewProgressBar()
	fv.progressBar.Hide()
	fv.stageLabel = widget.NewLabel("")
	fv.stageLabel.Hide()

	fv.resultList = widget.NewList(
		func() int { return len(fv.state.Results) },
		func() fyne.CanvasObject { return fv.createResultItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { fv.updateResultItem(id, obj) },
	)

	fv.downloadAllBtn = widget.NewButton("Download All", fv.onDownloadAll)
	fv.downloadAllBtn.Hide()

	fv.warningLabel = widget.NewLabel("")
	fv.warningLabel.Importance = widget.WarningImportance
	fv.warningLabel.Hide()

	topPanel := container.NewVBox(
		tagline,
		container.NewHBox(fv.addBtn, fv.convertBtn, fv.cancelBtn, fv.downloadAllBtn),
		fv.panel.Container(),
		fv.stageLabel,
		fv.progressBar,
		fv.warningLabel,
	)

	lists := container.NewVSplit(fv.pendingList, fv.resultList)

	fv.container = container.NewBorder(
		topPanel, // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		lists,    // center
	)
}

// createPendingItem creates a pending file row template
func (fv *FlowView) createPendingItem() fyne.CanvasObject {
	name := widget.NewLabel("")
	name.Truncation = fyne.TextTruncateEllipsis
	size := widget.NewLabel("")
	remove := widget.NewButton(IconClose, nil)
	remove.Importance = widget.LowImportance
	return container.NewBorder(nil, nil, nil, container.NewHBox(size, remove), name)
}

// updatePendingItem fills a pending row with current data
func (fv *FlowView) updatePendingItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(fv.state.Pending) {
		return
	}
	file := fv.state.Pending[id]

	row := obj.(*fyne.Container)
	name := row.Objects[0].(*widget.Label)
	tail := row.Objects[1].(*fyne.Container)
	size := tail.Objects[0].(*widget.Label)
	remove := tail.Objects[1].(*widget.Button)

	name.SetText(file.Name)
	size.SetText(formatFileSize(file.Size()))
	remove.OnTapped = func() {
		fv.state.RemovePending(id)
		fv.pendingList.Refresh()
	}
}

// createResultItem creates a result row template
func (fv *FlowView) createResultItem() fyne.CanvasObject {
	row := NewResultRow()
	row.SetCallbacks(fv.onSaveResult, fv.onRevealFile, fv.onOpenFile)
	return row
}

// updateResultItem fills a result row with current data
func (fv *FlowView) updateResultItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(fv.state.Results) {
		return
	}
	if row, ok := obj.(*ResultRow); ok {
		row.SetCallbacks(fv.onSaveResult, fv.onRevealFile, fv.onOpenFile)
		row.UpdateResult(fv.state.Results[id])
	}
}

// onAddFiles opens the file picker filtered to the flow's accepted extensions
func (fv *FlowView) onAddFiles() {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, fv.window)
			return
		}
		if reader == nil {
			return // user cancelled
		}
		defer reader.Close()

		file, err := readSourceFile(reader)
		if err != nil {
			log.Printf("Failed to read %s: %v", reader.URI().Name(), err)
			dialog.ShowError(err, fv.window)
			return
		}

		fv.state.AddPending(file)
		fv.pendingList.Refresh()
	}, fv.window)

	picker.SetFilter(storage.NewExtensionFileFilter(fv.flow.AcceptedExtensions()))
	picker.Show()
}

// readSourceFile reads a picked file into memory with its declared MIME type
// derived from the extension, the best a desktop picker can do.
func readSourceFile(reader fyne.URIReadCloser) (model.SourceFile, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return model.SourceFile{}, err
	}

	name := reader.URI().Name()
	return model.SourceFile{
		Name: name,
		MIME: mime.TypeByExtension(filepath.Ext(name)),
		Data: data,
	}, nil
}

// onConvertClick validates the pending batch and starts a conversion run
func (fv *FlowView) onConvertClick() {
	if fv.state.Status.IsActive() {
		return
	}

	if err := validate.Batch(fv.state.Pending, fv.flow); err != nil {
		log.Printf("Validation failed for flow %s: %v", fv.flow.ID, err)
		dialog.ShowError(err, fv.window)
		return
	}

	cfg := fv.panel.Config()
	files := make([]model.SourceFile, len(fv.state.Pending))
	copy(files, fv.state.Pending)

	fv.state.BeginRun()
	fv.resultList.Refresh()
	fv.setRunning(true)

	ctx, cancel := context.WithCancel(context.Background())
	fv.cancel = cancel

	go func() {
		defer cancel()
		results := fv.engine.ConvertBatch(ctx, files, cfg, fv.onProgress)

		fyne.Do(func() {
			fv.state.CompleteRun(results)
			fv.setRunning(false)
			fv.resultList.Refresh()
			if len(fv.state.Succeeded()) > 0 {
				fv.downloadAllBtn.Show()
			}
		})
	}()
}

// onCancelClick aborts the running conversion
func (fv *FlowView) onCancelClick() {
	if fv.cancel != nil {
		log.Printf("Cancelling conversion for flow %s", fv.flow.ID)
		fv.cancel()
	}
}

// onProgress receives engine progress updates; always called off the UI thread
func (fv *FlowView) onProgress(percent int, stage string) {
	fyne.Do(func() {
		fv.progressBar.SetValue(float64(percent) / 100)
		if stage != "" {
			fv.state.Status = model.BatchStatusStaging
			fv.stageLabel.SetText(stage)
		} else {
			fv.state.Status = model.BatchStatusConverting
			fv.stageLabel.SetText("Converting...")
		}
		fv.state.Percent = percent
	})
}

// setRunning toggles the controls between idle and converting states
func (fv *FlowView) setRunning(running bool) {
	if running {
		fv.convertBtn.Disable()
		fv.addBtn.Disable()
		fv.cancelBtn.Show()
		fv.progressBar.SetValue(0)
		fv.progressBar.Show()
		fv.stageLabel.SetText("")
		fv.stageLabel.Show()
		fv.downloadAllBtn.Hide()
		fv.warningLabel.Hide()
	} else {
		fv.convertBtn.Enable()
		fv.addBtn.Enable()
		fv.cancelBtn.Hide()
		fv.stageLabel.Hide()
	}
}

// onSaveResult saves a single converted file to the downloads directory
func (fv *FlowView) onSaveResult(result model.ConversionResult) {
	path, err := fv.packager.DeliverOne(result)
	if err != nil {
		log.Printf("Failed to save %s: %v", result.OutputName, err)
		dialog.ShowError(err, fv.window)
		return
	}

	log.Printf("Saved %s to %s", result.OutputName, path)
	fv.recordOutputPath(result.ID, path)
}

// onDownloadAll delivers every successful result at once
func (fv *FlowView) onDownloadAll() {
	cfg := fv.panel.Config()
	delivery, err := fv.packager.DeliverAll(fv.state.Results, fv.flow.ZipDescriptor, cfg.OutputFormat)
	if err != nil {
		log.Printf("Download all failed for flow %s: %v", fv.flow.ID, err)
		dialog.ShowError(err, fv.window)
		return
	}

	if delivery.Warning != "" {
		fv.warningLabel.SetText(delivery.Warning)
		fv.warningLabel.Show()
	}

	log.Printf("Delivered %d path(s) for flow %s (kind=%s)", len(delivery.Paths), fv.flow.ID, delivery.Kind)

	// Per-file deliveries map back onto result rows so reveal/open work. An
	// archive delivery has one zip path that belongs to no single row.
	if delivery.Kind != archive.DeliveryArchive {
		succeeded := fv.state.Succeeded()
		for i, path := range delivery.Paths {
			if i < len(succeeded) {
				fv.recordOutputPath(succeeded[i].ID, path)
			}
		}
	}
}

// recordOutputPath stores the saved location on the matching result
func (fv *FlowView) recordOutputPath(resultID, path string) {
	for i := range fv.state.Results {
		if fv.state.Results[i].ID == resultID {
			fv.state.Results[i].OutputPath = path
			fv.resultList.RefreshItem(i)
			return
		}
	}
}

// onRevealFile shows a saved file in the system file manager
func (fv *FlowView) onRevealFile(path string) {
	if err := platform.OpenFileInManager(path); err != nil {
		log.Printf("Error revealing file %s: %v", path, err)
		dialog.ShowError(err, fv.window)
	}
}

// onOpenFile opens a saved file with the default application
func (fv *FlowView) onOpenFile(path string) {
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		log.Printf("Error opening file %s: %v", path, err)
		dialog.ShowError(err, fv.window)
	}
}
