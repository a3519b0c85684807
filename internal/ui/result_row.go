package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/kaanaksulu/heic-flip/internal/model"
)

// File size formatting constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// formatFileSize formats file size in bytes to human readable format
func formatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}

// ResultRow represents a compact result row widget showing one converted file
// with its status, size, and actions.
type ResultRow struct {
	widget.BaseWidget

	result model.ConversionResult

	// UI components
	thumbnail   *canvas.Image
	nameLabel   *widget.Label
	statusLabel *widget.Label
	sizeLabel   *widget.Label

	// Action buttons
	saveBtn   *widget.Button // save to the downloads directory
	revealBtn *widget.Button // reveal in file manager
	openBtn   *widget.Button // open with default app

	// Callbacks
	onSave   func(result model.ConversionResult)
	onReveal func(path string)
	onOpen   func(path string)
}

// NewResultRow creates a new result row widget
func NewResultRow() *ResultRow {
	rr := &ResultRow{}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	return rr
}

// SetCallbacks sets the action callbacks
func (rr *ResultRow) SetCallbacks(
	onSave func(result model.ConversionResult),
	onReveal func(path string),
	onOpen func(path string),
) {
	rr.onSave = onSave
	rr.onReveal = onReveal
	rr.onOpen = onOpen
}

// UpdateResult updates the row with new result data
func (rr *ResultRow) UpdateResult(result model.ConversionResult) {
	rr.result = result
	rr.updateFromResult()
	rr.Refresh()
}

// createUI creates the UI components
func (rr *ResultRow) createUI() {
	rr.thumbnail = &canvas.Image{FillMode: canvas.ImageFillContain}
	rr.thumbnail.SetMinSize(fyne.NewSize(ThumbnailSize, ThumbnailSize))

	rr.nameLabel = widget.NewLabel("")
	rr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	rr.nameLabel.Truncation = fyne.TextTruncateEllipsis
	rr.nameLabel.Alignment = fyne.TextAlignLeading

	rr.statusLabel = widget.NewLabel("")
	rr.statusLabel.Alignment = fyne.TextAlignTrailing

	rr.sizeLabel = widget.NewLabel("")
	rr.sizeLabel.Alignment = fyne.TextAlignTrailing

	rr.saveBtn = widget.NewButton("save", func() {
		if rr.onSave != nil && !rr.result.Failed() {
			rr.onSave(rr.result)
		}
	})
	rr.saveBtn.Importance = widget.MediumImportance

	rr.revealBtn = widget.NewButton("show", func() {
		if rr.onReveal != nil && rr.result.OutputPath != "" {
			rr.onReveal(rr.result.OutputPath)
		}
	})
	rr.revealBtn.Importance = widget.MediumImportance

	rr.openBtn = widget.NewButton("open", func() {
		if rr.onOpen != nil && rr.result.OutputPath != "" {
			rr.onOpen(rr.result.OutputPath)
		}
	})
	rr.openBtn.Importance = widget.MediumImportance
}

// updateFromResult updates UI components based on result state
func (rr *ResultRow) updateFromResult() {
	rr.nameLabel.SetText(rr.result.OutputName)

	if rr.result.Failed() {
		rr.statusLabel.Importance = widget.DangerImportance
		rr.statusLabel.SetText(IconError + " " + rr.result.ErrorReason)
		rr.sizeLabel.SetText(DashPlaceholder)
		rr.thumbnail.Image = nil
		rr.thumbnail.Resource = nil
	} else {
		rr.statusLabel.Importance = widget.SuccessImportance
		rr.statusLabel.SetText(IconCompleted + " done")
		rr.sizeLabel.SetText(formatFileSize(rr.result.Size()))
		rr.updateThumbnail()
	}

	rr.updateButtons()
}

// updateThumbnail decodes the converted bytes into a small preview. Decode
// failures leave the row without a preview; the file itself is still fine.
func (rr *ResultRow) updateThumbnail() {
	img, err := imaging.Decode(bytes.NewReader(rr.result.Data))
	if err != nil {
		log.Printf("Preview decode failed for %s: %v", rr.result.OutputName, err)
		rr.thumbnail.Image = nil
		return
	}
	rr.thumbnail.Image = imaging.Thumbnail(img, ThumbnailPixels, ThumbnailPixels, imaging.Lanczos)
	rr.thumbnail.Refresh()
}

// updateButtons updates button states based on result status
func (rr *ResultRow) updateButtons() {
	if rr.result.Failed() {
		rr.saveBtn.Disable()
		rr.revealBtn.Disable()
		rr.openBtn.Disable()
		return
	}

	rr.saveBtn.Enable()

	// Reveal/open need a saved file on disk.
	if rr.result.OutputPath != "" {
		rr.revealBtn.Enable()
		rr.openBtn.Enable()
	} else {
		rr.revealBtn.Disable()
		rr.openBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (rr *ResultRow) CreateRenderer() fyne.WidgetRenderer {
	return &resultRowRenderer{row: rr}
}

// resultRowRenderer renders the result row widget
type resultRowRenderer struct {
	row    *ResultRow
	layout *fyne.Container
}

func (r *resultRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

func (r *resultRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

func (r *resultRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

func (r *resultRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

func (r *resultRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *resultRowRenderer) createLayout() {
	rr := r.row

	// Fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	actionRow := container.NewHBox(
		rr.saveBtn,
		rr.revealBtn,
		rr.openBtn,
	)

	info := container.NewVBox(
		rr.statusLabel,
		fixedWidth(SizeLabelWidth, rr.sizeLabel),
	)

	// Buttons pinned to the right edge, info next to them, name filling the
	// remaining space with the thumbnail on the left.
	rightCluster := container.NewBorder(nil, nil, nil, actionRow, info)
	mainContent := container.NewBorder(nil, nil, rr.thumbnail, rightCluster, rr.nameLabel)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
}
