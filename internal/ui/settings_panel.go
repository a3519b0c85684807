package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/kaanaksulu/heic-flip/internal/config"
	"github.com/kaanaksulu/heic-flip/internal/flow"
	"github.com/kaanaksulu/heic-flip/internal/model"
)

// SettingsPanel holds the per-flow conversion controls: output format,
// quality slider, and compression mode where the flow supports it. Every
// change is written straight to the preference store.
type SettingsPanel struct {
	flow     flow.Flow
	settings *config.Settings

	formatSelect *widget.Select
	qualityLabel *widget.Label
	qualitySlide *widget.Slider
	modeRadio    *widget.RadioGroup

	container *fyne.Container
}

// NewSettingsPanel creates the settings controls for one flow, initialized
// from saved preferences.
func NewSettingsPanel(f flow.Flow, settings *config.Settings) *SettingsPanel {
	sp := &SettingsPanel{
		flow:     f,
		settings: settings,
	}
	sp.createUI()
	return sp
}

// Container returns the root container of the panel.
func (sp *SettingsPanel) Container() *fyne.Container {
	return sp.container
}

// Config returns the currently selected conversion configuration.
func (sp *SettingsPanel) Config() model.ConversionConfig {
	return sp.settings.GetConversionConfig(sp.flow)
}

// createUI creates the settings controls
func (sp *SettingsPanel) createUI() {
	formatOptions := make([]string, 0, len(sp.flow.Targets))
	for _, target := range sp.flow.Targets {
		formatOptions = append(formatOptions, target.String())
	}

	sp.formatSelect = widget.NewSelect(formatOptions, func(selected string) {
		sp.settings.SetOutputFormat(sp.flow, model.Format(selected))
		sp.refreshQualityState()
	})
	sp.formatSelect.SetSelected(sp.settings.GetOutputFormat(sp.flow).String())

	sp.qualityLabel = widget.NewLabel("")
	sp.qualitySlide = widget.NewSlider(float64(model.MinQuality), float64(model.MaxQuality))
	sp.qualitySlide.Step = 1
	sp.qualitySlide.Value = float64(sp.settings.GetQuality(sp.flow))
	sp.qualitySlide.OnChanged = func(value float64) {
		sp.settings.SetQuality(sp.flow, int(value))
		sp.updateQualityLabel()
	}
	sp.updateQualityLabel()

	rows := []fyne.CanvasObject{
		widget.NewLabel("Output Format:"),
		sp.formatSelect,
	}

	if sp.flow.HasCompressionMode {
		sp.modeRadio = widget.NewRadioGroup(
			[]string{model.CompressionLossy.String(), model.CompressionLossless.String()},
			func(selected string) {
				if selected == "" {
					return
				}
				sp.settings.SetCompressionMode(sp.flow, model.CompressionMode(selected))
				sp.refreshQualityState()
			},
		)
		sp.modeRadio.Horizontal = true
		sp.modeRadio.SetSelected(sp.settings.GetCompressionMode(sp.flow).String())

		rows = append(rows,
			widget.NewLabel("Compression:"),
			sp.modeRadio,
		)
	}

	rows = append(rows, sp.qualityLabel, sp.qualitySlide)

	sp.container = container.NewVBox(rows...)
	sp.refreshQualityState()
}

// refreshQualityState enables the quality slider only when the current
// target actually honors a quality value.
func (sp *SettingsPanel) refreshQualityState() {
	cfg := sp.Config()
	if cfg.LossyAdjustable() {
		sp.qualitySlide.Show()
		sp.qualityLabel.Show()
	} else {
		sp.qualitySlide.Hide()
		sp.qualityLabel.Hide()
	}
}

// updateQualityLabel refreshes the slider caption
func (sp *SettingsPanel) updateQualityLabel() {
	sp.qualityLabel.SetText(fmt.Sprintf("Quality: %d%%", sp.settings.GetQuality(sp.flow)))
}
