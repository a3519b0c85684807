package config

import (
	"fyne.io/fyne/v2"

	"github.com/kaanaksulu/heic-flip/internal/flow"
	"github.com/kaanaksulu/heic-flip/internal/model"
	"github.com/kaanaksulu/heic-flip/internal/platform"
)

// Settings key suffixes. Every flow keeps its own copy of the conversion keys
// under its ID prefix so flows don't cross-contaminate saved settings.
const (
	KeyOutputFormat    = "output_format"
	KeyQuality         = "quality"
	KeyCompressionMode = "compression_mode"

	// App-level keys (not flow-scoped).
	KeyDownloadDir = "download_directory"
)

// Default values
const (
	DefaultCompressionMode = model.CompressionLossy
)

// Settings manages application configuration on top of Fyne's persistent
// preferences store. Absent or invalid keys yield the flow's defaults.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager.
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

func flowKey(f flow.Flow, suffix string) string {
	return f.ID + "_" + suffix
}

// GetOutputFormat returns the saved output format for the flow, falling back
// to the flow's default. A saved format the flow no longer offers is ignored.
func (s *Settings) GetOutputFormat(f flow.Flow) model.Format {
	stored := model.Format(s.app.Preferences().String(flowKey(f, KeyOutputFormat)))
	if stored == "" || !f.OffersTarget(stored) {
		return f.DefaultTarget
	}
	return stored
}

// SetOutputFormat saves the output format for the flow. Formats the flow does
// not offer are rejected silently.
func (s *Settings) SetOutputFormat(f flow.Flow, format model.Format) {
	if !f.OffersTarget(format) {
		return
	}
	s.app.Preferences().SetString(flowKey(f, KeyOutputFormat), format.String())
}

// GetQuality returns the saved quality for the flow, clamped to the valid
// range, defaulting to model.DefaultQuality.
func (s *Settings) GetQuality(f flow.Flow) int {
	value := s.app.Preferences().IntWithFallback(flowKey(f, KeyQuality), model.DefaultQuality)
	return model.ClampQuality(value)
}

// SetQuality saves the quality for the flow, clamped to the valid range.
func (s *Settings) SetQuality(f flow.Flow, quality int) {
	s.app.Preferences().SetInt(flowKey(f, KeyQuality), model.ClampQuality(quality))
}

// GetCompressionMode returns the saved WebP compression mode for the flow.
func (s *Settings) GetCompressionMode(f flow.Flow) model.CompressionMode {
	stored := model.CompressionMode(s.app.Preferences().String(flowKey(f, KeyCompressionMode)))
	if stored != model.CompressionLossy && stored != model.CompressionLossless {
		return DefaultCompressionMode
	}
	return stored
}

// SetCompressionMode saves the WebP compression mode for the flow.
func (s *Settings) SetCompressionMode(f flow.Flow, mode model.CompressionMode) {
	if mode != model.CompressionLossy && mode != model.CompressionLossless {
		mode = DefaultCompressionMode
	}
	s.app.Preferences().SetString(flowKey(f, KeyCompressionMode), mode.String())
}

// GetConversionConfig assembles the flow's full conversion configuration from
// the saved preferences.
func (s *Settings) GetConversionConfig(f flow.Flow) model.ConversionConfig {
	return model.ConversionConfig{
		OutputFormat: s.GetOutputFormat(f),
		Quality:      s.GetQuality(f),
		Compression:  s.GetCompressionMode(f),
	}
}

// GetDownloadDirectory returns the configured output directory, initializing
// it to the user's Downloads folder on first use.
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the output directory for converted files.
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}
