package model

// CompressionMode selects between lossy and lossless WebP encoding.
type CompressionMode string

const (
	CompressionLossy    CompressionMode = "lossy"
	CompressionLossless CompressionMode = "lossless"
)

// String returns the string representation of CompressionMode.
func (cm CompressionMode) String() string {
	return string(cm)
}

// Quality bounds for the conversion settings slider.
const (
	MinQuality     = 10
	MaxQuality     = 100
	DefaultQuality = 85
)

// ConversionConfig holds the user-adjustable settings of a conversion run.
// One active instance exists per flow; the UI persists it on every change.
type ConversionConfig struct {
	OutputFormat Format
	Quality      int             // MinQuality..MaxQuality
	Compression  CompressionMode // applies to WebP output only
}

// ClampQuality returns q forced into the MinQuality..MaxQuality range.
func ClampQuality(q int) int {
	if q < MinQuality {
		return MinQuality
	}
	if q > MaxQuality {
		return MaxQuality
	}
	return q
}

// LossyAdjustable reports whether the configured target honours the quality
// slider. JPEG always does; WebP only in lossy mode; PNG never.
func (c ConversionConfig) LossyAdjustable() bool {
	switch c.OutputFormat {
	case FormatJPEG:
		return true
	case FormatWebP:
		return c.Compression != CompressionLossless
	default:
		return false
	}
}

// EffectiveQuality returns the quality value handed to the encoder: the
// clamped slider value for lossy-adjustable targets, the fixed maximum for
// lossless ones.
func (c ConversionConfig) EffectiveQuality() int {
	if c.LossyAdjustable() {
		return ClampQuality(c.Quality)
	}
	return MaxQuality
}
