package convert

import (
	"context"

	"github.com/kaanaksulu/heic-flip/internal/model"
)

// Converter performs the actual pixel work for one image. The engine owns
// ordering, progress, and error isolation; the converter owns nothing but the
// bytes.
type Converter interface {
	Convert(data []byte, sourceName string, cfg model.ConversionConfig) ([]byte, error)
}

// ProgressFunc receives progress updates during a batch run. percent is
// 0..100 and monotonically non-decreasing; stage carries a cosmetic label
// during the preparation phase and is empty afterwards.
type ProgressFunc func(percent int, stage string)

// BatchConverter defines the interface for the conversion engine.
type BatchConverter interface {
	ConvertBatch(ctx context.Context, files []model.SourceFile, cfg model.ConversionConfig, onProgress ProgressFunc) []model.ConversionResult
}
