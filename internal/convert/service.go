package convert

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/kaanaksulu/heic-flip/internal/model"
)

// Failure text shown to the user for any per-file conversion error. The
// underlying cause goes to the log; the result carries a generic reason.
const FailureReason = "failed to convert file"

const resultIDPrefix = "result-"

// Stage is one cosmetic preparation step shown before real conversion work
// begins. Purely perceived-progress UX; it does no preprocessing.
type Stage struct {
	Label string
	Pause time.Duration
}

// DefaultStages mirrors the staged messages of the original product.
func DefaultStages() []Stage {
	return []Stage{
		{Label: "Preparing conversion...", Pause: 2 * time.Second},
		{Label: "Analyzing source files...", Pause: 3 * time.Second},
		{Label: "Optimizing output quality...", Pause: 3 * time.Second},
		{Label: "Finalizing conversion setup...", Pause: 2 * time.Second},
	}
}

// Service drives batch conversion: strictly ordered, one file at a time, with
// per-file failure isolation. It holds no batch state of its own; callers own
// the result slice.
type Service struct {
	converter Converter
	stages    []Stage
}

// NewService creates a new conversion engine on top of the given converter.
func NewService(converter Converter) *Service {
	return &Service{
		converter: converter,
		stages:    DefaultStages(),
	}
}

// SetStages replaces the preparation stages. An empty slice skips the
// preparation phase entirely.
func (s *Service) SetStages(stages []Stage) {
	s.stages = stages
}

// ConvertBatch converts every file in input order and returns one result per
// file. A failed file records a failed result and the batch continues; after
// each file the recomputed percentage is emitted, reaching exactly 100 when
// the last file finishes. Cancelling the context stops the run at the next
// suspension point; files not reached are recorded as failed so the result
// list stays aligned with the input.
func (s *Service) ConvertBatch(ctx context.Context, files []model.SourceFile, cfg model.ConversionConfig, onProgress ProgressFunc) []model.ConversionResult {
	if onProgress == nil {
		onProgress = func(int, string) {}
	}
	if len(files) == 0 {
		return nil
	}

	if err := s.playStages(ctx, onProgress); err != nil {
		log.Printf("Batch cancelled during preparation: %v", err)
		return s.cancelledResults(files)
	}

	results := make([]model.ConversionResult, 0, len(files))
	total := len(files)

	for i, file := range files {
		if ctx.Err() != nil {
			log.Printf("Batch cancelled after %d of %d files", i, total)
			return append(results, s.cancelledResults(files[i:])...)
		}

		results = append(results, s.convertOne(file, cfg))

		percent := int(math.Round(float64(i+1) / float64(total) * 100))
		onProgress(percent, "")
	}

	return results
}

// convertOne converts a single file, never letting a converter failure
// propagate past this file's result.
func (s *Service) convertOne(file model.SourceFile, cfg model.ConversionConfig) model.ConversionResult {
	result := model.ConversionResult{
		ID:         generateResultID(),
		SourceName: file.Name,
		OutputName: model.DeriveOutputName(file.Name, cfg.OutputFormat),
	}

	data, err := s.converter.Convert(file.Data, file.Name, cfg)
	if err != nil {
		log.Printf("Conversion failed for %s: %v", file.Name, err)
		result.ErrorReason = FailureReason
	} else {
		result.Data = data
	}
	result.FinishedAt = time.Now()

	return result
}

// playStages emits the cosmetic stage labels with their pauses. Returns the
// context error if cancelled mid-pause.
func (s *Service) playStages(ctx context.Context, onProgress ProgressFunc) error {
	for _, stage := range s.stages {
		onProgress(0, stage.Label)

		if stage.Pause <= 0 {
			continue
		}
		select {
		case <-time.After(stage.Pause):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// cancelledResults fills results for files the run never reached, keeping the
// one-result-per-file invariant intact.
func (s *Service) cancelledResults(files []model.SourceFile) []model.ConversionResult {
	results := make([]model.ConversionResult, 0, len(files))
	for _, file := range files {
		results = append(results, model.ConversionResult{
			ID:          generateResultID(),
			SourceName:  file.Name,
			OutputName:  file.Name,
			ErrorReason: "conversion cancelled",
			FinishedAt:  time.Now(),
		})
	}
	return results
}

// generateResultID generates a unique result ID using UUID v7 for better
// uniqueness and time ordering.
func generateResultID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(resultIDPrefix+"%d", time.Now().UnixNano())
	}
	return resultIDPrefix + id.String()
}
