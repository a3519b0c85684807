package validate

import (
	"fmt"

	"github.com/kaanaksulu/heic-flip/internal/flow"
	"github.com/kaanaksulu/heic-flip/internal/model"
)

// Batch limits.
const (
	MaxFileSize   = 50 * 1024 * 1024 // 50MB per file
	MaxBatchFiles = 50
)

// Batch checks a candidate batch against the flow's accepted formats and the
// size/count ceilings. It is a pure function: no input is mutated. The first
// failing file short-circuits, so a single call reports at most one problem.
func Batch(files []model.SourceFile, f flow.Flow) error {
	if len(files) == 0 {
		return fmt.Errorf("please select at least one file")
	}
	if len(files) > MaxBatchFiles {
		return fmt.Errorf("maximum %d files allowed at once", MaxBatchFiles)
	}

	for _, file := range files {
		if err := one(file, f); err != nil {
			return fmt.Errorf("%s: %w", file.Name, err)
		}
	}
	return nil
}

// one checks a single file: admissible format first, then size bounds.
func one(file model.SourceFile, f flow.Flow) error {
	if !f.Accepts(file.Name, file.MIME) {
		return fmt.Errorf("unsupported file type, expected %s", acceptedSummary(f))
	}
	if file.Size() > MaxFileSize {
		return fmt.Errorf("file size exceeds the %dMB limit", MaxFileSize/(1024*1024))
	}
	if file.Size() == 0 {
		return fmt.Errorf("file appears to be empty")
	}
	return nil
}

func acceptedSummary(f flow.Flow) string {
	switch len(f.Accepted) {
	case 0:
		return "no formats"
	case 1:
		return f.Accepted[0].String()
	default:
		summary := f.Accepted[0].String()
		for _, format := range f.Accepted[1 : len(f.Accepted)-1] {
			summary += ", " + format.String()
		}
		return summary + " or " + f.Accepted[len(f.Accepted)-1].String()
	}
}
