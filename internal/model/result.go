package model

import (
	"strings"
	"time"
)

// ConversionResult is the outcome of converting a single SourceFile. Exactly
// one exists per input file after a batch completes. ErrorReason is set if
// and only if Data is empty.
type ConversionResult struct {
	ID         string
	SourceName string
	OutputName string // source name with the extension swapped for the target's
	Data       []byte
	OutputPath string // set once the result has been saved to disk
	ErrorReason string
	FinishedAt time.Time
}

// Failed reports whether the conversion of this file failed.
func (cr ConversionResult) Failed() bool {
	return cr.ErrorReason != ""
}

// Size returns the output payload size in bytes.
func (cr ConversionResult) Size() int64 {
	return int64(len(cr.Data))
}

// DeriveOutputName replaces the extension of a source file name with the
// canonical extension of the target format. A name without an extension gets
// the target extension appended.
func DeriveOutputName(sourceName string, target Format) string {
	base := sourceName
	if idx := strings.LastIndex(sourceName, "."); idx > 0 {
		base = sourceName[:idx]
	}
	return base + target.Extension()
}
