package model

// BatchState aggregates everything one conversion flow tracks between runs.
// Pending files are cleared only by explicit user removal, independent of
// conversion state; results are superseded when a new run starts.
type BatchState struct {
	Pending []SourceFile
	Status  BatchStatus
	Percent int // 0..100
	Results []ConversionResult
}

// NewBatchState returns an empty idle batch.
func NewBatchState() *BatchState {
	return &BatchState{Status: BatchStatusIdle}
}

// AddPending appends files to the pending list.
func (bs *BatchState) AddPending(files ...SourceFile) {
	bs.Pending = append(bs.Pending, files...)
}

// RemovePending deletes the pending file at index i. Out-of-range indexes are
// ignored.
func (bs *BatchState) RemovePending(i int) {
	if i < 0 || i >= len(bs.Pending) {
		return
	}
	bs.Pending = append(bs.Pending[:i], bs.Pending[i+1:]...)
}

// BeginRun transitions the batch into an active run, discarding any previous
// results.
func (bs *BatchState) BeginRun() {
	bs.Status = BatchStatusStaging
	bs.Percent = 0
	bs.Results = nil
}

// CompleteRun records the ordered results of a finished run.
func (bs *BatchState) CompleteRun(results []ConversionResult) {
	bs.Status = BatchStatusCompleted
	bs.Percent = 100
	bs.Results = results
}

// Succeeded returns the successful results in input order.
func (bs *BatchState) Succeeded() []ConversionResult {
	var ok []ConversionResult
	for _, r := range bs.Results {
		if !r.Failed() {
			ok = append(ok, r)
		}
	}
	return ok
}
