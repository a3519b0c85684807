package model

// BatchStatus represents the state of a conversion batch.
type BatchStatus string

const (
	// BatchStatusIdle means no conversion has been started yet.
	BatchStatusIdle BatchStatus = "Idle"

	// BatchStatusStaging means the synthetic preparation stages are playing.
	BatchStatusStaging BatchStatus = "Staging"

	// BatchStatusConverting means files are being converted.
	BatchStatusConverting BatchStatus = "Converting"

	// BatchStatusCompleted means the batch finished and results are available.
	BatchStatusCompleted BatchStatus = "Completed"
)

// String returns the string representation of BatchStatus.
func (bs BatchStatus) String() string {
	return string(bs)
}

// IsActive returns true if a conversion run is in flight.
func (bs BatchStatus) IsActive() bool {
	return bs == BatchStatusStaging || bs == BatchStatusConverting
}

// IsFinished returns true once a run has produced its results.
func (bs BatchStatus) IsFinished() bool {
	return bs == BatchStatusCompleted
}
