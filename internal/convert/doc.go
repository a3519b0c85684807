package convert

// Package convert implements the batch conversion engine. It processes files
// strictly in input order, one codec call in flight at a time, isolates
// per-file failures, and reports monotone percentage progress to the UI.
