package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the conversion engine and the
// batch packager, and renders pending files, progress, and results per flow.
