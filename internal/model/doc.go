package model

// Package model defines domain data structures used across the app: source
// files, conversion configuration, per-file results, and batch status enums.
// Structures are designed for direct binding in the UI and explicit state
// transitions.
