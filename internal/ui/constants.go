package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconFolder    = "📁"
	IconFile      = "📄"
	IconClose     = "×"
	IconError     = "❌"
	IconCompleted = "✅"
	IconRemove    = "🗑"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing (result rows / lists)
const (
	StatusLabelWidth float32 = 84
	SizeLabelWidth   float32 = 90

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 56

	ThumbnailSize float32 = 48
)

// Thumbnail rendering
const (
	ThumbnailPixels = 96
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)
