package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// feature is one entry in the About tab's feature grid.
type feature struct {
	Title       string
	Description string
}

// faqItem is one question/answer pair in the About tab.
type faqItem struct {
	Question string
	Answer   string
}

var features = []feature{
	{
		Title:       "Privacy First",
		Description: "All conversions happen locally on your device. Your files are never uploaded anywhere.",
	},
	{
		Title:       "Batch Conversion",
		Description: "Select up to 50 files and convert them all in one run.",
	},
	{
		Title:       "Universal Compatibility",
		Description: "Convert to JPG or PNG formats that work everywhere.",
	},
	{
		Title:       "Batch Download",
		Description: "Save all converted files at once as a zip archive, or individually.",
	},
	{
		Title:       "Quality Control",
		Description: "Adjust compression quality to balance file size and image quality.",
	},
	{
		Title:       "WebP Support",
		Description: "Convert to and from WebP with lossy or lossless compression.",
	},
}

var faqs = []faqItem{
	{
		Question: "What is HEIC format and why do I need to convert it?",
		Answer: "HEIC (High Efficiency Image Container) is Apple's modern image format " +
			"that provides better compression than JPEG while maintaining quality. " +
			"However, it's not widely supported outside of Apple devices, making " +
			"conversion necessary for sharing and web use.",
	},
	{
		Question: "Is my data safe? Do you store my images?",
		Answer: "Absolutely safe. All conversions happen locally on your machine. " +
			"Your images never leave your device or get uploaded to any server.",
	},
	{
		Question: "What's the difference between JPG and PNG output?",
		Answer: "JPG is better for photos with smaller file sizes but uses lossy " +
			"compression. PNG is lossless and supports transparency but creates larger " +
			"files. Choose JPG for photos and PNG when you need perfect quality or " +
			"transparency.",
	},
	{
		Question: "Can I convert multiple files at once?",
		Answer: "Yes. You can select multiple files and convert them all in one batch. " +
			"Converted files can be saved all at once or one by one.",
	},
	{
		Question: "What quality setting should I use for JPG?",
		Answer: "For most photos, 85% quality provides an excellent balance between " +
			"file size and image quality. Use 95%+ for professional work or 70-80% " +
			"for web sharing where smaller file sizes are preferred.",
	},
}

// NewAboutContent builds the About tab with the feature list and FAQ.
func NewAboutContent() fyne.CanvasObject {
	featureBox := container.NewVBox()
	for _, f := range features {
		title := widget.NewLabel(f.Title)
		title.TextStyle = fyne.TextStyle{Bold: true}
		desc := widget.NewLabel(f.Description)
		desc.Wrapping = fyne.TextWrapWord
		featureBox.Add(title)
		featureBox.Add(desc)
	}

	accordion := widget.NewAccordion()
	for _, item := range faqs {
		answer := widget.NewLabel(item.Answer)
		answer.Wrapping = fyne.TextWrapWord
		accordion.Append(widget.NewAccordionItem(item.Question, answer))
	}

	heading := widget.NewLabel("Frequently Asked Questions")
	heading.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewVScroll(container.NewVBox(
		featureBox,
		widget.NewSeparator(),
		heading,
		accordion,
	))
}
