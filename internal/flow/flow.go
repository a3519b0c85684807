package flow

import (
	"github.com/kaanaksulu/heic-flip/internal/model"
)

// Flow describes one conversion surface of the app: which source formats it
// accepts, which targets it offers, and how its preferences and archives are
// named. The three shipped flows share a single pipeline; only this record
// differs between them.
type Flow struct {
	ID       string // preference key namespace, stable across releases
	Title    string
	Tagline  string
	Accepted []model.Format
	Targets  []model.Format

	// HasCompressionMode enables the lossy/lossless selector. Only
	// meaningful when WebP is among the targets.
	HasCompressionMode bool

	// ZipDescriptor prefixes the batch archive file name.
	ZipDescriptor string

	DefaultTarget model.Format
}

// Defined flows. IDs double as preference namespaces, so renaming one would
// silently reset saved settings for that flow.
var (
	HEIC = Flow{
		ID:            "heic",
		Title:         "HEIC to JPG/PNG",
		Tagline:       "Convert Apple HEIC images to universal JPG or PNG formats",
		Accepted:      []model.Format{model.FormatHEIC},
		Targets:       []model.Format{model.FormatJPEG, model.FormatPNG},
		ZipDescriptor: "heic-converted",
		DefaultTarget: model.FormatJPEG,
	}

	JPGPNG = Flow{
		ID:            "jpg_png",
		Title:         "JPG ⇄ PNG",
		Tagline:       "Convert between JPEG and PNG for web use or transparency",
		Accepted:      []model.Format{model.FormatJPEG, model.FormatPNG},
		Targets:       []model.Format{model.FormatJPEG, model.FormatPNG},
		ZipDescriptor: "converted",
		DefaultTarget: model.FormatPNG,
	}

	WebP = Flow{
		ID:                 "webp",
		Title:              "WebP ⇄ JPG/PNG",
		Tagline:            "Convert between WebP, JPG, and PNG with lossy or lossless compression",
		Accepted:           []model.Format{model.FormatWebP, model.FormatJPEG, model.FormatPNG},
		Targets:            []model.Format{model.FormatWebP, model.FormatJPEG, model.FormatPNG},
		HasCompressionMode: true,
		ZipDescriptor:      "webp-converted",
		DefaultTarget:      model.FormatWebP,
	}
)

// All returns the flows in display order.
func All() []Flow {
	return []Flow{HEIC, JPGPNG, WebP}
}

// Accepts reports whether a file is admissible for the flow, either by its
// declared media type or by its name's extension. Extension matching is an
// equally valid path because media types are frequently misreported.
func (f Flow) Accepts(name, mime string) bool {
	for _, format := range f.Accepted {
		if format.MatchesMIME(mime) || format.MatchesName(name) {
			return true
		}
	}
	return false
}

// OffersTarget reports whether the format is selectable as output.
func (f Flow) OffersTarget(target model.Format) bool {
	for _, t := range f.Targets {
		if t == target {
			return true
		}
	}
	return false
}

// AcceptedExtensions returns every extension the flow accepts, for file
// picker filters.
func (f Flow) AcceptedExtensions() []string {
	var exts []string
	for _, format := range f.Accepted {
		exts = append(exts, format.Extensions()...)
	}
	return exts
}
