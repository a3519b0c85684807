package model

import (
	"path/filepath"
	"strings"
)

// Format identifies an image format the app can read or write.
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatHEIC Format = "heic"
)

// String returns the string representation of Format.
func (f Format) String() string {
	return string(f)
}

// MIME returns the media type for the format.
func (f Format) MIME() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatPNG:
		return "image/png"
	case FormatWebP:
		return "image/webp"
	case FormatHEIC:
		return "image/heic"
	default:
		return "application/octet-stream"
	}
}

// Extension returns the canonical filename extension for the format,
// including the leading dot. Note "jpeg" canonically maps to ".jpg".
func (f Format) Extension() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatPNG:
		return ".png"
	case FormatWebP:
		return ".webp"
	case FormatHEIC:
		return ".heic"
	default:
		return ""
	}
}

// Extensions returns every filename extension accepted for the format.
func (f Format) Extensions() []string {
	switch f {
	case FormatJPEG:
		return []string{".jpg", ".jpeg"}
	case FormatHEIC:
		return []string{".heic", ".heif"}
	case FormatPNG, FormatWebP:
		return []string{f.Extension()}
	default:
		return nil
	}
}

// MIMETypes returns every declared media type accepted for the format.
// Browsers and some desktop environments report "image/jpg" and "image/heif"
// for files that are perfectly convertible, so both are accepted.
func (f Format) MIMETypes() []string {
	switch f {
	case FormatJPEG:
		return []string{"image/jpeg", "image/jpg"}
	case FormatHEIC:
		return []string{"image/heic", "image/heif"}
	case FormatPNG, FormatWebP:
		return []string{f.MIME()}
	default:
		return nil
	}
}

// Lossless reports whether the format class is always lossless regardless of
// any quality setting.
func (f Format) Lossless() bool {
	return f == FormatPNG
}

// MatchesName reports whether the file name carries one of the format's
// accepted extensions. Matching is case-insensitive; "photo.HEIC" matches.
func (f Format) MatchesName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, accepted := range f.Extensions() {
		if ext == accepted {
			return true
		}
	}
	return false
}

// MatchesMIME reports whether the declared media type belongs to the format.
func (f Format) MatchesMIME(mime string) bool {
	mime = strings.ToLower(strings.TrimSpace(mime))
	for _, accepted := range f.MIMETypes() {
		if mime == accepted {
			return true
		}
	}
	return false
}
