package codec

// Package codec wraps pixel decode/re-encode behind a uniform convert-one-
// image contract. JPEG/PNG/WebP/GIF/BMP sources decode through the standard
// image registry (WebP via golang.org/x/image); HEIC/HEIF delegates to
// github.com/jdeng/goheif. Encoding targets JPEG, PNG, and WebP
// (github.com/kolesa-team/go-webp, lossy or lossless).
