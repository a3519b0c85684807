package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	// Register decoders for natively rasterizable source formats.
	_ "image/gif"

	"github.com/jdeng/goheif"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	_ "golang.org/x/image/bmp"
	xwebp "golang.org/x/image/webp"

	"github.com/kaanaksulu/heic-flip/internal/model"
)

// Lossless WebP effort level, 0 (fast) to 9 (smallest). A middle value, not
// tuned for ratio or speed.
const webpLosslessLevel = 6

func init() {
	// golang.org/x/image/webp registers itself on import; the blank import
	// form is kept explicit so the registration survives refactors.
	_ = xwebp.Decode
}

// Codec converts a single image payload between formats. Sources the
// platform can rasterize natively (jpeg/png/webp/gif/bmp) go through
// image.Decode; HEIC/HEIF is handed to the external decoder first and then
// joins the same re-encode path.
type Codec struct{}

// New creates a new codec.
func New() *Codec {
	return &Codec{}
}

// Convert decodes the payload and re-encodes it to the configured target
// format and quality. Malformed input yields an error, never a panic; the
// caller treats any failure as a per-file conversion error.
func (c *Codec) Convert(data []byte, sourceName string, cfg model.ConversionConfig) ([]byte, error) {
	img, err := c.decode(data, sourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if err := checkBounds(img.Bounds()); err != nil {
		return nil, err
	}

	out, err := c.encode(img, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return out, nil
}

// decode picks the decoding path from the source file name. HEIC never
// reaches the generic decoder: Go has no registered format for it.
func (c *Codec) decode(data []byte, sourceName string) (image.Image, error) {
	if model.FormatHEIC.MatchesName(sourceName) {
		return goheif.Decode(bytes.NewReader(data))
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

func (c *Codec) encode(img image.Image, cfg model.ConversionConfig) ([]byte, error) {
	var buf bytes.Buffer
	quality := cfg.EffectiveQuality()

	switch cfg.OutputFormat {
	case model.FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, err
		}

	case model.FormatPNG:
		// PNG has no quality knob; always lossless.
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}

	case model.FormatWebP:
		opts, err := webpOptions(cfg, quality)
		if err != nil {
			return nil, err
		}
		if err := webp.Encode(&buf, img, opts); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}

	return buf.Bytes(), nil
}

func webpOptions(cfg model.ConversionConfig, quality int) (*encoder.Options, error) {
	if cfg.Compression == model.CompressionLossless {
		return encoder.NewLosslessEncoderOptions(encoder.PresetDefault, webpLosslessLevel)
	}
	return encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(quality))
}
