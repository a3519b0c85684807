package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/kaanaksulu/heic-flip/internal/model"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 5), B: 120, A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(w, h)); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, testImage(w, h), &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("Failed to encode test JPEG: %v", err)
	}
	return buf.Bytes()
}

func decodedFormat(t *testing.T, data []byte) string {
	t.Helper()
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to decode converted output: %v", err)
	}
	return format
}

func TestConvert_PNGToJPEG(t *testing.T) {
	c := New()
	cfg := model.ConversionConfig{OutputFormat: model.FormatJPEG, Quality: 85}

	out, err := c.Convert(pngBytes(t, 32, 24), "shot.png", cfg)
	if err != nil {
		t.Fatalf("Expected conversion to succeed, got: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("Expected non-empty output")
	}

	if format := decodedFormat(t, out); format != "jpeg" {
		t.Errorf("Expected jpeg output, got %s", format)
	}
}

func TestConvert_JPEGToPNG(t *testing.T) {
	c := New()
	cfg := model.ConversionConfig{OutputFormat: model.FormatPNG, Quality: 85}

	out, err := c.Convert(jpegBytes(t, 20, 20), "shot.jpg", cfg)
	if err != nil {
		t.Fatalf("Expected conversion to succeed, got: %v", err)
	}

	if format := decodedFormat(t, out); format != "png" {
		t.Errorf("Expected png output, got %s", format)
	}
}

func TestConvert_PNGToPNGIgnoresQuality(t *testing.T) {
	c := New()
	src := pngBytes(t, 16, 16)

	// Minimum and maximum slider values: the output format class must stay
	// lossless either way, and the pixel data must be identical.
	var outputs [][]byte
	for _, q := range []int{model.MinQuality, model.MaxQuality} {
		cfg := model.ConversionConfig{OutputFormat: model.FormatPNG, Quality: q}
		out, err := c.Convert(src, "pic.png", cfg)
		if err != nil {
			t.Fatalf("Expected conversion at quality %d to succeed, got: %v", q, err)
		}
		if format := decodedFormat(t, out); format != "png" {
			t.Errorf("Expected png output at quality %d, got %s", q, format)
		}
		outputs = append(outputs, out)
	}

	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Error("Expected identical PNG output regardless of quality value")
	}
}

func TestConvert_CorruptInput(t *testing.T) {
	c := New()
	cfg := model.ConversionConfig{OutputFormat: model.FormatJPEG, Quality: 85}

	_, err := c.Convert([]byte("definitely not an image"), "broken.png", cfg)
	if err == nil {
		t.Fatal("Expected error for corrupt input, got nil")
	}
	if !strings.Contains(err.Error(), "decode") {
		t.Errorf("Expected a decode error, got: %v", err)
	}
}

func TestConvert_UnsupportedTarget(t *testing.T) {
	c := New()
	cfg := model.ConversionConfig{OutputFormat: model.FormatHEIC, Quality: 85}

	_, err := c.Convert(pngBytes(t, 8, 8), "pic.png", cfg)
	if err == nil {
		t.Fatal("Expected error for unsupported output format, got nil")
	}
}

func TestCheckBounds(t *testing.T) {
	tests := []struct {
		name    string
		rect    image.Rectangle
		wantErr bool
	}{
		{"normal", image.Rect(0, 0, 4000, 3000), false},
		{"one pixel", image.Rect(0, 0, 1, 1), false},
		{"zero width", image.Rect(0, 0, 0, 100), true},
		{"too wide", image.Rect(0, 0, MaxImageWidth+1, 10), true},
		{"too tall", image.Rect(0, 0, 10, MaxImageHeight+1), true},
		{"pixel bomb", image.Rect(0, 0, 19000, 19000), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := checkBounds(test.rect)
			if test.wantErr && err == nil {
				t.Errorf("checkBounds(%v) expected error, got nil", test.rect)
			}
			if !test.wantErr && err != nil {
				t.Errorf("checkBounds(%v) unexpected error: %v", test.rect, err)
			}
		})
	}
}
