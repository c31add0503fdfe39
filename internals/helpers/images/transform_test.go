package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestTransformDownsizesWideInput(t *testing.T) {
	in := pngBytes(t, 3000, 1500)
	out, err := Transform(bytes.NewReader(in), PresetAlbum)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	decoded, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if w := decoded.Bounds().Dx(); w != PresetAlbum.MaxW {
		t.Fatalf("output width = %d, want %d", w, PresetAlbum.MaxW)
	}
	// aspect ratio preserved
	if h := decoded.Bounds().Dy(); h != PresetAlbum.MaxW/2 {
		t.Fatalf("output height = %d, want %d", h, PresetAlbum.MaxW/2)
	}
}

func TestTransformNeverUpscales(t *testing.T) {
	in := pngBytes(t, 400, 300)
	out, err := Transform(bytes.NewReader(in), PresetSlide)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	decoded, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if w := decoded.Bounds().Dx(); w != 400 {
		t.Fatalf("small input was resized to %d", w)
	}
}

func TestTransformEncodesPerPreset(t *testing.T) {
	in := pngBytes(t, 100, 100)

	jpg, err := Transform(bytes.NewReader(in), PresetArticle)
	if err != nil {
		t.Fatalf("Transform jpeg: %v", err)
	}
	if _, format, err := image.DecodeConfig(bytes.NewReader(jpg)); err != nil || format != "jpeg" {
		t.Fatalf("article preset produced %q (%v), want jpeg", format, err)
	}

	out, err := Transform(bytes.NewReader(in), PresetLogo)
	if err != nil {
		t.Fatalf("Transform png: %v", err)
	}
	if _, format, err := image.DecodeConfig(bytes.NewReader(out)); err != nil || format != "png" {
		t.Fatalf("logo preset produced %q (%v), want png", format, err)
	}
}

func TestTransformRejectsGarbage(t *testing.T) {
	if _, err := Transform(strings.NewReader("not an image at all"), PresetAlbum); err == nil {
		t.Fatal("expected decode error for non-image input")
	}
}

func TestPresetFileName(t *testing.T) {
	name := PresetAlbum.FileName()
	if !strings.HasSuffix(name, ".jpg") {
		t.Fatalf("album file name %q missing .jpg", name)
	}
	if other := PresetAlbum.FileName(); other == name {
		t.Fatal("two generated file names collided")
	}
	if !strings.HasSuffix(PresetLogo.FileName(), ".png") {
		t.Fatal("logo file name missing .png")
	}
}
