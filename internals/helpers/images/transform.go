// Package images bounds uploaded binaries to per-entity presets before they
// reach object storage.
package images

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Preset fixes the output bound and encoding for one entity type.
type Preset struct {
	Name    string
	MaxW    int
	Quality int
	Format  Format
}

type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
)

// Presets mirror the site's layout widths. Logos stay PNG to keep alpha.
var (
	PresetAlbum          = Preset{Name: "album", MaxW: 1600, Quality: 80, Format: FormatJPEG}
	PresetSlide          = Preset{Name: "slide", MaxW: 1920, Quality: 85, Format: FormatJPEG}
	PresetArticle        = Preset{Name: "article", MaxW: 1200, Quality: 80, Format: FormatJPEG}
	PresetArticleContent = Preset{Name: "article-content", MaxW: 1000, Quality: 75, Format: FormatJPEG}
	PresetLogo           = Preset{Name: "logo", MaxW: 800, Quality: 100, Format: FormatPNG}
)

func (p Preset) Ext() string {
	if p.Format == FormatPNG {
		return ".png"
	}
	return ".jpg"
}

func (p Preset) ContentType() string {
	if p.Format == FormatPNG {
		return "image/png"
	}
	return "image/jpeg"
}

// FileName builds a randomized object name with the preset's extension.
func (p Preset) FileName() string {
	return fmt.Sprintf("%s-%d%s", uuid.New().String(), time.Now().UnixMilli(), p.Ext())
}

var maxUploadSize = int64(10 * 1024 * 1024)

// TransformFile reads a multipart upload and returns the re-encoded bytes.
func TransformFile(fh *multipart.FileHeader, p Preset) ([]byte, error) {
	if fh.Size > maxUploadSize {
		return nil, fmt.Errorf("image exceeds %dMB limit", maxUploadSize/(1024*1024))
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()
	return Transform(src, p)
}

// Transform decodes, downsizes to the preset bound (never upscales) and
// re-encodes. WebP input is accepted alongside the formats imaging knows.
func Transform(r io.Reader, p Preset) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	img, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if w := img.Bounds().Dx(); p.MaxW > 0 && w > p.MaxW {
		img = imaging.Resize(img, p.MaxW, 0, imaging.Lanczos)
	}

	var out bytes.Buffer
	switch p.Format {
	case FormatPNG:
		err = imaging.Encode(&out, img, imaging.PNG)
	default:
		err = imaging.Encode(&out, img, imaging.JPEG, imaging.JPEGQuality(p.Quality))
	}
	if err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return out.Bytes(), nil
}

func decode(raw []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err == nil {
		return img, nil
	}
	// imaging has no webp support; fall back before giving up
	if wimg, werr := webp.Decode(bytes.NewReader(raw)); werr == nil {
		return wimg, nil
	}
	return nil, err
}
