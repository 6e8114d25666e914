package processor

import (
	"fmt"
	"strconv"
	"strings"

	"image-convert/internal/models"
)

const (
	defaultQuality        = 80
	defaultWatermarkColor = "white"
)

// RawOptions carries the loosely-typed request fields exactly as they arrive
// in the multipart form.
type RawOptions struct {
	Format            string
	Quality           string
	MaxWidth          string
	MaxHeight         string
	KeepMetadata      string
	WatermarkText     string
	WatermarkPosition string
	WatermarkColor    string
}

// Options is the validated per-request configuration shared by every file in
// a batch.
type Options struct {
	Format          models.Format
	Quality         int
	MaxWidth        int
	MaxHeight       int
	KeepMetadata    bool
	WatermarkText   string
	WatermarkAnchor Anchor
	WatermarkColor  string
}

// ParseOptions normalizes raw request fields into Options. It never touches
// image data; the only rejection is an unsupported target format, everything
// else clamps or falls back to a documented default.
func ParseOptions(raw RawOptions) (Options, error) {
	format, ok := models.ParseFormat(raw.Format)
	if !ok {
		return Options{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw.Format)
	}

	color := raw.WatermarkColor
	if color == "" {
		color = defaultWatermarkColor
	}

	return Options{
		Format:          format,
		Quality:         parseQuality(raw.Quality),
		MaxWidth:        parsePositiveInt(raw.MaxWidth),
		MaxHeight:       parsePositiveInt(raw.MaxHeight),
		KeepMetadata:    raw.KeepMetadata == "true",
		WatermarkText:   sanitizeText(raw.WatermarkText),
		WatermarkAnchor: ResolveAnchor(raw.WatermarkPosition),
		WatermarkColor:  color,
	}, nil
}

// Watermarked reports whether the overlay stage is enabled. The empty text
// string is the disable switch, not an error.
func (o Options) Watermarked() bool {
	return o.WatermarkText != ""
}

// Bounded reports whether at least one resize bound is set.
func (o Options) Bounded() bool {
	return o.MaxWidth > 0 || o.MaxHeight > 0
}

func parseQuality(value string) int {
	quality, err := strconv.Atoi(value)
	if err != nil {
		return defaultQuality
	}
	if quality < 1 {
		return 1
	}
	if quality > 100 {
		return 100
	}
	return quality
}

func parsePositiveInt(value string) int {
	if value == "" {
		return 0
	}
	num, err := strconv.Atoi(value)
	if err != nil || num <= 0 {
		return 0
	}
	return num
}

// sanitizeText strips control characters from untrusted watermark text so
// they cannot disturb glyph layout.
func sanitizeText(text string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, text)
}
