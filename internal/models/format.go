package models

import "strings"

// Format is a supported conversion target.
type Format string

const (
	FormatWebP Format = "webp"
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatAVIF Format = "avif"
	FormatTIFF Format = "tiff"
	FormatGIF  Format = "gif"
)

// DefaultFormat is used when a request does not name a target format.
const DefaultFormat = FormatWebP

// SupportedFormats is the closed set of conversion targets.
var SupportedFormats = []Format{
	FormatWebP,
	FormatJPEG,
	FormatPNG,
	FormatAVIF,
	FormatTIFF,
	FormatGIF,
}

// ParseFormat validates a raw format string. An empty value resolves to
// DefaultFormat; anything outside the supported set is rejected.
func ParseFormat(raw string) (Format, bool) {
	if raw == "" {
		return DefaultFormat, true
	}

	f := Format(strings.ToLower(raw))
	for _, supported := range SupportedFormats {
		if f == supported {
			return f, true
		}
	}
	return "", false
}

// Extension returns the canonical file extension for the format. JPEG output
// keeps the conventional three-letter "jpg" extension rather than the format
// name itself.
func (f Format) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

// SupportsQuality reports whether the encoder for this format honors the
// quality parameter. PNG and GIF are lossless/palette codecs without a
// quality knob, and the TIFF encoder compresses with deflate unconditionally.
func (f Format) SupportsQuality() bool {
	switch f {
	case FormatJPEG, FormatWebP, FormatAVIF:
		return true
	default:
		return false
	}
}
