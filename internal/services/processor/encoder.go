package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/gen2brain/avif"
	"github.com/gen2brain/webp"
	"golang.org/x/image/tiff"

	"image-convert/internal/models"
)

// Encode serializes the image in the target format. Quality is honored by
// jpeg, webp and avif; the remaining encoders have no quality knob (see
// models.Format.SupportsQuality).
func Encode(img image.Image, format models.Format, quality int) ([]byte, error) {
	buf := new(bytes.Buffer)
	var err error

	switch format {
	case models.FormatJPEG:
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: quality})
	case models.FormatPNG:
		err = png.Encode(buf, img)
	case models.FormatGIF:
		err = gif.Encode(buf, img, nil)
	case models.FormatTIFF:
		err = tiff.Encode(buf, img, &tiff.Options{Compression: tiff.Deflate})
	case models.FormatWebP:
		err = webp.Encode(buf, img, webp.Options{Quality: quality})
	case models.FormatAVIF:
		err = avif.Encode(buf, img, avif.Options{Quality: quality})
	default:
		return nil, fmt.Errorf("%w: no encoder for %q", ErrEncode, format)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrEncode, format, err)
	}
	return buf.Bytes(), nil
}
