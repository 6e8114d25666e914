package processor

import (
	"bytes"
	"context"
	"fmt"
	"image"

	// Registered source decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.uber.org/zap"

	"image-convert/internal/models"
)

// MetadataPreserver copies embedded metadata from the source bytes into the
// converted output. Implementations are best-effort; a failed copy returns
// the converted bytes unchanged alongside the error.
type MetadataPreserver interface {
	Copy(ctx context.Context, original, converted []byte, format models.Format) ([]byte, error)
}

// Processor converts one decoded image at a time through the staged pipeline.
// It holds no per-request state and is safe for concurrent use.
type Processor struct {
	preserver MetadataPreserver
	logger    *zap.Logger
}

func New(preserver MetadataPreserver, logger *zap.Logger) *Processor {
	return &Processor{
		preserver: preserver,
		logger:    logger,
	}
}

// Convert runs the full pipeline for a single uploaded file and returns a
// result in exactly one of the two shapes: encoded output or a recorded
// error. It never panics past this boundary.
func (p *Processor) Convert(ctx context.Context, filename string, data []byte, opts Options) *models.ConversionResult {
	result := &models.ConversionResult{
		Filename:     models.OutputFilename(filename, opts.Format),
		OriginalSize: int64(len(data)),
		Format:       opts.Format,
	}

	img, srcFormat, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrDecode, err)
		return result
	}

	bounds := img.Bounds()
	result.Width = bounds.Dx()
	result.Height = bounds.Dy()

	stages := BuildPipeline(bounds.Dx(), bounds.Dy(), opts)

	output, keepMetadata, err := run(img, stages)
	if err != nil {
		result.Err = err
		return result
	}

	if keepMetadata && p.preserver != nil {
		preserved, err := p.preserver.Copy(ctx, data, output, opts.Format)
		if err != nil {
			p.logger.Warn("metadata not preserved",
				zap.String("filename", filename),
				zap.String("source_format", srcFormat),
				zap.Error(err))
		} else {
			output = preserved
		}
	}

	result.Data = output
	result.ConvertedSize = int64(len(output))
	result.Savings = models.SavingsPercent(result.OriginalSize, result.ConvertedSize)
	return result
}
