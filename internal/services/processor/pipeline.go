package processor

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"image-convert/internal/models"
)

// Stage is one transform step of the conversion pipeline. Stages are built
// once per image by BuildPipeline and applied in order; the sequence is a
// plain value so stage presence and ordering are testable without touching
// any codec.
type Stage interface {
	Name() string
}

// KeepMetadataStage instructs the pipeline to carry embedded metadata
// (EXIF/ICC) through to the output. It leads the pipeline so it governs
// everything that follows.
type KeepMetadataStage struct{}

func (KeepMetadataStage) Name() string { return "keep-metadata" }

// ResizeStage fits the image inside a bounding box, preserving aspect ratio
// and never upscaling. A zero bound leaves that axis unconstrained.
type ResizeStage struct {
	MaxWidth  int
	MaxHeight int
}

func (ResizeStage) Name() string { return "resize" }

// OverlayStage composites the text watermark at the resolved anchor.
type OverlayStage struct {
	Spec   OverlaySpec
	Anchor Anchor
}

func (OverlayStage) Name() string { return "overlay" }

// EncodeStage is always the final stage. Quality is zeroed at construction
// for formats whose encoder has no quality knob; models.Format.SupportsQuality
// is the single capability table.
type EncodeStage struct {
	Format  models.Format
	Quality int
}

func (EncodeStage) Name() string { return "encode" }

// BuildPipeline composes the ordered stage list for one decoded image of the
// given intrinsic size. The order is fixed: metadata policy, resize, overlay,
// encode. The overlay is sized against the post-resize width so the watermark
// scales with the actual output, not the upload.
func BuildPipeline(srcWidth, srcHeight int, opts Options) []Stage {
	stages := make([]Stage, 0, 4)

	if opts.KeepMetadata {
		stages = append(stages, KeepMetadataStage{})
	}

	if opts.Bounded() {
		stages = append(stages, ResizeStage{MaxWidth: opts.MaxWidth, MaxHeight: opts.MaxHeight})
	}

	if opts.Watermarked() {
		width := effectiveWidth(srcWidth, opts.MaxWidth)
		stages = append(stages, OverlayStage{
			Spec:   NewOverlaySpec(opts.WatermarkText, opts.WatermarkColor, width),
			Anchor: opts.WatermarkAnchor,
		})
	}

	quality := opts.Quality
	if !opts.Format.SupportsQuality() {
		quality = 0
	}
	stages = append(stages, EncodeStage{Format: opts.Format, Quality: quality})
	return stages
}

// effectiveWidth is the output width the overlay must scale against: the
// resize bound when it actually constrains the image, else the source width.
func effectiveWidth(srcWidth, maxWidth int) int {
	if maxWidth > 0 && maxWidth < srcWidth {
		return maxWidth
	}
	return srcWidth
}

// run applies the stage sequence to a decoded image and returns the encoded
// bytes plus whether metadata should be preserved. The encode stage
// terminates the walk.
func run(img image.Image, stages []Stage) ([]byte, bool, error) {
	keepMetadata := false

	for _, stage := range stages {
		switch s := stage.(type) {
		case KeepMetadataStage:
			keepMetadata = true

		case ResizeStage:
			img = fitWithin(img, s.MaxWidth, s.MaxHeight)

		case OverlayStage:
			overlay, err := RenderOverlay(s.Spec)
			if err != nil {
				return nil, false, err
			}
			base := img.Bounds()
			ob := overlay.Bounds()
			offset := AnchorOffset(s.Anchor, base.Dx(), base.Dy(), ob.Dx(), ob.Dy())
			img = imaging.Overlay(img, overlay, offset, 1.0)

		case EncodeStage:
			data, err := Encode(img, s.Format, s.Quality)
			if err != nil {
				return nil, false, err
			}
			return data, keepMetadata, nil
		}
	}

	return nil, false, fmt.Errorf("%w: pipeline has no encode stage", ErrEncode)
}

// fitWithin scales the image down to fit the bounding box. An unset axis is
// bounded by the source dimension itself, so a smaller image passes through
// untouched.
func fitWithin(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := maxWidth
	if width <= 0 {
		width = bounds.Dx()
	}
	height := maxHeight
	if height <= 0 {
		height = bounds.Dy()
	}
	if width >= bounds.Dx() && height >= bounds.Dy() {
		return img
	}
	return imaging.Fit(img, width, height, imaging.Lanczos)
}
