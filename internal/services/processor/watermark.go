package processor

import (
	"fmt"
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

const (
	minFontSize    = 14
	overlayPadding = 40
	shadowOffset   = 2
	shadowAlpha    = 153 // 60% opacity
)

var watermarkFont *truetype.Font

func init() {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		panic(fmt.Sprintf("parse bundled watermark font: %v", err))
	}
	watermarkFont = f
}

// OverlaySpec describes the typography and geometry of a text watermark for
// one target image. It is derived from the image's post-resize width, so a
// fresh spec is built per file.
type OverlaySpec struct {
	Text     string
	Color    color.NRGBA
	FontSize int
	Width    int
	Height   int
}

// NewOverlaySpec computes the overlay canvas for the given text and target
// image width. Font size scales with the image, floored at a legible minimum;
// the canvas width approximates the rendered text run plus padding.
func NewOverlaySpec(text, colorName string, targetWidth int) OverlaySpec {
	fontSize := targetWidth / 25
	if fontSize < minFontSize {
		fontSize = minFontSize
	}

	runes := utf8.RuneCountInString(text)
	width := int(float64(runes)*0.7*float64(fontSize)) + overlayPadding
	height := fontSize + overlayPadding

	return OverlaySpec{
		Text:     text,
		Color:    ParseColor(colorName),
		FontSize: fontSize,
		Width:    width,
		Height:   height,
	}
}

// ShadowColor picks the contrasting translucent tone drawn under the text:
// a dark shadow for light text, a light shadow for dark text.
func (s OverlaySpec) ShadowColor() color.NRGBA {
	if luminance(s.Color) >= 0.5 {
		return color.NRGBA{A: shadowAlpha}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: shadowAlpha}
}

// RenderOverlay rasterizes the overlay text onto a transparent canvas: the
// shadow copy first, offset down-right, then the main text on top.
func RenderOverlay(spec OverlaySpec) (image.Image, error) {
	canvas := image.NewNRGBA(image.Rect(0, 0, spec.Width, spec.Height))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(watermarkFont)
	ctx.SetFontSize(float64(spec.FontSize))
	ctx.SetClip(canvas.Bounds())
	ctx.SetDst(canvas)
	ctx.SetHinting(font.HintingFull)

	baseX := 10
	baseY := spec.FontSize + 10

	ctx.SetSrc(image.NewUniform(spec.ShadowColor()))
	if _, err := ctx.DrawString(spec.Text, freetype.Pt(baseX+shadowOffset, baseY+shadowOffset)); err != nil {
		return nil, fmt.Errorf("draw watermark shadow: %w", err)
	}

	ctx.SetSrc(image.NewUniform(spec.Color))
	if _, err := ctx.DrawString(spec.Text, freetype.Pt(baseX, baseY)); err != nil {
		return nil, fmt.Errorf("draw watermark text: %w", err)
	}

	return canvas, nil
}

func luminance(c color.NRGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}
