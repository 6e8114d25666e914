package processor

import "image"

// Anchor is the reference point used to place an overlay on a base image.
type Anchor int

const (
	AnchorBottomRight Anchor = iota
	AnchorBottomLeft
	AnchorTopRight
	AnchorTopLeft
	AnchorCenter
)

// DefaultAnchor is used for empty or unrecognized position names. Placement
// is cosmetic, so unknown values fall back rather than error.
const DefaultAnchor = AnchorBottomRight

var anchorNames = map[string]Anchor{
	"bottom-right": AnchorBottomRight,
	"bottom-left":  AnchorBottomLeft,
	"top-right":    AnchorTopRight,
	"top-left":     AnchorTopLeft,
	"center":       AnchorCenter,
}

// ResolveAnchor maps a logical position name to an Anchor. Total function,
// never fails.
func ResolveAnchor(position string) Anchor {
	if a, ok := anchorNames[position]; ok {
		return a
	}
	return DefaultAnchor
}

func (a Anchor) String() string {
	switch a {
	case AnchorBottomLeft:
		return "bottom-left"
	case AnchorTopRight:
		return "top-right"
	case AnchorTopLeft:
		return "top-left"
	case AnchorCenter:
		return "center"
	default:
		return "bottom-right"
	}
}

// AnchorOffset computes the top-left corner at which an overlay of the given
// size lands on the base image. No extra margin is added; the overlay's own
// padding keeps the text off the edge.
func AnchorOffset(a Anchor, baseW, baseH, overlayW, overlayH int) image.Point {
	switch a {
	case AnchorTopLeft:
		return image.Pt(0, 0)
	case AnchorTopRight:
		return image.Pt(baseW-overlayW, 0)
	case AnchorBottomLeft:
		return image.Pt(0, baseH-overlayH)
	case AnchorCenter:
		return image.Pt((baseW-overlayW)/2, (baseH-overlayH)/2)
	default:
		return image.Pt(baseW-overlayW, baseH-overlayH)
	}
}
