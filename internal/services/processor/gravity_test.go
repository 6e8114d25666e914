package processor

import (
	"image"
	"testing"
)

func TestResolveAnchor(t *testing.T) {
	cases := map[string]Anchor{
		"bottom-right": AnchorBottomRight,
		"bottom-left":  AnchorBottomLeft,
		"top-right":    AnchorTopRight,
		"top-left":     AnchorTopLeft,
		"center":       AnchorCenter,
		"":             AnchorBottomRight,
		"southeast":    AnchorBottomRight,
		"BOTTOM-LEFT":  AnchorBottomRight,
	}

	for position, want := range cases {
		if got := ResolveAnchor(position); got != want {
			t.Errorf("ResolveAnchor(%q) = %v, want %v", position, got, want)
		}
	}
}

func TestAnchorOffset(t *testing.T) {
	const baseW, baseH = 1000, 500
	const ovW, ovH = 200, 100

	cases := []struct {
		anchor Anchor
		want   image.Point
	}{
		{AnchorTopLeft, image.Pt(0, 0)},
		{AnchorTopRight, image.Pt(800, 0)},
		{AnchorBottomLeft, image.Pt(0, 400)},
		{AnchorBottomRight, image.Pt(800, 400)},
		{AnchorCenter, image.Pt(400, 200)},
	}

	for _, tc := range cases {
		got := AnchorOffset(tc.anchor, baseW, baseH, ovW, ovH)
		if got != tc.want {
			t.Errorf("AnchorOffset(%v) = %v, want %v", tc.anchor, got, tc.want)
		}
	}
}
