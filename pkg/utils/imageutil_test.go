package utils

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

var allowed = []string{"jpeg", "jpg", "png", "gif", "tiff", "tif", "bmp", "webp"}

func TestIsAllowedSource(t *testing.T) {
	cases := map[string]bool{
		"photo.jpg":    true,
		"photo.JPG":    true,
		"scan.TIFF":    true,
		"anim.gif":     true,
		"vector.svg":   false,
		"doc.pdf":      false,
		"noextension":  false,
		"archive.zip":  false,
		"shot.png.exe": false,
	}

	for filename, want := range cases {
		if got := IsAllowedSource(filename, allowed); got != want {
			t.Errorf("IsAllowedSource(%q) = %v, want %v", filename, got, want)
		}
	}
}

func TestIsImageContentType(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}

	if !IsImageContentType(buf.Bytes()) {
		t.Error("png bytes not recognized as an image")
	}
	if IsImageContentType([]byte("<html><body>nope</body></html>")) {
		t.Error("html recognized as an image")
	}
	// TIFF is absent from the sniffing table; inconclusive data must pass.
	if !IsImageContentType([]byte{0x49, 0x49, 0x2a, 0x00, 0x08, 0x00, 0x00, 0x00}) {
		t.Error("tiff header rejected")
	}
}
