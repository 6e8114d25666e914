package metadata

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/jpeg"
	"testing"
)

func plainJPEG(t *testing.T) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if err := jpeg.Encode(buf, img, nil); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func fakeEXIFSegment(payload []byte) []byte {
	body := append([]byte("Exif\x00\x00"), payload...)
	seg := make([]byte, 4+len(body))
	seg[0] = 0xff
	seg[1] = 0xe1
	binary.BigEndian.PutUint16(seg[2:4], uint16(len(body)+2))
	copy(seg[4:], body)
	return seg
}

func TestExtractEXIFSegment(t *testing.T) {
	t.Run("jpeg without exif yields nil", func(t *testing.T) {
		if seg := extractEXIFSegment(plainJPEG(t)); seg != nil {
			t.Errorf("expected nil, got %d bytes", len(seg))
		}
	})

	t.Run("non-jpeg yields nil", func(t *testing.T) {
		if seg := extractEXIFSegment([]byte("PNG garbage")); seg != nil {
			t.Error("expected nil for non-jpeg input")
		}
	})

	t.Run("finds spliced segment", func(t *testing.T) {
		segment := fakeEXIFSegment([]byte{0x4d, 0x4d, 0x00, 0x2a})
		data, err := spliceEXIFSegment(plainJPEG(t), segment)
		if err != nil {
			t.Fatalf("splice: %v", err)
		}

		got := extractEXIFSegment(data)
		if !bytes.Equal(got, segment) {
			t.Errorf("extracted %d bytes, want the %d-byte segment back", len(got), len(segment))
		}
	})
}

func TestSpliceEXIFSegment(t *testing.T) {
	t.Run("output stays decodable", func(t *testing.T) {
		segment := fakeEXIFSegment([]byte{0x4d, 0x4d, 0x00, 0x2a})
		data, err := spliceEXIFSegment(plainJPEG(t), segment)
		if err != nil {
			t.Fatalf("splice: %v", err)
		}
		if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
			t.Errorf("spliced jpeg no longer decodes: %v", err)
		}
	})

	t.Run("rejects non-jpeg target", func(t *testing.T) {
		if _, err := spliceEXIFSegment([]byte("nope"), fakeEXIFSegment(nil)); err == nil {
			t.Error("expected error for non-jpeg target")
		}
	})
}
