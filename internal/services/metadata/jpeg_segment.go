package metadata

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	markerPrefix = 0xff
	markerSOI    = 0xd8
	markerAPP1   = 0xe1
	markerSOS    = 0xda
)

var exifHeader = []byte("Exif\x00\x00")

// extractEXIFSegment walks the JPEG marker stream and returns the complete
// APP1 EXIF segment (marker and length included), or nil when the data is
// not a JPEG or carries no EXIF.
func extractEXIFSegment(data []byte) []byte {
	if len(data) < 4 || data[0] != markerPrefix || data[1] != markerSOI {
		return nil
	}

	i := 2
	for i+4 <= len(data) {
		if data[i] != markerPrefix {
			return nil
		}
		marker := data[i+1]
		if marker == markerSOS {
			return nil
		}

		length := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		end := i + 2 + length
		if length < 2 || end > len(data) {
			return nil
		}

		if marker == markerAPP1 && bytes.HasPrefix(data[i+4:end], exifHeader) {
			return data[i:end]
		}
		i = end
	}
	return nil
}

// spliceEXIFSegment inserts an APP1 EXIF segment into a JPEG directly after
// the SOI marker.
func spliceEXIFSegment(jpegData, segment []byte) ([]byte, error) {
	if len(jpegData) < 2 || jpegData[0] != markerPrefix || jpegData[1] != markerSOI {
		return nil, fmt.Errorf("splice target is not a jpeg")
	}

	out := make([]byte, 0, len(jpegData)+len(segment))
	out = append(out, jpegData[:2]...)
	out = append(out, segment...)
	out = append(out, jpegData[2:]...)
	return out, nil
}
