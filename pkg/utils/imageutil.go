package utils

import (
	"net/http"
	"path/filepath"
	"strings"
)

// IsAllowedSource checks an upload's extension against the configured
// allow-list, case-insensitively.
func IsAllowedSource(filename string, allowedExts []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return false
	}
	for _, allowed := range allowedExts {
		if ext == allowed {
			return true
		}
	}
	return false
}

// IsImageContentType sniffs the leading bytes and reports whether they look
// like a raster image. Extension checks alone are spoofable. TIFF is not in
// the sniffing table, so an inconclusive octet-stream result passes through
// and the decoder gets the final say.
func IsImageContentType(data []byte) bool {
	ct := http.DetectContentType(data)
	return strings.HasPrefix(ct, "image/") || ct == "application/octet-stream"
}
