// Package archive streams converted images into a zip written directly to
// the HTTP response, one entry at a time, without buffering the archive.
package archive

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// Writer wraps a zip writer tuned for already-compressed image payloads:
// entries deflate at the fastest level, favoring throughput over ratio.
type Writer struct {
	zw *zip.Writer
}

// NewWriter builds a streaming zip writer over out.
func NewWriter(out io.Writer) *Writer {
	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestSpeed)
	})
	return &Writer{zw: zw}
}

// Add appends one named entry. Entries appear in the archive in call order.
func (w *Writer) Add(name string, data []byte) error {
	entry, err := w.zw.Create(name)
	if err != nil {
		return fmt.Errorf("create archive entry %q: %w", name, err)
	}
	if _, err := entry.Write(data); err != nil {
		return fmt.Errorf("write archive entry %q: %w", name, err)
	}
	return nil
}

// Close finalizes the archive's central directory. Must be called after the
// last entry or the zip is unreadable.
func (w *Writer) Close() error {
	if err := w.zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return nil
}
