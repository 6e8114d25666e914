package metadata

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/barasher/go-exiftool"
	"github.com/rwcarlsen/goexif/exif"
	"go.uber.org/zap"

	"image-convert/internal/models"
)

// ErrNotPreservable is returned when no copy strategy applies to the
// source/target combination.
var ErrNotPreservable = errors.New("metadata cannot be preserved for this format")

// Preserver copies EXIF metadata from a source image into its converted
// output. When the exiftool binary is installed it handles every format pair;
// otherwise a pure-Go APP1 segment splice covers JPEG output.
type Preserver struct {
	et     *exiftool.Exiftool
	logger *zap.Logger
}

// NewPreserver probes for exiftool. A missing binary is not an error; the
// preserver degrades to the JPEG fallback.
func NewPreserver(logger *zap.Logger) *Preserver {
	et, err := exiftool.NewExiftool()
	if err != nil {
		logger.Warn("exiftool unavailable, metadata preservation limited to jpeg output", zap.Error(err))
		et = nil
	}
	return &Preserver{et: et, logger: logger}
}

// Close releases the exiftool process, if any.
func (p *Preserver) Close() error {
	if p.et != nil {
		return p.et.Close()
	}
	return nil
}

// Copy returns the converted bytes with the source's EXIF carried over. A
// source without EXIF passes through unchanged. On any failure the original
// converted bytes are returned alongside the error so the caller can still
// serve the unpreserved output.
func (p *Preserver) Copy(ctx context.Context, original, converted []byte, format models.Format) ([]byte, error) {
	if _, err := exif.Decode(bytes.NewReader(original)); err != nil {
		// Nothing to preserve.
		return converted, nil
	}

	if p.et != nil {
		preserved, err := p.copyWithExiftool(ctx, original, converted, format)
		if err == nil {
			p.logger.Debug("metadata copied",
				zap.String("format", string(format)),
				zap.Int("fields", p.FieldCount(preserved)))
			return preserved, nil
		}
		p.logger.Debug("exiftool copy failed, trying segment splice", zap.Error(err))
	}

	if format == models.FormatJPEG {
		segment := extractEXIFSegment(original)
		if segment != nil {
			return spliceEXIFSegment(converted, segment)
		}
	}

	return converted, ErrNotPreservable
}

// copyWithExiftool round-trips both buffers through temp files and runs
// `exiftool -TagsFromFile src dst`.
func (p *Preserver) copyWithExiftool(ctx context.Context, original, converted []byte, format models.Format) ([]byte, error) {
	dir, err := os.MkdirTemp("", "imgconvert-meta-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "source")
	dst := filepath.Join(dir, "converted."+format.Extension())

	if err := os.WriteFile(src, original, 0o600); err != nil {
		return nil, fmt.Errorf("write source temp: %w", err)
	}
	if err := os.WriteFile(dst, converted, 0o600); err != nil {
		return nil, fmt.Errorf("write converted temp: %w", err)
	}

	cmd := exec.CommandContext(ctx, "exiftool", "-TagsFromFile", src, "-overwrite_original", dst)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("exiftool copy failed: %v: %s", err, bytes.TrimSpace(out))
	}

	preserved, err := os.ReadFile(dst)
	if err != nil {
		return nil, fmt.Errorf("read preserved temp: %w", err)
	}
	return preserved, nil
}

// FieldCount reports how many metadata fields exiftool sees in the given
// image bytes. Used for logging only; returns 0 when exiftool is missing.
func (p *Preserver) FieldCount(data []byte) int {
	if p.et == nil {
		return 0
	}

	tmp, err := os.CreateTemp("", "imgconvert-probe-")
	if err != nil {
		return 0
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return 0
	}
	tmp.Close()

	metas := p.et.ExtractMetadata(tmp.Name())
	if len(metas) == 0 || metas[0].Err != nil {
		return 0
	}
	return len(metas[0].Fields)
}
