// Package cleanup removes stale files from the upload scratch directory on a
// fixed interval. The filesystem and clock are injectable so sweeps are
// testable without touching the real disk.
package cleanup

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Janitor sweeps one directory root, deleting regular files older than
// MaxAge.
type Janitor struct {
	fs       afero.Fs
	root     string
	maxAge   time.Duration
	interval time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewJanitor(fs afero.Fs, root string, maxAge, interval time.Duration, logger *zap.Logger) *Janitor {
	return &Janitor{
		fs:       fs,
		root:     root,
		maxAge:   maxAge,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// WithClock overrides the time source.
func (j *Janitor) WithClock(now func() time.Time) *Janitor {
	j.now = now
	return j
}

// Start runs periodic sweeps until the context is canceled.
func (j *Janitor) Start(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := j.Sweep()
			if err != nil {
				j.logger.Warn("cleanup sweep failed", zap.String("root", j.root), zap.Error(err))
				continue
			}
			if removed > 0 {
				j.logger.Info("cleanup sweep", zap.String("root", j.root), zap.Int("removed", removed))
			}
		}
	}
}

// Sweep deletes expired files once and returns how many were removed. A
// missing root is not an error; the directory may not have been created yet.
func (j *Janitor) Sweep() (int, error) {
	exists, err := afero.DirExists(j.fs, j.root)
	if err != nil || !exists {
		return 0, err
	}

	entries, err := afero.ReadDir(j.fs, j.root)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", j.root, err)
	}

	cutoff := j.now().Add(-j.maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if entry.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(j.root, entry.Name())
		if err := j.fs.Remove(path); err != nil {
			j.logger.Warn("cleanup remove failed", zap.String("path", path), zap.Error(err))
			continue
		}
		removed++
	}
	return removed, nil
}
