package models

import (
	"math"
	"path/filepath"
	"strings"
)

// ConversionResult is the outcome of converting one uploaded file. On success
// Data holds the encoded image and Err is nil; on failure only Filename and
// Err are meaningful. A result is never both.
type ConversionResult struct {
	Filename      string
	OriginalSize  int64
	ConvertedSize int64
	Savings       int
	Width         int
	Height        int
	Format        Format
	Data          []byte
	Err           error
}

// Failed reports whether the result carries an error instead of output.
func (r *ConversionResult) Failed() bool {
	return r.Err != nil
}

// SavingsPercent computes the byte-size saving of a conversion as a rounded
// percentage. It is negative when the output grew, which is a valid outcome
// for already-compressed inputs.
func SavingsPercent(originalSize, convertedSize int64) int {
	if originalSize == 0 {
		return 0
	}
	return int(math.Round((1 - float64(convertedSize)/float64(originalSize)) * 100))
}

// OutputFilename derives the archive/download name for a converted file:
// the original stem plus the target format's canonical extension.
func OutputFilename(original string, format Format) string {
	base := filepath.Base(original)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "." + format.Extension()
}

// BatchSummary aggregates per-file outcomes of a bulk conversion.
type BatchSummary struct {
	Total         int
	Converted     int
	Failed        int
	OriginalBytes int64
	OutputBytes   int64
	Failures      []BatchFailure
}

// BatchFailure records one skipped file in a bulk run.
type BatchFailure struct {
	Filename string
	Reason   string
}

// Add folds one conversion result into the summary.
func (s *BatchSummary) Add(res *ConversionResult) {
	s.Total++
	if res.Failed() {
		s.Failed++
		s.Failures = append(s.Failures, BatchFailure{
			Filename: res.Filename,
			Reason:   res.Err.Error(),
		})
		return
	}
	s.Converted++
	s.OriginalBytes += res.OriginalSize
	s.OutputBytes += res.ConvertedSize
}

// Savings returns the aggregate byte-size saving across all converted files.
func (s *BatchSummary) Savings() int {
	return SavingsPercent(s.OriginalBytes, s.OutputBytes)
}
