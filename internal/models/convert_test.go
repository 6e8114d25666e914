package models

import (
	"errors"
	"testing"
)

func TestSavingsPercent(t *testing.T) {
	cases := []struct {
		name      string
		original  int64
		converted int64
		want      int
	}{
		{"smaller output", 1000, 800, 20},
		{"larger output is negative", 1000, 1200, -20},
		{"identical", 1000, 1000, 0},
		{"rounding", 3, 2, 33},
		{"zero original", 0, 100, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SavingsPercent(tc.original, tc.converted); got != tc.want {
				t.Errorf("SavingsPercent(%d, %d) = %d, want %d", tc.original, tc.converted, got, tc.want)
			}
		})
	}
}

func TestOutputFilename(t *testing.T) {
	cases := []struct {
		original string
		format   Format
		want     string
	}{
		{"photo.PNG", FormatJPEG, "photo.jpg"},
		{"photo.png", FormatWebP, "photo.webp"},
		{"archive.tar.gz", FormatPNG, "archive.tar.png"},
		{"noext", FormatGIF, "noext.gif"},
		{"dir/sub/pic.jpeg", FormatTIFF, "pic.tiff"},
	}

	for _, tc := range cases {
		if got := OutputFilename(tc.original, tc.format); got != tc.want {
			t.Errorf("OutputFilename(%q, %s) = %q, want %q", tc.original, tc.format, got, tc.want)
		}
	}
}

func TestBatchSummary(t *testing.T) {
	var s BatchSummary

	s.Add(&ConversionResult{Filename: "a.webp", OriginalSize: 1000, ConvertedSize: 600})
	s.Add(&ConversionResult{Filename: "b.webp", OriginalSize: 1000, ConvertedSize: 400})
	s.Add(&ConversionResult{Filename: "c.png", Err: errors.New("boom")})

	if s.Total != 3 || s.Converted != 2 || s.Failed != 1 {
		t.Fatalf("summary counts = %d/%d/%d, want 3/2/1", s.Total, s.Converted, s.Failed)
	}
	if got := s.Savings(); got != 50 {
		t.Errorf("aggregate savings = %d, want 50", got)
	}
	if len(s.Failures) != 1 || s.Failures[0].Filename != "c.png" || s.Failures[0].Reason != "boom" {
		t.Errorf("failures = %+v", s.Failures)
	}
}
