package models

import "testing"

func TestParseFormat(t *testing.T) {
	t.Run("empty defaults to webp", func(t *testing.T) {
		f, ok := ParseFormat("")
		if !ok || f != FormatWebP {
			t.Fatalf("ParseFormat(\"\") = %v, %v; want webp, true", f, ok)
		}
	})

	t.Run("supported formats parse", func(t *testing.T) {
		for _, name := range []string{"webp", "jpeg", "png", "avif", "tiff", "gif"} {
			f, ok := ParseFormat(name)
			if !ok {
				t.Errorf("ParseFormat(%q) rejected", name)
			}
			if string(f) != name {
				t.Errorf("ParseFormat(%q) = %q", name, f)
			}
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		f, ok := ParseFormat("JPEG")
		if !ok || f != FormatJPEG {
			t.Fatalf("ParseFormat(\"JPEG\") = %v, %v", f, ok)
		}
	})

	t.Run("unsupported rejected", func(t *testing.T) {
		for _, name := range []string{"svg", "heic", "jpg", "pdf", "exe"} {
			if _, ok := ParseFormat(name); ok {
				t.Errorf("ParseFormat(%q) accepted", name)
			}
		}
	})
}

func TestFormatExtension(t *testing.T) {
	if got := FormatJPEG.Extension(); got != "jpg" {
		t.Errorf("jpeg extension = %q, want jpg", got)
	}
	for _, f := range []Format{FormatWebP, FormatPNG, FormatAVIF, FormatTIFF, FormatGIF} {
		if got := f.Extension(); got != string(f) {
			t.Errorf("%s extension = %q, want %q", f, got, f)
		}
	}
}

func TestFormatSupportsQuality(t *testing.T) {
	lossy := map[Format]bool{
		FormatJPEG: true,
		FormatWebP: true,
		FormatAVIF: true,
		FormatPNG:  false,
		FormatGIF:  false,
		FormatTIFF: false,
	}
	for f, want := range lossy {
		if got := f.SupportsQuality(); got != want {
			t.Errorf("%s SupportsQuality = %v, want %v", f, got, want)
		}
	}
}
