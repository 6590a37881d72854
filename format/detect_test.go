package format

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectBytes(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		filename string
		want     Format
	}{
		{"pdf magic", "%PDF-1.7\n...", "x.bin", PDF},
		{"html doctype", "<!DOCTYPE html><html><body></body></html>", "x.bin", HTML},
		{"html tag", "  <HTML lang=\"en\">", "x.bin", HTML},
		{"pdf by extension", "garbage", "doc.PDF", PDF},
		{"html by extension", "garbage", "page.htm", HTML},
		{"unknown", "plain text", "notes.txt", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectBytes([]byte(tt.data), tt.filename); got != tt.want {
				t.Errorf("DetectBytes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.bin")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := DetectFile(path)
	if err != nil {
		t.Fatalf("DetectFile: %v", err)
	}
	if got != PDF {
		t.Errorf("DetectFile = %v, want PDF", got)
	}

	if _, err := DetectFile(filepath.Join(dir, "missing")); err == nil {
		t.Error("DetectFile on a missing file should error")
	}
}

func TestFormatString(t *testing.T) {
	if PDF.String() != "PDF" || HTML.String() != "HTML" || Unknown.String() != "Unknown" {
		t.Error("unexpected Format string values")
	}
	if PDF.Extension() != ".pdf" || HTML.Extension() != ".html" || Unknown.Extension() != "" {
		t.Error("unexpected Format extensions")
	}
}
