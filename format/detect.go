// Package format provides input format detection for the outliner library.
package format

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// HTML indicates an HTML document.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// DetectBytes determines the format from leading file content, with the
// filename extension as a tiebreaker for content sniffing misses.
func DetectBytes(data []byte, filename string) Format {
	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return PDF
	}

	head := bytes.ToLower(data)
	if len(head) > 512 {
		head = head[:512]
	}
	if bytes.Contains(head, []byte("<html")) || bytes.Contains(head, []byte("<!doctype html")) {
		return HTML
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	case ".html", ".htm":
		return HTML
	}
	return Unknown
}

// DetectFile determines the format of a file on disk.
func DetectFile(filename string) (Format, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Unknown, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, _ := f.Read(buf)
	return DetectBytes(buf[:n], filename), nil
}
