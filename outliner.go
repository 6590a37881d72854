// Package outliner infers a hierarchical outline (title plus H1/H2/H3
// headings) from the typeset text fragments of a document, for Latin-script
// and Indic-script languages alike.
//
// Basic usage:
//
//	outline, err := outliner.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(outline.Title)
//
// With options:
//
//	outline, _ := outliner.Open("report.pdf").
//	    WithScoreConfig(cfg).
//	    WithLogger(logger).
//	    Outline()
//
// Fragments extracted elsewhere can be fed in directly:
//
//	outline, _ := outliner.FromFragments(frags).Outline()
//
// Per-document failures never surface as errors: a document that cannot be
// read yields a degenerate outline whose metadata records the failure, so
// batch callers can process every file and distinguish outcomes from the
// metadata alone.
package outliner

import (
	"github.com/tsawler/outliner/model"
)

// Open prepares an Extractor for the named file. The file format (PDF or
// HTML) is sniffed when a terminal operation runs; nothing is read until
// then.
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromFragments prepares an Extractor over fragments already produced by an
// external extraction step, bypassing file reading entirely.
func FromFragments(fragments []model.TextFragment) *Extractor {
	return &Extractor{
		fragments:     fragments,
		haveFragments: true,
		options:       defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error) and
// panics if the error is non-nil. It is intended for use in scripts or tests
// where error handling would be cumbersome.
//
// Example:
//
//	outline := outliner.Must(outliner.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
