package model

import "github.com/tsawler/outliner/lang"

// TextFragment represents one logical line of rendered text with its font
// and position metadata. Fragments are produced by a fragment source (see
// the pdfdoc and htmldoc packages) and consumed read-only by the analysis
// packages; they are never mutated after creation.
type TextFragment struct {
	// Text is the line's content, whitespace-trimmed and non-empty.
	Text string

	// FontSize is the dominant font size among the line's sub-spans.
	FontSize float64

	// FontName is the dominant font family name.
	FontName string

	// Bold is true if any sub-span within the line is bold.
	Bold bool

	// Page is the 1-based page number the line appears on.
	Page int

	// BBox is the line's bounding geometry.
	BBox BBox

	// Language is the detected language code; the zero value means
	// "not yet classified".
	Language lang.Code
}
