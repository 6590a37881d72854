// Package pdfdoc extracts per-line text fragments with font metadata from
// PDF files. It is a fragment source for the outline engine: one fragment
// per rendered line, carrying the line's dominant font size, an aggregate
// bold flag, the dominant font family name, the 1-based page number, and
// bounding geometry. Whitespace-only lines are omitted.
package pdfdoc
