// Package fontstats computes distributional statistics over the font sizes
// of a document's text fragments and derives the adaptive size thresholds
// used for heading classification.
//
// The body font size is the statistical mode of the observed sizes: body
// text dominates a document by frequency, so the most common exact size, not
// the mean, anchors the "normal text" baseline. Thresholds are offsets of
// the body size by multiples of the sample standard deviation; a document
// with uniform font size collapses every threshold to the body size, which
// downstream consumers must treat as valid rather than as an error.
package fontstats
