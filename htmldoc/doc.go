// Package htmldoc extracts text fragments from HTML documents. HTML carries
// no typographic sizes, so fragments get nominal font sizes per element tag
// (h1 largest, body text smallest); the statistical thresholds downstream
// adapt to whatever scale the source uses. HTML has no pagination either, so
// every fragment reports page 1.
package htmldoc
