// Package score fuses font-size tiers, style flags, pattern and keyword
// matches, and text-shape heuristics into a single heading confidence score,
// and decides the heading level for each fragment.
//
// The level decision is not a threshold on the score: an explicit pattern
// match (a numbered section, "Chapter N", "अध्याय N") decides the level
// immediately, regardless of typography. Font-size tiers are the fallback
// for documents without lexical markers. Acceptance into an outline requires
// both a passing score and a non-none level; the two gates are independent.
package score
