// Package pattern recognizes heading-like text through per-language regular
// expression and keyword tables, independent of any font cues.
//
// Each supported language owns three ordered regex lists (one per heading
// level) and a set of heading keywords. Languages without an explicit table
// resolve silently to the English table, so lookups cannot fail.
package pattern
