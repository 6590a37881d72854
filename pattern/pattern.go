package pattern

import (
	"regexp"
	"strings"

	"github.com/tsawler/outliner/lang"
	"github.com/tsawler/outliner/model"
)

// Table holds the heading patterns and keywords for one language. Pattern
// lists are ordered; matching short-circuits on the first hit.
type Table struct {
	H1       []*regexp.Regexp
	H2       []*regexp.Regexp
	H3       []*regexp.Regexp
	Keywords []string
}

// Matcher answers heading-pattern and heading-keyword queries against the
// built-in language tables. It is stateless and safe for concurrent use.
type Matcher struct {
	tables map[lang.Code]Table
}

// NewMatcher creates a matcher over the built-in tables.
func NewMatcher() *Matcher {
	return &Matcher{tables: tables}
}

// table resolves a language code to its table, falling back to English.
func (m *Matcher) table(code lang.Code) Table {
	if t, ok := m.tables[code]; ok {
		return t
	}
	return m.tables[lang.English]
}

// MatchesPattern reports whether text's start matches any heading regex for
// the given level and language. Matching is case-insensitive (the patterns
// themselves carry the flag) and anchored at the start of the text.
func (m *Matcher) MatchesPattern(text string, level model.Level, code lang.Code) bool {
	trimmed := strings.TrimSpace(text)
	t := m.table(code)

	var patterns []*regexp.Regexp
	switch level {
	case model.LevelH1:
		patterns = t.H1
	case model.LevelH2:
		patterns = t.H2
	case model.LevelH3:
		patterns = t.H3
	default:
		return false
	}

	for _, p := range patterns {
		if p.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// MatchesKeyword reports whether the lower-cased text contains a heading
// keyword for the language, either as a whitespace-delimited token or as a
// phrase substring. Both checks exist because some cues are single words
// ("summary") and others are multi-word phrases ("table of contents").
func (m *Matcher) MatchesKeyword(text string, code lang.Code) bool {
	lower := strings.ToLower(text)
	t := m.table(code)

	for _, word := range strings.Fields(lower) {
		for _, kw := range t.Keywords {
			if word == kw {
				return true
			}
		}
	}

	for _, kw := range t.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
