package score

import (
	"regexp"
	"unicode/utf8"

	"github.com/tsawler/outliner/fontstats"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/pattern"
)

// leadingChar matches a first character that is alphanumeric or belongs to
// one of the supported Indic/Arabic Unicode blocks. Headings typically begin
// with a number, letter, or native-script grapheme rather than punctuation.
var leadingChar = regexp.MustCompile(`^[A-Za-z0-9` +
	`\x{0900}-\x{097F}` + // Devanagari
	`\x{0980}-\x{09FF}` + // Bengali
	`\x{0C00}-\x{0C7F}` + // Telugu
	`\x{0B80}-\x{0BFF}` + // Tamil
	`\x{0A80}-\x{0AFF}` + // Gujarati
	`\x{0C80}-\x{0CFF}` + // Kannada
	`\x{0D00}-\x{0D7F}` + // Malayalam
	`\x{0A00}-\x{0A7F}` + // Gurmukhi
	`\x{0600}-\x{06FF}` + // Arabic
	`\x{0B00}-\x{0B7F}` + // Odia
	`]`)

// patternLevels is the fixed order in which pattern tables are consulted.
var patternLevels = [...]model.Level{model.LevelH1, model.LevelH2, model.LevelH3}

// Scorer computes heading confidence scores and level decisions. It is
// stateless apart from its configuration and pattern tables; the font
// statistics for the current document are passed explicitly to every call.
type Scorer struct {
	config  Config
	matcher *pattern.Matcher
}

// NewScorer creates a scorer with the default weights.
func NewScorer() *Scorer {
	return NewScorerWithConfig(DefaultConfig())
}

// NewScorerWithConfig creates a scorer with custom weights.
func NewScorerWithConfig(config Config) *Scorer {
	return &Scorer{
		config:  config,
		matcher: pattern.NewMatcher(),
	}
}

// Config returns the scorer's weight configuration.
func (s *Scorer) Config() Config {
	return s.config
}

// Score returns the heading confidence score for a fragment, evaluated
// against the supplied statistics. Scores are additive and clamped at zero.
func (s *Scorer) Score(frag model.TextFragment, stats fontstats.Stats) float64 {
	score := s.sizeTierPoints(frag.FontSize, stats)

	if frag.Bold {
		score += s.config.BoldBonus
	}

	// One pattern bonus at most, whichever level hits first.
	for _, level := range patternLevels {
		if s.matcher.MatchesPattern(frag.Text, level, frag.Language) {
			score += s.config.PatternBonus
			break
		}
	}

	if s.matcher.MatchesKeyword(frag.Text, frag.Language) {
		score += s.config.KeywordBonus
	}

	// Length limits are in characters, not bytes; Indic scripts run three
	// bytes per rune.
	runes := utf8.RuneCountInString(frag.Text)
	if runes > s.config.LongTextLength {
		score -= s.config.LongTextPenalty
	} else if runes < s.config.ShortTextLength {
		score -= s.config.ShortTextPenalty
	}

	if leadingChar.MatchString(frag.Text) {
		score += s.config.LeadingCharBonus
	}

	if score < 0 {
		score = 0
	}
	return score
}

// Level decides the heading level for a fragment. Explicit pattern matches
// take precedence over typography: a fragment matching an H2 pattern is H2
// no matter its font size. Only without a pattern hit does the decision fall
// back to the font-size tiers.
func (s *Scorer) Level(frag model.TextFragment, stats fontstats.Stats) model.Level {
	for _, level := range patternLevels {
		if s.matcher.MatchesPattern(frag.Text, level, frag.Language) {
			return level
		}
	}

	if !stats.Valid() || stats.Thresholds.Title <= stats.Thresholds.Body {
		// Zero variance collapses every threshold to the body size;
		// size alone can classify nothing there.
		return model.LevelNone
	}
	t := stats.Thresholds
	switch {
	case frag.FontSize >= t.Title, frag.FontSize >= t.H1:
		return model.LevelH1
	case frag.FontSize >= t.H2:
		return model.LevelH2
	case frag.FontSize >= t.H3:
		return model.LevelH3
	default:
		return model.LevelNone
	}
}

// Accept reports whether a fragment passes both outline gates: a score at
// or above the acceptance threshold and a non-none level. A fragment can
// score high from bold+pattern+keyword while its size sits below every
// tier, so the gates are independent, not redundant.
func (s *Scorer) Accept(frag model.TextFragment, stats fontstats.Stats) (model.Level, float64, bool) {
	sc := s.Score(frag, stats)
	if sc < s.config.AcceptThreshold {
		return model.LevelNone, sc, false
	}
	level := s.Level(frag, stats)
	if level == model.LevelNone {
		return model.LevelNone, sc, false
	}
	return level, sc, true
}

// sizeTierPoints awards points for the highest threshold met, top-down.
// With zero variance every threshold collapses to the body size and the
// comparisons saturate: every fragment meets the title threshold and takes
// the full tier award. The level decision compensates by refusing to
// classify on size alone there, so the uniform inflation cannot invent
// levels; it only keeps pattern headings above the acceptance gate.
func (s *Scorer) sizeTierPoints(fontSize float64, stats fontstats.Stats) float64 {
	if !stats.Valid() {
		return 0
	}
	t := stats.Thresholds
	switch {
	case fontSize >= t.Title:
		return s.config.TitleTierPoints
	case fontSize >= t.H1:
		return s.config.H1TierPoints
	case fontSize >= t.H2:
		return s.config.H2TierPoints
	case fontSize >= t.H3:
		return s.config.H3TierPoints
	default:
		return 0
	}
}
