package score

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the scoring weights and the acceptance threshold. The
// defaults are preserved as calibrated; they are configuration, not tuning
// targets.
type Config struct {
	// Size-tier points, awarded for the highest threshold met.
	TitleTierPoints float64 `yaml:"title_tier_points"`
	H1TierPoints    float64 `yaml:"h1_tier_points"`
	H2TierPoints    float64 `yaml:"h2_tier_points"`
	H3TierPoints    float64 `yaml:"h3_tier_points"`

	// Style and lexical bonuses.
	BoldBonus    float64 `yaml:"bold_bonus"`
	PatternBonus float64 `yaml:"pattern_bonus"`
	KeywordBonus float64 `yaml:"keyword_bonus"`

	// Text-shape adjustments.
	LongTextPenalty  float64 `yaml:"long_text_penalty"`
	LongTextLength   int     `yaml:"long_text_length"`
	ShortTextPenalty float64 `yaml:"short_text_penalty"`
	ShortTextLength  int     `yaml:"short_text_length"`
	LeadingCharBonus float64 `yaml:"leading_char_bonus"`

	// AcceptThreshold is the minimum score for a fragment to enter an
	// outline; the level decision must also be non-none.
	AcceptThreshold float64 `yaml:"accept_threshold"`

	// MaxProcessingTime is advisory metadata for callers budgeting batch
	// runs. It is never enforced as a deadline.
	MaxProcessingTime time.Duration `yaml:"max_processing_time"`
}

// DefaultConfig returns the calibrated scoring weights.
func DefaultConfig() Config {
	return Config{
		TitleTierPoints:   40,
		H1TierPoints:      30,
		H2TierPoints:      20,
		H3TierPoints:      10,
		BoldBonus:         20,
		PatternBonus:      20,
		KeywordBonus:      10,
		LongTextPenalty:   10,
		LongTextLength:    100,
		ShortTextPenalty:  20,
		ShortTextLength:   3,
		LeadingCharBonus:  5,
		AcceptThreshold:   30,
		MaxProcessingTime: 60 * time.Second,
	}
}

// LoadConfig reads a YAML weight file, applying its values over the
// defaults so partial files are valid.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading score config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing score config: %w", err)
	}
	return cfg, nil
}
