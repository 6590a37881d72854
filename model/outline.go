package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/tsawler/outliner/lang"
)

// Level represents the assigned heading rank, H1 (highest) through H3,
// or LevelNone for text that is not a heading.
type Level int

const (
	LevelNone Level = iota
	LevelH1
	LevelH2
	LevelH3
)

// String returns the conventional label for the level ("H1".."H3", or
// "none").
func (l Level) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler so levels serialize as
// their labels ("H1") rather than as ints.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText parses a level label produced by MarshalText.
func (l *Level) UnmarshalText(text []byte) error {
	switch string(text) {
	case "H1":
		*l = LevelH1
	case "H2":
		*l = LevelH2
	case "H3":
		*l = LevelH3
	case "none", "":
		*l = LevelNone
	default:
		return fmt.Errorf("unknown heading level %q", text)
	}
	return nil
}

// Rank returns the sort rank of the level: H1=1, H2=2, H3=3. Unrecognized
// levels rank last.
func (l Level) Rank() int {
	switch l {
	case LevelH1:
		return 1
	case LevelH2:
		return 2
	case LevelH3:
		return 3
	default:
		return 4
	}
}

// Heading is one entry in an extracted outline.
type Heading struct {
	Level      Level     `json:"level"`
	Text       string    `json:"text"`
	Page       int       `json:"page"`
	Language   lang.Code `json:"language"`
	FontSize   float64   `json:"font_size"`
	Bold       bool      `json:"is_bold"`
	Confidence float64   `json:"confidence_score"`
}

// Metadata describes how an outline was produced. When extraction of the
// source document fails, Error carries the failure and the rest of the
// fields are zero-valued.
type Metadata struct {
	Pages             int                `json:"pages"`
	FragmentCount     int                `json:"text_elements"`
	BodyFontSize      float64            `json:"body_font_size,omitempty"`
	UniqueFontSizes   int                `json:"unique_font_sizes,omitempty"`
	SizeThresholds    map[string]float64 `json:"size_thresholds,omitempty"`
	FontDistribution  map[string]int     `json:"font_distribution,omitempty"`
	DetectedLanguages []lang.Code        `json:"detected_languages"`

	// MultilingualSupport is true when any fragment resolved to a
	// language other than English.
	MultilingualSupport bool `json:"multilingual_support"`

	FontStatistics  map[string]float64            `json:"font_statistics,omitempty"`
	FontConsistency map[string]map[string]float64 `json:"font_consistency,omitempty"`
	ProcessingTime    time.Duration      `json:"-"`
	ProcessingSeconds float64            `json:"processing_time"`
	Error             string             `json:"error,omitempty"`
}

// Outline is the final result for one document: a title, the ordered
// heading list, and processing metadata. The caller owns the value once
// returned; the engine keeps no reference.
type Outline struct {
	Title    string    `json:"title"`
	Headings []Heading `json:"outline"`
	Metadata Metadata  `json:"metadata"`
}

// MarkdownTOC renders the outline as an indented markdown list, one line
// per heading.
func (o Outline) MarkdownTOC() string {
	var sb strings.Builder
	for _, h := range o.Headings {
		sb.WriteString(strings.Repeat("  ", h.Level.Rank()-1))
		sb.WriteString("- ")
		sb.WriteString(h.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// HeadingsAtLevel returns the headings with the given level, in outline
// order.
func (o Outline) HeadingsAtLevel(level Level) []Heading {
	var result []Heading
	for _, h := range o.Headings {
		if h.Level == level {
			result = append(result, h)
		}
	}
	return result
}
