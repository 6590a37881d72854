package outliner

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/outliner/fontstats"
	"github.com/tsawler/outliner/lang"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/score"
)

// Title sentinels for documents without a usable title and for documents
// whose extraction failed.
const (
	UntitledTitle = "Untitled Document"
	ErrorTitle    = "Error Processing Document"
)

// Builder assembles an Outline from a document's fragments: it classifies
// languages, computes font statistics, scores every fragment, selects the
// title, and produces the deduplicated, ordered heading list. A Builder owns
// no cross-document state; the per-document statistics are values threaded
// through each call, so independent documents may be processed on separate
// Builders concurrently.
type Builder struct {
	classifier *lang.Classifier
	scorer     *score.Scorer
}

// NewBuilder creates a Builder with the default classifier and scoring
// weights.
func NewBuilder() *Builder {
	return &Builder{
		classifier: lang.NewClassifier(),
		scorer:     score.NewScorer(),
	}
}

// NewBuilderWith creates a Builder with a custom classifier and scorer.
// Nil arguments fall back to the defaults.
func NewBuilderWith(classifier *lang.Classifier, scorer *score.Scorer) *Builder {
	b := NewBuilder()
	if classifier != nil {
		b.classifier = classifier
	}
	if scorer != nil {
		b.scorer = scorer
	}
	return b
}

// Build produces the outline for one document's fragments. Zero fragments
// is not an error: the result is a well-formed empty outline with the
// untitled sentinel and zero-valued statistics.
func (b *Builder) Build(fragments []model.TextFragment) model.Outline {
	start := time.Now()

	if len(fragments) == 0 {
		return model.Outline{
			Title:    UntitledTitle,
			Headings: []model.Heading{},
			Metadata: model.Metadata{
				DetectedLanguages: []lang.Code{},
			},
		}
	}

	frags := b.classify(fragments)
	stats := fontstats.Analyze(frags)

	title := b.selectTitle(frags, stats)
	headings := b.extractHeadings(frags, stats)
	languages := detectedLanguages(frags)

	elapsed := time.Since(start)
	return model.Outline{
		Title:    title,
		Headings: headings,
		Metadata: model.Metadata{
			Pages:               maxPage(frags),
			FragmentCount:       len(frags),
			BodyFontSize:        stats.BodyFontSize,
			UniqueFontSizes:     stats.UniqueSizes,
			SizeThresholds:      stats.Thresholds.Map(),
			FontDistribution:    topFontCounts(stats, 5),
			DetectedLanguages:   languages,
			MultilingualSupport: multilingual(languages),
			FontStatistics:      stats.Basic.Map(),
			FontConsistency:     consistencyMap(frags),
			ProcessingTime:      elapsed,
			ProcessingSeconds:   elapsed.Seconds(),
		},
	}
}

// BuildError produces the degenerate outline for a document whose fragment
// extraction failed. The error is recorded in metadata and never raised, so
// one unreadable document cannot abort a batch.
func (b *Builder) BuildError(err error) model.Outline {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return model.Outline{
		Title:    ErrorTitle,
		Headings: []model.Heading{},
		Metadata: model.Metadata{
			DetectedLanguages: []lang.Code{},
			Error:             msg,
		},
	}
}

// classify fills in the language of any fragment that arrived unclassified.
// The input is never mutated.
func (b *Builder) classify(fragments []model.TextFragment) []model.TextFragment {
	frags := make([]model.TextFragment, len(fragments))
	copy(frags, fragments)
	for i := range frags {
		if frags[i].Language == "" {
			frags[i].Language = b.classifier.Detect(frags[i].Text)
		}
	}
	return frags
}

// selectTitle picks the document title: the best page-1 fragment ordered by
// (font size, score) descending. A title is assumed to appear on the first
// page; documents without page-1 fragments get the untitled sentinel.
func (b *Builder) selectTitle(fragments []model.TextFragment, stats fontstats.Stats) string {
	type candidate struct {
		frag  model.TextFragment
		score float64
	}

	var candidates []candidate
	for _, frag := range fragments {
		if frag.Page == 1 {
			candidates = append(candidates, candidate{frag, b.scorer.Score(frag, stats)})
		}
	}
	if len(candidates) == 0 {
		return UntitledTitle
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].frag.FontSize != candidates[j].frag.FontSize {
			return candidates[i].frag.FontSize > candidates[j].frag.FontSize
		}
		return candidates[i].score > candidates[j].score
	})
	return candidates[0].frag.Text
}

// extractHeadings scores and classifies every fragment, keeps those passing
// both acceptance gates, deduplicates by normalized text (first occurrence
// wins, so running headers collapse to one entry), and orders the result by
// page then level rank. The sort is stable: same-page same-level headings
// keep their original relative order.
func (b *Builder) extractHeadings(fragments []model.TextFragment, stats fontstats.Stats) []model.Heading {
	headings := make([]model.Heading, 0)
	seen := make(map[string]bool)

	for _, frag := range fragments {
		level, sc, ok := b.scorer.Accept(frag, stats)
		if !ok {
			continue
		}
		key := normalizeText(frag.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		headings = append(headings, model.Heading{
			Level:      level,
			Text:       frag.Text,
			Page:       frag.Page,
			Language:   frag.Language,
			FontSize:   frag.FontSize,
			Bold:       frag.Bold,
			Confidence: sc,
		})
	}

	sort.SliceStable(headings, func(i, j int) bool {
		if headings[i].Page != headings[j].Page {
			return headings[i].Page < headings[j].Page
		}
		return headings[i].Level.Rank() < headings[j].Level.Rank()
	})
	return headings
}

// normalizeText is the dedupe key: NFC-normalized, trimmed, lower-cased.
func normalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(text)))
}

func maxPage(fragments []model.TextFragment) int {
	max := 0
	for _, frag := range fragments {
		if frag.Page > max {
			max = frag.Page
		}
	}
	return max
}

// detectedLanguages returns the distinct fragment languages in first-seen
// order.
func detectedLanguages(fragments []model.TextFragment) []lang.Code {
	seen := make(map[lang.Code]bool)
	codes := make([]lang.Code, 0, 4)
	for _, frag := range fragments {
		if frag.Language != "" && !seen[frag.Language] {
			seen[frag.Language] = true
			codes = append(codes, frag.Language)
		}
	}
	return codes
}

// multilingual reports whether any detected language needs non-English
// handling.
func multilingual(codes []lang.Code) bool {
	for _, c := range codes {
		if c != lang.English {
			return true
		}
	}
	return false
}

// consistencyMap renders the per-family font consistency view for metadata.
func consistencyMap(fragments []model.TextFragment) map[string]map[string]float64 {
	byFamily := fontstats.Consistency(fragments)
	out := make(map[string]map[string]float64, len(byFamily))
	for name, fs := range byFamily {
		out[name] = fs.Map()
	}
	return out
}

// topFontCounts reports the n most frequent font families with their
// counts, for metadata.
func topFontCounts(stats fontstats.Stats, n int) map[string]int {
	out := make(map[string]int, n)
	for _, name := range stats.TopFonts(n) {
		out[name] = stats.FontCounts[name]
	}
	return out
}
