package fontstats

import (
	"math"
	"sort"

	"github.com/tsawler/outliner/model"
)

// Standard deviation multipliers for each threshold tier.
const (
	titleK = 2.0
	h1K    = 1.5
	h2K    = 1.0
	h3K    = 0.5
	smallK = -0.5
)

// Thresholds holds the derived font-size boundaries for each tier. They are
// always ordered Title >= H1 >= H2 >= H3 >= Body >= Small.
type Thresholds struct {
	Title float64
	H1    float64
	H2    float64
	H3    float64
	Body  float64
	Small float64
}

// Map returns the thresholds keyed by tier name, for reporting.
func (t Thresholds) Map() map[string]float64 {
	return map[string]float64{
		"title": t.Title,
		"h1":    t.H1,
		"h2":    t.H2,
		"h3":    t.H3,
		"body":  t.Body,
		"small": t.Small,
	}
}

// Percentiles holds diagnostic percentiles over the observed font sizes.
// They do not feed classification.
type Percentiles struct {
	P10 float64
	P25 float64
	P50 float64
	P75 float64
	P90 float64
}

// BasicStats holds summary statistics over the observed font sizes.
type BasicStats struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
	Range  float64
}

// Map returns the summary statistics keyed by name, for reporting.
func (b BasicStats) Map() map[string]float64 {
	return map[string]float64{
		"mean":    b.Mean,
		"median":  b.Median,
		"std_dev": b.StdDev,
		"min":     b.Min,
		"max":     b.Max,
		"range":   b.Range,
	}
}

// Stats is the result of analyzing one document's font-size distribution.
// It is an immutable value scoped to a single processing pass; callers
// thread it explicitly through scoring so no stale state can leak between
// documents.
type Stats struct {
	// BodyFontSize is the most frequent exact font size.
	BodyFontSize float64

	// Thresholds are the derived tier boundaries.
	Thresholds Thresholds

	// Percentiles over the observed sizes (diagnostic only).
	Percentiles Percentiles

	// Basic summary statistics over the observed sizes.
	Basic BasicStats

	// SizeCounts maps each exact size to its occurrence count.
	SizeCounts map[float64]int

	// FontCounts maps each font family name to its occurrence count.
	FontCounts map[string]int

	// UniqueSizes is the number of distinct font sizes observed.
	UniqueSizes int

	// FragmentCount is the number of fragments analyzed.
	FragmentCount int
}

// Valid reports whether the stats were computed from at least one fragment.
// A zero Stats (empty document) is well-formed but not valid; callers must
// treat it as "no thresholds", not as an error.
func (s Stats) Valid() bool {
	return s.FragmentCount > 0
}

// Analyze computes the font-size distribution statistics for a document's
// full fragment set. It is called once per document; an empty input yields
// the zero Stats.
func Analyze(fragments []model.TextFragment) Stats {
	if len(fragments) == 0 {
		return Stats{}
	}

	sizes := make([]float64, 0, len(fragments))
	sizeCounts := make(map[float64]int)
	fontCounts := make(map[string]int)
	for _, frag := range fragments {
		sizes = append(sizes, frag.FontSize)
		sizeCounts[frag.FontSize]++
		name := frag.FontName
		if name == "" {
			name = "Unknown"
		}
		fontCounts[name]++
	}
	sort.Float64s(sizes)

	body := mode(sizeCounts)
	std := stdDev(sizes)

	stats := Stats{
		BodyFontSize: body,
		Thresholds: Thresholds{
			Title: body + titleK*std,
			H1:    body + h1K*std,
			H2:    body + h2K*std,
			H3:    body + h3K*std,
			Body:  body,
			Small: body + smallK*std,
		},
		Percentiles: Percentiles{
			P10: percentile(sizes, 0.10),
			P25: percentile(sizes, 0.25),
			P50: percentile(sizes, 0.50),
			P75: percentile(sizes, 0.75),
			P90: percentile(sizes, 0.90),
		},
		Basic: BasicStats{
			Mean:   mean(sizes),
			Median: percentile(sizes, 0.50),
			StdDev: std,
			Min:    sizes[0],
			Max:    sizes[len(sizes)-1],
			Range:  sizes[len(sizes)-1] - sizes[0],
		},
		SizeCounts:    sizeCounts,
		FontCounts:    fontCounts,
		UniqueSizes:   len(sizeCounts),
		FragmentCount: len(fragments),
	}
	return stats
}

// LikelyHeading reports whether a font size clears the lowest heading tier.
func (s Stats) LikelyHeading(fontSize float64) bool {
	if !s.Valid() {
		return false
	}
	return fontSize >= s.Thresholds.H3
}

// TopFonts returns the n most frequent font family names, most frequent
// first. Ties break alphabetically for determinism.
func (s Stats) TopFonts(n int) []string {
	names := make([]string, 0, len(s.FontCounts))
	for name := range s.FontCounts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := s.FontCounts[names[i]], s.FontCounts[names[j]]
		if ci != cj {
			return ci > cj
		}
		return names[i] < names[j]
	})
	if n < len(names) {
		names = names[:n]
	}
	return names
}

// FamilyStats summarizes the font sizes used by one font family.
type FamilyStats struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Range  float64
}

// Map returns the family summary keyed by statistic name, for reporting.
func (f FamilyStats) Map() map[string]float64 {
	return map[string]float64{
		"count":   float64(f.Count),
		"mean":    f.Mean,
		"std_dev": f.StdDev,
		"min":     f.Min,
		"max":     f.Max,
		"range":   f.Range,
	}
}

// Consistency groups fragments by font family and summarizes each family's
// size usage. Informational only; the scorer does not consume it.
func Consistency(fragments []model.TextFragment) map[string]FamilyStats {
	if len(fragments) == 0 {
		return map[string]FamilyStats{}
	}

	groups := make(map[string][]float64)
	for _, frag := range fragments {
		name := frag.FontName
		if name == "" {
			name = "Unknown"
		}
		groups[name] = append(groups[name], frag.FontSize)
	}

	result := make(map[string]FamilyStats, len(groups))
	for name, sizes := range groups {
		sort.Float64s(sizes)
		result[name] = FamilyStats{
			Count:  len(sizes),
			Mean:   mean(sizes),
			StdDev: stdDev(sizes),
			Min:    sizes[0],
			Max:    sizes[len(sizes)-1],
			Range:  sizes[len(sizes)-1] - sizes[0],
		}
	}
	return result
}

// mode returns the most frequent size. Ties break toward the smaller size
// so repeated runs are deterministic.
func mode(counts map[float64]int) float64 {
	best := 0.0
	bestCount := -1
	for size, count := range counts {
		if count > bestCount || (count == bestCount && size < best) {
			best = size
			bestCount = count
		}
	}
	return best
}

func mean(sorted []float64) float64 {
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	return sum / float64(len(sorted))
}

// stdDev returns the sample standard deviation, 0 for fewer than two
// observations.
func stdDev(sorted []float64) float64 {
	n := len(sorted)
	if n < 2 {
		return 0
	}
	m := mean(sorted)
	sum := 0.0
	for _, v := range sorted {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(n-1))
}

// percentile returns the p-th quantile (0..1) of a sorted slice using
// linear interpolation between closest ranks.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
