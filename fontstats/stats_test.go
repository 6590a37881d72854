package fontstats

import (
	"math"
	"testing"

	"github.com/tsawler/outliner/model"
)

// sized builds one fragment per font size, all in the same font family.
func sized(sizes ...float64) []model.TextFragment {
	frags := make([]model.TextFragment, 0, len(sizes))
	for _, s := range sizes {
		frags = append(frags, model.TextFragment{Text: "sample text", FontSize: s, FontName: "Arial", Page: 1})
	}
	return frags
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAnalyzeEmpty(t *testing.T) {
	stats := Analyze(nil)

	if stats.Valid() {
		t.Error("empty input should yield invalid stats")
	}
	if stats.BodyFontSize != 0 || stats.FragmentCount != 0 {
		t.Errorf("empty stats should be zero-valued, got body=%v count=%d",
			stats.BodyFontSize, stats.FragmentCount)
	}
}

func TestBodyFontSizeIsMode(t *testing.T) {
	// 12.0 dominates by frequency even though larger sizes exist.
	stats := Analyze(sized(12, 12, 12, 14, 16, 18, 24))

	if stats.BodyFontSize != 12 {
		t.Errorf("BodyFontSize = %v, want 12 (the mode)", stats.BodyFontSize)
	}
	if stats.UniqueSizes != 5 {
		t.Errorf("UniqueSizes = %v, want 5", stats.UniqueSizes)
	}
}

func TestThresholdOrdering(t *testing.T) {
	tests := []struct {
		name  string
		sizes []float64
	}{
		{"varied", []float64{12, 12, 12, 14, 16, 18, 24}},
		{"two sizes", []float64{10, 20}},
		{"uniform", []float64{12, 12, 12, 12}},
		{"single", []float64{9.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := Analyze(sized(tt.sizes...)).Thresholds
			ordered := th.Title >= th.H1 && th.H1 >= th.H2 &&
				th.H2 >= th.H3 && th.H3 >= th.Body && th.Body >= th.Small
			if !ordered {
				t.Errorf("thresholds out of order: %+v", th)
			}
		})
	}
}

func TestThresholdFormula(t *testing.T) {
	stats := Analyze(sized(18, 12, 12, 12, 14))

	std := stats.Basic.StdDev
	if !almostEqual(std, math.Sqrt(27.2/4)) {
		t.Fatalf("StdDev = %v, want %v", std, math.Sqrt(27.2/4))
	}

	th := stats.Thresholds
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"title", th.Title, 12 + 2.0*std},
		{"h1", th.H1, 12 + 1.5*std},
		{"h2", th.H2, 12 + 1.0*std},
		{"h3", th.H3, 12 + 0.5*std},
		{"body", th.Body, 12},
		{"small", th.Small, 12 - 0.5*std},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want) {
			t.Errorf("threshold %s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestDegenerateVariance(t *testing.T) {
	stats := Analyze(sized(12, 12, 12))

	if stats.Basic.StdDev != 0 {
		t.Errorf("StdDev = %v, want 0 for uniform sizes", stats.Basic.StdDev)
	}
	th := stats.Thresholds
	for name, v := range th.Map() {
		if v != 12 {
			t.Errorf("threshold %s = %v, want 12 (collapsed)", name, v)
		}
	}
	if stats.LikelyHeading(11) {
		t.Error("sub-body size should not look like a heading")
	}
}

func TestLikelyHeading(t *testing.T) {
	stats := Analyze(sized(18, 12, 12, 12, 14))

	if !stats.LikelyHeading(18) {
		t.Error("18pt should clear the H3 threshold")
	}
	if stats.LikelyHeading(12) {
		t.Error("body-sized text should not clear the H3 threshold")
	}
	if (Stats{}).LikelyHeading(100) {
		t.Error("invalid stats should never report a likely heading")
	}
}

func TestSingleFragment(t *testing.T) {
	stats := Analyze(sized(15))

	if stats.Basic.StdDev != 0 {
		t.Errorf("StdDev = %v, want 0 for a single observation", stats.Basic.StdDev)
	}
	if stats.BodyFontSize != 15 {
		t.Errorf("BodyFontSize = %v, want 15", stats.BodyFontSize)
	}
	p := stats.Percentiles
	if p.P10 != 15 || p.P50 != 15 || p.P90 != 15 {
		t.Errorf("single-value percentiles = %+v, want all 15", p)
	}
}

func TestPercentiles(t *testing.T) {
	stats := Analyze(sized(10, 12, 14, 16, 18))

	if stats.Percentiles.P50 != 14 {
		t.Errorf("P50 = %v, want 14", stats.Percentiles.P50)
	}
	if stats.Percentiles.P25 != 12 {
		t.Errorf("P25 = %v, want 12", stats.Percentiles.P25)
	}
	if stats.Percentiles.P10 < 10 || stats.Percentiles.P90 > 18 {
		t.Errorf("percentiles outside observed range: %+v", stats.Percentiles)
	}
}

func TestBasicStats(t *testing.T) {
	stats := Analyze(sized(10, 20))

	b := stats.Basic
	if b.Mean != 15 || b.Min != 10 || b.Max != 20 || b.Range != 10 {
		t.Errorf("Basic = %+v, want mean 15, min 10, max 20, range 10", b)
	}
	if b.Median != 15 {
		t.Errorf("Median = %v, want 15", b.Median)
	}
}

func TestConsistency(t *testing.T) {
	frags := []model.TextFragment{
		{Text: "a", FontSize: 12, FontName: "Arial"},
		{Text: "b", FontSize: 14, FontName: "Arial"},
		{Text: "c", FontSize: 24, FontName: "Times"},
		{Text: "d", FontSize: 24, FontName: ""},
	}

	byFamily := Consistency(frags)
	if len(byFamily) != 3 {
		t.Fatalf("got %d families, want 3 (Arial, Times, Unknown)", len(byFamily))
	}

	arial := byFamily["Arial"]
	if arial.Count != 2 || arial.Mean != 13 || arial.Min != 12 || arial.Max != 14 || arial.Range != 2 {
		t.Errorf("Arial stats = %+v", arial)
	}
	if m := arial.Map(); m["count"] != 2 || m["mean"] != 13 || m["range"] != 2 {
		t.Errorf("Arial Map = %v", m)
	}
	times := byFamily["Times"]
	if times.Count != 1 || times.StdDev != 0 {
		t.Errorf("Times stats = %+v, want count 1, std 0", times)
	}
	if _, ok := byFamily["Unknown"]; !ok {
		t.Error("empty font name should group under Unknown")
	}
}

func TestTopFonts(t *testing.T) {
	frags := []model.TextFragment{
		{Text: "a", FontSize: 12, FontName: "Arial"},
		{Text: "b", FontSize: 12, FontName: "Arial"},
		{Text: "c", FontSize: 14, FontName: "Times"},
	}
	stats := Analyze(frags)

	top := stats.TopFonts(5)
	if len(top) != 2 || top[0] != "Arial" {
		t.Errorf("TopFonts = %v, want [Arial Times]", top)
	}
}
