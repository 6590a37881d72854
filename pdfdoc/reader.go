package pdfdoc

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
	rpdf "rsc.io/pdf"

	"github.com/tsawler/outliner/model"
)

// yTolerance is the maximum baseline difference (in points) for two text
// elements to be considered part of the same line.
const yTolerance = 2.0

// Reader provides access to a PDF document's text fragments.
type Reader struct {
	doc *rpdf.Reader
}

// Open opens a PDF file for fragment extraction.
func Open(filename string) (r *Reader, err error) {
	// rsc.io/pdf reports malformed files by panicking; surface those as
	// ordinary errors so the document boundary can absorb them.
	defer func() {
		if p := recover(); p != nil {
			r, err = nil, fmt.Errorf("opening PDF: %v", p)
		}
	}()

	doc, err := rpdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	return &Reader{doc: doc}, nil
}

// NewReader parses a PDF from an io.ReaderAt.
func NewReader(ra io.ReaderAt, size int64) (r *Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			r, err = nil, fmt.Errorf("reading PDF: %v", p)
		}
	}()

	doc, err := rpdf.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("reading PDF: %w", err)
	}
	return &Reader{doc: doc}, nil
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.doc.NumPage()
}

// Fragments extracts all text fragments in document order, one per rendered
// line.
func (r *Reader) Fragments() (frags []model.TextFragment, err error) {
	defer func() {
		if p := recover(); p != nil {
			frags, err = nil, fmt.Errorf("extracting text: %v", p)
		}
	}()

	for pageNum := 1; pageNum <= r.doc.NumPage(); pageNum++ {
		page := r.doc.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		frags = append(frags, pageFragments(page.Content().Text, pageNum)...)
	}
	return frags, nil
}

// pageFragments groups a page's raw text elements into lines and converts
// each line into a fragment.
func pageFragments(texts []rpdf.Text, pageNum int) []model.TextFragment {
	if len(texts) == 0 {
		return nil
	}

	// Reading order: top of page first, then left to right. PDF Y grows
	// upward.
	sorted := make([]rpdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if math.Abs(sorted[i].Y-sorted[j].Y) > yTolerance {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var fragments []model.TextFragment
	var line []rpdf.Text
	for _, t := range sorted {
		if len(line) > 0 && math.Abs(t.Y-line[0].Y) > yTolerance {
			if frag, ok := lineFragment(line, pageNum); ok {
				fragments = append(fragments, frag)
			}
			line = line[:0]
		}
		line = append(line, t)
	}
	if frag, ok := lineFragment(line, pageNum); ok {
		fragments = append(fragments, frag)
	}
	return fragments
}

// lineFragment assembles one line's text elements into a fragment: text
// joined left-to-right with gap-inferred spaces, the dominant (most
// frequent) font size rounded to 0.1, bold if any element's font carries a
// bold marker, and the first element's font name. Lines with no
// non-whitespace text are dropped.
func lineFragment(line []rpdf.Text, pageNum int) (model.TextFragment, bool) {
	if len(line) == 0 {
		return model.TextFragment{}, false
	}

	var sb strings.Builder
	sizeCounts := make(map[float64]int)
	bold := false
	minX, maxX := line[0].X, line[0].X+line[0].W
	minY, maxY := line[0].Y, line[0].Y

	prevEnd := line[0].X
	for i, t := range line {
		// A horizontal gap wider than a third of the font size separates
		// words.
		if i > 0 && t.X-prevEnd > t.FontSize*0.3 {
			sb.WriteString(" ")
		}
		sb.WriteString(t.S)
		prevEnd = t.X + t.W

		sizeCounts[math.Round(t.FontSize*10)/10]++
		if isBoldFont(t.Font) {
			bold = true
		}
		minX = math.Min(minX, t.X)
		maxX = math.Max(maxX, t.X+t.W)
		minY = math.Min(minY, t.Y)
		maxY = math.Max(maxY, t.Y)
	}

	text := strings.TrimSpace(norm.NFC.String(sb.String()))
	if text == "" {
		return model.TextFragment{}, false
	}

	size := dominantSize(sizeCounts)
	return model.TextFragment{
		Text:     text,
		FontSize: size,
		FontName: line[0].Font,
		Bold:     bold,
		Page:     pageNum,
		BBox:     model.NewBBox(minX, minY, maxX-minX, maxY-minY+size),
	}, true
}

// dominantSize returns the most frequent size, ties breaking toward the
// larger size (heading glyphs outweigh inline sub/superscripts).
func dominantSize(counts map[float64]int) float64 {
	best := 0.0
	bestCount := -1
	for size, count := range counts {
		if count > bestCount || (count == bestCount && size > best) {
			best = size
			bestCount = count
		}
	}
	return best
}

// isBoldFont reports whether a font name carries a bold weight marker.
func isBoldFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy") ||
		strings.Contains(lower, "semibold") ||
		strings.Contains(lower, "demibold")
}
