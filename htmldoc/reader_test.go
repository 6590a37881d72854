package htmldoc

import (
	"strings"
	"testing"

	"github.com/tsawler/outliner/model"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head>
<title>Annual Report</title>
<style>h1 { color: red; }</style>
<script>console.log("ignored");</script>
</head>
<body>
<h1>Section 1: Overview</h1>
<p>Plain body paragraph with enough words to matter.</p>
<h2>1.1 Background</h2>
<p><strong>Fully bold paragraph.</strong></p>
<p>Partially <b>bold</b> paragraph.</p>
<ul><li>First item</li><li>   </li></ul>
<noscript>fallback content</noscript>
</body>
</html>`

func openSample(t *testing.T) []model.TextFragment {
	t.Helper()
	r, err := OpenReader(strings.NewReader(sampleHTML))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	frags, err := r.Fragments()
	if err != nil {
		t.Fatalf("Fragments: %v", err)
	}
	return frags
}

func find(t *testing.T, frags []model.TextFragment, text string) model.TextFragment {
	t.Helper()
	for _, f := range frags {
		if f.Text == text {
			return f
		}
	}
	t.Fatalf("fragment %q not found in %+v", text, frags)
	return model.TextFragment{}
}

func TestFragmentExtraction(t *testing.T) {
	frags := openSample(t)

	title := find(t, frags, "Annual Report")
	if title.FontSize != 28 || !title.Bold || title.FontName != "html-title" {
		t.Errorf("title fragment = %+v, want 28pt bold html-title", title)
	}

	h1 := find(t, frags, "Section 1: Overview")
	if h1.FontSize != 24 || !h1.Bold {
		t.Errorf("h1 fragment = %+v, want 24pt bold", h1)
	}

	h2 := find(t, frags, "1.1 Background")
	if h2.FontSize != 18 || !h2.Bold {
		t.Errorf("h2 fragment = %+v, want 18pt bold", h2)
	}

	body := find(t, frags, "Plain body paragraph with enough words to matter.")
	if body.FontSize != bodySize || body.Bold {
		t.Errorf("body fragment = %+v, want 12pt regular", body)
	}

	item := find(t, frags, "First item")
	if item.FontSize != bodySize {
		t.Errorf("list item = %+v, want body size", item)
	}

	for _, f := range frags {
		if f.Page != 1 {
			t.Errorf("fragment %q on page %d, want 1", f.Text, f.Page)
		}
	}
}

func TestSkippedElements(t *testing.T) {
	for _, f := range openSample(t) {
		if strings.Contains(f.Text, "color: red") {
			t.Errorf("style content leaked into fragments: %q", f.Text)
		}
		if strings.Contains(f.Text, "console.log") {
			t.Errorf("script content leaked into fragments: %q", f.Text)
		}
		if strings.Contains(f.Text, "fallback content") {
			t.Errorf("noscript content leaked into fragments: %q", f.Text)
		}
		if f.Text == "" {
			t.Error("whitespace-only element produced a fragment")
		}
	}
}

func TestBodyBoldDetection(t *testing.T) {
	frags := openSample(t)

	full := find(t, frags, "Fully bold paragraph.")
	if !full.Bold {
		t.Error("paragraph wrapped entirely in <strong> should be bold")
	}

	partial := find(t, frags, "Partially bold paragraph.")
	if partial.Bold {
		t.Error("paragraph with partial <b> should not be bold")
	}
}

func TestWhitespaceCollapse(t *testing.T) {
	r, err := OpenReader(strings.NewReader("<p>spread\n   across\t lines</p>"))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	frags, _ := r.Fragments()
	if len(frags) != 1 || frags[0].Text != "spread across lines" {
		t.Errorf("fragments = %+v, want one fragment with collapsed whitespace", frags)
	}
}
