package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/outliner/model"
)

// Nominal font sizes per element tag, anchored at a 12pt body.
var tagSizes = map[string]float64{
	"title": 28,
	"h1":    24,
	"h2":    18,
	"h3":    14.4,
	"h4":    13,
	"h5":    12.5,
	"h6":    12.2,
}

const bodySize = 12

// Reader provides access to an HTML document's text fragments.
type Reader struct {
	fragments []model.TextFragment
}

// Open opens an HTML file for fragment extraction.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{}
	reader.walk(doc)
	return reader, nil
}

// Fragments returns the extracted fragments in document order.
func (r *Reader) Fragments() ([]model.TextFragment, error) {
	return r.fragments, nil
}

// walk traverses the DOM emitting one fragment per content element.
func (r *Reader) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "template", "iframe", "svg":
			return
		case "title", "h1", "h2", "h3", "h4", "h5", "h6":
			r.emit(n, tagSizes[n.Data], true)
			return
		case "p", "li", "blockquote", "figcaption", "td", "th", "dt", "dd":
			r.emit(n, bodySize, false)
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c)
	}
}

// emit collects an element's text content into a fragment. Headings are
// bold by convention; body elements are bold only when their entire text is
// wrapped in b/strong.
func (r *Reader) emit(n *html.Node, size float64, heading bool) {
	text := strings.Join(strings.Fields(textContent(n)), " ")
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return
	}

	r.fragments = append(r.fragments, model.TextFragment{
		Text:     text,
		FontSize: size,
		FontName: fontNameFor(n.Data),
		Bold:     heading || isFullyBold(n),
		Page:     1,
	})
}

// fontNameFor gives fragments a stable synthetic family name per tag so the
// font-consistency view stays meaningful for HTML sources.
func fontNameFor(tag string) string {
	return "html-" + tag
}

// textContent returns the concatenated text of a node's subtree.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// isFullyBold reports whether all of a node's text lives inside b/strong
// descendants.
func isFullyBold(n *html.Node) bool {
	total := len(strings.TrimSpace(textContent(n)))
	if total == 0 {
		return false
	}
	bold := 0
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.ElementNode && (node.Data == "b" || node.Data == "strong") {
			bold += len(strings.TrimSpace(textContent(node)))
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return bold >= total
}
