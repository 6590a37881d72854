package outliner

import (
	"errors"
	"fmt"

	"github.com/tsawler/outliner/format"
	"github.com/tsawler/outliner/htmldoc"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/pdfdoc"
	"github.com/tsawler/outliner/score"
)

// ErrNoSource is returned when an Extractor has neither a filename nor
// fragments to work from.
var ErrNoSource = errors.New("outliner: no input file or fragments provided")

// ErrUnsupportedFormat indicates a file that is neither PDF nor HTML. It is
// absorbed into the document's outline metadata like any extraction failure.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Extractor holds a configured extraction, created by Open or FromFragments
// and driven by chained options and a terminal operation.
type Extractor struct {
	filename      string
	fragments     []model.TextFragment
	haveFragments bool
	options       options
}

// Outline runs the extraction and returns the document's outline. The error
// is non-nil only for caller misuse (no source configured); documents that
// cannot be read yield a degenerate outline with the failure recorded in
// metadata, so batch callers never need to special-case bad files.
func (e *Extractor) Outline() (model.Outline, error) {
	builder := NewBuilderWith(
		e.options.classifier,
		score.NewScorerWithConfig(e.options.scoreConfig),
	)

	if e.haveFragments {
		return builder.Build(e.fragments), nil
	}
	if e.filename == "" {
		return model.Outline{}, ErrNoSource
	}

	frags, err := extractFragments(e.filename)
	if err != nil {
		e.options.logger.Warn("document extraction failed",
			"file", e.filename, "error", err)
		return builder.BuildError(err), nil
	}

	e.options.logger.Debug("extracted fragments",
		"file", e.filename, "fragments", len(frags))
	return builder.Build(frags), nil
}

// Title runs the extraction and returns only the document title.
func (e *Extractor) Title() (string, error) {
	outline, err := e.Outline()
	if err != nil {
		return "", err
	}
	return outline.Title, nil
}

// extractFragments sniffs the file format and runs the matching fragment
// source.
func extractFragments(filename string) ([]model.TextFragment, error) {
	f, err := format.DetectFile(filename)
	if err != nil {
		return nil, err
	}

	switch f {
	case format.PDF:
		r, err := pdfdoc.Open(filename)
		if err != nil {
			return nil, err
		}
		return r.Fragments()
	case format.HTML:
		r, err := htmldoc.Open(filename)
		if err != nil {
			return nil, err
		}
		return r.Fragments()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}
