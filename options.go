package outliner

import (
	"io"
	"log/slog"

	"github.com/tsawler/outliner/lang"
	"github.com/tsawler/outliner/score"
)

// options holds per-extraction configuration.
type options struct {
	scoreConfig score.Config
	classifier  *lang.Classifier
	logger      *slog.Logger
}

// defaultOptions returns the default configuration: calibrated scoring
// weights, a regex-only language classifier, and a silent logger.
func defaultOptions() options {
	return options{
		scoreConfig: score.DefaultConfig(),
		classifier:  lang.NewClassifier(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithScoreConfig replaces the scoring weights for this extraction.
func (e *Extractor) WithScoreConfig(cfg score.Config) *Extractor {
	e.options.scoreConfig = cfg
	return e
}

// WithClassifier replaces the language classifier. Useful for supplying a
// classifier built with statistical detectors.
func (e *Extractor) WithClassifier(c *lang.Classifier) *Extractor {
	if c != nil {
		e.options.classifier = c
	}
	return e
}

// WithDetectors builds a classifier with the given optional statistical
// detectors appended after regex matching. Equivalent to
// WithClassifier(lang.NewClassifier(detectors...)).
func (e *Extractor) WithDetectors(detectors ...lang.Detector) *Extractor {
	e.options.classifier = lang.NewClassifier(detectors...)
	return e
}

// WithLogger sets a logger for progress and diagnostic messages. The
// default discards everything.
func (e *Extractor) WithLogger(logger *slog.Logger) *Extractor {
	if logger != nil {
		e.options.logger = logger
	}
	return e
}
