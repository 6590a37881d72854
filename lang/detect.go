package lang

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// minDetectLength is the minimum trimmed length (in runes) for detection.
// Shorter strings are too ambiguous for any detector and fall back to the
// default code immediately.
const minDetectLength = 10

// Detector is an optional statistical language detector. Implementations
// return the detected code and true, or false when inconclusive. Detectors
// are consulted only when regex matching finds nothing; results naming a
// language outside the supported set are ignored.
type Detector interface {
	DetectLanguage(text string) (Code, bool)
}

// DetectorFunc adapts a plain function to the Detector interface.
type DetectorFunc func(text string) (Code, bool)

// DetectLanguage calls f.
func (f DetectorFunc) DetectLanguage(text string) (Code, bool) {
	return f(text)
}

// scriptPattern pairs a language code with the regex that identifies it.
// The table is scanned in order and the first match wins, so languages
// sharing a script (Marathi and Sanskrit use Devanagari like Hindi, Assamese
// uses the Bengali script) are reachable only through statistical detectors.
type scriptPattern struct {
	code    Code
	pattern *regexp.Regexp
}

var scriptPatterns = []scriptPattern{
	// Script-based languages: any character in the block is decisive.
	// The danda and double danda (U+0964, U+0965) sit in the Devanagari
	// block but punctuate Bengali, Gurmukhi and the other Indic scripts
	// too, so they are excluded from the Hindi pattern.
	{Hindi, regexp.MustCompile(`[\x{0900}-\x{0963}\x{0966}-\x{097F}]`)}, // Devanagari

	{Bengali, regexp.MustCompile(`[\x{0980}-\x{09FF}]`)},    // Bengali
	{Telugu, regexp.MustCompile(`[\x{0C00}-\x{0C7F}]`)},     // Telugu
	{Tamil, regexp.MustCompile(`[\x{0B80}-\x{0BFF}]`)},      // Tamil
	{Gujarati, regexp.MustCompile(`[\x{0A80}-\x{0AFF}]`)},   // Gujarati
	{Kannada, regexp.MustCompile(`[\x{0C80}-\x{0CFF}]`)},    // Kannada
	{Malayalam, regexp.MustCompile(`[\x{0D00}-\x{0D7F}]`)},  // Malayalam
	{Punjabi, regexp.MustCompile(`[\x{0A00}-\x{0A7F}]`)},    // Gurmukhi
	{Odia, regexp.MustCompile(`[\x{0B00}-\x{0B7F}]`)},       // Odia
	{Urdu, regexp.MustCompile(`[\x{0600}-\x{06FF}][\x{0600}-\x{06FF}\s]*[\x{0679}\x{0688}\x{0691}\x{06BA}\x{06BE}\x{06C1}\x{06D2}]`)}, // Arabic script with Urdu-specific letters
	{Arabic, regexp.MustCompile(`[\x{0600}-\x{06FF}]`)},     // Arabic
	{Russian, regexp.MustCompile(`[\x{0400}-\x{04FF}]`)},    // Cyrillic
	{Thai, regexp.MustCompile(`[\x{0E00}-\x{0E7F}]`)},       // Thai
	{Japanese, regexp.MustCompile(`[\x{3040}-\x{30FF}]`)},   // Hiragana/Katakana
	{Korean, regexp.MustCompile(`[\x{AC00}-\x{D7AF}\x{1100}-\x{11FF}]`)}, // Hangul
	{Chinese, regexp.MustCompile(`[\x{4E00}-\x{9FFF}]`)},    // CJK ideographs
	// Latin-script languages: distinctive function words or diacritics.
	// English is checked last so it cannot shadow the others; it is also
	// the fallback, so an English miss here is harmless.
	{Spanish, regexp.MustCompile(`(?i)[¿¡]|\b(según|también|después|años|través)\b`)},
	{French, regexp.MustCompile(`(?i)\b(être|été|même|après|très|où|français)\b`)},
	{German, regexp.MustCompile(`(?i)\b(und|nicht|über|für|können|während|zwischen)\b|ß`)},
	{Italian, regexp.MustCompile(`(?i)\b(perché|più|così|anche|della|degli)\b`)},
	{Portuguese, regexp.MustCompile(`(?i)\b(não|são|então|também|português|ções)\b|ã`)},
	{English, regexp.MustCompile(`(?i)\b(the|and|with|that|this|from|have)\b`)},
}

// Classifier maps text fragments to language codes using ordered detection
// strategies: the script/lexical regex table first, then any optional
// statistical detectors, then the default code. Detection is a pure function
// of the text; a Classifier is safe for sequential reuse across documents
// but is not designed for concurrent mutation.
type Classifier struct {
	detectors []Detector
}

// NewClassifier creates a classifier with no statistical detectors; regex
// matching and the default fallback are always available.
func NewClassifier(detectors ...Detector) *Classifier {
	return &Classifier{detectors: detectors}
}

// Detect returns the language code for text. Text shorter than ten trimmed
// runes (including empty) yields the default code immediately.
func (c *Classifier) Detect(text string) Code {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minDetectLength {
		return Default
	}

	if code, ok := detectByScript(trimmed); ok {
		return code
	}

	for _, d := range c.detectors {
		if code, ok := consultDetector(d, trimmed); ok {
			return code
		}
	}

	return Default
}

// detectByScript scans the pattern table in order and returns the first
// matching language.
func detectByScript(text string) (Code, bool) {
	for _, sp := range scriptPatterns {
		if sp.pattern.MatchString(text) {
			return sp.code, true
		}
	}
	return "", false
}

// consultDetector runs one optional detector, absorbing panics and rejecting
// codes outside the supported set. A failing detector is indistinguishable
// from an inconclusive one.
func consultDetector(d Detector, text string) (code Code, ok bool) {
	defer func() {
		if recover() != nil {
			code, ok = "", false
		}
	}()

	got, found := d.DetectLanguage(text)
	if !found {
		return "", false
	}
	return canonicalize(got)
}

// canonicalize normalizes a detector result to a supported code, accepting
// BCP 47 variants such as "hin" or "en-US" for "hi" and "en".
func canonicalize(code Code) (Code, bool) {
	if IsSupported(code) {
		return code, true
	}
	tag, err := language.Parse(string(code))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	normalized := Code(base.String())
	if IsSupported(normalized) {
		return normalized, true
	}
	return "", false
}
