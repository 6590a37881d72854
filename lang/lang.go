package lang

// Code is an ISO 639-1 style language code from the closed set of languages
// the outliner recognizes. Unknown input always resolves to English rather
// than failing.
type Code string

// Supported language codes. Indic languages are script-based (detectable by
// Unicode block); international languages are detected lexically or via
// optional statistical detectors.
const (
	Hindi      Code = "hi"
	Bengali    Code = "bn"
	Telugu     Code = "te"
	Tamil      Code = "ta"
	Gujarati   Code = "gu"
	Kannada    Code = "kn"
	Malayalam  Code = "ml"
	Punjabi    Code = "pa"
	Urdu       Code = "ur"
	Odia       Code = "or"
	Assamese   Code = "as"
	Marathi    Code = "mr"
	Sanskrit   Code = "sa"
	English    Code = "en"
	Spanish    Code = "es"
	French     Code = "fr"
	German     Code = "de"
	Italian    Code = "it"
	Portuguese Code = "pt"
	Russian    Code = "ru"
	Chinese    Code = "zh"
	Japanese   Code = "ja"
	Korean     Code = "ko"
	Arabic     Code = "ar"
	Thai       Code = "th"
)

// Default is the fallback code used whenever detection is inconclusive.
const Default = English

var indic = []Code{
	Hindi, Bengali, Telugu, Tamil, Gujarati, Kannada, Malayalam,
	Punjabi, Urdu, Odia, Assamese, Marathi, Sanskrit,
}

var international = []Code{
	English, Spanish, French, German, Italian, Portuguese,
	Russian, Chinese, Japanese, Korean, Arabic, Thai,
}

var names = map[Code]string{
	Hindi:      "Hindi",
	Bengali:    "Bengali",
	Telugu:     "Telugu",
	Tamil:      "Tamil",
	Gujarati:   "Gujarati",
	Kannada:    "Kannada",
	Malayalam:  "Malayalam",
	Punjabi:    "Punjabi",
	Urdu:       "Urdu",
	Odia:       "Odia",
	Assamese:   "Assamese",
	Marathi:    "Marathi",
	Sanskrit:   "Sanskrit",
	English:    "English",
	Spanish:    "Spanish",
	French:     "French",
	German:     "German",
	Italian:    "Italian",
	Portuguese: "Portuguese",
	Russian:    "Russian",
	Chinese:    "Chinese",
	Japanese:   "Japanese",
	Korean:     "Korean",
	Arabic:     "Arabic",
	Thai:       "Thai",
}

// Supported returns all recognized language codes, Indic first.
func Supported() []Code {
	out := make([]Code, 0, len(indic)+len(international))
	out = append(out, indic...)
	out = append(out, international...)
	return out
}

// Indic returns the script-based Indian language codes.
func Indic() []Code {
	out := make([]Code, len(indic))
	copy(out, indic)
	return out
}

// International returns the non-Indic language codes.
func International() []Code {
	out := make([]Code, len(international))
	copy(out, international)
	return out
}

// IsIndic reports whether code is one of the Indian languages.
func IsIndic(code Code) bool {
	for _, c := range indic {
		if c == code {
			return true
		}
	}
	return false
}

// IsSupported reports whether code is in the recognized set.
func IsSupported(code Code) bool {
	_, ok := names[code]
	return ok
}

// Name returns the full English name of a language, or "Unknown" for codes
// outside the supported set. Used for reporting only.
func Name(code Code) string {
	if name, ok := names[code]; ok {
		return name
	}
	return "Unknown"
}
