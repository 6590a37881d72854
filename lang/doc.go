// Package lang provides language identification for text fragments.
//
// Detection runs a fixed chain of strategies: Unicode script and lexical
// regex matching first, then any optional statistical detectors supplied by
// the caller. Unknown or undetectable text always resolves to English, the
// default code, never to an error.
package lang
