package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Precompose collapses base-character + combining-mark sequences into their
// precomposed equivalents using canonical (NFC) composition.
//
// iTunes and some other playlist exporters emit decomposed Unicode (a base
// letter followed by separate combining-mark code points), which then fails
// to match the precomposed filenames actually on disk. Composition is applied
// mark by mark: each combining mark is composed with the segment before it,
// so only the decomposed sequences change and everything else passes through
// byte for byte.
//
// A combining mark with no preceding character is left unchanged. The
// function is idempotent.
func Precompose(text string) string {
	if text == "" {
		return text
	}

	// Each element is one composed segment: either a single rune or a
	// base + marks sequence that NFC could not compose further.
	segments := make([]string, 0, len(text))

	for _, r := range text {
		seg := string(r)
		if isCombining(r) && len(segments) > 0 {
			// Compose the preceding segment with this mark.
			last := len(segments) - 1
			seg = norm.NFC.String(segments[last] + seg)
			segments = segments[:last]
		}
		segments = append(segments, seg)
	}

	return strings.Join(segments, "")
}

// isCombining reports whether r has a non-zero canonical combining class.
func isCombining(r rune) bool {
	return norm.NFC.PropertiesString(string(r)).CCC() != 0
}
