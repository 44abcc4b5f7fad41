// Package sanitizer strips phrases that models leak into translation output
// despite being told not to.
package sanitizer

import "strings"

// leakagePhrases are removed in this order. Matching is literal and
// case-sensitive, so a later phrase sees the result of the earlier removals.
var leakagePhrases = []string{
	"the source language is",
	"source language",
	"translation:",
	"translated text:",
}

// Sanitize trims text, removes every occurrence of each leakage phrase and
// trims again. It does not respect word boundaries: a phrase that happens to
// appear inside a legitimate translation is removed as well.
func Sanitize(text string) string {
	cleaned := strings.TrimSpace(text)
	for _, phrase := range leakagePhrases {
		cleaned = strings.ReplaceAll(cleaned, phrase, "")
	}
	return strings.TrimSpace(cleaned)
}
