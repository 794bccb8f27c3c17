package label

import (
	"regexp"
	"strings"
)

var (
	disallowedChars = regexp.MustCompile(`[^A-Za-z0-9.]`)
	repeatedDots    = regexp.MustCompile(`\.{2,}`)
)

// Normalize scrubs raw into a label. Every character outside [A-Za-z0-9.] is
// replaced with a dot, runs of dots are collapsed and leading or trailing
// dots are removed. An empty result means the label is absent.
func Normalize(raw string) string {
	s := disallowedChars.ReplaceAllString(strings.TrimSpace(raw), ".")
	s = repeatedDots.ReplaceAllString(s, ".")

	return strings.Trim(s, ".")
}

// Valid reports whether s is already a normalized, non-empty label.
func Valid(s string) bool {
	return s != "" && Normalize(s) == s
}
