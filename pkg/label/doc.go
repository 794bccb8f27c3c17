// Package label canonicalizes pre-release and build labels.
//
// Labels are restricted to ASCII letters, digits and single dots so they can
// be embedded in a semantic version string without escaping.
package label
