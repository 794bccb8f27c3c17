// Package versionview renders a version descriptor for terminal display.
package versionview
