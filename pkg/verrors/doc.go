// Package verrors provides error definitions shared by the appversion packages.
//
// This package defines standardized sentinel errors so callers can classify
// failures with [errors.Is] regardless of which package produced them.
package verrors
