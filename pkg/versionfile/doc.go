// Package versionfile reads and writes version descriptors as YAML.
//
// The file holds a single top-level namespace key (see [WithNamespace]) whose
// value is a [Document]. Writes regenerate a comment header, and replace the
// file atomically by renaming a temporary file into place.
package versionfile
