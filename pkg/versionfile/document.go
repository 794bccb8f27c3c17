package versionfile

// Document is the on-disk shape of the version descriptor.
//
// Every field is optional on read. A nil field was absent (or null) in the
// file and must leave the corresponding value untouched.
type Document struct {
	Version Version `json:"version" yaml:"version"`

	// File is the symbolic path the document was written to. It is
	// informational and is not applied on read.
	File        *string `json:"file"        jsonschema:"oneof_type=string;null"  yaml:"file"`
	ApplyAssets *bool   `json:"applyAssets" jsonschema:"oneof_type=boolean;null" yaml:"applyAssets"`
}

// Version holds the version fields of a [Document].
//
// Numbers are decoded loosely so that a hand-edited file with "2" or 2.0
// still applies; the consumer coerces them.
type Version struct {
	Major           any       `json:"major"           jsonschema:"type=integer,minimum=0" yaml:"major"`
	Minor           any       `json:"minor"           jsonschema:"type=integer,minimum=0" yaml:"minor"`
	Patch           any       `json:"patch"           jsonschema:"type=integer,minimum=0" yaml:"patch"`
	PreRelease      *string   `json:"preRelease"      jsonschema:"oneof_type=string;null" yaml:"preRelease"`
	Build           *string   `json:"build"           jsonschema:"oneof_type=string;null" yaml:"build"`
	DeployTimestamp *string   `json:"deployTimestamp" jsonschema:"oneof_type=string;null" yaml:"deployTimestamp"`
	License         *string   `json:"license"         jsonschema:"oneof_type=string;null" yaml:"license"`
	Copyright       *string   `json:"copyright"       jsonschema:"oneof_type=string;null" yaml:"copyright"`
	Credits         *[]string `json:"credits"         jsonschema:"oneof_type=array;null"  yaml:"credits"`
}

// Target is populated from a [Document].
type Target interface {
	ApplyDocument(doc *Document)
}

// Source produces a [Document].
type Source interface {
	Document() *Document
}

// String returns a pointer to s, or nil when s is empty.
func String(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// Value returns the string p points to, or "" when p is nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}

	return *p
}
