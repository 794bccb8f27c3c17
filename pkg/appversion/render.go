package appversion

import (
	"strconv"
	"strings"
)

// DefaultFormat is the template used by [Descriptor.VersionString] when no
// format is given.
const DefaultFormat = "%major%.%minor%.%patch%%pre-release%%build% (deploy-ts: %deploy-timestamp%) %commit%"

// VersionString renders format with the descriptor's values and trims
// surrounding whitespace. An empty format renders [DefaultFormat].
//
// Supported tokens:
//
//	%major% %minor% %patch%   version numbers
//	%pre-release%             "-<label>", or "" when absent
//	%build%                   "+<label>", or "" when absent
//	%deploy-timestamp%        canonical deploy timestamp
//	%commit%                  "[commit: <revision>]", or "" when absent
//	%copyright%               copyright notice
func (d *Descriptor) VersionString(format string) string {
	if format == "" {
		format = DefaultFormat
	}

	r := strings.NewReplacer(
		"%major%", strconv.Itoa(d.major),
		"%minor%", strconv.Itoa(d.minor),
		"%patch%", strconv.Itoa(d.patch),
		"%pre-release%", affix("-", d.preRelease, ""),
		"%build%", affix("+", d.build, ""),
		"%deploy-timestamp%", d.deployTimestamp,
		"%commit%", affix("[commit: ", d.commit, "]"),
		"%copyright%", d.copyright,
	)

	return strings.TrimSpace(r.Replace(format))
}

// String returns the version rendered with [DefaultFormat].
func (d *Descriptor) String() string {
	return d.VersionString("")
}

// SemVer returns the "major.minor.patch[-pre][+build]" form.
func (d *Descriptor) SemVer() string {
	return d.VersionString("%major%.%minor%.%patch%%pre-release%%build%")
}

func affix(prefix, value, suffix string) string {
	if value == "" {
		return ""
	}

	return prefix + value + suffix
}
