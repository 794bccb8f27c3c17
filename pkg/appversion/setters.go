package appversion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cast"

	"github.com/MacroPower/appversion/pkg/label"
	"github.com/MacroPower/appversion/pkg/verrors"
)

// SetMajor sets the major version number. See [ToVersionNumber].
func (d *Descriptor) SetMajor(v any) *Descriptor {
	d.major = ToVersionNumber(v)

	return d
}

// SetMinor sets the minor version number. See [ToVersionNumber].
func (d *Descriptor) SetMinor(v any) *Descriptor {
	d.minor = ToVersionNumber(v)

	return d
}

// SetPatch sets the patch version number. See [ToVersionNumber].
func (d *Descriptor) SetPatch(v any) *Descriptor {
	d.patch = ToVersionNumber(v)

	return d
}

// SetPreRelease sets the pre-release label. An empty label clears it.
func (d *Descriptor) SetPreRelease(s string) *Descriptor {
	d.preRelease = label.Normalize(s)

	return d
}

// SetBuild sets the build label. An empty label clears it.
func (d *Descriptor) SetBuild(s string) *Descriptor {
	d.build = label.Normalize(s)

	return d
}

// SetDeployTimestamp parses expr and stores it in canonical form. Empty or
// unparsable expressions clear the timestamp.
func (d *Descriptor) SetDeployTimestamp(expr string) *Descriptor {
	d.deployTimestamp = d.times.Canonical(expr)

	return d
}

// SetLicense sets the license. Surrounding whitespace is removed.
func (d *Descriptor) SetLicense(s string) *Descriptor {
	d.license = strings.TrimSpace(s)

	return d
}

// SetCopyright sets the copyright notice. Surrounding whitespace is removed.
func (d *Descriptor) SetCopyright(s string) *Descriptor {
	d.copyright = strings.TrimSpace(s)

	return d
}

// SetApplyAssets sets the applyAssets flag.
func (d *Descriptor) SetApplyAssets(v bool) *Descriptor {
	d.applyAssets = v

	return d
}

// AddAuthor adds a "Name <email>" or "Name" credit. Malformed input is
// ignored.
func (d *Descriptor) AddAuthor(raw string) *Descriptor {
	d.credits.Add(raw)

	return d
}

// ClearCredits removes all credits.
func (d *Descriptor) ClearCredits() *Descriptor {
	d.credits.Clear()

	return d
}

// SetCredits replaces all credits with raw, in order.
func (d *Descriptor) SetCredits(raw []string) *Descriptor {
	d.credits.Clear()
	d.credits.AddAll(raw...)

	return d
}

// SetVersion parses a semantic version such as "v1.2.3-beta.1+build.5" and
// sets the version numbers and both labels from it.
func (d *Descriptor) SetVersion(s string) error {
	v, err := semver.NewVersion(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%w: %q: %w", verrors.ErrInvalidVersion, s, err)
	}

	d.SetMajor(v.Major()).
		SetMinor(v.Minor()).
		SetPatch(v.Patch()).
		SetPreRelease(v.Prerelease()).
		SetBuild(v.Metadata())

	return nil
}

// ToVersionNumber coerces v to a non-negative version number.
//
// Strings yield the integer value of their leading decimal digits (after
// optional whitespace and sign), so "12abc" is 12 and "abc" is 0. Other
// values are converted with [cast.ToInt]. Negative results become 0.
func ToVersionNumber(v any) int {
	var n int

	switch x := v.(type) {
	case nil:
		return 0
	case string:
		n = leadingInt(x)
	default:
		n = cast.ToInt(v)
	}

	return max(n, 0)
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)

	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == 0 || neg {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Out of range.
		return 0
	}

	return n
}
