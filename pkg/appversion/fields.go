package appversion

import (
	"fmt"
	"strconv"

	"github.com/iancoleman/strcase"

	"github.com/MacroPower/appversion/pkg/verrors"
)

// Field describes one user-editable scalar field of a [Descriptor].
type Field struct {
	get func(d *Descriptor) string
	set func(d *Descriptor, v string)

	// Name is the field key used in version files, e.g. "preRelease".
	Name string
	// Description is a short help text.
	Description string
	// Required fields must be set for [Descriptor.IsValid].
	Required bool
}

// Flag returns the kebab-case form of the name, e.g. "pre-release".
func (f Field) Flag() string {
	return strcase.ToKebab(f.Name)
}

// Value returns the current value of the field in d.
func (f Field) Value(d *Descriptor) string {
	return f.get(d)
}

// Apply sets the field in d through the corresponding setter.
func (f Field) Apply(d *Descriptor, v string) {
	f.set(d, v)
}

var fields = []Field{
	{
		Name:        "major",
		Description: "major version number; increment when publishing backward incompatible changes",
		Required:    true,
		get:         func(d *Descriptor) string { return strconv.Itoa(d.major) },
		set:         func(d *Descriptor, v string) { d.SetMajor(v) },
	},
	{
		Name:        "minor",
		Description: "minor version number; increment when publishing new features and backward compatible changes",
		Required:    true,
		get:         func(d *Descriptor) string { return strconv.Itoa(d.minor) },
		set:         func(d *Descriptor, v string) { d.SetMinor(v) },
	},
	{
		Name:        "patch",
		Description: "bugfix version number; increment when publishing a hotfix",
		Required:    true,
		get:         func(d *Descriptor) string { return strconv.Itoa(d.patch) },
		set:         func(d *Descriptor, v string) { d.SetPatch(v) },
	},
	{
		Name:        "preRelease",
		Description: "additional info, e.g. beta.1, rc.2, dev",
		get:         (*Descriptor).PreRelease,
		set:         func(d *Descriptor, v string) { d.SetPreRelease(v) },
	},
	{
		Name:        "build",
		Description: "build number; increase after each build, e.g. build.256, 20131211100101",
		get:         (*Descriptor).Build,
		set:         func(d *Descriptor, v string) { d.SetBuild(v) },
	},
	{
		Name:        "deployTimestamp",
		Description: "timestamp of the last deploy, e.g. now, 2024-03-10 14:30:15, @1710081015",
		get:         (*Descriptor).DeployTimestamp,
		set:         func(d *Descriptor, v string) { d.SetDeployTimestamp(v) },
	},
	{
		Name:        "license",
		Description: "license identification, e.g. MIT, GPL-2.0",
		Required:    true,
		get:         (*Descriptor).License,
		set:         func(d *Descriptor, v string) { d.SetLicense(v) },
	},
	{
		Name:        "copyright",
		Description: "copyright information",
		Required:    true,
		get:         (*Descriptor).Copyright,
		set:         func(d *Descriptor, v string) { d.SetCopyright(v) },
	},
}

// Fields returns the editable fields in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)

	return out
}

// LookupField finds a field by name. The name may be given in camelCase,
// kebab-case or snake_case.
func LookupField(name string) (Field, bool) {
	key := strcase.ToLowerCamel(name)
	for _, f := range fields {
		if f.Name == key {
			return f, true
		}
	}

	return Field{}, false
}

// Set sets the named field from its string form.
func (d *Descriptor) Set(name, value string) error {
	f, ok := LookupField(name)
	if !ok {
		return fmt.Errorf("%w: %q", verrors.ErrUnknownField, name)
	}

	f.Apply(d, value)

	return nil
}
