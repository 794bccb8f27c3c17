package appversion_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/appversion/pkg/appversion"
	"github.com/MacroPower/appversion/pkg/verrors"
)

func TestFields(t *testing.T) {
	t.Parallel()

	var names, flags []string

	required := map[string]bool{}

	for _, f := range appversion.Fields() {
		names = append(names, f.Name)
		flags = append(flags, f.Flag())
		required[f.Name] = f.Required

		assert.NotEmpty(t, f.Description, f.Name)
	}

	assert.Equal(t, []string{
		"major", "minor", "patch", "preRelease", "build", "deployTimestamp", "license", "copyright",
	}, names)
	assert.Equal(t, []string{
		"major", "minor", "patch", "pre-release", "build", "deploy-timestamp", "license", "copyright",
	}, flags)
	assert.True(t, required["license"])
	assert.True(t, required["copyright"])
	assert.False(t, required["preRelease"])
}

func TestLookupField(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		in   string
		want string
		ok   bool
	}{
		"camel":   {in: "preRelease", want: "preRelease", ok: true},
		"kebab":   {in: "pre-release", want: "preRelease", ok: true},
		"snake":   {in: "deploy_timestamp", want: "deployTimestamp", ok: true},
		"pascal":  {in: "Copyright", want: "copyright", ok: true},
		"unknown": {in: "commit", ok: false},
		"empty":   {in: "", ok: false},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, ok := appversion.LookupField(tc.in)
			require.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, f.Name)
		})
	}
}

func TestFieldValueApply(t *testing.T) {
	t.Parallel()

	d := newDescriptor(afero.NewMemMapFs())

	for _, f := range appversion.Fields() {
		switch f.Name {
		case "major", "minor", "patch":
			f.Apply(d, "4")
			assert.Equal(t, "4", f.Value(d), f.Name)
		case "deployTimestamp":
			f.Apply(d, "2024-01-02 03:04:05")
			assert.Equal(t, "2024-01-02 03:04:05", f.Value(d))
		default:
			f.Apply(d, "value.1")
			assert.Equal(t, "value.1", f.Value(d), f.Name)
		}
	}

	assert.Equal(t, "4.4.4-value.1+value.1", d.SemVer())
}

func TestSet(t *testing.T) {
	t.Parallel()

	d := newDescriptor(afero.NewMemMapFs())

	require.NoError(t, d.Set("major", "2"))
	require.NoError(t, d.Set("pre-release", "rc 1"))
	require.NoError(t, d.Set("license", "MIT"))
	assert.Equal(t, "2.1.0-rc.1", d.SemVer())
	assert.Equal(t, "MIT", d.License())

	err := d.Set("colour", "blue")
	require.ErrorIs(t, err, verrors.ErrUnknownField)
}
