package appversion_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/appversion/pkg/appversion"
	"github.com/MacroPower/appversion/pkg/verrors"
)

func TestSetFile(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path     string
		symbolic string
		resolved string
	}{
		"inside app dir": {
			path:     "/srv/project/app/config/version.yml",
			symbolic: "%root%/config/version.yml",
			resolved: "/srv/project/app/config/version.yml",
		},
		"inside root dir": {
			path:     "/srv/project/version.yml",
			symbolic: "%root%/../version.yml",
			resolved: "/srv/project/version.yml",
		},
		"relative": {
			path:     "app/version.yml",
			symbolic: "%root%/version.yml",
			resolved: "/srv/project/app/version.yml",
		},
		"symbolic": {
			path:     "%root%/../config/version.yml",
			symbolic: "%root%/../config/version.yml",
			resolved: "/srv/project/config/version.yml",
		},
		"relative escaping root": {
			path:     "../shared/version.yml",
			symbolic: "%root%/../../shared/version.yml",
			resolved: "/srv/shared/version.yml",
		},
		"symbolic escaping root": {
			path:     "%root%/../../shared/version.yml",
			symbolic: "%root%/../../shared/version.yml",
			resolved: "/srv/shared/version.yml",
		},
		"outside": {
			path:     "/etc/version.yml",
			symbolic: "/etc/version.yml",
			resolved: "/etc/version.yml",
		},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			d := newDescriptor(afero.NewMemMapFs())
			require.NoError(t, d.SetFile(tc.path))
			assert.Equal(t, tc.symbolic, d.File())
			assert.Equal(t, tc.resolved, d.ResolvedFile())
		})
	}
}

func TestSetFileEmpty(t *testing.T) {
	t.Parallel()

	err := newDescriptor(afero.NewMemMapFs()).SetFile("")
	require.ErrorIs(t, err, verrors.ErrResolvePath)
}

func TestNoFile(t *testing.T) {
	t.Parallel()

	d := newDescriptor(afero.NewMemMapFs())
	require.ErrorIs(t, d.ReadFile(), verrors.ErrNoFile)
	require.ErrorIs(t, d.DumpConfig(), verrors.ErrNoFile)
}

func TestReadMissingFile(t *testing.T) {
	t.Parallel()

	d := newDescriptor(afero.NewMemMapFs()).
		SetMajor(5).
		SetPreRelease("alpha").
		SetLicense("MIT").
		AddAuthor("Jane")
	require.NoError(t, d.SetFile("/srv/project/app/version.yml"))

	before := d.Document()
	require.NoError(t, d.ReadFile())
	assert.Equal(t, before, d.Document())
}

func TestReadMalformedFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/srv/project/version.yml", []byte("app_version: [\n"), 0o644))

	d := newDescriptor(fs)
	require.NoError(t, d.SetFile("/srv/project/version.yml"))
	require.ErrorIs(t, d.ReadFile(), verrors.ErrInvalidFormat)
}

func TestDumpAndRead(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	src := newDescriptor(fs).
		SetMajor(1).
		SetMinor(2).
		SetPatch(3).
		SetPreRelease("beta.1").
		SetDeployTimestamp("2024-03-10 14:30:15").
		SetLicense("MIT").
		SetCopyright("ACME").
		SetApplyAssets(true).
		AddAuthor("Jane Doe <jane@example.com>").
		AddAuthor("John")
	require.NoError(t, src.SetFile("/srv/project/app/config/version.yml"))
	require.NoError(t, src.DumpConfig())

	exists, err := afero.Exists(fs, "/srv/project/app/config/version.yml")
	require.NoError(t, err)
	require.True(t, exists)

	dst := newDescriptor(fs)
	require.NoError(t, dst.SetFile("%root%/config/version.yml"))
	require.NoError(t, dst.ReadFile())

	assert.Equal(t, src.Document(), dst.Document())
	assert.Equal(t, "1.2.3-beta.1", dst.SemVer())
	assert.True(t, dst.IsValid())
	assert.True(t, dst.ApplyAssets())
	assert.Equal(t, []string{"Jane Doe <jane@example.com>", "John"}, dst.Credits().Strings())
}

func TestRoundTripIdempotent(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	path := "/srv/project/app/version.yml"

	src := newDescriptor(fs).SetMajor(1).SetLicense("MIT").SetCopyright("ACME").AddAuthor("Jane <j@example.com>")
	require.NoError(t, src.SetFile(path))
	require.NoError(t, src.DumpConfig())

	first, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	for range 2 {
		d := newDescriptor(fs)
		require.NoError(t, d.SetFile(path))
		require.NoError(t, d.ReadFile())
		require.NoError(t, d.DumpConfig())

		again, err := afero.ReadFile(fs, path)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestReadShallowMerge(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	content := `# This file is auto-generated
app_version:
    version:
        patch: "7"
        license: Apache-2.0
        build: null
    file: /somewhere/else.yml
`
	require.NoError(t, afero.WriteFile(fs, "/srv/project/version.yml", []byte(content), 0o644))

	d := newDescriptor(fs, appversion.WithDefaults(appversion.Defaults{
		Major:     3,
		Minor:     4,
		Build:     "b1",
		Copyright: "ACME",
		Credits:   []string{"Jane"},
	}))
	require.NoError(t, d.SetFile("/srv/project/version.yml"))
	require.NoError(t, d.ReadFile())

	assert.Equal(t, 3, d.Major())
	assert.Equal(t, 4, d.Minor())
	assert.Equal(t, 7, d.Patch())
	assert.Equal(t, "b1", d.Build())
	assert.Equal(t, "Apache-2.0", d.License())
	assert.Equal(t, "ACME", d.Copyright())
	assert.Equal(t, []string{"Jane"}, d.Credits().Strings())
	assert.Equal(t, "%root%/../version.yml", d.File())
	assert.False(t, d.ApplyAssets())
}

func TestReadNormalizesValues(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	content := `app_version:
    version:
        major: -2
        minor: abc
        preRelease: "beta 2!"
        deployTimestamp: "2024-01-02"
        credits:
            - Jane Doe <jane@example.com>
            - J@ne!
    applyAssets: true
`
	require.NoError(t, afero.WriteFile(fs, "/srv/project/version.yml", []byte(content), 0o644))

	d := newDescriptor(fs).AddAuthor("Old Author")
	require.NoError(t, d.SetFile("/srv/project/version.yml"))
	require.NoError(t, d.ReadFile())

	assert.Equal(t, 0, d.Major())
	assert.Equal(t, 0, d.Minor())
	assert.Equal(t, "beta.2", d.PreRelease())
	assert.Equal(t, "2024-01-02 00:00:00", d.DeployTimestamp())
	assert.Equal(t, []string{"Jane Doe <jane@example.com>"}, d.Credits().Strings())
	assert.True(t, d.ApplyAssets())
}
