package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/appversion/cmd/appversion/commands"
	"github.com/MacroPower/appversion/pkg/verrors"
)

func TestSetCmd(t *testing.T) {
	dir, flags := project(t)

	stdout, _, err := run(t, "", append([]string{
		"set",
		"--major", "2",
		"--minor", "3",
		"--patch", "4",
		"--license", "MIT",
		"pre_release=beta 1",
		"copyright=ACME Inc.",
		"deployTimestamp=@0",
	}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Version info saved!")

	content := readVersionFile(t, dir)
	assert.Contains(t, content, "# This file is auto-generated\n")
	assert.Contains(t, content, "app_version:\n")
	assert.Contains(t, content, "        major: 2\n")
	assert.Contains(t, content, "        preRelease: beta.1\n")
	assert.Contains(t, content, "        copyright: ACME Inc.\n")
	assert.Contains(t, content, "%root%/../version.yml")

	stdout, _, err = run(t, "", append([]string{"show", "--format", "%major%.%minor%.%patch%%pre-release%"}, flags...)...)
	require.NoError(t, err)
	assert.Equal(t, "2.3.4-beta.1\n", stdout)
}

func TestSetCmdVersion(t *testing.T) {
	dir, flags := project(t)

	_, _, err := run(t, "", append([]string{"set", "--version", "v1.2.3-rc.1+build.7", "--patch", "9"}, flags...)...)
	require.NoError(t, err)

	stdout, _, err := run(t, "", append([]string{"show", "--format", "%major%.%minor%.%patch%%pre-release%%build%"}, flags...)...)
	require.NoError(t, err)
	assert.Equal(t, "1.2.9-rc.1+build.7\n", stdout)

	_, _, err = run(t, "", append([]string{"set", "version=2.0.0"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, readVersionFile(t, dir), "        major: 2\n")
}

func TestSetCmdApplyAssets(t *testing.T) {
	dir, flags := project(t)

	_, _, err := run(t, "", append([]string{"set", "--apply_assets"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, readVersionFile(t, dir), "applyAssets: true\n")
}

func TestSetCmdErrors(t *testing.T) {
	tcs := map[string]struct {
		args    []string
		wantErr error
	}{
		"unknown field": {
			args:    []string{"bogus=1"},
			wantErr: verrors.ErrUnknownField,
		},
		"malformed argument": {
			args:    []string{"major"},
			wantErr: verrors.ErrParseArgs,
		},
		"invalid version flag": {
			args:    []string{"--version", "one.two"},
			wantErr: verrors.ErrInvalidVersion,
		},
		"invalid version argument": {
			args:    []string{"version=x"},
			wantErr: verrors.ErrInvalidVersion,
		},
		"valid fields do not hide errors": {
			args:    []string{"license=MIT", "nope=1"},
			wantErr: verrors.ErrUnknownField,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			dir, flags := project(t)

			_, _, err := run(t, "", append(append([]string{"set"}, tc.args...), flags...)...)
			require.Error(t, err)
			require.ErrorIs(t, err, commands.ErrSetFailed)
			require.ErrorIs(t, err, tc.wantErr)

			_, err = os.Stat(filepath.Join(dir, "version.yml"))
			assert.ErrorIs(t, err, os.ErrNotExist, "nothing should be written")
		})
	}
}

func TestSetCmdInteractive(t *testing.T) {
	dir, flags := project(t)

	stdin := "5\n\n\n\n\n\nGPL-2.0\nMe\n"

	stdout, _, err := run(t, stdin, append([]string{"set", "-i"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "major [0]: ")
	assert.Contains(t, stdout, "minor [1]: ")
	assert.Contains(t, stdout, "Version info saved!")

	content := readVersionFile(t, dir)
	assert.Contains(t, content, "        major: 5\n")
	assert.Contains(t, content, "        minor: 1\n")
	assert.Contains(t, content, "        license: GPL-2.0\n")
	assert.Contains(t, content, "        copyright: Me\n")

	// Current values are offered as defaults.
	stdout, _, err = run(t, "", append([]string{"set", "-i"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "major [5]: ")
	assert.Contains(t, stdout, "license [GPL-2.0]: ")
	assert.Contains(t, readVersionFile(t, dir), "        major: 5\n")
}
