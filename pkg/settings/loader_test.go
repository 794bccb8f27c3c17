package settings_test

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/appversion/pkg/settings"
	"github.com/MacroPower/appversion/pkg/verrors"
)

func newLoader(fs afero.Fs, opts ...settings.LoaderOption) *settings.Loader {
	base := []settings.LoaderOption{
		settings.WithFs(fs),
		settings.WithWorkDir("/work"),
		settings.WithConfigHome("/xdg"),
	}

	return settings.NewLoader(append(base, opts...)...)
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()

	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	s, err := newLoader(afero.NewMemMapFs()).Load()
	require.NoError(t, err)

	assert.Equal(t, "app_version", s.Namespace)
	assert.Equal(t, "prod", s.Environment)
	assert.Empty(t, s.File)
	assert.Empty(t, s.ConfigFile)
	assert.Equal(t, settings.ResolverExec, s.Commit.Resolver)
	assert.Equal(t, 5*time.Second, s.Commit.Timeout)
	assert.Equal(t, 0, s.Defaults().Major)
	assert.Equal(t, 1, s.Defaults().Minor)
	assert.Empty(t, s.Version.Credits)

	require.ErrorIs(t, s.Validate(), verrors.ErrMissingFile)
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	const local = `
environment: dev
file: "%root%/config/version.yml"
commit:
  resolver: git
  timeout: 2s
version:
  major: 2
  preRelease: beta
  license: MIT
  credits:
    - Jane Doe <jane@example.com>
    - John
`

	t.Run("local file", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/work/.appversion.yaml", local)
		writeFile(t, fs, "/xdg/appversion/config.yaml", "environment: xdg\n")

		s, err := newLoader(fs).Load()
		require.NoError(t, err)

		assert.Equal(t, "/work/.appversion.yaml", s.ConfigFile)
		assert.Equal(t, "dev", s.Environment)
		assert.Equal(t, "%root%/config/version.yml", s.File)
		assert.Equal(t, settings.ResolverGit, s.Commit.Resolver)
		assert.Equal(t, 2*time.Second, s.Commit.Timeout)
		assert.Equal(t, 2, s.Defaults().Major)
		assert.Equal(t, 1, s.Defaults().Minor)
		assert.Equal(t, "beta", s.Version.PreRelease)
		assert.Equal(t, "MIT", s.Version.License)
		assert.Equal(t, []string{"Jane Doe <jane@example.com>", "John"}, s.Version.Credits)
		require.NoError(t, s.Validate())
	})

	t.Run("xdg file", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/xdg/appversion/config.yaml", "environment: xdg\nnamespace: custom\n")

		s, err := newLoader(fs).Load()
		require.NoError(t, err)
		assert.Equal(t, "/xdg/appversion/config.yaml", s.ConfigFile)
		assert.Equal(t, "xdg", s.Environment)
		assert.Equal(t, "custom", s.Namespace)
	})

	t.Run("explicit file", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/work/.appversion.yaml", local)
		writeFile(t, fs, "/etc/appversion.yaml", "file: /srv/version.yml\n")

		s, err := newLoader(fs, settings.WithConfigFile("/etc/appversion.yaml")).Load()
		require.NoError(t, err)
		assert.Equal(t, "/etc/appversion.yaml", s.ConfigFile)
		assert.Equal(t, "/srv/version.yml", s.File)
		assert.Equal(t, "prod", s.Environment)
	})

	t.Run("explicit file missing", func(t *testing.T) {
		t.Parallel()

		_, err := newLoader(afero.NewMemMapFs(), settings.WithConfigFile("/nope.yaml")).Load()
		require.ErrorIs(t, err, verrors.ErrInvalidSettings)
		require.ErrorIs(t, err, verrors.ErrFileNotFound)
	})

	t.Run("non-numeric version", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/work/.appversion.yaml", "version:\n  major: abc\n  minor: 3rc\n  patch: -2\n")

		s, err := newLoader(fs).Load()
		require.NoError(t, err)

		def := s.Defaults()
		assert.Equal(t, 0, def.Major)
		assert.Equal(t, 3, def.Minor)
		assert.Equal(t, 0, def.Patch)
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/work/.appversion.yaml", "file: [\n")

		_, err := newLoader(fs).Load()
		require.ErrorIs(t, err, verrors.ErrInvalidSettings)
	})
}

//nolint:paralleltest // Uses t.Setenv.
func TestLoadPrecedence(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/work/.appversion.yaml", "environment: file\nnamespace: from_file\nfile: file.yml\n")

	t.Setenv("APPVERSION_ENVIRONMENT", "env")
	t.Setenv("APPVERSION_FILE", "env.yml")
	t.Setenv("APPVERSION_VERSION_CREDITS", "Alice,Bob")
	t.Setenv("APPVERSION_COMMIT_TIMEOUT", "750ms")
	t.Setenv("APPVERSION_VERSION_MAJOR", "7")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("env", "", "")
	flags.String("file", "", "")
	flags.String("namespace", "", "")
	flags.Duration("commit_timeout", settings.DefaultCommitTimeout, "")
	require.NoError(t, flags.Parse([]string{"--env", "flag"}))

	s, err := newLoader(fs, settings.WithFlags(flags)).Load()
	require.NoError(t, err)

	// Flag beats env beats file beats default.
	assert.Equal(t, "flag", s.Environment)
	assert.Equal(t, "env.yml", s.File)
	assert.Equal(t, "from_file", s.Namespace)
	assert.Equal(t, 750*time.Millisecond, s.Commit.Timeout)
	assert.Equal(t, []string{"Alice", "Bob"}, s.Version.Credits)
	assert.Equal(t, 7, s.Defaults().Major)
	assert.Equal(t, settings.ResolverExec, s.Commit.Resolver)
}
