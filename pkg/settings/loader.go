package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/MacroPower/appversion/pkg/verrors"
	"github.com/MacroPower/appversion/pkg/versionfile"
)

const (
	// EnvPrefix prefixes all settings environment variables.
	EnvPrefix = "APPVERSION"
	// LocalConfigFile is looked up in the working directory.
	LocalConfigFile = ".appversion.yaml"
	// DefaultCommitTimeout bounds the commit lookup.
	DefaultCommitTimeout = 5 * time.Second
)

// FlagKeys maps command line flag names to settings keys. Only flags that
// exist in the bound flag set and were explicitly set take precedence.
var FlagKeys = map[string]string{
	"namespace":      "namespace",
	"env":            "environment",
	"file":           "file",
	"root_dir":       "root_dir",
	"app_dir":        "app_dir",
	"commit_timeout": "commit.timeout",
	"resolver":       "commit.resolver",
}

// Loader loads [Settings].
type Loader struct {
	fs         afero.Fs
	flags      *pflag.FlagSet
	configFile string
	workDir    string
	configHome string
}

// LoaderOption configures a [Loader].
type LoaderOption func(*Loader)

// WithConfigFile sets an explicit settings file. It must exist.
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		l.configFile = path
	}
}

// WithWorkDir sets the directory searched for [LocalConfigFile].
func WithWorkDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.workDir = dir
	}
}

// WithConfigHome overrides the XDG config home directory.
func WithConfigHome(dir string) LoaderOption {
	return func(l *Loader) {
		l.configHome = dir
	}
}

// WithFlags binds the flags named in [FlagKeys].
func WithFlags(flags *pflag.FlagSet) LoaderOption {
	return func(l *Loader) {
		l.flags = flags
	}
}

// WithFs sets the filesystem settings files are read from.
func WithFs(fs afero.Fs) LoaderOption {
	return func(l *Loader) {
		l.fs = fs
	}
}

// NewLoader creates a [Loader].
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		fs:         afero.NewOsFs(),
		workDir:    ".",
		configHome: xdg.ConfigHome,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges all sources into [Settings]. It does not validate the result;
// see [Settings.Validate].
func (l *Loader) Load() (*Settings, error) {
	v := viper.New()
	v.SetFs(l.fs)

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := l.bindFlags(v); err != nil {
		return nil, err
	}

	path, err := l.findConfigFile()
	if err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", verrors.ErrInvalidSettings, path, err)
		}

		slog.Debug("loaded settings file", "path", path)
	}

	s := &Settings{}

	err = v.Unmarshal(s, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", verrors.ErrInvalidSettings, err)
	}

	s.ConfigFile = path

	return s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("namespace", versionfile.DefaultNamespace)
	v.SetDefault("environment", "prod")
	v.SetDefault("file", "")
	v.SetDefault("root_dir", "")
	v.SetDefault("app_dir", "")
	v.SetDefault("commit.resolver", ResolverExec)
	v.SetDefault("commit.timeout", DefaultCommitTimeout)

	v.SetDefault("version.major", 0)
	v.SetDefault("version.minor", 1)
	v.SetDefault("version.patch", 0)
	v.SetDefault("version.preRelease", "")
	v.SetDefault("version.build", "")
	v.SetDefault("version.deployTimestamp", "")
	v.SetDefault("version.license", "")
	v.SetDefault("version.copyright", "")
	v.SetDefault("version.credits", []string{})
	v.SetDefault("version.applyAssets", false)
}

func (l *Loader) bindFlags(v *viper.Viper) error {
	if l.flags == nil {
		return nil
	}

	for name, key := range FlagKeys {
		f := l.flags.Lookup(name)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("%w: bind flag %q: %w", verrors.ErrInvalidSettings, name, err)
		}
	}

	return nil
}

func (l *Loader) findConfigFile() (string, error) {
	if l.configFile != "" {
		ok, err := afero.Exists(l.fs, l.configFile)
		if err != nil {
			return "", fmt.Errorf("%w: %w", verrors.ErrInvalidSettings, err)
		}

		if !ok {
			return "", fmt.Errorf("%w: %w: %s", verrors.ErrInvalidSettings, verrors.ErrFileNotFound, l.configFile)
		}

		return l.configFile, nil
	}

	candidates := []string{filepath.Join(l.workDir, LocalConfigFile)}
	if l.configHome != "" {
		candidates = append(candidates, filepath.Join(l.configHome, "appversion", "config.yaml"))
	}

	for _, c := range candidates {
		ok, err := afero.Exists(l.fs, c)
		if err != nil && !errors.Is(err, afero.ErrFileNotFound) {
			return "", fmt.Errorf("%w: %w", verrors.ErrInvalidSettings, err)
		}

		if ok {
			return c, nil
		}
	}

	return "", nil
}
