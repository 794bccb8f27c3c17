package settings

import (
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/MacroPower/appversion/pkg/appversion"
	"github.com/MacroPower/appversion/pkg/commit"
	"github.com/MacroPower/appversion/pkg/pathutil"
	"github.com/MacroPower/appversion/pkg/verrors"
	"github.com/MacroPower/appversion/pkg/versionfile"
)

const (
	ResolverExec = "exec"
	ResolverGit  = "git"
	ResolverNone = "none"
)

// Resolvers lists the supported commit resolver names.
var Resolvers = []string{ResolverExec, ResolverGit, ResolverNone}

// Settings are the resolved appversion settings.
type Settings struct {
	// ConfigFile is the settings file that was read, if any.
	ConfigFile string `mapstructure:"-"`

	Namespace   string  `mapstructure:"namespace"`
	Environment string  `mapstructure:"environment"`
	File        string  `mapstructure:"file"`
	RootDir     string  `mapstructure:"root_dir"`
	AppDir      string  `mapstructure:"app_dir"`
	Commit      Commit  `mapstructure:"commit"`
	Version     Version `mapstructure:"version"`
}

// Commit configures the commit lookup.
type Commit struct {
	Resolver string        `mapstructure:"resolver"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Version holds default values for new descriptors. The version numbers are
// kept as decoded and coerced by [Settings.Defaults], so "abc" yields 0.
type Version struct {
	PreRelease      string   `mapstructure:"preRelease"`
	Build           string   `mapstructure:"build"`
	DeployTimestamp string   `mapstructure:"deployTimestamp"`
	License         string   `mapstructure:"license"`
	Copyright       string   `mapstructure:"copyright"`
	Credits         []string `mapstructure:"credits"`
	Major           any      `mapstructure:"major"`
	Minor           any      `mapstructure:"minor"`
	Patch           any      `mapstructure:"patch"`
	ApplyAssets     bool     `mapstructure:"applyAssets"`
}

// Validate checks that the settings can be used. A missing version file is
// reported as [verrors.ErrMissingFile].
func (s *Settings) Validate() error {
	if s.File == "" {
		return verrors.ErrMissingFile
	}

	if !slices.Contains(Resolvers, s.Commit.Resolver) {
		return fmt.Errorf("%w: commit.resolver %q, expected one of %v",
			verrors.ErrInvalidSettings, s.Commit.Resolver, Resolvers)
	}

	if s.Environment == "" {
		return fmt.Errorf("%w: environment must not be empty", verrors.ErrInvalidSettings)
	}

	if s.Commit.Timeout < 0 {
		return fmt.Errorf("%w: commit.timeout must not be negative", verrors.ErrInvalidSettings)
	}

	return nil
}

// Roots returns the project root and application directories. Without
// explicit settings, they are derived from cwd.
func (s *Settings) Roots(cwd string) (string, string, error) {
	switch {
	case s.RootDir != "":
		root := s.RootDir
		if !filepath.IsAbs(root) {
			root = filepath.Join(cwd, root)
		}

		if s.AppDir != "" {
			return root, s.AppDir, nil
		}

		root, app := pathutil.DefaultRoots(root)

		return root, app, nil
	case s.AppDir != "":
		app := s.AppDir
		if !filepath.IsAbs(app) {
			app = filepath.Join(cwd, app)
		}

		return pathutil.RootsFromAppDir(app)
	}

	root, app := pathutil.DefaultRoots(cwd)

	return root, app, nil
}

// Defaults converts the version defaults for [appversion.WithDefaults].
func (s *Settings) Defaults() appversion.Defaults {
	return appversion.Defaults{
		Major:           appversion.ToVersionNumber(s.Version.Major),
		Minor:           appversion.ToVersionNumber(s.Version.Minor),
		Patch:           appversion.ToVersionNumber(s.Version.Patch),
		PreRelease:      s.Version.PreRelease,
		Build:           s.Version.Build,
		DeployTimestamp: s.Version.DeployTimestamp,
		License:         s.Version.License,
		Copyright:       s.Version.Copyright,
		Credits:         s.Version.Credits,
		ApplyAssets:     s.Version.ApplyAssets,
	}
}

// Resolver returns the configured commit resolver, working in dir.
func (s *Settings) Resolver(dir string) commit.Resolver {
	switch s.Commit.Resolver {
	case ResolverGit:
		return commit.NewGitResolver(dir)
	case ResolverNone:
		return commit.NopResolver{}
	}

	return commit.NewExecResolver(dir)
}

// StoreOptions returns the [versionfile.Store] options implied by the
// settings.
func (s *Settings) StoreOptions() []versionfile.Option {
	return []versionfile.Option{versionfile.WithNamespace(s.Namespace)}
}
