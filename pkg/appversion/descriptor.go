package appversion

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/MacroPower/appversion/pkg/commit"
	"github.com/MacroPower/appversion/pkg/credits"
	"github.com/MacroPower/appversion/pkg/deploytime"
	"github.com/MacroPower/appversion/pkg/pathutil"
	"github.com/MacroPower/appversion/pkg/versionfile"
)

const (
	// EnvDev is the development environment. Only descriptors in this
	// environment look up the current commit.
	EnvDev = "dev"
	// EnvProd is the default environment.
	EnvProd = "prod"
)

// Descriptor is a mutable application version descriptor. It is not safe
// for concurrent use.
type Descriptor struct {
	resolver commit.Resolver
	store    *versionfile.Store
	times    *deploytime.Parser
	credits  *credits.Credits

	environment     string
	preRelease      string
	build           string
	deployTimestamp string
	license         string
	copyright       string
	commit          string
	file            string
	resolvedFile    string
	rootDir         string
	appDir          string

	major       int
	minor       int
	patch       int
	applyAssets bool
}

// Option configures a [Descriptor].
type Option func(*Descriptor)

// WithEnvironment sets the environment tag. Empty values are ignored.
func WithEnvironment(env string) Option {
	return func(d *Descriptor) {
		if env != "" {
			d.environment = env
		}
	}
}

// WithCommitResolver sets the resolver used by [Descriptor.FetchCommit].
func WithCommitResolver(r commit.Resolver) Option {
	return func(d *Descriptor) {
		if r != nil {
			d.resolver = r
		}
	}
}

// WithDefaults applies defaults through the regular setters.
func WithDefaults(def Defaults) Option {
	return func(d *Descriptor) {
		def.apply(d)
	}
}

// WithRoots sets the project root and application directories used to
// resolve the version file path. An empty appDir disables the [pathutil.RootMarker]
// rewrite.
func WithRoots(rootDir, appDir string) Option {
	return func(d *Descriptor) {
		d.rootDir = rootDir
		d.appDir = appDir
	}
}

// WithStore sets the store used to read and write the version file.
func WithStore(s *versionfile.Store) Option {
	return func(d *Descriptor) {
		if s != nil {
			d.store = s
		}
	}
}

// WithTimeParser sets the parser used by [Descriptor.SetDeployTimestamp].
func WithTimeParser(p *deploytime.Parser) Option {
	return func(d *Descriptor) {
		if p != nil {
			d.times = p
		}
	}
}

// New creates a [Descriptor] with version 0.1.0 in the [EnvProd] environment.
// Without [WithRoots], the roots default to the working directory and its
// "app" subdirectory, if present.
func New(opts ...Option) *Descriptor {
	d := &Descriptor{
		resolver:    commit.NopResolver{},
		store:       versionfile.NewStore(afero.NewOsFs()),
		times:       deploytime.NewParser(),
		credits:     &credits.Credits{},
		environment: EnvProd,
		minor:       1,
	}

	cwd, err := os.Getwd()
	if err != nil {
		slog.Warn("cannot determine working directory", "err", err)

		cwd = "."
	}

	d.rootDir, d.appDir = pathutil.DefaultRoots(cwd)

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Major returns the major version number.
func (d *Descriptor) Major() int { return d.major }

// Minor returns the minor version number.
func (d *Descriptor) Minor() int { return d.minor }

// Patch returns the patch version number.
func (d *Descriptor) Patch() int { return d.patch }

// PreRelease returns the normalized pre-release label, or "".
func (d *Descriptor) PreRelease() string { return d.preRelease }

// Build returns the normalized build label, or "".
func (d *Descriptor) Build() string { return d.build }

// DeployTimestamp returns the canonical deploy timestamp, or "".
func (d *Descriptor) DeployTimestamp() string { return d.deployTimestamp }

// License returns the license, or "".
func (d *Descriptor) License() string { return d.license }

// Copyright returns the copyright notice, or "".
func (d *Descriptor) Copyright() string { return d.copyright }

// Commit returns the described revision, [commit.ErrorMarker], or "".
func (d *Descriptor) Commit() string { return d.commit }

// Environment returns the environment tag.
func (d *Descriptor) Environment() string { return d.environment }

// ApplyAssets reports whether assets should be applied on deploy.
func (d *Descriptor) ApplyAssets() bool { return d.applyAssets }

// Credits returns a copy of the credited authors.
func (d *Descriptor) Credits() *credits.Credits { return d.credits.Clone() }

// RootDir returns the project root directory.
func (d *Descriptor) RootDir() string { return d.rootDir }

// AppDir returns the application directory, or "".
func (d *Descriptor) AppDir() string { return d.appDir }

// IsValid reports whether the descriptor is complete enough to publish:
// both license and copyright must be present. Version numbers always are.
func (d *Descriptor) IsValid() bool {
	return d.license != "" && d.copyright != ""
}

// FetchCommit describes the current revision and stores it. It does nothing
// outside the [EnvDev] environment. A failed or empty lookup stores
// [commit.ErrorMarker]; a disabled one leaves the commit absent.
func (d *Descriptor) FetchCommit(ctx context.Context) *Descriptor {
	if d.environment != EnvDev {
		return d
	}

	res := d.resolver.Resolve(ctx)

	switch res.Status {
	case commit.StatusFound:
	case commit.StatusDisabled:
		slog.Debug("commit lookup disabled")
	default:
		slog.Warn("commit lookup failed", "status", res.Status, "err", res.Err)
	}

	d.commit = res.Describe()

	return d
}
