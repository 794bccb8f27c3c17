package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/MacroPower/appversion/pkg/appversion"
	"github.com/MacroPower/appversion/pkg/settings"
	"github.com/MacroPower/appversion/pkg/versionfile"
	"github.com/MacroPower/appversion/pkg/versiontui"
)

var (
	ErrSettingsFailed   = errors.New("failed to load settings")
	ErrDescriptorFailed = errors.New("failed to load version info")
)

// loadSettings reads the settings once. Flags of cc take precedence over
// the environment and the settings file.
func (a *RootArgs) loadSettings(cc *cobra.Command) (*settings.Settings, error) {
	if a.settings != nil {
		return a.settings, nil
	}

	l := settings.NewLoader(
		settings.WithFlags(cc.Flags()),
		settings.WithConfigFile(a.GetConfigFile()),
	)

	s, err := l.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSettingsFailed, err)
	}

	a.settings = s
	a.store = versionfile.NewStore(afero.NewOsFs(), s.StoreOptions()...)

	return s, nil
}

// loadDescriptor builds the descriptor from validated settings, reads the
// version file and looks up the current commit. It is used as PreRunE.
func (a *RootArgs) loadDescriptor(cc *cobra.Command, _ []string) error {
	s, err := a.loadSettings(cc)
	if err != nil {
		return err
	}

	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrSettingsFailed, err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDescriptorFailed, err)
	}

	rootDir, appDir, err := s.Roots(cwd)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDescriptorFailed, err)
	}

	d := appversion.New(
		appversion.WithRoots(rootDir, appDir),
		appversion.WithStore(a.store),
		appversion.WithDefaults(s.Defaults()),
		appversion.WithEnvironment(s.Environment),
		appversion.WithCommitResolver(s.Resolver(rootDir)),
	)

	if err := d.SetFile(s.File); err != nil {
		return fmt.Errorf("%w: %w", ErrDescriptorFailed, err)
	}

	if err := d.ReadFile(); err != nil {
		return fmt.Errorf("%w: %w", ErrDescriptorFailed, err)
	}

	ctx := cc.Context()
	if s.Commit.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.Commit.Timeout)
		defer cancel()
	}

	d.FetchCommit(ctx)

	slog.Debug("loaded version info",
		"file", d.ResolvedFile(),
		"settings", s.ConfigFile,
		"version", d.SemVer(),
	)

	a.descriptor = d

	return nil
}

func (a *RootArgs) save(cc *cobra.Command, msg string) error {
	if err := a.descriptor.DumpConfig(); err != nil {
		return err
	}

	slog.Info("saved version file", "path", a.descriptor.ResolvedFile())
	cc.Println(msg)

	return nil
}

// colorProfile returns the profile used for styled output.
func (a *RootArgs) colorProfile(cc *cobra.Command) termenv.Profile {
	if a.GetNoColor() || !isTerminal(cc.OutOrStdout()) {
		return termenv.Ascii
	}

	return termenv.EnvColorProfile()
}

//nolint:ireturn // Multiple concrete types.
func (a *RootArgs) newPrompter(cc *cobra.Command) (versiontui.Prompter, error) {
	if !isTerminal(cc.InOrStdin()) || !isTerminal(cc.OutOrStdout()) {
		return versiontui.NewLinePrompter(cc.InOrStdin(), cc.OutOrStdout()), nil
	}

	t, err := versiontui.NewTUI(cc.InOrStdin(), cc.OutOrStdout(), a.GetLogLevel())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArgument, err)
	}

	return t, nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}
