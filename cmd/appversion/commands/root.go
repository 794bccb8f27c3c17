package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/MacroPower/appversion/pkg/log"
	"github.com/MacroPower/appversion/pkg/settings"
)

var (
	ErrLogHandlerFailed = errors.New("log handler failed")
	ErrArgument         = errors.New("argument error")
	ErrInvalidArgument  = errors.New("invalid argument")

	heapProfile   *pprof.Profile
	allocsProfile *pprof.Profile
	blockProfile  *pprof.Profile
	mutexProfile  *pprof.Profile
)

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
		PreRunE:       args.loadDescriptor,
		RunE: func(cc *cobra.Command, _ []string) error {
			return showText(cc, args, "")
		},
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")

	cmd.PersistentFlags().StringVar(args.configFile, "config", "", "Settings file (default .appversion.yaml)")
	cmd.PersistentFlags().StringVarP(args.file, "file", "f", "", "Version file, absolute or relative to the project root")
	cmd.PersistentFlags().StringVarP(args.env, "env", "e", "", "Environment (dev, prod)")
	cmd.PersistentFlags().StringVar(args.rootDir, "root_dir", "", "Project root directory")
	cmd.PersistentFlags().StringVar(args.appDir, "app_dir", "", "Application directory")
	cmd.PersistentFlags().StringVar(args.namespace, "namespace", "", "Top-level key of the version file")
	cmd.PersistentFlags().StringVar(args.resolver, "resolver", "", "Commit resolver (exec, git, none)")
	cmd.PersistentFlags().BoolVar(args.noColor, "no_color", false, "Disable colored output")
	cmd.PersistentFlags().
		DurationVar(args.commitTimeout, "commit_timeout", settings.DefaultCommitTimeout, "Timeout for the commit lookup")

	cmd.PersistentFlags().StringVar(args.cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")
	cmd.PersistentFlags().StringVar(args.heapProfile, "heapprofile", "", "Write a heap profile to this file")
	cmd.PersistentFlags().StringVar(args.memProfile, "memprofile", "", "Write a memory profile to this file")
	cmd.PersistentFlags().
		IntVar(args.memProfileRate, "memprofile_rate", 512*1024, "Memory profiling rate as a fraction")
	cmd.PersistentFlags().StringVar(args.blockProfile, "blockprofile", "", "Write a block profile to this file")
	cmd.PersistentFlags().IntVar(args.blockProfileRate, "blockprofile_rate", 1, "Block profiling rate as a fraction")
	cmd.PersistentFlags().StringVar(args.mutexProfile, "mutexprofile", "", "Write a mutex profile to this file")
	cmd.PersistentFlags().IntVar(args.mutexProfileRate, "mutexprofile_rate", 1, "Mutex profiling rate as a fraction")

	for _, f := range []string{"config", "file", "cpuprofile", "heapprofile", "memprofile", "blockprofile", "mutexprofile"} {
		must(cmd.MarkPersistentFlagFilename(f))
	}

	must(cmd.MarkPersistentFlagDirname("root_dir"))
	must(cmd.MarkPersistentFlagDirname("app_dir"))

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		// Start CPU profiling if file is specified.
		if args.GetCPUProfile() != "" {
			f, err := os.Create(args.GetCPUProfile())
			if err != nil {
				return fmt.Errorf("failed to create CPU profile: %w", err)
			}

			err = pprof.StartCPUProfile(f)
			if err != nil {
				must(f.Close())

				return fmt.Errorf("failed to start CPU profile: %w", err)
			}
		}

		if args.GetHeapProfile() != "" || args.GetMemProfile() != "" {
			runtime.MemProfileRate = args.GetMemProfileRate()
		}

		if args.GetHeapProfile() != "" {
			heapProfile = pprof.Lookup("heap")
		}

		if args.GetMemProfile() != "" {
			allocsProfile = pprof.Lookup("allocs")
		}

		if args.GetBlockProfile() != "" {
			runtime.SetBlockProfileRate(args.GetBlockProfileRate())

			blockProfile = pprof.Lookup("block")
		}

		if args.GetMutexProfile() != "" {
			runtime.SetMutexProfileFraction(args.GetMutexProfileRate())

			mutexProfile = pprof.Lookup("mutex")
		}

		var opts []log.HandlerOption
		if args.GetNoColor() {
			opts = append(opts, log.WithColorProfile(termenv.Ascii))
		}

		h, err := log.CreateHandler(
			cc.ErrOrStderr(),
			args.GetLogLevel(),
			args.GetLogFormat(),
			opts...,
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go")

		return nil
	}

	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		slog.Debug("shutting down")

		// Stop CPU profiling if it was started.
		if args.GetCPUProfile() != "" {
			pprof.StopCPUProfile()
		}

		profiles := []struct {
			profile *pprof.Profile
			path    string
			name    string
		}{
			{heapProfile, args.GetHeapProfile(), "heap"},
			{allocsProfile, args.GetMemProfile(), "memory"},
			{blockProfile, args.GetBlockProfile(), "block"},
			{mutexProfile, args.GetMutexProfile(), "mutex"},
		}

		for _, p := range profiles {
			if p.profile == nil {
				continue
			}

			if p.profile == allocsProfile {
				runtime.GC() //nolint:revive // Get up-to-date statistics for the profile.
			}

			f, err := os.Create(p.path)
			if err != nil {
				return fmt.Errorf("failed to create %s profile: %w", p.name, err)
			}

			err = p.profile.WriteTo(f, 0)
			if err != nil {
				must(f.Close())

				return fmt.Errorf("failed to write %s profile: %w", p.name, err)
			}

			must(f.Close())
		}

		return nil
	}

	cmd.AddCommand(NewShowCmd(args))
	cmd.AddCommand(NewSetCmd(args))
	cmd.AddCommand(NewCreditsCmd(args))
	cmd.AddCommand(NewInitCmd(args))
	cmd.AddCommand(NewSchemaCmd(args))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
