package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/iancoleman/strcase"
	"github.com/spf13/cobra"

	"github.com/MacroPower/appversion/pkg/appversion"
	"github.com/MacroPower/appversion/pkg/verrors"
	"github.com/MacroPower/appversion/pkg/versiontui"
)

var ErrSetFailed = errors.New("failed to set version info")

func NewSetCmd(args *RootArgs) *cobra.Command {
	version := new(string)
	interactive := new(bool)
	applyAssets := new(bool)
	values := map[string]*string{}

	cmd := &cobra.Command{
		Use:   "set [field=value ...]",
		Short: "Set version info",
		Long: `Set version info and save it to the version file.

Fields can be given as flags or as field=value arguments, e.g.
"pre_release=beta.1". With --interactive, every field is prompted for with
its current value as default.`,
		Example: `  appversion set --major 1 --minor 2 --patch 0
  appversion set --version v1.2.0-rc.1+build.7
  appversion set license=MIT copyright="ACME Inc."
  appversion set -i`,
		PreRunE: args.loadDescriptor,
		RunE: func(cc *cobra.Command, positional []string) error {
			d := args.descriptor

			if *interactive {
				p, err := args.newPrompter(cc)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrSetFailed, err)
				}

				if err := versiontui.NewSession(p, cc.OutOrStdout()).AskFields(d, false); err != nil {
					return fmt.Errorf("%w: %w", ErrSetFailed, err)
				}
			} else {
				flagValues := map[string]string{}
				if cc.Flags().Changed("version") {
					flagValues["version"] = *version
				}

				for name, v := range values {
					if cc.Flags().Changed(name) {
						flagValues[name] = *v
					}
				}

				if err := applyValues(d, flagValues, positional); err != nil {
					return fmt.Errorf("%w: %w", ErrSetFailed, err)
				}
			}

			if cc.Flags().Changed("apply_assets") {
				d.SetApplyAssets(*applyAssets)
			}

			if err := args.save(cc, "Version info saved!"); err != nil {
				return fmt.Errorf("%w: %w", ErrSetFailed, err)
			}

			return nil
		},
		SilenceUsage: true,
	}

	for _, f := range appversion.Fields() {
		name := strcase.ToSnake(f.Name)
		values[name] = new(string)
		cmd.Flags().StringVar(values[name], name, "", f.Description)
	}

	cmd.Flags().StringVar(version, "version", "", "Semantic version, sets all version numbers and labels")
	cmd.Flags().BoolVarP(interactive, "interactive", "i", false, "Prompt for every field")
	cmd.Flags().BoolVar(applyAssets, "apply_assets", false, "Apply the version to assets")

	cmd.MarkFlagsMutuallyExclusive("interactive", "version")

	return cmd
}

// applyValues sets the version from flagValues and positional field=value
// arguments. A "version" value is applied first so that individual fields
// can override it. All problems are collected before returning.
func applyValues(d *appversion.Descriptor, flagValues map[string]string, positional []string) error {
	var result *multierror.Error

	if v, ok := flagValues["version"]; ok {
		if err := d.SetVersion(v); err != nil {
			result = multierror.Append(result, err)
		}
	}

	for _, f := range appversion.Fields() {
		if v, ok := flagValues[strcase.ToSnake(f.Name)]; ok {
			f.Apply(d, v)
		}
	}

	for _, arg := range positional {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			result = multierror.Append(result,
				fmt.Errorf("%w: %w: %q, expected field=value", ErrInvalidArgument, verrors.ErrParseArgs, arg))

			continue
		}

		if name == "version" {
			if err := d.SetVersion(value); err != nil {
				result = multierror.Append(result, err)
			}

			continue
		}

		if err := d.Set(name, value); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}
