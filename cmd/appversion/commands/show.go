package commands

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/appversion/pkg/versionfile"
	"github.com/MacroPower/appversion/pkg/versionview"
)

const (
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

var ErrShowFailed = errors.New("failed to show version info")

func NewShowCmd(args *RootArgs) *cobra.Command {
	output := new(string)
	format := new(string)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show version info",
		Long: `Show version info.

With --format, only the rendered template is printed. Supported tokens are
%major%, %minor%, %patch%, %pre-release%, %build%, %deploy-timestamp%,
%commit% and %copyright%.`,
		Args:    cobra.NoArgs,
		PreRunE: args.loadDescriptor,
		RunE: func(cc *cobra.Command, _ []string) error {
			var err error

			switch *output {
			case OutputText:
				err = showText(cc, args, *format)
			case OutputYAML:
				err = showEncoded(cc, args.store.Encode, args)
			case OutputJSON:
				err = showEncoded(cc, args.store.EncodeJSON, args)
			default:
				err = fmt.Errorf("%w: %w: output %q, expected one of %s, %s, %s",
					ErrArgument, ErrInvalidArgument, *output, OutputText, OutputYAML, OutputJSON)
			}

			if err != nil {
				return fmt.Errorf("%w: %w", ErrShowFailed, err)
			}

			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(output, "output", "o", OutputText, "Output format (text, yaml, json)")
	cmd.Flags().StringVar(format, "format", "", "Version string template, e.g. %major%.%minor%.%patch%")

	return cmd
}

func showText(cc *cobra.Command, args *RootArgs, format string) error {
	if format != "" {
		_, err := fmt.Fprintln(cc.OutOrStdout(), args.descriptor.VersionString(format))
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		return nil
	}

	v := versionview.New(versionview.WithColorProfile(args.colorProfile(cc)))

	return v.Render(cc.OutOrStdout(), args.descriptor)
}

func showEncoded(cc *cobra.Command, encode func(src versionfile.Source) ([]byte, error), args *RootArgs) error {
	b, err := encode(args.descriptor)
	if err != nil {
		return err
	}

	if !bytes.HasSuffix(b, []byte("\n")) {
		b = append(b, '\n')
	}

	_, err = cc.OutOrStdout().Write(b)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
