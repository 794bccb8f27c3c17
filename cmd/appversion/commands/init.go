package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/appversion/pkg/versiontui"
)

var ErrInitFailed = errors.New("failed to initialize version file")

func NewInitCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Prepare the version file",
		Long: `Prepare the version file.

If the version file already holds a license and a copyright, it is kept as
is. Otherwise every field is prompted for (required fields are marked with
*), followed by the existing and any additional authors.`,
		Args:    cobra.NoArgs,
		PreRunE: args.loadDescriptor,
		RunE: func(cc *cobra.Command, _ []string) error {
			d := args.descriptor

			if d.IsValid() {
				cc.Printf("Saving current version info existing in %s\n", d.File())

				return nil
			}

			p, err := args.newPrompter(cc)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInitFailed, err)
			}

			s := versiontui.NewSession(p, cc.OutOrStdout())

			if err := s.PrintFieldHelp(); err != nil {
				return fmt.Errorf("%w: %w", ErrInitFailed, err)
			}

			if err := s.AskFields(d, true); err != nil {
				return fmt.Errorf("%w: %w", ErrInitFailed, err)
			}

			if err := s.ReviewCredits(d); err != nil {
				return fmt.Errorf("%w: %w", ErrInitFailed, err)
			}

			if _, err := s.AskAuthors(d); err != nil {
				return fmt.Errorf("%w: %w", ErrInitFailed, err)
			}

			if err := args.save(cc, "Version info saved!"); err != nil {
				return fmt.Errorf("%w: %w", ErrInitFailed, err)
			}

			return nil
		},
		SilenceUsage: true,
	}
}
