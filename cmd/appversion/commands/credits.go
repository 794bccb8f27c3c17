package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/MacroPower/appversion/pkg/credits"
	"github.com/MacroPower/appversion/pkg/versiontui"
	"github.com/MacroPower/appversion/pkg/versionview"
)

var ErrCreditsFailed = errors.New("failed to update credits")

func NewCreditsCmd(args *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credits",
		Short: "Credits management",
	}

	cmd.AddCommand(NewCreditsAddCmd(args))
	cmd.AddCommand(NewCreditsClearCmd(args))
	cmd.AddCommand(NewCreditsListCmd(args))

	return cmd
}

func NewCreditsAddCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "add [\"Name <email>\" ...]",
		Short: "Add authors",
		Long: `Add authors to the credits.

Names may only contain letters, digits and spaces. An author that is
already credited has its email replaced. Without arguments, authors are
prompted for until an empty line is entered.`,
		PreRunE: args.loadDescriptor,
		RunE: func(cc *cobra.Command, authors []string) error {
			d := args.descriptor

			if len(authors) == 0 {
				p, err := args.newPrompter(cc)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrCreditsFailed, err)
				}

				if _, err := versiontui.NewSession(p, cc.OutOrStdout()).AskAuthors(d); err != nil {
					return fmt.Errorf("%w: %w", ErrCreditsFailed, err)
				}
			}

			for _, a := range authors {
				if _, ok := credits.Parse(a); !ok {
					slog.Warn("skipping invalid author", "author", a)

					continue
				}

				d.AddAuthor(a)
			}

			if err := args.save(cc, "Credits info saved!"); err != nil {
				return fmt.Errorf("%w: %w", ErrCreditsFailed, err)
			}

			return nil
		},
		SilenceUsage: true,
	}
}

func NewCreditsClearCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "clear",
		Short:   "Remove all authors",
		Args:    cobra.NoArgs,
		PreRunE: args.loadDescriptor,
		RunE: func(cc *cobra.Command, _ []string) error {
			args.descriptor.ClearCredits()

			if err := args.save(cc, "Credits info saved!"); err != nil {
				return fmt.Errorf("%w: %w", ErrCreditsFailed, err)
			}

			return nil
		},
		SilenceUsage: true,
	}
}

func NewCreditsListCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List authors",
		Args:    cobra.NoArgs,
		PreRunE: args.loadDescriptor,
		RunE: func(cc *cobra.Command, _ []string) error {
			c := args.descriptor.Credits()
			if c.Len() == 0 {
				return nil
			}

			_, err := fmt.Fprintln(cc.OutOrStdout(), versionview.CreditsTable(c))
			if err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			return nil
		},
		SilenceUsage: true,
	}
}
