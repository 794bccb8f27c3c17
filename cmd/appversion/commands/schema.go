package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ErrSchemaFailed = errors.New("failed to generate schema")

func NewSchemaCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the version file",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			if _, err := args.loadSettings(cc); err != nil {
				return fmt.Errorf("%w: %w", ErrSchemaFailed, err)
			}

			b, err := args.store.SchemaJSON()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrSchemaFailed, err)
			}

			_, err = fmt.Fprintln(cc.OutOrStdout(), string(b))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrSchemaFailed, err)
			}

			return nil
		},
		SilenceUsage: true,
	}
}
