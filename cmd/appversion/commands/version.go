package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MacroPower/appversion/internal/version"
)

func GetVersionString() string {
	return fmt.Sprintf("%s %s", version.Version, version.Info())
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the appversion CLI",
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(GetVersionString())
		},
	}
}
