package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MacroPower/appversion/cmd/appversion/commands"
)

const (
	cmdName = "appversion"

	shortDesc = "Show or set application version info."
	longDesc  = `Show or set application version info.

appversion manages a version file holding the semantic version of an
application together with its deploy timestamp, license, copyright and
credits. The version file is a YAML document that is safe to edit by hand.

More about Semantic Versioning: https://semver.org/
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
