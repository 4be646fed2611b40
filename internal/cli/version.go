package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// These variables are populated by the Go linker during the build process.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// SetVersionTemplate makes --version print the same block as the version
// subcommand.
func SetVersionTemplate(cmd *cobra.Command) {
	cmd.SetVersionTemplate(`{{.Name}} {{.Version}}` + "\n" + versionDetails())
}

func versionDetails() string {
	return fmt.Sprintf("  Commit:    %s\n  Built:     %s\n  Arch:      %s/%s\n",
		Commit, BuildDate, runtime.GOOS, runtime.GOARCH)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of gridsheet",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gridsheet %s\n", Version)
			fmt.Fprint(out, versionDetails())
		},
	}
}
