package version

import (
	"github.com/spf13/cobra"

	"github.com/jongio/browsers-core/cliout"
)

// NewCommand creates a version command. Output follows the cliout format,
// so a root-level --output json flag applies.
func NewCommand(info *Info) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display " + info.Name + " version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cliout.IsJSON() {
				return cliout.PrintJSON(info)
			}

			if quiet {
				cliout.Plain("%s", info.Version)
				return nil
			}

			cliout.Header(info.Name + " Version")
			cliout.Label("Version", info.Version)
			cliout.Label("Build Date", info.BuildDate)
			cliout.Label("Git Commit", info.GitCommit)
			cliout.Label("Go", info.GoVersion)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}
