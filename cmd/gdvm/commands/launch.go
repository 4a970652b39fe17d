package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/gdvm/internal/launcher"
	"github.com/thoreinstein/gdvm/internal/version"
)

func init() {
	rootCmd.AddCommand(launchCmd)
}

var launchCmd = &cobra.Command{
	Use:   "launch [version]",
	Short: "Start the project manager for an engine version",
	Long: `Start the project manager for an engine version and detach from it.

With no argument, uses the version pinned by the project in the current
directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLaunch,
}

func runLaunch(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	var spec version.Spec
	if len(args) == 1 {
		spec, err = e.parseVersion(args[0])
	} else {
		spec, err = e.pinnedVersion()
	}
	if err != nil {
		return err
	}

	if err := launcher.Launch(e.layout, e.plat, spec); err != nil {
		return exitify(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Launched Godot %s project manager.\n", spec)
	return nil
}
