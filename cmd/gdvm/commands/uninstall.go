package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	gdvmerrors "github.com/thoreinstein/gdvm/internal/errors"
)

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <version>",
	Short: "Remove an installed engine version",
	Long: `Remove an installed engine version.

The cached archive is kept, so a later 'gdvm install' of the same version
restores it without downloading. Use 'gdvm cache rm' to reclaim the disk
space too.`,
	Args: cobra.ExactArgs(1),
	RunE: runUninstall,
}

func runUninstall(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	spec, err := e.parseVersion(args[0])
	if err != nil {
		return err
	}

	removed, err := e.pipeline.Uninstall(spec)
	if err != nil {
		return exitify(err)
	}
	if !removed {
		return gdvmerrors.NewUserError(
			errors.Wrapf(gdvmerrors.ErrNotInstalled, "version %s", spec),
			"Run 'gdvm list' to see installed versions")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Uninstalled Godot %s. The cached archive was kept.\n", spec)
	return nil
}
