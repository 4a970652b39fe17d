package commands

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/gdvm/internal/launcher"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the current project in its pinned engine's editor",
	Long: `Open the project in the current directory in the Godot editor.

The engine version comes from the project's gdvm.toml pin. The editor
runs in the foreground; gdvm exits when it does.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func runEdit(_ *cobra.Command, _ []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	spec, err := e.pinnedVersion()
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "getting working directory")
	}

	return exitify(launcher.Edit(e.layout, e.plat, spec, wd))
}
