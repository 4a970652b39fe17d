package commands

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/gdvm/internal/project"
)

func init() {
	rootCmd.AddCommand(pinCmd)
}

var pinCmd = &cobra.Command{
	Use:   "pin <version>",
	Short: "Pin the project in the current directory to an engine version",
	Long: `Pin the project in the current directory to an engine version.

Writes (or replaces) the gdvm.toml pin file at the project root.
'gdvm edit' and 'gdvm launch' use the pinned version when no version
argument is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runPin,
}

func runPin(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	// Validate before writing so a bad token never lands in the pin file.
	spec, err := e.parseVersion(args[0])
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "getting working directory")
	}

	if err := project.WritePin(wd, spec.Requested); err != nil {
		return exitify(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Pinned Godot %s in %s\n", spec, project.PinFileName)
	return nil
}
