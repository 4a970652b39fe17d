package commands

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/gdvm/internal/config"
	gdvmerrors "github.com/thoreinstein/gdvm/internal/errors"
	"github.com/thoreinstein/gdvm/internal/paths"
	"github.com/thoreinstein/gdvm/pkg/fileutil"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gdvm configuration",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	Args:  cobra.NoArgs,
	RunE:  runConfigEdit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), configFilePath())
		return nil
	},
}

// configFilePath returns the default config file location.
func configFilePath() string {
	return filepath.Join(paths.AppConfigDir(), "config.yaml")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configFilePath()

	if !configInitForce {
		if _, err := os.Stat(path); err == nil {
			return gdvmerrors.NewUserError(
				errors.Newf("config file already exists at %s", path),
				"Pass --force to overwrite it")
		}
	}

	if err := paths.EnsureDir(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return exitify(err)
	}
	if err := fileutil.AtomicWriteYAML(path, config.Default()); err != nil {
		return exitify(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	path := configFilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return gdvmerrors.NewUserError(
			errors.Newf("no config file at %s", path),
			"Run 'gdvm config init' to create one")
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "running editor")
	}
	return nil
}
