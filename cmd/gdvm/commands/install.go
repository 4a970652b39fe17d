package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/gdvm/internal/installer"
	"github.com/thoreinstein/gdvm/internal/version"
)

var installForce bool

func init() {
	installCmd.Flags().BoolVarP(&installForce, "force", "f", false,
		"re-install even if the version is already installed")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install [version]",
	Short: "Install a Godot engine version",
	Long: `Install a Godot engine version.

With no argument, opens an interactive picker over the published versions.

The downloaded archive is kept in the local cache, so reinstalling a
version later (including after 'gdvm uninstall') does not hit the network.

Examples:
  # Install a specific version
  gdvm install 3.5.1

  # Pick interactively
  gdvm install

  # Re-install from scratch
  gdvm install 3.5.1 --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	var spec version.Spec
	if len(args) == 1 {
		spec, err = e.parseVersion(args[0])
	} else {
		var picked bool
		spec, picked, err = pickVersion(ctx, e)
		if err == nil && !picked {
			return nil
		}
	}
	if err != nil {
		return exitify(err)
	}

	res, err := e.pipeline.Install(ctx, spec, installer.Options{Force: installForce})
	if err != nil {
		return exitify(err)
	}

	return printInstallResult(cmd.OutOrStdout(), spec, res)
}

// printInstallResult reports the install outcome on w.
func printInstallResult(w io.Writer, spec version.Spec, res *installer.Result) error {
	switch {
	case res.AlreadyInstalled:
		fmt.Fprintf(w, "Version %s is already installed. Pass --force to re-install.\n", spec)
	case res.FromCache:
		fmt.Fprintf(w, "Installed Godot %s from cache to %s\n", spec, res.InstalledPath)
	default:
		fmt.Fprintf(w, "Installed Godot %s to %s\n", spec, res.InstalledPath)
	}
	return nil
}

// pickVersion runs an interactive fuzzy picker over the published versions.
// The boolean result is false when the user aborted the picker.
func pickVersion(ctx context.Context, e *env) (version.Spec, bool, error) {
	releases, err := e.client.ListReleases(ctx)
	if err != nil {
		return version.Spec{}, false, err
	}
	if len(releases) == 0 {
		return version.Spec{}, false, errors.New("the release index lists no versions")
	}

	idx, err := fuzzyfinder.Find(
		releases,
		func(i int) string {
			return releases[i].TagName
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			r := releases[i]
			return fmt.Sprintf("Release: %s\nTag: %s\nAssets: %d", r.Name, r.TagName, len(r.Assets))
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			fmt.Fprintln(os.Stderr, "No version selected.")
			return version.Spec{}, false, nil
		}
		return version.Spec{}, false, errors.Wrap(err, "interactive version selection failed")
	}

	spec, err := version.FromTag(releases[idx].TagName, e.cfg.Release.Channel)
	if err != nil {
		return version.Spec{}, false, err
	}
	return spec, true, nil
}
