package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/gdvm/internal/store"
	"github.com/thoreinstein/gdvm/internal/version"
)

var listAvailable bool

func init() {
	listCmd.Flags().BoolVarP(&listAvailable, "available", "a", false,
		"list versions published on the release index instead of installed ones")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed engine versions",
	Long: `List installed engine versions.

With --available, queries the release index and lists every published
version, marking the ones already installed locally.

Examples:
  # What is installed
  gdvm list

  # What could be installed
  gdvm list --available`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	if listAvailable {
		return exitify(listAvailableVersions(cmd.Context(), cmd.OutOrStdout(), e))
	}
	return exitify(listInstalledVersions(cmd.OutOrStdout(), e))
}

func listInstalledVersions(w io.Writer, e *env) error {
	installed, err := e.layout.InstalledVersions(e.plat)
	if err != nil {
		return err
	}
	if len(installed) == 0 {
		fmt.Fprintln(w, "No versions installed. Run 'gdvm install <version>' to add one.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE")
	for _, canonical := range installed {
		spec, err := version.FromTag(canonical, e.cfg.Release.Channel)
		if err != nil {
			// Foreign directories under the engines root are skipped.
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", spec, e.layout.State(spec, e.plat))
	}
	return tw.Flush()
}

func listAvailableVersions(ctx context.Context, w io.Writer, e *env) error {
	releases, err := e.client.ListReleases(ctx)
	if err != nil {
		return err
	}
	if len(releases) == 0 {
		fmt.Fprintln(w, "The release index lists no versions.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE")
	for _, r := range releases {
		spec, err := version.FromTag(r.TagName, e.cfg.Release.Channel)
		if err != nil {
			continue
		}
		state := ""
		if s := e.layout.State(spec, e.plat); s != store.NotInstalled {
			state = s.String()
		}
		fmt.Fprintf(tw, "%s\t%s\n", spec, state)
	}
	return tw.Flush()
}
