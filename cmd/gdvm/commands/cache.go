package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	gdvmerrors "github.com/thoreinstein/gdvm/internal/errors"
	"github.com/thoreinstein/gdvm/internal/version"
)

var cacheRmAll bool

func init() {
	cacheRmCmd.Flags().BoolVar(&cacheRmAll, "all", false, "remove every cached archive")

	cacheCmd.AddCommand(cacheShowCmd)
	cacheCmd.AddCommand(cacheRmCmd)
	rootCmd.AddCommand(cacheCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and prune the engine archive cache",
	Long: `Inspect and prune the engine archive cache.

Downloaded release archives stay cached after installation so that
reinstalls never hit the network. The cache is safe to prune at any
time; the next install of a pruned version simply downloads again.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List cached engine archives",
	Args:  cobra.NoArgs,
	RunE:  runCacheShow,
}

var cacheRmCmd = &cobra.Command{
	Use:   "rm [versions...]",
	Short: "Remove cached archives for the given versions, or all of them",
	Example: `  # Drop one version's archive
  gdvm cache rm 3.5.1

  # Drop several at once
  gdvm cache rm 3.5.1 4.2

  # Drop everything
  gdvm cache rm --all`,
	Args: cobra.ArbitraryArgs,
	RunE: runCacheRm,
}

func runCacheShow(cmd *cobra.Command, _ []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	return exitify(printCacheEntries(cmd.OutOrStdout(), e))
}

func printCacheEntries(w io.Writer, e *env) error {
	entries, err := e.layout.CachedArchives()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "The cache is empty.")
		return nil
	}

	var total int64
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSIZE")
	for _, entry := range entries {
		spec, err := version.FromTag(entry.Canonical, e.cfg.Release.Channel)
		if err != nil {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", spec, formatSize(entry.Size))
		total += entry.Size
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nTotal: %s\n", formatSize(total))
	return nil
}

func runCacheRm(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if cacheRmAll {
		if len(args) > 0 {
			return gdvmerrors.NewExitError(errors.New("--all cannot be combined with a version argument"), gdvmerrors.ExitUser)
		}
		if err := os.RemoveAll(e.layout.EnginesCacheDir()); err != nil {
			return exitify(err)
		}
		fmt.Fprintln(out, "Removed all cached archives.")
		return nil
	}

	if len(args) == 0 {
		return gdvmerrors.NewExitError(errors.New("a version argument or --all is required"), gdvmerrors.ExitUser)
	}

	for _, arg := range args {
		spec, err := e.parseVersion(arg)
		if err != nil {
			return err
		}

		dir := e.layout.CachedArchiveDir(spec)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			fmt.Fprintf(out, "No cached archive for Godot %s.\n", spec)
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return exitify(err)
		}
		fmt.Fprintf(out, "Removed cached archive for Godot %s.\n", spec)
	}
	return nil
}
