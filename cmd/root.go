package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose     bool
	projectRoot string

	rootCmd = &cobra.Command{
		Use:           "xc-manifest",
		Short:         "Generate the f5xc-console plugin manifest",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `xc-manifest aggregates the scattered metadata of an f5xc-console
plugin checkout into one manifest.json, the source of truth for
machine-readable plugin metadata.

It reads the plugin descriptor, the console navigation crawl output, the URL
sitemap, the skill and workflow directories, the changelog, and the git
repository state, then writes the manifest to the project root and mirrors it
with per-section data files under @docs/data/ for the documentation site.

Run it from the plugin project root, or point it elsewhere with --root.
Running with no subcommand is the same as 'xc-manifest generate'.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "root", ".", "plugin project root")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(skillsCmd)
}
