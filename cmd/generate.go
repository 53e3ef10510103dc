package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/robinmordasiewicz/xc-manifest/internal/i18n"
	"github.com/robinmordasiewicz/xc-manifest/internal/manifest"
	"github.com/spf13/cobra"
)

var pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate manifest.json and the docs data files",
	Long: `Generate aggregates every metadata source of the plugin checkout into
manifest.json at the project root, mirrors it under @docs/data/, and writes
the per-section data files used by the MkDocs macros.

Missing sources fall back to defaults; a source file that exists but is not
valid JSON aborts the run.

Example:
  xc-manifest
  xc-manifest generate --root ../f5xc-console`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	written, err := manifest.Generate(projectRoot, time.Now())
	if err != nil {
		return err
	}

	for _, path := range written {
		fmt.Println(i18n.T("GenerateSuccess", map[string]any{"Path": pathStyle.Render(path)}))
	}

	return nil
}
