package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/robinmordasiewicz/xc-manifest/internal/config"
	"github.com/robinmordasiewicz/xc-manifest/internal/i18n"
	"github.com/robinmordasiewicz/xc-manifest/internal/search"
	"github.com/robinmordasiewicz/xc-manifest/internal/source"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205"))

var skillsCmd = &cobra.Command{
	Use:   "skills [keyword]",
	Short: "List the skills the manifest would embed",
	Long: `List every skill discovered under the skills directory, with the
front-matter metadata that would be embedded in the manifest. An optional
keyword fuzzy-filters the list by id, name, and description.

Example:
  xc-manifest skills
  xc-manifest skills crawl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSkills,
}

func runSkills(cmd *cobra.Command, args []string) error {
	skills, err := source.EnumerateSkills(config.SkillsDir(projectRoot))
	if err != nil {
		return err
	}

	if len(args) == 1 {
		skills = search.FilterSkills(skills, args[0])
		if len(skills) == 0 {
			fmt.Println(i18n.T("NoResults", map[string]any{"Keyword": args[0]}))
			return nil
		}
	} else if len(skills) == 0 {
		fmt.Println(i18n.T("NoSkills", nil))
		return nil
	}

	fmt.Println(headerStyle.Render(i18n.T("SkillsHeader", nil)))
	fmt.Println(strings.Repeat("-", 40))

	for _, skill := range skills {
		fmt.Printf("  %s\n", skill.ID())
		if desc := skill.Description(); desc != "" {
			fmt.Printf("    %s\n", desc)
		}
		if verbose {
			if path := skill["path"]; path != "" {
				fmt.Printf("    Path: %s\n", path)
			}
			if version := skill["version"]; version != "" {
				fmt.Printf("    Version: %s\n", version)
			}
		}
		fmt.Println()
	}

	fmt.Println(i18n.T("SkillCount", map[string]any{"Count": len(skills)}, len(skills)))

	return nil
}
