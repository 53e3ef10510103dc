package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Workflow is one guided workflow document under the workflows directory
type Workflow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

var titleCaser = cases.Title(language.English)

// EnumerateWorkflows lists the *.md files directly inside workflowsDir,
// skipping names with a leading underscore (drafts and partials). There is no
// recursion into subdirectories, and a missing directory yields no workflows.
// The recorded path is relative to the directory three levels up from
// workflowsDir, which is the project root in the standard
// skills/xc-console/workflows layout.
func EnumerateWorkflows(workflowsDir string) ([]Workflow, error) {
	entries, err := os.ReadDir(workflowsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read workflows directory: %w", err)
	}

	base := filepath.Dir(filepath.Dir(filepath.Dir(workflowsDir)))

	var workflows []Workflow
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "_") || !strings.HasSuffix(name, ".md") {
			continue
		}

		rel, err := filepath.Rel(base, filepath.Join(workflowsDir, name))
		if err != nil {
			rel = filepath.Join(workflowsDir, name)
		}

		stem := strings.TrimSuffix(name, ".md")
		workflows = append(workflows, Workflow{
			ID:   stem,
			Name: titleCaser.String(strings.ReplaceAll(stem, "-", " ")),
			Path: filepath.ToSlash(rel),
		})
	}

	return workflows, nil
}
