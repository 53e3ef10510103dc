package manifest

import (
	"time"

	"github.com/robinmordasiewicz/xc-manifest/internal/config"
	"github.com/robinmordasiewicz/xc-manifest/internal/git"
	"github.com/robinmordasiewicz/xc-manifest/internal/source"
)

// Generate runs the whole pipeline against the plugin checkout at root: loads
// every source, assembles the manifest, and writes all output files. Absent
// sources fall back to defaults; a source that exists but cannot be parsed
// aborts the run before anything is written.
func Generate(root string, now time.Time) ([]string, error) {
	descriptor, err := source.LoadDocument(config.DescriptorPath(root))
	if err != nil {
		return nil, err
	}
	nav, err := source.LoadDocument(config.NavMetadataPath(root))
	if err != nil {
		return nil, err
	}
	sitemap, err := source.LoadDocument(config.SitemapPath(root))
	if err != nil {
		return nil, err
	}
	skills, err := source.EnumerateSkills(config.SkillsDir(root))
	if err != nil {
		return nil, err
	}
	workflows, err := source.EnumerateWorkflows(config.WorkflowsDir(root))
	if err != nil {
		return nil, err
	}
	changelog, err := source.ParseChangelog(config.ChangelogPath(root), ChangelogLimit)
	if err != nil {
		return nil, err
	}

	m := Assemble(Inputs{
		Descriptor:  descriptor,
		NavMetadata: nav,
		URLSitemap:  sitemap,
		Skills:      skills,
		Workflows:   workflows,
		Changelog:   changelog,
		Git:         git.Query(git.NewClient(root)),
		Now:         now,
	})

	return Write(root, m)
}
