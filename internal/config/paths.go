package config

import "path/filepath"

// Well-known locations inside an f5xc-console plugin checkout. Everything is
// relative to the project root given on the command line; the tool consumes
// no environment variables and no configuration file.

const (
	// DescriptorDir is the directory containing plugin.json
	DescriptorDir = ".claude-plugin"
	// DescriptorFile is the plugin descriptor filename
	DescriptorFile = "plugin.json"
)

// DescriptorPath returns the plugin descriptor path
// <root>/.claude-plugin/plugin.json
func DescriptorPath(root string) string {
	return filepath.Join(root, DescriptorDir, DescriptorFile)
}

// NavMetadataPath returns the console navigation crawl output path
// <root>/skills/xc-console/console-navigation-metadata.json
func NavMetadataPath(root string) string {
	return filepath.Join(root, "skills", "xc-console", "console-navigation-metadata.json")
}

// SitemapPath returns the URL sitemap path
// <root>/skills/xc-console/url-sitemap.json
func SitemapPath(root string) string {
	return filepath.Join(root, "skills", "xc-console", "url-sitemap.json")
}

// SkillsDir returns the skills root directory
// <root>/skills/
func SkillsDir(root string) string {
	return filepath.Join(root, "skills")
}

// WorkflowsDir returns the guided workflows directory
// <root>/skills/xc-console/workflows/
func WorkflowsDir(root string) string {
	return filepath.Join(root, "skills", "xc-console", "workflows")
}

// ChangelogPath returns the changelog path
// <root>/CHANGELOG.md
func ChangelogPath(root string) string {
	return filepath.Join(root, "CHANGELOG.md")
}

// ManifestPath returns the primary manifest output path
// <root>/manifest.json
func ManifestPath(root string) string {
	return filepath.Join(root, "manifest.json")
}

// DocsDataDir returns the MkDocs data directory
// <root>/@docs/data/
func DocsDataDir(root string) string {
	return filepath.Join(root, "@docs", "data")
}
