package manifest

import (
	"github.com/robinmordasiewicz/xc-manifest/internal/git"
	"github.com/robinmordasiewicz/xc-manifest/internal/source"
)

// Manifest is the aggregated plugin document written to manifest.json. Field
// order mirrors the serialized layout the documentation site consumes.
// Sections with a fixed shape are typed; descriptor fields that pass through
// verbatim keep their loose JSON types.
type Manifest struct {
	Schema          string `json:"$schema"`
	ManifestVersion string `json:"manifest_version"`
	GeneratedAt     string `json:"generated_at"`

	Plugin  Plugin  `json:"plugin"`
	Display Display `json:"display"`

	Installation  map[string]any `json:"installation"`
	Prerequisites []any          `json:"prerequisites"`
	Compatibility map[string]any `json:"compatibility"`

	Support     map[string]any `json:"support"`
	Maintainers []any          `json:"maintainers"`

	Build git.Info `json:"build"`

	Changelog []source.ChangelogEntry `json:"changelog"`

	ConsoleMetadata ConsoleMetadata `json:"console_metadata"`
	URLSitemap      URLSitemap      `json:"url_sitemap"`

	Skills    []source.Skill    `json:"skills"`
	Workflows []source.Workflow `json:"workflows"`

	MCPTools []string  `json:"mcp_tools"`
	Commands []Command `json:"commands"`

	Documentation Documentation    `json:"documentation"`
	Ecosystem     []EcosystemEntry `json:"ecosystem"`
}

// Plugin is the enriched identity block from the plugin descriptor
type Plugin struct {
	Name            string         `json:"name"`
	DisplayName     string         `json:"display_name"`
	Version         string         `json:"version"`
	Tagline         string         `json:"tagline"`
	Description     string         `json:"description"`
	LongDescription string         `json:"long_description"`
	Author          map[string]any `json:"author"`
	License         string         `json:"license"`
	Repository      string         `json:"repository"`
	Homepage        string         `json:"homepage"`
	Keywords        []any          `json:"keywords"`
	Categories      []any          `json:"categories"`
	Platforms       []any          `json:"platforms"`
}

// Display groups the marketing assets shown on the docs site
type Display struct {
	Icon        string `json:"icon"`
	Banner      string `json:"banner"`
	Screenshots []any  `json:"screenshots"`
	Features    []any  `json:"features"`
}

// ConsoleMetadata summarizes the console navigation crawl
type ConsoleMetadata struct {
	Version          string         `json:"version"`
	Tenant           string         `json:"tenant"`
	LastCrawled      string         `json:"last_crawled"`
	SelectorPriority []any          `json:"selector_priority"`
	Authentication   map[string]any `json:"authentication"`
	Stats            CrawlStats     `json:"stats"`
}

// CrawlStats holds the crawl summary counters
type CrawlStats struct {
	PagesCrawled         int `json:"pages_crawled"`
	WorkspacesDiscovered int `json:"workspaces_discovered"`
	FormFields           int `json:"form_fields"`
}

// URLSitemap summarizes route coverage. The route tables themselves stay in
// the source document; only their sizes are surfaced here.
type URLSitemap struct {
	Version             string         `json:"version"`
	Coverage            map[string]any `json:"coverage"`
	WorkspaceMapping    map[string]any `json:"workspace_mapping"`
	ResourceShortcuts   map[string]any `json:"resource_shortcuts"`
	StaticRouteCount    int            `json:"static_route_count"`
	DynamicPatternCount int            `json:"dynamic_pattern_count"`
}

// Command describes a slash command exposed by the plugin
type Command struct {
	Name        string       `json:"name"`
	Alias       string       `json:"alias"`
	Description string       `json:"description"`
	Subcommands []Subcommand `json:"subcommands"`
}

// Subcommand is one operation under a plugin command
type Subcommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Documentation holds the documentation entry points
type Documentation struct {
	PluginDocs   string `json:"plugin_docs"`
	APIReference string `json:"api_reference"`
	F5XCDocs     string `json:"f5xc_docs"`
}

// EcosystemEntry points to a companion plugin
type EcosystemEntry struct {
	Name    string `json:"name"`
	Command string `json:"command"`
	Purpose string `json:"purpose"`
}

// InstallGuide is the synthesized grouping written to installation.json
type InstallGuide struct {
	Installation  map[string]any `json:"installation"`
	Prerequisites []any          `json:"prerequisites"`
	Compatibility map[string]any `json:"compatibility"`
}
