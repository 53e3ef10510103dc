package manifest

import (
	"time"

	"github.com/robinmordasiewicz/xc-manifest/internal/git"
	"github.com/robinmordasiewicz/xc-manifest/internal/source"
)

const (
	// SchemaURL identifies the manifest schema for downstream consumers
	SchemaURL = "https://robinmordasiewicz.github.io/f5xc-console/schema/manifest-v1.json"
	// Version is the manifest format version
	Version = "1.0.0"
	// ChangelogLimit caps how many changelog entries the manifest embeds
	ChangelogLimit = 5

	// defaultDocsURL is used when the descriptor carries no homepage
	defaultDocsURL = "https://robinmordasiewicz.github.io/f5xc-console/"
)

// mcpTools is the fixed set of MCP tools the console skills drive
var mcpTools = []string{
	"mcp__chrome-devtools__list_pages",
	"mcp__chrome-devtools__navigate_page",
	"mcp__chrome-devtools__take_snapshot",
	"mcp__chrome-devtools__click",
	"mcp__chrome-devtools__fill",
	"mcp__chrome-devtools__take_screenshot",
	"mcp__chrome-devtools__evaluate_script",
}

// commands is the fixed command tree the plugin exposes
var commands = []Command{
	{
		Name:        "console",
		Alias:       "xc:console",
		Description: "F5 XC console automation",
		Subcommands: []Subcommand{
			{Name: "login", Description: "Authenticate to tenant"},
			{Name: "crawl", Description: "Refresh navigation metadata"},
			{Name: "nav", Description: "Navigate to workspace/page"},
			{Name: "create", Description: "Start resource creation"},
			{Name: "status", Description: "Show connection status"},
		},
	},
}

// ecosystem lists the companion plugins
var ecosystem = []EcosystemEntry{
	{Name: "f5xc-cli", Command: "/xc:cli", Purpose: "CLI operations (f5xcctl)"},
	{Name: "f5xc-terraform", Command: "/xc:tf", Purpose: "Infrastructure as Code"},
	{Name: "f5xc-docs", Command: "/xc:docs", Purpose: "Documentation lookups"},
}

// Inputs carries everything Assemble folds into the manifest
type Inputs struct {
	Descriptor  map[string]any
	NavMetadata map[string]any
	URLSitemap  map[string]any
	Skills      []source.Skill
	Workflows   []source.Workflow
	Changelog   []source.ChangelogEntry
	Git         git.Info
	Now         time.Time
}

// Assemble merges the loaded sources into one manifest. It is pure and
// deterministic for identical inputs apart from the embedded timestamp. Every
// optional source field has an explicit default, so absent inputs can never
// make assembly fail.
func Assemble(in Inputs) *Manifest {
	desc := in.Descriptor
	nav := in.NavMetadata
	sitemap := in.URLSitemap
	crawl := mapOr(nav, "crawl_summary")

	name := stringOr(desc, "name", "xc")

	return &Manifest{
		Schema:          SchemaURL,
		ManifestVersion: Version,
		GeneratedAt:     in.Now.UTC().Format(time.RFC3339),

		Plugin: Plugin{
			Name:            name,
			DisplayName:     stringOr(desc, "display_name", name),
			Version:         stringOr(desc, "version", "0.0.0"),
			Tagline:         stringOr(desc, "tagline", ""),
			Description:     stringOr(desc, "description", ""),
			LongDescription: stringOr(desc, "long_description", ""),
			Author:          mapOr(desc, "author"),
			License:         stringOr(desc, "license", "MIT"),
			Repository:      stringOr(desc, "repository", ""),
			Homepage:        stringOr(desc, "homepage", ""),
			Keywords:        listOr(desc, "keywords"),
			Categories:      listOr(desc, "categories"),
			Platforms:       listOr(desc, "platforms"),
		},

		Display: Display{
			Icon:        stringOr(desc, "icon", ""),
			Banner:      stringOr(desc, "banner", ""),
			Screenshots: listOr(desc, "screenshots"),
			Features:    listOr(desc, "features"),
		},

		Installation:  mapOr(desc, "installation"),
		Prerequisites: listOr(desc, "prerequisites"),
		Compatibility: mapOr(desc, "compatibility"),

		Support:     mapOr(desc, "support"),
		Maintainers: listOr(desc, "maintainers"),

		Build: in.Git,

		Changelog: orEmpty(in.Changelog),

		ConsoleMetadata: ConsoleMetadata{
			Version:          stringOr(nav, "version", "unknown"),
			Tenant:           stringOr(nav, "tenant", ""),
			LastCrawled:      stringOr(crawl, "last_crawled", stringOr(nav, "last_crawled", "")),
			SelectorPriority: listOr(nav, "selector_priority"),
			Authentication:   mapOr(nav, "authentication"),
			Stats: CrawlStats{
				PagesCrawled:         intOr(crawl, "pages_crawled"),
				WorkspacesDiscovered: intOr(crawl, "workspaces_discovered"),
				FormFields:           intOr(crawl, "form_fields"),
			},
		},

		URLSitemap: URLSitemap{
			Version:             stringOr(sitemap, "version", "unknown"),
			Coverage:            mapOr(sitemap, "crawl_coverage"),
			WorkspaceMapping:    mapOr(sitemap, "workspace_mapping"),
			ResourceShortcuts:   mapOr(sitemap, "resource_shortcuts"),
			StaticRouteCount:    len(mapOr(sitemap, "static_routes")),
			DynamicPatternCount: len(listOr(sitemap, "dynamic_routes")),
		},

		Skills:    orEmpty(in.Skills),
		Workflows: orEmpty(in.Workflows),

		MCPTools: mcpTools,
		Commands: commands,

		Documentation: Documentation{
			PluginDocs:   stringOr(desc, "homepage", defaultDocsURL),
			APIReference: "https://docs.cloud.f5.com/docs/api",
			F5XCDocs:     "https://docs.cloud.f5.com/",
		},

		Ecosystem: ecosystem,
	}
}

// stringOr returns the string at key, or def when the key is absent or not a
// string
func stringOr(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

// listOr returns the list at key, defaulting to an empty list so the field
// serializes as [] rather than null
func listOr(m map[string]any, key string) []any {
	if v, ok := m[key].([]any); ok {
		return v
	}
	return []any{}
}

// mapOr returns the object at key, defaulting to an empty object
func mapOr(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return map[string]any{}
}

// intOr reads a numeric counter; JSON numbers decode as float64
func intOr(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// orEmpty keeps absent collections serializing as [] instead of null
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
